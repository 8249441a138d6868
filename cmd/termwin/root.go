// ABOUTME: Root cobra command: persistent flags, config loading, logging and theme setup
// ABOUTME: Subcommands receive the validated settings through the shared app state

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termwindows/internal/config"
	"github.com/mauromedda/termwindows/internal/keybindings"
	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/component"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
)

// app carries the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath string
	host       string
	themeName  string
	border     string
	logFile    string
	verbose    bool

	projectRoot string
	settings    *config.Settings
	renderer    *component.MarkdownRenderer
	logOut      io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "termwin",
		Short:         "Stacked text windows for the terminal",
		Long:          "termwin shows text, markdown and menus in stacked, auto-sized terminal windows.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (replaces the global and project files)")
	pf.StringVar(&a.host, "host", "", fmt.Sprintf("Display host: %v", config.Hosts))
	pf.StringVar(&a.themeName, "theme", "", "Theme name or path to a theme YAML file")
	pf.StringVar(&a.border, "border", "", fmt.Sprintf("Border override: %v", theme.BorderNames()))
	pf.StringVar(&a.logFile, "log-file", "", "Append logs to this file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		a.teardown()
	}

	root.AddCommand(
		newViewCmd(a),
		newDemoCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads settings, applies flag overrides, validates the result and
// configures logging and the global theme.
func (a *app) setup(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	a.projectRoot = cwd

	s, err := config.Load(cwd, a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		s.Host = a.host
	}
	if flags.Changed("theme") {
		s.Theme = a.themeName
	}
	if flags.Changed("border") {
		s.Border = a.border
	}
	if flags.Changed("log-file") {
		s.LogFile = a.logFile
	}
	if a.verbose {
		s.LogLevel = "debug"
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	a.settings = s

	if err := a.setupLogging(); err != nil {
		return err
	}

	th, err := s.ResolveTheme()
	if err != nil {
		return err
	}
	theme.Set(th)

	km, err := s.Keymap()
	if err != nil {
		return err
	}
	keybindings.Set(km)
	log.Debug("termwin: theme %q host %q", th.Name, s.Host)
	return nil
}

// setupLogging points the logger at the configured file. Without one,
// logs are discarded so they never land on the drawn screen.
func (a *app) setupLogging() error {
	lvl, err := log.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if a.settings.LogFile == "" {
		log.SetOutput(nil)
		return nil
	}
	f, err := os.OpenFile(a.settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	a.logOut = f
	return nil
}

func (a *app) teardown() {
	if a.logOut != nil {
		log.SetOutput(nil)
		_ = a.logOut.Close()
		a.logOut = nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "termwin %s (%s) built %s\n", version, commit, date)
			return err
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and the files consulted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.Explain(a.settings, a.projectRoot))
			return err
		},
	}
}
