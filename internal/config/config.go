// ABOUTME: Settings loading with defaults, global + project YAML merge, and env overrides
// ABOUTME: Validate checks every field before the CLI turns settings into controller options

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termwindows/internal/keybindings"
	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

// Hosts lists the accepted display hosts.
var Hosts = []string{"ansi", "tcell", "tea"}

// Settings holds the merged configuration.
type Settings struct {
	InputTimeout  time.Duration `yaml:"input_timeout,omitempty"`
	IdleSleep     time.Duration `yaml:"idle_sleep,omitempty"`
	AutoCeiling   float64       `yaml:"auto_ceiling,omitempty"`
	CancelKey     string        `yaml:"cancel_key,omitempty"`
	Theme         string        `yaml:"theme,omitempty"`
	Border        string        `yaml:"border,omitempty"`
	Host          string        `yaml:"host,omitempty"`
	LogFile       string        `yaml:"log_file,omitempty"`
	LogLevel      string        `yaml:"log_level,omitempty"`
	MarkdownStyle string        `yaml:"markdown_style,omitempty"`

	// Keys overrides navigation bindings, action name to key names.
	Keys map[string][]string `yaml:"keys,omitempty"`
}

// Defaults returns the settings used when no file sets a field.
func Defaults() *Settings {
	return &Settings{
		InputTimeout:  window.DefaultInputTimeout,
		IdleSleep:     window.DefaultIdleSleep,
		AutoCeiling:   layout.DefaultCeiling,
		CancelKey:     "escape",
		Theme:         "default",
		Host:          "ansi",
		LogLevel:      "info",
		MarkdownStyle: "notty",
	}
}

// Load reads and merges global and project-local settings over the
// defaults, then applies ${VAR} expansion and TERMWIN_* overrides.
// Project settings override global settings. An explicit path replaces
// both files.
func Load(projectRoot, explicit string) (*Settings, error) {
	merged := Defaults()

	if explicit != "" {
		s, err := loadFile(explicit)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		merged = merge(merged, s)
	} else {
		global, err := loadFile(GlobalConfigFile())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
		project, err := loadFile(ProjectConfigFile(projectRoot))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
		merged = merge(merge(merged, global), project)
	}

	ResolveEnvVars(merged)
	if err := ApplyEnv(merged, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug("config: loaded %s", path)
	return &s, nil
}

// merge overlays non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base
	if over.InputTimeout != 0 {
		result.InputTimeout = over.InputTimeout
	}
	if over.IdleSleep != 0 {
		result.IdleSleep = over.IdleSleep
	}
	if over.AutoCeiling != 0 {
		result.AutoCeiling = over.AutoCeiling
	}
	if over.CancelKey != "" {
		result.CancelKey = over.CancelKey
	}
	if over.Theme != "" {
		result.Theme = over.Theme
	}
	if over.Border != "" {
		result.Border = over.Border
	}
	if over.Host != "" {
		result.Host = over.Host
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.MarkdownStyle != "" {
		result.MarkdownStyle = over.MarkdownStyle
	}
	if len(over.Keys) > 0 {
		keys := maps.Clone(base.Keys)
		if keys == nil {
			keys = make(map[string][]string, len(over.Keys))
		}
		maps.Copy(keys, over.Keys)
		result.Keys = keys
	}
	return &result
}

// Validate reports every invalid field.
func (s *Settings) Validate() error {
	var errs []error
	if s.InputTimeout <= 0 {
		errs = append(errs, fmt.Errorf("input_timeout must be positive, got %s", s.InputTimeout))
	}
	if s.IdleSleep < 0 {
		errs = append(errs, fmt.Errorf("idle_sleep must not be negative, got %s", s.IdleSleep))
	}
	if !(s.AutoCeiling > 0 && s.AutoCeiling <= 1) {
		errs = append(errs, fmt.Errorf("auto_ceiling must be in (0, 1], got %v", s.AutoCeiling))
	}
	if _, err := key.ParseName(s.CancelKey); err != nil {
		errs = append(errs, fmt.Errorf("cancel_key: %w", err))
	}
	if !slices.Contains(Hosts, s.Host) {
		errs = append(errs, fmt.Errorf("host must be one of %v, got %q", Hosts, s.Host))
	}
	if s.Border != "" {
		if _, err := theme.BorderByName(s.Border); err != nil {
			errs = append(errs, fmt.Errorf("border: %w", err))
		}
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := s.ResolveTheme(); err != nil {
		errs = append(errs, fmt.Errorf("theme: %w", err))
	}
	if km, err := s.Keymap(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	} else if ck, err := key.ParseName(s.CancelKey); err == nil {
		if a := km.ActionForKey(ck); a != "" {
			errs = append(errs, fmt.Errorf("keys: cancel key %q is also bound to %s", s.CancelKey, a))
		}
	}
	return errors.Join(errs...)
}

// ResolveTheme returns the configured theme with the border override
// applied. Bare names that are not built in are looked up as
// <name>.yaml under ThemesDir.
func (s *Settings) ResolveTheme() (*theme.Theme, error) {
	th, err := theme.Resolve(s.Theme)
	if err != nil {
		candidate := filepath.Join(ThemesDir(), s.Theme+".yaml")
		if _, statErr := os.Stat(candidate); statErr != nil {
			return nil, err
		}
		if th, err = theme.LoadFile(candidate); err != nil {
			return nil, err
		}
	}
	if s.Border != "" {
		b, err := theme.BorderByName(s.Border)
		if err != nil {
			return nil, err
		}
		th.BorderName = s.Border
		th.Border = b
	}
	return th, nil
}

// ThemeFiles lists the files the configured theme may be loaded from.
// Built-in themes have none.
func (s *Settings) ThemeFiles() []string {
	if theme.Builtin(s.Theme) != nil {
		return nil
	}
	return []string{s.Theme, filepath.Join(ThemesDir(), s.Theme+".yaml")}
}

// Key returns the parsed cancel key. Call after Validate.
func (s *Settings) Key() key.Key {
	k, err := key.ParseName(s.CancelKey)
	if err != nil {
		return key.Named(key.KeyEscape)
	}
	return k
}

// Keymap builds the navigation bindings with the configured overrides.
func (s *Settings) Keymap() (*keybindings.Manager, error) {
	return keybindings.New(s.Keys)
}

// Resolver returns the layout resolver for the configured auto ceiling.
func (s *Settings) Resolver() layout.Resolver {
	return layout.Resolver{Ceiling: s.AutoCeiling}
}

// ControllerOptions converts the timing settings.
func (s *Settings) ControllerOptions() []window.ControllerOption {
	return []window.ControllerOption{
		window.WithInputTimeout(s.InputTimeout),
		window.WithIdleSleep(s.IdleSleep),
	}
}
