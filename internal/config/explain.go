// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings and their files

package config

import (
	"fmt"
	"os"
	"strings"
)

// Explain renders a summary of the effective settings followed by the
// config files consulted for projectRoot and whether each exists.
func Explain(s *Settings, projectRoot string) string {
	if s == nil {
		s = Defaults()
	}

	var b strings.Builder

	b.WriteString("=== Loop ===\n")
	fmt.Fprintf(&b, "  InputTimeout: %s\n", s.InputTimeout)
	fmt.Fprintf(&b, "  IdleSleep:    %s\n", s.IdleSleep)
	fmt.Fprintf(&b, "  AutoCeiling:  %.2f\n", s.AutoCeiling)
	fmt.Fprintf(&b, "  CancelKey:    %s\n", s.CancelKey)
	b.WriteString("\n")

	b.WriteString("=== Display ===\n")
	fmt.Fprintf(&b, "  Host:          %s\n", s.Host)
	fmt.Fprintf(&b, "  Theme:         %s\n", s.Theme)
	if s.Border != "" {
		fmt.Fprintf(&b, "  Border:        %s\n", s.Border)
	}
	fmt.Fprintf(&b, "  MarkdownStyle: %s\n", s.MarkdownStyle)
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	fmt.Fprintf(&b, "  Level: %s\n", s.LogLevel)
	if s.LogFile != "" {
		fmt.Fprintf(&b, "  File:  %s\n", s.LogFile)
	}
	b.WriteString("\n")

	b.WriteString("=== Keys ===\n")
	if km, err := s.Keymap(); err != nil {
		fmt.Fprintf(&b, "  invalid: %v\n", err)
	} else {
		b.WriteString(km.FormatAll())
	}
	b.WriteString("\n")

	b.WriteString("=== Files ===\n")
	for _, path := range []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)} {
		state := "missing"
		if _, err := os.Stat(path); err == nil {
			state = "found"
		}
		fmt.Fprintf(&b, "  %s (%s)\n", path, state)
	}

	return b.String()
}
