// ABOUTME: Environment handling for settings: ${VAR} expansion and TERMWIN_* overrides
// ABOUTME: Expansion replaces ${VAR} with os.Getenv values; unset vars become empty

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TERMWIN_"

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.CancelKey = expandEnv(s.CancelKey)
	s.Theme = expandEnv(s.Theme)
	s.Border = expandEnv(s.Border)
	s.Host = expandEnv(s.Host)
	s.LogFile = expandEnv(s.LogFile)
	s.LogLevel = expandEnv(s.LogLevel)
	s.MarkdownStyle = expandEnv(s.MarkdownStyle)
}

// expandEnv replaces all ${VAR} occurrences with their environment values.
func expandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}

// ApplyEnv overrides settings from TERMWIN_* variables found by lookup.
// Pass os.LookupEnv outside tests.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = d
		return nil
	}

	if err := dur("INPUT_TIMEOUT", &s.InputTimeout); err != nil {
		return err
	}
	if err := dur("IDLE_SLEEP", &s.IdleSleep); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "AUTO_CEILING"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sAUTO_CEILING: %w", EnvPrefix, err)
		}
		s.AutoCeiling = f
	}
	str("CANCEL_KEY", &s.CancelKey)
	str("THEME", &s.Theme)
	str("BORDER", &s.Border)
	str("HOST", &s.Host)
	str("LOG_FILE", &s.LogFile)
	str("LOG_LEVEL", &s.LogLevel)
	str("MARKDOWN_STYLE", &s.MarkdownStyle)
	return nil
}
