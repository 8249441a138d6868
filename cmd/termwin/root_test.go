// ABOUTME: Tests for the command tree: version, config explain, flag overrides and validation
// ABOUTME: Each test runs under its own HOME so user config never leaks in

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/termwindows/pkg/tui/theme"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "termwin dev") {
		t.Errorf("output = %q; want termwin dev prefix", out)
	}
}

func TestConfigCmd_FlagOverrides(t *testing.T) {
	out, err := execute(t, "config", "--host", "tcell", "--border", "ascii")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"=== Loop ===", "Host:          tcell", "Border:        ascii", "=== Files ==="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := theme.Current().BorderName; got != "ascii" {
		t.Errorf("global theme border = %q; want ascii", got)
	}
	theme.Set(theme.Builtin("default"))
}

func TestConfigCmd_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termwin.yaml")
	if err := os.WriteFile(path, []byte("host: tea\nidle_sleep: 5ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "Host:          tea") || !strings.Contains(out, "IdleSleep:    5ms") {
		t.Errorf("explicit file not applied:\n%s", out)
	}
}

func TestRootCmd_InvalidSettings(t *testing.T) {
	_, err := execute(t, "config", "--host", "curses", "--theme", "no-such-theme")
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"host must be one of", "theme:"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestRootCmd_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termwin.log")
	if _, err := execute(t, "config", "--log-file", path, "--verbose"); err != nil {
		t.Fatalf("config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "termwin: theme") {
		t.Errorf("debug log missing theme line:\n%s", data)
	}
}

func TestViewCmd_Errors(t *testing.T) {
	if _, err := execute(t, "view"); err == nil {
		t.Error("view without a file succeeded")
	}
	if _, err := execute(t, "view", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("view of a missing file succeeded")
	}
}
