// ABOUTME: Tests for the human-readable settings summary
// ABOUTME: Checks sections, values, and the consulted file list

package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	s := Defaults()
	s.Border = "rounded"
	s.LogFile = "/tmp/tw.log"
	root := t.TempDir()
	out := Explain(s, root)

	for _, want := range []string{
		"=== Loop ===", "InputTimeout: 100ms", "CancelKey:    escape",
		"=== Display ===", "Host:          ansi", "Border:        rounded",
		"=== Logging ===", "File:  /tmp/tw.log",
		"=== Keys ===", "pgdown", "select",
		"=== Files ===", filepath.Join(root, ".termwin", "config.yaml") + " (missing)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Explain() missing %q:\n%s", want, out)
		}
	}
}

func TestExplain_Nil(t *testing.T) {
	t.Parallel()

	if out := Explain(nil, t.TempDir()); !strings.Contains(out, "Theme:         default") {
		t.Errorf("Explain(nil) should show defaults:\n%s", out)
	}
}
