// ABOUTME: System clipboard write through the first available platform tool
// ABOUTME: macOS pbcopy; Linux wl-copy, xclip or xsel; Windows clip.exe

package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

type tool struct {
	name string
	args []string
}

var tools = map[string][]tool{
	"darwin": {{name: "pbcopy"}},
	"linux": {
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	},
	"windows": {{name: "clip.exe"}},
}

// Write copies text to the system clipboard.
func Write(text string) error {
	t, err := find(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}
	c := exec.Command(t.name, t.args...)
	c.Stdin = strings.NewReader(text)
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", t.name, err)
	}
	return nil
}

// find returns the first tool for goos that look resolves.
func find(goos string, look func(string) (string, error)) (tool, error) {
	for _, t := range tools[goos] {
		if path, err := look(t.name); err == nil {
			t.name = path
			return t, nil
		}
	}
	return tool{}, fmt.Errorf("%w on %s", ErrUnavailable, goos)
}
