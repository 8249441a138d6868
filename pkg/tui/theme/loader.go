// ABOUTME: YAML theme file loading with validation and fallback to a base theme
// ABOUTME: Unset palette fields inherit from the base so themes can be partial

package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML theme file. Fields the file leaves out keep the
// values of the built-in theme named by its "base" key, or "default".
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme document.
func Parse(data []byte) (*Theme, error) {
	var head struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if head.Base == "" {
		head.Base = "default"
	}
	th := Builtin(head.Base)
	if th == nil {
		return nil, fmt.Errorf("unknown base theme %q", head.Base)
	}

	// Decoding over the base keeps every field the document does not set.
	th.Name = ""
	if err := yaml.Unmarshal(data, th); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if th.Name == "" {
		return nil, fmt.Errorf("theme file has no name")
	}

	b, err := BorderByName(th.BorderName)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", th.Name, err)
	}
	th.Border = b
	return th, nil
}

// Resolve returns the built-in theme called name, or loads name as a
// file path when no built-in matches.
func Resolve(name string) (*Theme, error) {
	if th := Builtin(name); th != nil {
		return th, nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return LoadFile(name)
}
