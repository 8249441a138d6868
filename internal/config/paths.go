// ABOUTME: Standard filesystem paths for termwin configuration
// ABOUTME: Resolves ~/.termwin/ for global and .termwin/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".termwin"
	projectDirName = ".termwin"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.termwin/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.termwin/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// ThemesDir returns the directory searched for theme files by bare name.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// DefaultLogFile returns the log path used when logging is enabled
// without an explicit file.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), "termwin.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
