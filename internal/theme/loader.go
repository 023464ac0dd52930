package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader finds themes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Extra holds themes defined in the config file.
	Extra map[string]*Theme
}

// NewLoader creates a Loader with the standard search directories.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "easel", "themes"),
		SystemDir: "/usr/share/easel/themes",
	}
}

// Load resolves name in order: an existing file path, a config-defined
// theme, a built-in theme, then <name>.theme in ConfigDir and SystemDir.
// An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}
	if t, ok := l.Extra[name]; ok {
		return t, nil
	}
	if t, ok := Builtin(name); ok {
		return t, nil
	}
	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
