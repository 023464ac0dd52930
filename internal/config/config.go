// Package config reads and writes the easel RC file.
package config

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/example/easel/internal/history"
	"github.com/example/easel/internal/theme"
)

// ExpandPolicy decides what happens when a pasted image does not fit the
// canvas.
type ExpandPolicy string

const (
	ExpandAsk    ExpandPolicy = "ask"
	ExpandAlways ExpandPolicy = "always"
	ExpandNever  ExpandPolicy = "never"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme         string
	SaveDir       string
	Background    color.RGBA
	Foreground    color.RGBA
	UndoDepth     int
	LineWidth     int
	PasteOffset   image.Point
	ExpandOnPaste ExpandPolicy
	Notify        Notify
	Themes        map[string]*theme.Theme
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Theme:         "", // empty lets EASEL_THEME or the default apply
		Background:    color.RGBA{255, 255, 255, 255},
		Foreground:    color.RGBA{0, 0, 0, 255},
		UndoDepth:     history.DefaultCapacity,
		LineWidth:     1,
		PasteOffset:   image.Pt(20, 20),
		ExpandOnPaste: ExpandAsk,
		Themes:        make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "background = %s\n", theme.FormatColor(c.Background))
	fmt.Fprintf(&sb, "foreground = %s\n", theme.FormatColor(c.Foreground))
	fmt.Fprintf(&sb, "undo_depth = %d\n", c.UndoDepth)
	fmt.Fprintf(&sb, "line_width = %d\n", c.LineWidth)
	fmt.Fprintf(&sb, "paste_offset = %d,%d\n", c.PasteOffset.X, c.PasteOffset.Y)
	fmt.Fprintf(&sb, "expand_on_paste = %s\n", c.ExpandOnPaste)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// sorted for deterministic output
	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ThemeLoader returns a theme loader that also knows the themes defined in
// this config.
func (c *Config) ThemeLoader() *theme.Loader {
	l := theme.NewLoader()
	l.Extra = c.Themes
	return l
}
