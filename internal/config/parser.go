package config

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/example/easel/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				// missing keys keep the defaults
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		// key = value, or key: value inside themes
		var key, value string
		var ok bool
		if key, value, ok = strings.Cut(line, "="); !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch {
		case current != nil:
			if err := theme.Set(current, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", section, err)
			}
		case section == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case section == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "background":
		cfg.Background, err = theme.ParseColor(value)
	case "foreground":
		cfg.Foreground, err = theme.ParseColor(value)
	case "undo_depth":
		cfg.UndoDepth, err = positiveInt(value)
	case "line_width":
		cfg.LineWidth, err = positiveInt(value)
	case "paste_offset":
		cfg.PasteOffset, err = ParsePoint(value)
	case "expand_on_paste":
		cfg.ExpandOnPaste, err = ParseExpandPolicy(value)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be at least 1, got %d", n)
	}
	return n, nil
}

// ParsePoint parses "x,y" with non-negative integers.
func ParsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("expected x,y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, err
	}
	if x < 0 || y < 0 {
		return image.Point{}, fmt.Errorf("offset must not be negative")
	}
	return image.Pt(x, y), nil
}

// ParseExpandPolicy validates an expand_on_paste value.
func ParseExpandPolicy(s string) (ExpandPolicy, error) {
	switch p := ExpandPolicy(strings.ToLower(s)); p {
	case ExpandAsk, ExpandAlways, ExpandNever:
		return p, nil
	}
	return "", fmt.Errorf("unknown policy %q, want ask, always or never", s)
}
