package config

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/pictures
background = #101010
foreground = navy
undo_depth = 12
line_width = 4
paste_offset = 5, 7
expand_on_paste = always

[notify]
save = false
copy = true

[theme.my_custom_theme]
Background = #111111
AntsDark: #FF0000
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/pictures" {
		t.Errorf("Expected save_dir '/tmp/pictures', got '%s'", cfg.SaveDir)
	}
	if cfg.Background != (color.RGBA{16, 16, 16, 255}) || cfg.Foreground != (color.RGBA{0, 0, 128, 255}) {
		t.Errorf("colours = %v %v", cfg.Background, cfg.Foreground)
	}
	if cfg.UndoDepth != 12 || cfg.LineWidth != 4 {
		t.Errorf("undo_depth %d line_width %d", cfg.UndoDepth, cfg.LineWidth)
	}
	if cfg.PasteOffset != image.Pt(5, 7) {
		t.Errorf("paste_offset = %v", cfg.PasteOffset)
	}
	if cfg.ExpandOnPaste != ExpandAlways {
		t.Errorf("expand_on_paste = %q", cfg.ExpandOnPaste)
	}
	if cfg.Notify.Save || !cfg.Notify.Copy {
		t.Errorf("notify = %+v", cfg.Notify)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background != (color.RGBA{0x11, 0x11, 0x11, 255}) || th.AntsDark != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Unexpected theme colours: %+v", th)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.UndoDepth != 50 || cfg.PasteOffset != image.Pt(20, 20) || cfg.ExpandOnPaste != ExpandAsk {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad depth":   "undo_depth = 0",
		"bad offset":  "paste_offset = 3",
		"neg offset":  "paste_offset = -1,2",
		"bad policy":  "expand_on_paste = sometimes",
		"bad colour":  "background = #12",
		"bad notify":  "[notify]\nsave = maybe",
		"theme color": "[theme.x]\nBackground: #zz",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(input)); err == nil {
				t.Errorf("expected an error for %q", input)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/pictures
background = #FAFAFA80
paste_offset = 0,40
expand_on_paste = never

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme || cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Background != cfg2.Background || cfg.PasteOffset != cfg2.PasteOffset || cfg.ExpandOnPaste != cfg2.ExpandOnPaste {
		t.Errorf("editor settings mismatch")
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	t1, t2 := cfg.Themes["custom"], cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	l := NewLoader("v1.0.0", "")
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("expected no config, got %q", p)
	}
	cfg, err := l.Load()
	if err != nil || cfg.UndoDepth != 50 {
		t.Fatalf("defaults: %+v %v", cfg, err)
	}

	cfg.UndoDepth = 7
	if err := Save(cfg, DefaultPath()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := l.GetConfigPath(); got != filepath.Join(home, ".config", "easel", "config.rc") {
		t.Fatalf("path = %q", got)
	}
	loaded, err := l.Load()
	if err != nil || loaded.UndoDepth != 7 {
		t.Fatalf("reload: %+v %v", loaded, err)
	}

	override := filepath.Join(t.TempDir(), "other.rc")
	if err := os.WriteFile(override, []byte("undo_depth = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewLoader("v1.0.0", override).GetConfigPath(); got != override {
		t.Fatalf("override ignored: %q", got)
	}
}

func TestThemeLoaderSeesConfigThemes(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[theme.mine]\nBackground: #010203\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	th, err := cfg.ThemeLoader().Load("mine")
	if err != nil || th.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("Load(mine) = %+v, %v", th, err)
	}
}
