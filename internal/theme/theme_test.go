package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 0xFF}, false},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"tomato", color.RGBA{255, 99, 71, 255}, false},
		{"Navy", color.RGBA{0, 0, 128, 255}, false},
		{"#123", color.RGBA{}, true},
		{"#GG0000", color.RGBA{}, true},
		{"notacolour", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if FormatColor(color.RGBA{1, 2, 3, 255}) != "#010203" || FormatColor(color.RGBA{1, 2, 3, 4}) != "#01020304" {
		t.Errorf("FormatColor mismatch")
	}
}

func TestParse(t *testing.T) {
	src := `
# comment
Name: paper
background: #FFFFFF
AntsDark: red
Bogus: #000000
`
	th, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "paper" || th.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("unexpected theme %+v", th)
	}
	if th.AntsDark != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("AntsDark = %v", th.AntsDark)
	}
	if th.CheckerDark != Default().CheckerDark {
		t.Errorf("missing keys should keep defaults")
	}
	if _, err := Parse(strings.NewReader("Foreground: #12")); err == nil {
		t.Errorf("expected an error for a bad colour")
	}
}

func TestFieldsCoverColours(t *testing.T) {
	fields := Fields(Default())
	if len(fields) == 0 || fields[0].Name != "Background" {
		t.Fatalf("fields = %+v", fields)
	}
	th := Default()
	for _, f := range Fields(Dark()) {
		if err := Set(th, f.Name, FormatColor(f.Color)); err != nil {
			t.Fatalf("Set(%s): %v", f.Name, err)
		}
	}
	th.Name = "dark"
	if *th != *Dark() {
		t.Errorf("copying fields did not reproduce the theme")
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\nBackground: #010101\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, Extra: map[string]*Theme{"dark": {Name: "override"}}}

	if th, err := l.Load(""); err != nil || th.Name != "default" {
		t.Errorf("empty name: %v %v", th, err)
	}
	if th, err := l.Load("mine"); err != nil || th.Background != (color.RGBA{1, 1, 1, 255}) {
		t.Errorf("config dir theme: %v %v", th, err)
	}
	if th, err := l.Load("dark"); err != nil || th.Name != "override" {
		t.Errorf("config themes should win over built-ins: %v %v", th, err)
	}
	if th, err := l.Load("high-contrast"); err != nil || th.Name != "high-contrast" {
		t.Errorf("built-in: %v %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Errorf("expected not found")
	}
	if len(BuiltinNames()) != 4 {
		t.Errorf("BuiltinNames = %v", BuiltinNames())
	}
}
