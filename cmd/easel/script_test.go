package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/editor"
)

func testRoot() *root {
	cfg := config.New()
	return &root{program: "easel", config: cfg}
}

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 7), uint8(y * 5), uint8(x ^ y), 255})
		}
	}
	return img
}

func TestParseScript(t *testing.T) {
	steps, err := parseScript(strings.Fields("select 1 2 30 40 lift drag -5 3.5 rotate-cw commit"))
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	var got []string
	for _, s := range steps {
		got = append(got, s.String())
	}
	want := "select 1 2 30 40|lift|drag -5 3.5|rotate-cw|commit"
	if strings.Join(got, "|") != want {
		t.Fatalf("steps = %q", strings.Join(got, "|"))
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := map[string]string{
		"unknown op":     "blur 3",
		"short select":   "select 1 2 3",
		"extra args":     "lift 4",
		"short lasso":    "lasso 0 0 5 5",
		"odd lasso":      "lasso 0 0 5 5 9 9 1",
		"leading number": "4 lift",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseScript(strings.Fields(input)); err == nil {
				t.Errorf("expected an error for %q", input)
			}
		})
	}
}

func TestRunScriptMovesSelection(t *testing.T) {
	src := checker(50, 40)
	ed, err := editor.New(src)
	if err != nil {
		t.Fatal(err)
	}
	steps, err := parseScript(strings.Fields("select 0 0 10 10 drag 30 20 commit"))
	if err != nil {
		t.Fatal(err)
	}
	if err := runScript(ed, steps); err != nil {
		t.Fatalf("runScript: %v", err)
	}
	c := ed.Canvas()
	if c.RGBAAt(35, 25) != src.RGBAAt(5, 5) {
		t.Fatalf("moved pixel = %v, want %v", c.RGBAAt(35, 25), src.RGBAAt(5, 5))
	}
	if c.RGBAAt(5, 5) != ed.Background() {
		t.Fatalf("source area not cleared")
	}
	if ed.History().Len() != 1 {
		t.Fatalf("history = %d, want one snapshot for the move", ed.History().Len())
	}
}

func TestRunScriptReportsNoOps(t *testing.T) {
	ed, err := editor.New(checker(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	steps, _ := parseScript([]string{"commit"})
	err = runScript(ed, steps)
	if !errors.Is(err, errNoEffect) || !strings.Contains(err.Error(), "step 1 (commit)") {
		t.Fatalf("err = %v", err)
	}
	steps, _ = parseScript(strings.Fields("scale 0 5"))
	if err := runScript(ed, steps); err == nil {
		t.Fatalf("scale to zero width should fail")
	}
}

func TestApplyWritesResult(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	if err := saveImage(in, checker(20, 10)); err != nil {
		t.Fatal(err)
	}
	cmd, err := parseApplyCmd([]string{"-file", in, "-output", out, "select", "0", "0", "10", "10", "lift", "rotate-cw"}, testRoot())
	if err != nil {
		t.Fatalf("parseApplyCmd: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	img, err := loadImage(out)
	if err != nil {
		t.Fatalf("loadImage: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestApplyFlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"lift"}, "input file is required"},
		{"clipboard without output", []string{"-from-clipboard", "lift"}, "output file is required"},
		{"both inputs", []string{"-file", "a.png", "-from-clipboard", "lift"}, "cannot be combined"},
		{"bad op", []string{"-file", "a.png", "sharpen"}, "unknown operation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseApplyCmd(tt.args, testRoot())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
	var uerr *UsageError
	if _, err := parseApplyCmd([]string{"-file", "a.png"}, testRoot()); !errors.As(err, &uerr) {
		t.Fatalf("missing operations should be a usage error, got %v", err)
	}
}

func TestSaveImageFormats(t *testing.T) {
	dir := t.TempDir()
	src := checker(8, 6)
	for _, name := range []string{"a.png", "a.bmp", "a.tiff", "a.jpg"} {
		path := filepath.Join(dir, name)
		if err := saveImage(path, src); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		img, err := loadImage(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if img.Bounds().Size() != image.Pt(8, 6) {
			t.Fatalf("%s bounds = %v", name, img.Bounds())
		}
	}
}

func TestInteractiveSession(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "session.png")
	var stdout, stderr bytes.Buffer
	r := testRoot()
	r.config.ExpandOnPaste = config.ExpandAlways
	cmd, err := parseInteractiveCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	cmd.stdin = strings.NewReader(strings.Join([]string{
		"new 30 20",
		"select-all copy paste",
		"status",
		"bogus",
		"save " + out,
		"exit",
		"new 1 1",
	}, "\n"))
	cmd.stdout, cmd.stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(stdout.String(), "50x40 floating") {
		t.Fatalf("status output = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unknown operation") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	img, err := loadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Size() != image.Pt(50, 40) {
		t.Fatalf("saved %v", img.Bounds())
	}
	if cmd.ed.Size() != image.Pt(50, 40) {
		t.Fatalf("commands after exit ran")
	}
}

func TestInteractiveExecFlags(t *testing.T) {
	cmd, err := parseInteractiveCmd([]string{"-e", "new 12 8", "-e", "resize 20 8"}, testRoot())
	if err != nil {
		t.Fatal(err)
	}
	cmd.stdout, cmd.stderr = &bytes.Buffer{}, &bytes.Buffer{}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cmd.ed.Size() != image.Pt(20, 8) {
		t.Fatalf("size = %v", cmd.ed.Size())
	}
	bad, _ := parseInteractiveCmd([]string{"-e", "commit"}, testRoot())
	bad.stdout, bad.stderr = &bytes.Buffer{}, &bytes.Buffer{}
	if err := bad.Run(); !errors.Is(err, errNoEffect) {
		t.Fatalf("err = %v", err)
	}
}

func TestHelpTemplatesRender(t *testing.T) {
	r := testRoot()
	r.fs = newRoot().fs
	apply, _ := parseApplyCmd([]string{"-file", "x.png", "lift"}, r)
	inter, _ := parseInteractiveCmd(nil, r)
	conf, _ := parseConfigCmd(nil, r)
	edit, _ := parseEditCmd(nil, r)
	for _, h := range []HelpData{r, apply, inter, conf, edit, &versionCmd{r: r}} {
		text := (&UsageError{of: h}).Error()
		if !strings.HasPrefix(text, "Usage: easel") {
			t.Errorf("%s help = %q", h.Template(), text)
		}
	}
}

func TestMain(m *testing.M) {
	// keep tests away from a developer's real config and clipboard
	home, err := os.MkdirTemp("", "easel-home")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", home)
	os.Unsetenv("DISPLAY")
	os.Unsetenv("WAYLAND_DISPLAY")
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}
