package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/example/easel/internal/clipboard"
	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/editor"
)

// applyCmd runs a script of editing operations without a window.
type applyCmd struct {
	*root
	fs            *flag.FlagSet
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
	expand        bool
	steps         []step
}

func (a *applyCmd) FlagSet() *flag.FlagSet { return a.fs }

func parseApplyCmd(args []string, r *root) (*applyCmd, error) {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	a := &applyCmd{root: r, fs: fs}
	fs.Usage = usageFunc(a)
	expandDefault := false
	if r != nil && r.config != nil {
		expandDefault = r.config.ExpandOnPaste == config.ExpandAlways
	}
	fs.StringVar(&a.file, "file", "", "input image file")
	fs.StringVar(&a.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&a.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&a.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&a.expand, "expand", expandDefault, "grow the canvas when a paste does not fit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 {
		return nil, &UsageError{of: a}
	}
	steps, err := parseScript(fs.Args())
	if err != nil {
		return nil, err
	}
	a.steps = steps
	if a.fromClipboard && a.file != "" {
		return nil, fmt.Errorf("-file and -from-clipboard cannot be combined")
	}
	if a.output == "" {
		a.output = a.file
	}
	if !a.fromClipboard && a.file == "" {
		return nil, fmt.Errorf("input file is required")
	}
	if a.output == "" && !a.toClipboard {
		return nil, fmt.Errorf("output file is required when reading from the clipboard")
	}
	return a, nil
}

func (a *applyCmd) Run() error {
	var (
		src image.Image
		err error
	)
	if a.fromClipboard {
		src, err = clipboard.ReadImage()
		if err != nil {
			return fmt.Errorf("read clipboard image: %w", err)
		}
	} else if src, err = loadImage(a.file); err != nil {
		return err
	}
	expand := a.expand
	ed, err := a.newEditor(src, editor.WithConfirm(func(string) bool { return expand }))
	if err != nil {
		return err
	}
	if err := runScript(ed, a.steps); err != nil {
		return err
	}
	return a.finish(ed)
}

// finish commits a floating selection and writes the result.
func (a *applyCmd) finish(ed *editor.State) error {
	ed.Commit(true)
	img := ed.Canvas()
	if a.output != "" {
		if err := saveImage(a.output, img); err != nil {
			return err
		}
		saved := a.output
		if abs, err := filepath.Abs(a.output); err == nil {
			saved = abs
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", saved)
		a.notifier.Save(saved)
	}
	if a.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy image to clipboard: %w", err)
		}
		fmt.Fprintf(os.Stderr, "copied %dx%d image to clipboard\n", img.Bounds().Dx(), img.Bounds().Dy())
		a.notifier.Copy(img)
	}
	return nil
}
