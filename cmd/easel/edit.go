package main

import (
	"flag"
	"fmt"
	"image"
	"path/filepath"

	"github.com/example/easel/internal/clipboard"
	"github.com/example/easel/internal/window"
)

// editCmd opens an image in the editor window.
type editCmd struct {
	*root
	fs            *flag.FlagSet
	file          string
	output        string
	width         int
	height        int
	fromClipboard bool
}

func (e *editCmd) FlagSet() *flag.FlagSet { return e.fs }

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.file, "file", "", "image file to open")
	fs.StringVar(&e.output, "output", "", "file written on save (defaults to -file, or untitled.png)")
	fs.IntVar(&e.width, "width", 0, "width of a new blank canvas")
	fs.IntVar(&e.height, "height", 0, "height of a new blank canvas")
	fs.BoolVar(&e.fromClipboard, "from-clipboard", false, "start from the clipboard image")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.file != "" && e.fromClipboard {
		return nil, fmt.Errorf("-file and -from-clipboard cannot be combined")
	}
	if (e.width == 0) != (e.height == 0) {
		return nil, fmt.Errorf("-width and -height must be given together")
	}
	if e.output == "" {
		e.output = e.file
	}
	if e.output == "" {
		e.output = "untitled.png"
		if dir := r.config.SaveDir; dir != "" {
			e.output = filepath.Join(dir, e.output)
		}
	}
	return e, nil
}

func (e *editCmd) source() (image.Image, error) {
	switch {
	case e.file != "":
		return loadImage(e.file)
	case e.fromClipboard:
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	}
	return nil, nil
}

func (e *editCmd) Run() error {
	img, err := e.source()
	if err != nil {
		return err
	}
	ed, err := e.newEditor(img)
	if err != nil {
		return err
	}
	if img == nil && e.width > 0 {
		if err := ed.NewImage(e.width, e.height); err != nil {
			return err
		}
		ed.History().Reset()
	}
	w := window.New(ed,
		window.WithOutput(e.output),
		window.WithTheme(e.activeTheme),
		window.WithExpandPolicy(e.config.ExpandOnPaste),
		window.WithNotifier(e.notifier),
		window.WithTitle(fmt.Sprintf("%s - %s", e.program, filepath.Base(e.output))),
	)
	w.Run()
	return nil
}
