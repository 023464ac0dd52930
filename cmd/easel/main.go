package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/example/easel/internal/clipboard"
	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/editor"
	"github.com/example/easel/internal/notify"
	"github.com/example/easel/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string { return r.program }

func (r *root) FlagSet() *flag.FlagSet { return r.fs }

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("easel", flag.ContinueOnError),
		program:  "easel",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "colour theme ("+strings.Join(theme.BuiltinNames(), ", ")+" or a theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.activeTheme = r.loadTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "apply":
		cmd, err = parseApplyCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) loadTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("EASEL_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	t, err := r.config.ThemeLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

// newEditor creates an editor configured from the RC file.
func (r *root) newEditor(img image.Image, opts ...editor.Option) (*editor.State, error) {
	cfg := r.config
	base := []editor.Option{
		editor.WithBackground(cfg.Background),
		editor.WithForeground(cfg.Foreground),
		editor.WithUndoDepth(cfg.UndoDepth),
		editor.WithLineWidth(cfg.LineWidth),
		editor.WithPasteOffset(cfg.PasteOffset),
		editor.WithClipboard(clipboard.System{}),
	}
	return editor.New(img, append(base, opts...)...)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		case errors.Is(err, flag.ErrHelp):
			os.Exit(0)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
