// Package window runs the editor in a shiny window. It turns mouse and
// keyboard events into editor operations and repaints the canvas, toolbar
// and marching ants.
package window

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/editor"
	"github.com/example/easel/internal/notify"
	"github.com/example/easel/internal/render"
	"github.com/example/easel/internal/theme"
)

const (
	minZoom = 0.1
	maxZoom = 16
)

// events is the part of screen.Window the event loop needs.
type events interface {
	NextEvent() interface{}
	Send(event interface{})
}

// tickEvent advances the marching ants.
type tickEvent struct{}

// Window is an editor window. Create one with New and start it with Run.
type Window struct {
	ed       *editor.State
	output   string
	theme    *theme.Theme
	expand   config.ExpandPolicy
	notifier *notify.Notifier
	title    string

	shortcuts map[KeyShortcut]action
	tools     []editor.Tool

	size     image.Point
	layout   render.Layout
	zoom     float64 // 0 fits the canvas to the window
	phase    int
	backdrop render.Backdrop

	down      bool
	button    editor.Button
	hoverTool int
	prompt    string
	message   string
	until     time.Time
	closed    bool

	events    events
	paint     func()
	animating atomic.Bool
}

// Option configures a Window.
type Option func(*Window)

// WithOutput sets the file written by Ctrl+S.
func WithOutput(path string) Option { return func(w *Window) { w.output = path } }

// WithTheme sets the chrome colours.
func WithTheme(t *theme.Theme) Option { return func(w *Window) { w.theme = t } }

// WithExpandPolicy decides how pastes larger than the canvas are handled.
func WithExpandPolicy(p config.ExpandPolicy) Option { return func(w *Window) { w.expand = p } }

// WithNotifier reports saves and copies on the desktop.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.notifier = n } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(w *Window) { w.title = title } }

// New creates a window around ed. The editor's confirm prompt is replaced
// by one that follows the expand policy.
func New(ed *editor.State, opts ...Option) *Window {
	w := &Window{
		ed:        ed,
		output:    "out.png",
		theme:     theme.Default(),
		expand:    config.ExpandAsk,
		title:     "easel",
		shortcuts: defaultShortcuts(),
		tools:     editor.Tools(),
		hoverTool: -1,
		paint:     func() {},
	}
	for _, o := range opts {
		o(w)
	}
	ed.SetConfirm(w.confirm)
	sz := ed.Size()
	w.resize(image.Pt(max(sz.X+render.ToolbarWidth, 480), max(sz.Y+render.StatusHeight, 480)))
	return w
}

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

// Main opens the window on s and processes events until it closes.
func (w *Window) Main(s screen.Screen) {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.size.X, Height: w.size.Y, Title: w.title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer win.Release()

	w.events = win
	w.paint = func() { w.draw(s, win) }

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(render.AntInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if w.animating.Load() {
					win.Send(tickEvent{})
				}
			case <-done:
				return
			}
		}
	}()

	for !w.closed {
		w.handle(win.NextEvent())
	}
}

// handle processes one event and repaints when it changed anything.
func (w *Window) handle(e interface{}) {
	dirty := false
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			w.closed = true
			return
		}
	case size.Event:
		w.resize(image.Pt(e.WidthPx, e.HeightPx))
		dirty = true
	case paint.Event:
		w.paint()
	case tickEvent:
		if w.ed.Animating() {
			w.phase = render.NextPhase(w.phase)
			dirty = true
		}
	default:
		dirty = w.handleInput(e)
	}
	w.animating.Store(w.ed.Animating())
	if dirty && !w.closed {
		w.paint()
	}
}

func (w *Window) resize(sz image.Point) {
	w.size = sz
	w.layout = render.NewLayout(sz, len(w.tools), len(Palette), len(LineWidths))
}

// zoomBy scales the current zoom, leaving fit mode.
func (w *Window) zoomBy(f float64) {
	z := w.viewport().Zoom * f
	w.zoom = math.Max(minZoom, math.Min(z, maxZoom))
}

// viewport centres the canvas in the space right of the toolbar.
func (w *Window) viewport() render.Viewport {
	area := w.layout.Canvas
	sz := w.ed.Size()
	z := w.zoom
	if z == 0 {
		z = render.FitZoom(sz, area)
	}
	dx := int(float64(sz.X) * z)
	dy := int(float64(sz.Y) * z)
	x := area.Min.X + max((area.Dx()-dx)/2, 0)
	y := area.Min.Y + max((area.Dy()-dy)/2, 0)
	return render.Viewport{Origin: image.Pt(x, y), Zoom: z}
}

func (w *Window) frame() render.Frame {
	outline, closed := w.ed.Outline()
	names := make([]string, len(w.tools))
	active := -1
	for i, t := range w.tools {
		names[i] = t.Name()
		if t == w.ed.Tool() {
			active = i
		}
	}
	vp := w.viewport()
	status := fmt.Sprintf("%dx%d  %s  %s  %d%%", w.ed.Size().X, w.ed.Size().Y, w.ed.Tool().Name(), w.ed.Phase(), int(vp.Zoom*100+0.5))
	if w.message != "" && time.Now().Before(w.until) {
		status = w.message
	}
	return render.Frame{
		Size:       w.size,
		View:       w.ed.View(),
		Viewport:   vp,
		Outline:    outline,
		Closed:     closed,
		Phase:      w.phase,
		Tools:      names,
		ActiveTool: active,
		HoverTool:  w.hoverTool,
		Palette:    Palette,
		Foreground: w.ed.Foreground(),
		Background: w.ed.Background(),
		Widths:     LineWidths,
		LineWidth:  w.ed.LineWidth(),
		ShowWidths: w.ed.Tool().SupportsLineWidth(),
		Status:     status,
		Prompt:     w.prompt,
		Theme:      w.theme,
	}
}

func (w *Window) draw(s screen.Screen, win screen.Window) {
	b, err := s.NewBuffer(w.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	render.Draw(b.RGBA(), w.frame(), w.layout, &w.backdrop)
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

func (w *Window) say(format string, args ...interface{}) {
	w.message = fmt.Sprintf(format, args...)
	w.until = time.Now().Add(2 * time.Second)
	log.Print(w.message)
}

// confirm answers the editor's canvas expansion question according to the
// expand policy, asking in the window when the policy is ask.
func (w *Window) confirm(prompt string) bool {
	switch w.expand {
	case config.ExpandAlways:
		return true
	case config.ExpandNever:
		return false
	}
	if w.events == nil {
		return false
	}
	w.prompt = prompt
	defer func() { w.prompt = "" }()
	w.paint()
	for {
		switch e := w.events.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				w.closed = true
				return false
			}
		case size.Event:
			w.resize(image.Pt(e.WidthPx, e.HeightPx))
			w.paint()
		case paint.Event:
			w.paint()
		default:
			if answer, ok := promptAnswer(e); ok {
				return answer
			}
		}
	}
}

func (w *Window) copy() {
	if !w.ed.Copy() {
		return
	}
	img := w.ed.ClipboardImage()
	w.notifier.Copy(img)
	w.say("copied %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
}

func (w *Window) save() {
	w.ed.Commit(true)
	if err := savePNG(w.output, w.ed.Canvas()); err != nil {
		log.Printf("save: %v", err)
		w.say("save failed: %v", err)
		return
	}
	w.notifier.Save(w.output)
	w.say("saved %s", w.output)
}

func savePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return err
	}
	return out.Close()
}
