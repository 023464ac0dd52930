// Package notify sends desktop notifications after saves and clipboard
// copies.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/easel/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when an image is written to disk.
	EventSave Event = "save"
	// EventCopy fires when a selection is placed on the clipboard.
	EventCopy Event = "copy"
)

// Preferences holds the title and per-event message templates. Each
// template takes one %s for the detail.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Templates: map[Event]string{
			EventSave: "Saved %s",
			EventCopy: "Copied %s to the clipboard",
		},
	}
}

// LoadPreferences applies EASEL_NOTIFY_* environment overrides to the
// defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("EASEL_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for key, event := range map[string]Event{
		"EASEL_NOTIFY_SAVE_TEXT": EventSave,
		"EASEL_NOTIFY_COPY_TEXT": EventCopy,
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	return prefs
}

// Notifier sends notifications for the enabled events. A nil Notifier is
// silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: templates},
		enabled: make(map[Event]bool),
		send:    platform.Notify,
	}
}

// Enable toggles the notifier for event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Save reports a written file, using it as the notification icon.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy reports a clipboard copy with a thumbnail of img when given.
func (n *Notifier) Copy(img image.Image) {
	if !n.enabledFor(EventCopy) {
		return
	}
	detail := "selection"
	opts := platform.Options{}
	if img != nil {
		b := img.Bounds()
		detail = fmt.Sprintf("%dx%d selection", b.Dx(), b.Dy())
		path, cleanup, err := writePreview(img)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventCopy, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, detail))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func writePreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "easel-copy-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
