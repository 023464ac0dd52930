//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	owner        *selectionOwner
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		o := &selectionOwner{}
		if err := o.open(); err != nil {
			initErr = err
			return
		}
		owner = o
	})
	return initErr
}

// WriteImage encodes img as PNG and takes ownership of the CLIPBOARD
// selection to serve it.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	return owner.publish(data)
}

// ReadImage requests image/png from the current selection owner.
func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := owner.request()
	if err != nil {
		return nil, err
	}
	return decodePNG(data)
}

// selectionOwner answers SelectionRequest events from a hidden window.
type selectionOwner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atoms

	mu  sync.RWMutex
	png []byte
}

type atoms struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	png       xproto.Atom
	property  xproto.Atom
}

func (o *selectionOwner) open() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check()
	if err != nil {
		conn.Close()
		return err
	}
	a, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	o.conn = conn
	o.window = window
	o.atoms = a
	go o.serve()
	return nil
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "image/png", "EASEL_CLIPBOARD"}
	out := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atoms{}, fmt.Errorf("intern %s: %w", name, err)
		}
		out[i] = reply.Atom
	}
	return atoms{clipboard: out[0], targets: out[1], png: out[2], property: out[3]}, nil
}

func (o *selectionOwner) publish(data []byte) error {
	o.mu.Lock()
	o.png = append([]byte(nil), data...)
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *selectionOwner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.png = nil
			o.mu.Unlock()
		}
	}
}

func (o *selectionOwner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	o.mu.RLock()
	data := o.png
	o.mu.RUnlock()

	switch {
	case e.Target == o.atoms.targets:
		targets := []xproto.Atom{o.atoms.targets}
		if len(data) > 0 {
			targets = append(targets, o.atoms.png)
		}
		buf := make([]byte, len(targets)*4)
		for i, a := range targets {
			xgb.Put32(buf[i*4:], uint32(a))
		}
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(targets)), buf)
	case e.Target == o.atoms.png && len(data) > 0:
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, o.atoms.png, 8, uint32(len(data)), data)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

// request converts the CLIPBOARD selection to image/png through a short
// lived connection so it does not race the owner's event loop.
func (o *selectionOwner) request() ([]byte, error) {
	o.mu.RLock()
	local := o.png
	o.mu.RUnlock()
	if len(local) > 0 {
		return append([]byte(nil), local...), nil
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	err = xproto.CreateWindowChecked(conn, 0, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOnly, 0, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check()
	if err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, window)

	if err := xproto.ConvertSelectionChecked(conn, window, o.atoms.clipboard, o.atoms.png, o.atoms.property, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}
	for {
		ev, err := conn.WaitForEvent()
		if err != nil {
			return nil, err
		}
		if ev == nil {
			return nil, ErrNoImage
		}
		e, ok := ev.(xproto.SelectionNotifyEvent)
		if !ok {
			continue
		}
		if e.Property == xproto.AtomNone {
			return nil, ErrNoImage
		}
		reply, perr := xproto.GetProperty(conn, true, window, o.atoms.property, xproto.GetPropertyTypeAny, 0, (1<<31)-1).Reply()
		if perr != nil {
			return nil, perr
		}
		return append([]byte(nil), reply.Value...), nil
	}
}
