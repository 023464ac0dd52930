//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"image"
	"sync"
	"testing"
)

func TestEnsureInitWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	initOnce = sync.Once{}
	initErr = nil
	t.Cleanup(func() {
		initOnce = sync.Once{}
		initErr = nil
	})

	err := System{}.WriteImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
	if _, err := (System{}).ReadImage(); !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay from read, got %v", err)
	}
}
