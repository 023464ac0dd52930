package main

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/example/easel/internal/editor"
	"github.com/example/easel/internal/selection"
)

// errNoEffect reports an operation whose preconditions were not met.
var errNoEffect = errors.New("nothing to do")

// step is one parsed editing operation.
type step struct {
	op   string
	args []float64
}

func (s step) String() string {
	parts := []string{s.op}
	for _, a := range s.args {
		parts = append(parts, strconv.FormatFloat(a, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}

// arity is the number of numeric arguments each operation takes. -1 means
// any even number of at least six.
var arity = map[string]int{
	"select":     4,
	"select-all": 0,
	"lasso":      -1,
	"lift":       0,
	"drag":       2,
	"commit":     0,
	"cancel":     0,
	"copy":       0,
	"cut":        0,
	"paste":      0,
	"erase":      0,
	"rotate-cw":  0,
	"rotate-ccw": 0,
	"flip-h":     0,
	"flip-v":     0,
	"undo":       0,
	"redo":       0,
	"scale":      2,
	"resize":     2,
	"clear":      0,
}

func operationNames() []string {
	names := make([]string, 0, len(arity))
	for name := range arity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseScript splits words into operations. Numbers belong to the
// operation before them.
func parseScript(words []string) ([]step, error) {
	var steps []step
	for i := 0; i < len(words); {
		op := strings.ToLower(words[i])
		n, ok := arity[op]
		if !ok {
			return nil, fmt.Errorf("unknown operation %q", words[i])
		}
		i++
		var args []float64
		for i < len(words) {
			v, err := strconv.ParseFloat(words[i], 64)
			if err != nil {
				break
			}
			args = append(args, v)
			i++
		}
		switch {
		case n == -1 && (len(args) < 6 || len(args)%2 != 0):
			return nil, fmt.Errorf("%s requires at least three x y pairs, got %d numbers", op, len(args))
		case n >= 0 && len(args) != n:
			return nil, fmt.Errorf("%s requires %d numbers, got %d", op, n, len(args))
		}
		steps = append(steps, step{op: op, args: args})
	}
	return steps, nil
}

// run applies the step to ed.
func (s step) run(ed *editor.State) error {
	a := s.args
	ok := true
	switch s.op {
	case "select":
		ok = ed.Select(image.Rect(int(a[0]), int(a[1]), int(a[2]), int(a[3])))
	case "select-all":
		ok = ed.SelectAll()
	case "lasso":
		pts := make([]selection.Point, 0, len(a)/2)
		for i := 0; i+1 < len(a); i += 2 {
			pts = append(pts, selection.Point{X: a[i], Y: a[i+1]})
		}
		ok = ed.SelectPolygon(pts)
	case "lift":
		ok = ed.Lift()
	case "drag":
		ok = dragTo(ed, selection.Point{X: a[0], Y: a[1]})
	case "commit":
		ok = ed.Commit(true)
	case "cancel":
		ok = ed.Cancel()
	case "copy":
		ok = ed.Copy()
	case "cut":
		ok = ed.Cut()
	case "paste":
		ok = ed.Paste()
	case "erase":
		ok = ed.Erase()
	case "rotate-cw":
		ok = ed.RotateCW()
	case "rotate-ccw":
		ok = ed.RotateCCW()
	case "flip-h":
		ok = ed.FlipHorizontal()
	case "flip-v":
		ok = ed.FlipVertical()
	case "undo":
		ok = ed.Undo()
	case "redo":
		ok = ed.Redo()
	case "scale":
		return ed.Scale(int(a[0]), int(a[1]))
	case "resize":
		return ed.ResizeCanvas(int(a[0]), int(a[1]))
	case "clear":
		sz := ed.Size()
		return ed.NewImage(sz.X, sz.Y)
	}
	if !ok {
		return fmt.Errorf("%s: %w", s.op, errNoEffect)
	}
	return nil
}

// dragTo moves the selection so its origin lands on p, lifting it first
// when needed.
func dragTo(ed *editor.State, p selection.Point) bool {
	if ed.Floating() == nil && !ed.Lift() {
		return false
	}
	o := ed.Selection().Origin()
	if !ed.BeginDrag(o) {
		return false
	}
	ed.DragTo(p)
	ed.EndDrag()
	return true
}

// runScript applies steps in order, stopping at the first failure.
func runScript(ed *editor.State, steps []step) error {
	for i, s := range steps {
		if err := s.run(ed); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s, err)
		}
	}
	return nil
}
