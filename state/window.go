// Package state keeps track of window state derived from a stream of events.
package state

import (
	"log/slog"

	"github.com/oliverbestmann/cadence/dpi"
	"github.com/oliverbestmann/cadence/event"
)

// Source is the live window a Window is initialized from.
type Source interface {
	InnerSize() dpi.PhysicalSize[uint32]
	ScaleFactor() float64
	ID() event.WindowID
}

// Window is a snapshot of a windows state. It is updated by passing every
// event of the platform event loop to Event. Events belonging to other
// windows are ignored.
//
// The zero value is ready to use. It binds itself to the window of the
// first event it receives. A Window must not be copied, use Clone.
type Window struct {
	noCopy noCopy

	size   dpi.PhysicalSize[uint32]
	aspect float64

	focused     bool
	shouldClose bool

	cursorIn  bool
	cursorPos dpi.PhysicalPosition[float64]

	scaleFactor float64

	binding binding
}

// NewWindow creates a Window bound to the given source window.
func NewWindow(source Source) *Window {
	size := source.InnerSize()

	return &Window{
		size:        size,
		aspect:      size.Aspect(),
		scaleFactor: source.ScaleFactor(),
		binding:     boundTo(source.ID()),
	}
}

// Event applies the given event if it belongs to this window.
func (w *Window) Event(ev event.Event) {
	if !w.filter(ev) {
		return
	}

	switch ev.Kind {
	case event.KindCursorEntered:
		w.cursorIn = true

	case event.KindCursorLeft:
		w.cursorIn = false

	case event.KindCursorMoved:
		w.cursorPos = ev.Position

	case event.KindResized:
		slog.Debug("Window resized",
			slog.Int("width", int(ev.Size.Width)),
			slog.Int("height", int(ev.Size.Height)),
		)

		w.size = ev.Size
		w.aspect = ev.Size.Aspect()

	case event.KindFocused:
		w.focused = ev.Focused

	case event.KindCloseRequested:
		w.shouldClose = true
	}
}

func (w *Window) filter(ev event.Event) bool {
	id, ok := ev.WindowID()
	if !ok {
		return false
	}

	return w.binding.accept(id)
}

// Size is the inner size of the window in physical pixels.
func (w *Window) Size() dpi.PhysicalSize[uint32] {
	return w.size
}

// Aspect is width / height of the window, or zero if the height is zero.
func (w *Window) Aspect() float64 {
	return w.aspect
}

func (w *Window) Focused() bool {
	return w.focused
}

// ShouldClose reports whether closing the window was requested.
// Once set, it stays set.
func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// CursorIn reports whether the cursor is inside the window.
func (w *Window) CursorIn() bool {
	return w.cursorIn
}

// CursorPos is the last known cursor position. It might be stale if the
// cursor is not inside the window.
func (w *Window) CursorPos() dpi.PhysicalPosition[float64] {
	return w.cursorPos
}

func (w *Window) ScaleFactor() float64 {
	return w.scaleFactor
}

// ID returns the identity of the tracked window. It returns false if
// no event has been received yet by a zero value Window.
func (w *Window) ID() (event.WindowID, bool) {
	return w.binding.get()
}

func (w *Window) LogicalSize() dpi.LogicalSize[float64] {
	return w.size.ToLogical(w.scaleFactor)
}

func (w *Window) LogicalCursorPos() dpi.LogicalPosition[float64] {
	return w.cursorPos.ToLogical(w.scaleFactor)
}

// Clone returns an independent copy of the window state.
func (w *Window) Clone() *Window {
	return &Window{
		size:        w.size,
		aspect:      w.aspect,
		focused:     w.focused,
		shouldClose: w.shouldClose,
		cursorIn:    w.cursorIn,
		cursorPos:   w.cursorPos,
		scaleFactor: w.scaleFactor,
		binding:     w.binding,
	}
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
