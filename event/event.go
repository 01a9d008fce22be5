// Package event defines the raw window events a platform event pump delivers.
package event

import (
	"github.com/oliverbestmann/cadence/dpi"
)

// WindowID is an opaque token identifying a platform window.
type WindowID uint64

//go:generate go tool stringer -type=Kind -trimprefix=Kind

type Kind uint8

const (
	KindUnknown Kind = iota
	KindCursorEntered
	KindCursorLeft
	KindCursorMoved
	KindResized
	KindFocused
	KindCloseRequested
	KindMoved
	KindRedrawRequested
)

type Event struct {
	Kind Kind

	// identity of the window this event belongs to, only valid if HasWindow is set.
	// Events without a window are not targeted at a specific window (device events).
	Window    WindowID
	HasWindow bool

	// payload for KindCursorMoved and KindMoved
	Position dpi.PhysicalPosition[float64]

	// payload for KindResized
	Size dpi.PhysicalSize[uint32]

	// payload for KindFocused
	Focused bool
}

// WindowID returns the identity of the window this event belongs to.
func (e Event) WindowID() (WindowID, bool) {
	return e.Window, e.HasWindow
}

func forWindow(id WindowID, kind Kind) Event {
	return Event{
		Kind:      kind,
		Window:    id,
		HasWindow: true,
	}
}

func CursorEntered(id WindowID) Event {
	return forWindow(id, KindCursorEntered)
}

func CursorLeft(id WindowID) Event {
	return forWindow(id, KindCursorLeft)
}

func CursorMoved(id WindowID, position dpi.PhysicalPosition[float64]) Event {
	ev := forWindow(id, KindCursorMoved)
	ev.Position = position
	return ev
}

func Resized(id WindowID, size dpi.PhysicalSize[uint32]) Event {
	ev := forWindow(id, KindResized)
	ev.Size = size
	return ev
}

func Focused(id WindowID, focused bool) Event {
	ev := forWindow(id, KindFocused)
	ev.Focused = focused
	return ev
}

func CloseRequested(id WindowID) Event {
	return forWindow(id, KindCloseRequested)
}

func Moved(id WindowID, position dpi.PhysicalPosition[float64]) Event {
	ev := forWindow(id, KindMoved)
	ev.Position = position
	return ev
}

func RedrawRequested(id WindowID) Event {
	return forWindow(id, KindRedrawRequested)
}

// Device creates an event that is not associated with any window.
func Device(kind Kind) Event {
	return Event{Kind: kind}
}
