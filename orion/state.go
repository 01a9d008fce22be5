package orion

import (
	"github.com/oliverbestmann/cadence/glimpse"
	"github.com/oliverbestmann/cadence/state"
	"github.com/oliverbestmann/cadence/timestep"
)

var currentWindow global[glimpse.Window]
var currentWindowState global[*state.Window]
var currentScheduler global[*timestep.Scheduler]

type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) reset() {
	var tZero T
	g.value = tZero
	g.hasValue = false
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called after RunGame")
	}

	return g.value
}

// CurrentWindow exposes the platform window the game is running in.
func CurrentWindow() glimpse.Window {
	return currentWindow.Get()
}

// WindowState exposes the tracked state of the current window, e.g. its
// size, focus and cursor position.
func WindowState() *state.Window {
	return currentWindowState.Get()
}

// WillUpdate reports whether the next frame will run at least one update.
func WillUpdate() bool {
	return currentScheduler.Get().WillUpdate()
}
