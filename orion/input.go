package orion

import (
	"github.com/oliverbestmann/cadence/dpi"
)

// CursorPositionRaw returns the cursor position in physical pixels. The
// second value reports whether the cursor is inside the window, if it is
// not, the position is the last known one.
func CursorPositionRaw() (dpi.PhysicalPosition[float64], bool) {
	win := currentWindowState.Get()
	return win.CursorPos(), win.CursorIn()
}

// CursorPosition is like CursorPositionRaw, but in logical units.
func CursorPosition() (dpi.LogicalPosition[float64], bool) {
	win := currentWindowState.Get()
	return win.LogicalCursorPos(), win.CursorIn()
}

func IsFocused() bool {
	return currentWindowState.Get().Focused()
}
