// Package glimpse is the boundary to the platform window and its event pump.
package glimpse

import (
	"fmt"

	"github.com/oliverbestmann/cadence/dpi"
	"github.com/oliverbestmann/cadence/event"
)

type Window interface {
	// InnerSize returns the size of the drawable area in physical pixels.
	InnerSize() dpi.PhysicalSize[uint32]

	ScaleFactor() float64

	ID() event.WindowID

	// Run calls frame once per iteration of the platform loop with all
	// events received since the previous iteration. Run returns the first
	// error returned by frame.
	Run(frame func(events []event.Event) error) error

	Terminate()
}

// Opener creates a new platform window.
type Opener func(width, height int, title string) (Window, error)

// OpenAll opens one window per title. If any window fails to open, the
// windows opened so far are terminated again.
func OpenAll(open Opener, width, height int, titles ...string) ([]Window, error) {
	var windows []Window

	for _, title := range titles {
		win, err := open(width, height, title)
		if err != nil {
			for _, opened := range windows {
				opened.Terminate()
			}

			return nil, fmt.Errorf("open window %q: %w", title, err)
		}

		windows = append(windows, win)
	}

	return windows, nil
}
