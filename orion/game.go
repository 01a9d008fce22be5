package orion

import "github.com/oliverbestmann/cadence/dpi"

type Game interface {
	Initialize() error

	// Update advances the simulation by exactly one fixed interval.
	Update() error

	// Draw renders the current state. delta is the progress towards the
	// next update in range [0, 1) and can be used to interpolate motion.
	Draw(delta float64)
}

// Resizer can be implemented by a Game to be informed about
// changes to the size of the window.
type Resizer interface {
	Resize(size dpi.PhysicalSize[uint32])
}

// DefaultGame can be embedded to get a no-op Initialize method.
type DefaultGame struct{}

func (DefaultGame) Initialize() error {
	return nil
}
