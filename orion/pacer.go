package orion

import (
	"time"

	"github.com/oliverbestmann/cadence/timestep"
)

// Sleeper can be implemented by a timestep.Clock to control how the
// frame pacer waits. Clocks without it use time.Sleep.
type Sleeper interface {
	Sleep(d time.Duration)
}

// framePacer limits how often the host loop runs a frame.
type framePacer struct {
	clock         timestep.Clock
	frameDuration time.Duration

	// earliest start of the next frame
	next time.Time
}

func newFramePacer(clock timestep.Clock, maxFPS int) *framePacer {
	if maxFPS <= 0 {
		return nil
	}

	return &framePacer{
		clock:         clock,
		frameDuration: time.Second / time.Duration(maxFPS),
	}
}

// wait blocks until the next frame is due. A nil pacer does not wait.
func (p *framePacer) wait() {
	if p == nil {
		return
	}

	now := p.clock.Now()

	if !p.next.IsZero() {
		if remaining := p.next.Sub(now); remaining > 0 {
			p.sleep(remaining)
			now = p.next
		}
	}

	p.next = now.Add(p.frameDuration)
}

func (p *framePacer) sleep(d time.Duration) {
	if sleeper, ok := p.clock.(Sleeper); ok {
		sleeper.Sleep(d)
		return
	}

	time.Sleep(d)
}
