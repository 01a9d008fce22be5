// Package timestep runs simulation updates at a fixed rate, independent
// of how often the host loop renders a frame.
package timestep

import (
	"fmt"
	"log/slog"
	"time"
)

type SchedulerOptions struct {
	// Clock to read the current time from. Defaults to SystemClock.
	Clock Clock

	// Maximum number of updates a single call to Update performs. If more
	// updates are pending, the surplus is dropped. Zero means no limit.
	MaxCatchUp int
}

// Scheduler accumulates elapsed time and performs one update for each full
// interval that has passed. A Scheduler must not be copied, use Clone.
//
// Use NewScheduler to create a Scheduler. The zero value runs at DefaultRate
// using the SystemClock and starts measuring time on first use.
type Scheduler struct {
	noCopy noCopy

	clock      Clock
	maxCatchUp int

	interval time.Duration
	previous time.Time

	// unprocessed time, always less than interval after a call to Update.
	lag time.Duration

	updates uint64
	dropped uint64
}

func NewScheduler(rate UpdateRate, opts *SchedulerOptions) (*Scheduler, error) {
	if opts == nil {
		opts = &SchedulerOptions{}
	}

	interval, err := rate.ToInterval()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}

	return &Scheduler{
		clock:      clock,
		maxCatchUp: max(opts.MaxCatchUp, 0),
		interval:   interval,
		previous:   clock.Now(),
	}, nil
}

// Update calls fn once for every full interval that elapsed since the
// previous call. It might call fn multiple times or not at all.
//
// The returned delta is in range [0, 1) and can be used to interpolate
// rendering between two updates. A value close to zero means that an update
// just happened, a value close to one means that the next update is due soon:
//
//	position := state.Position.Add(state.Velocity.MulScalar(delta))
func (s *Scheduler) Update(fn func()) float64 {
	s.ensureInitialized()

	now := s.clock.Now()
	elapsed := now.Sub(s.previous)
	s.previous = now

	if elapsed > 0 {
		s.lag += elapsed
	}

	var steps int
	for s.lag >= s.interval {
		if s.maxCatchUp > 0 && steps >= s.maxCatchUp {
			s.drop()
			break
		}

		fn()

		s.lag -= s.interval
		s.updates += 1
		steps += 1
	}

	return s.Delta()
}

func (s *Scheduler) drop() {
	pending := s.lag / s.interval
	s.lag -= pending * s.interval
	s.dropped += uint64(pending)

	slog.Warn("Scheduler is falling behind, dropping updates",
		slog.Int("dropped", int(pending)),
		slog.Int("maxCatchUp", s.maxCatchUp),
		slog.Duration("interval", s.interval),
	)
}

// Delta returns the progress towards the next update in range [0, 1).
func (s *Scheduler) Delta() float64 {
	if s.interval == 0 {
		return 0
	}

	return float64(s.lag) / float64(s.interval)
}

// WillUpdate reports whether a call to Update right now would perform at
// least one update. It does not modify the scheduler.
func (s *Scheduler) WillUpdate() bool {
	s.ensureInitialized()

	elapsed := max(s.clock.Now().Sub(s.previous), 0)
	return s.lag+elapsed >= s.interval
}

// Reset discards any unprocessed time and restarts measuring from now,
// e.g. after the host loop was paused.
func (s *Scheduler) Reset() {
	s.ensureInitialized()

	s.previous = s.clock.Now()
	s.lag = 0
}

func (s *Scheduler) Interval() time.Duration {
	s.ensureInitialized()

	return s.interval
}

// ensureInitialized makes the zero value usable.
func (s *Scheduler) ensureInitialized() {
	if s.clock == nil {
		s.clock = SystemClock
	}

	if s.interval == 0 {
		// DefaultRate is always valid
		s.interval, _ = DefaultRate.ToInterval()
		s.previous = s.clock.Now()
	}
}

func (s *Scheduler) Lag() time.Duration {
	return s.lag
}

// Updates returns the number of updates performed so far.
func (s *Scheduler) Updates() uint64 {
	return s.updates
}

// Dropped returns the number of updates skipped because of MaxCatchUp.
func (s *Scheduler) Dropped() uint64 {
	return s.dropped
}

// Clone returns an independent copy of the scheduler.
func (s *Scheduler) Clone() *Scheduler {
	return &Scheduler{
		clock:      s.clock,
		maxCatchUp: s.maxCatchUp,
		interval:   s.interval,
		previous:   s.previous,
		lag:        s.lag,
		updates:    s.updates,
		dropped:    s.dropped,
	}
}

// noCopy makes go vet complain about copies of a Scheduler.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
