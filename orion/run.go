package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/cadence/event"
	"github.com/oliverbestmann/cadence/glimpse"
	"github.com/oliverbestmann/cadence/state"
	"github.com/oliverbestmann/cadence/timestep"
	"github.com/pkg/profile"
)

var ErrNoGame = errors.New("Game must not be nil")
var ErrNoWindow = errors.New("OpenWindow must not be nil")

type RunGameOptions struct {
	// game to run
	Game Game

	// function to open the platform window, e.g. desktop.NewWindow
	OpenWindow glimpse.Opener

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// how often Game.Update is called. Defaults to 60 times per second.
	UpdateRate timestep.UpdateRate

	// maximum number of updates per frame, see timestep.SchedulerOptions
	MaxCatchUp int

	// maximum number of frames per second. Defaults to 60,
	// a negative value disables the limit.
	MaxFPS int

	// clock used by the update scheduler and the frame limit,
	// defaults to timestep.SystemClock
	Clock timestep.Clock

	// write a cpu profile to the working directory
	Profile bool

	// record frame timings and log frame statistics
	Debug bool
}

// RunGame opens a window and runs the game until the window is asked to close.
func RunGame(opts RunGameOptions) error {
	game := opts.Game
	if game == nil {
		return ErrNoGame
	}

	if opts.OpenWindow == nil {
		return ErrNoWindow
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Orion"
	}

	if opts.MaxFPS == 0 {
		opts.MaxFPS = 60
	}

	if opts.Clock == nil {
		opts.Clock = timestep.SystemClock
	}

	scheduler, err := timestep.NewScheduler(opts.UpdateRate, &timestep.SchedulerOptions{
		Clock:      opts.Clock,
		MaxCatchUp: opts.MaxCatchUp,
	})
	if err != nil {
		return fmt.Errorf("configure update rate: %w", err)
	}

	if opts.Profile {
		slog.Info("Start cpu profiling")
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	DebugOverlay.Enable(opts.Debug)

	// create a new window (or canvas)
	win, err := opts.OpenWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	loopState := &LoopState{
		Window:    win,
		Game:      game,
		State:     state.NewWindow(win),
		Scheduler: scheduler,
		pacer:     newFramePacer(opts.Clock, opts.MaxFPS),
	}

	currentWindow.set(win)
	currentWindowState.set(loopState.State)
	currentScheduler.set(scheduler)

	defer currentWindow.reset()
	defer currentWindowState.reset()
	defer currentScheduler.reset()

	slog.Info("Starting game loop",
		slog.String("updateRate", opts.UpdateRate.String()),
		slog.Duration("interval", scheduler.Interval()),
		slog.Int("maxFPS", opts.MaxFPS),
	)

	err = win.Run(func(events []event.Event) error {
		return loopOnce(loopState, events)
	})

	if DebugOverlay.Enabled() {
		slog.Debug("Frame report\n" + DebugOverlay.Report())
	}

	if errors.Is(err, errQuit) {
		return nil
	}

	return err
}
