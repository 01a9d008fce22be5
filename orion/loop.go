package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/cadence/dpi"
	"github.com/oliverbestmann/cadence/event"
	"github.com/oliverbestmann/cadence/glimpse"
	"github.com/oliverbestmann/cadence/state"
	"github.com/oliverbestmann/cadence/timestep"
)

// errQuit stops the platform loop after the window was asked to close.
var errQuit = errors.New("quit")

type LoopState struct {
	Window      glimpse.Window
	Game        Game
	State       *state.Window
	Scheduler   *timestep.Scheduler
	Initialized bool

	// size the game was last informed about
	SurfaceSize dpi.PhysicalSize[uint32]

	// interpolation delta of the most recent frame
	Delta float64

	Frames FrameTimes

	// limits the frame rate, nil if unlimited
	pacer *framePacer
}

func loopOnce(loopState *LoopState, events []event.Event) error {
	DebugOverlay.StartFrame()

	for _, ev := range events {
		loopState.State.Event(ev)
	}

	if loopState.State.ShouldClose() {
		slog.Info("Window close requested, stopping game loop")
		return errQuit
	}

	// inform the game about a new surface size
	surfaceSize := loopState.State.Size()
	if loopState.SurfaceSize != surfaceSize {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceSize.Width)),
			slog.Int("height", int(surfaceSize.Height)),
		)

		if resizer, ok := loopState.Game.(Resizer); ok {
			resizer.Resize(surfaceSize)
		}

		loopState.SurfaceSize = surfaceSize
	}

	// run game.Initialize and game.Update
	err := performGameUpdate(loopState)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	DebugOverlay.StartGameDraw()
	loopState.Game.Draw(loopState.Delta)

	DebugOverlay.EndFrame()

	if loopState.Frames.Tick() && DebugOverlay.Enabled() {
		slog.Debug("Frame stats",
			slog.Float64("fps", loopState.Frames.FPS()),
			slog.Duration("maxFrameTime", loopState.Frames.MaxDuration),
			slog.Uint64("updates", loopState.Scheduler.Updates()),
			slog.Uint64("droppedUpdates", loopState.Scheduler.Dropped()),
		)
	}

	loopState.pacer.wait()

	return nil
}

func performGameUpdate(loopState *LoopState) error {
	DebugOverlay.StartGameUpdate()

	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}

		// do not count the time spent initializing as simulation time
		loopState.Scheduler.Reset()
	}

	var err error

	loopState.Delta = loopState.Scheduler.Update(func() {
		if err != nil {
			return
		}

		err = loopState.Game.Update()
	})

	return err
}
