package orion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/oliverbestmann/cadence/dpi"
	"github.com/oliverbestmann/cadence/event"
	"github.com/oliverbestmann/cadence/glimpse"
	"github.com/oliverbestmann/cadence/orion"
	"github.com/oliverbestmann/cadence/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

// scriptedWindow replays a fixed list of event batches, one per frame.
type scriptedWindow struct {
	id         event.WindowID
	size       dpi.PhysicalSize[uint32]
	batches    [][]event.Event
	beforeEach func()
	terminated bool
}

var errOutOfFrames = errors.New("out of frames")

func (w *scriptedWindow) InnerSize() dpi.PhysicalSize[uint32] { return w.size }
func (w *scriptedWindow) ScaleFactor() float64                { return 1 }
func (w *scriptedWindow) ID() event.WindowID                  { return w.id }
func (w *scriptedWindow) Terminate()                          { w.terminated = true }

func (w *scriptedWindow) Run(frame func(events []event.Event) error) error {
	for _, batch := range w.batches {
		if w.beforeEach != nil {
			w.beforeEach()
		}

		if err := frame(batch); err != nil {
			return err
		}
	}

	return errOutOfFrames
}

func (w *scriptedWindow) opener() glimpse.Opener {
	return func(width, height int, title string) (glimpse.Window, error) {
		return w, nil
	}
}

type recordingGame struct {
	orion.DefaultGame

	updates     int
	deltas      []float64
	focused     []bool
	sizes       []dpi.PhysicalSize[uint32]
	failOnCount int
}

var errUpdate = errors.New("update failed")

func (g *recordingGame) Update() error {
	g.updates++

	if g.failOnCount > 0 && g.updates == g.failOnCount {
		return errUpdate
	}

	return nil
}

func (g *recordingGame) Draw(delta float64) {
	g.deltas = append(g.deltas, delta)
	g.focused = append(g.focused, orion.WindowState().Focused())
}

func (g *recordingGame) Resize(size dpi.PhysicalSize[uint32]) {
	g.sizes = append(g.sizes, size)
}

const (
	mainWindow  event.WindowID = 1
	otherWindow event.WindowID = 2
)

func newScriptedWindow(clock *manualClock, batches ...[]event.Event) *scriptedWindow {
	return &scriptedWindow{
		id:      mainWindow,
		size:    dpi.NewPhysicalSize[uint32](800, 600),
		batches: batches,
		beforeEach: func() {
			clock.now = clock.now.Add(25 * time.Millisecond)
		},
	}
}

func TestRunGame(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}

	win := newScriptedWindow(clock,
		nil,
		[]event.Event{event.Resized(mainWindow, dpi.NewPhysicalSize[uint32](640, 480))},
		[]event.Event{event.Focused(mainWindow, true)},
		[]event.Event{event.CloseRequested(otherWindow)},
		[]event.Event{event.CloseRequested(mainWindow)},
	)

	game := &recordingGame{}

	err := orion.RunGame(orion.RunGameOptions{
		Game:       game,
		OpenWindow: win.opener(),
		UpdateRate: timestep.PerSecond(50),
		Clock:      clock,
	})

	require.NoError(t, err)
	assert.True(t, win.terminated)

	assert.Equal(t, 3, game.updates)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, game.deltas)
	assert.Equal(t, []bool{false, false, true, true}, game.focused)

	assert.Equal(t, []dpi.PhysicalSize[uint32]{
		dpi.NewPhysicalSize[uint32](800, 600),
		dpi.NewPhysicalSize[uint32](640, 480),
	}, game.sizes)

	t.Run("globals are released", func(t *testing.T) {
		assert.Panics(t, func() { orion.WindowState() })
		assert.Panics(t, func() { orion.CurrentWindow() })
	})
}

func TestRunGameFramePacing(t *testing.T) {
	run := func(maxFPS int) (*manualClock, *recordingGame) {
		clock := &manualClock{now: time.Unix(0, 0)}

		// frames follow each other without any time passing in between
		win := newScriptedWindow(clock, nil, nil, nil, nil, nil,
			[]event.Event{event.CloseRequested(mainWindow)},
		)
		win.beforeEach = nil

		game := &recordingGame{}

		err := orion.RunGame(orion.RunGameOptions{
			Game:       game,
			OpenWindow: win.opener(),
			UpdateRate: timestep.PerSecond(50),
			MaxFPS:     maxFPS,
			Clock:      clock,
		})
		require.NoError(t, err)

		return clock, game
	}

	t.Run("waits for the next frame", func(t *testing.T) {
		clock, game := run(50)

		ms20 := 20 * time.Millisecond
		assert.Equal(t, []time.Duration{ms20, ms20, ms20, ms20}, clock.slept)
		assert.Equal(t, 3, game.updates)
		assert.Len(t, game.deltas, 5)
	})

	t.Run("negative limit disables pacing", func(t *testing.T) {
		clock, game := run(-1)

		assert.Empty(t, clock.slept)
		assert.Equal(t, 0, game.updates)
	})
}

type cursorGame struct {
	recordingGame

	positions []dpi.PhysicalPosition[float64]
	inside    []bool
}

func (g *cursorGame) Draw(delta float64) {
	pos, inside := orion.CursorPositionRaw()
	g.positions = append(g.positions, pos)
	g.inside = append(g.inside, inside)
}

func TestCursorPosition(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}

	win := newScriptedWindow(clock,
		[]event.Event{
			event.CursorEntered(mainWindow),
			event.CursorMoved(mainWindow, dpi.NewPhysicalPosition(10.0, 20.0)),
		},
		[]event.Event{event.CursorMoved(otherWindow, dpi.NewPhysicalPosition(99.0, 99.0))},
		[]event.Event{event.CursorLeft(mainWindow)},
		[]event.Event{event.CloseRequested(mainWindow)},
	)

	game := &cursorGame{}

	err := orion.RunGame(orion.RunGameOptions{
		Game:       game,
		OpenWindow: win.opener(),
		Clock:      clock,
	})
	require.NoError(t, err)

	pos := dpi.NewPhysicalPosition(10.0, 20.0)
	assert.Equal(t, []dpi.PhysicalPosition[float64]{pos, pos, pos}, game.positions)
	assert.Equal(t, []bool{true, true, false}, game.inside)
}

func TestRunGameUpdateError(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}

	win := newScriptedWindow(clock, nil, nil, nil, nil, nil)
	game := &recordingGame{failOnCount: 2}

	err := orion.RunGame(orion.RunGameOptions{
		Game:       game,
		OpenWindow: win.opener(),
		UpdateRate: timestep.PerSecond(40),
		Clock:      clock,
	})

	require.ErrorIs(t, err, errUpdate)
	assert.Equal(t, 2, game.updates)
	assert.True(t, win.terminated)
}

type failingGame struct {
	recordingGame
}

func (g *failingGame) Initialize() error {
	return errors.New("no assets")
}

func TestRunGameInitializeError(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	win := newScriptedWindow(clock, nil)

	err := orion.RunGame(orion.RunGameOptions{
		Game:       &failingGame{},
		OpenWindow: win.opener(),
		Clock:      clock,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize game")
}

func TestRunGameOptions(t *testing.T) {
	err := orion.RunGame(orion.RunGameOptions{})
	assert.ErrorIs(t, err, orion.ErrNoGame)

	err = orion.RunGame(orion.RunGameOptions{Game: &recordingGame{}})
	assert.ErrorIs(t, err, orion.ErrNoWindow)

	opened := false
	err = orion.RunGame(orion.RunGameOptions{
		Game:       &recordingGame{},
		UpdateRate: timestep.PerSecond(0),
		OpenWindow: func(width, height int, title string) (glimpse.Window, error) {
			opened = true
			return nil, errors.New("unreachable")
		},
	})

	assert.ErrorIs(t, err, timestep.ErrInvalidRate)
	assert.False(t, opened, "window must not be opened with an invalid config")

	t.Run("defaults", func(t *testing.T) {
		var gotWidth, gotHeight int
		var gotTitle string

		openErr := errors.New("no display")

		err := orion.RunGame(orion.RunGameOptions{
			Game: &recordingGame{},
			OpenWindow: func(width, height int, title string) (glimpse.Window, error) {
				gotWidth, gotHeight, gotTitle = width, height, title
				return nil, openErr
			},
		})

		assert.ErrorIs(t, err, openErr)
		assert.Equal(t, 1000, gotWidth)
		assert.Equal(t, 600, gotHeight)
		assert.Equal(t, "Orion", gotTitle)
	})
}

func TestHandle(t *testing.T) {
	assert.NotPanics(t, func() { orion.Handle(nil, "load %s", "level") })
	assert.PanicsWithValue(t, "load level: boom", func() {
		orion.Handle(errors.New("boom"), "load %s", "level")
	})
}
