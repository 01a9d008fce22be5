package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimes(t *testing.T) {
	var times FrameTimes

	now := time.Unix(0, 0)

	var reports int
	for range 120 {
		if times.tickAt(now) {
			reports++
		}

		now = now.Add(20 * time.Millisecond)
	}

	assert.Equal(t, 2, reports)
	assert.Equal(t, uint64(120), times.FrameCount)
	assert.Equal(t, 20*time.Millisecond, times.Delta)
	assert.Equal(t, 20*time.Millisecond, times.AverageDuration)
	assert.InDelta(t, 50.0, times.FPS(), 1e-9)

	t.Run("slow frame", func(t *testing.T) {
		times.tickAt(now.Add(200 * time.Millisecond))
		assert.Equal(t, 220*time.Millisecond, times.MaxDuration)
		assert.Greater(t, times.AverageDuration, 20*time.Millisecond)
	})

	t.Run("no frames", func(t *testing.T) {
		var empty FrameTimes
		assert.Equal(t, 0.0, empty.FPS())
	})
}

func TestDebugOverlay(t *testing.T) {
	var overlay debugOverlay

	assert.Equal(t, 0.0, overlay.fps())

	overlay.record(frame{Total: 10 * time.Millisecond, GameUpdate: 4 * time.Millisecond})
	overlay.record(frame{Total: 30 * time.Millisecond, GameDraw: 20 * time.Millisecond})

	assert.InDelta(t, 50.0, overlay.fps(), 1e-9)
	assert.Equal(t, 30*time.Millisecond, overlay.slowest().Total)

	report := overlay.Report()
	assert.Contains(t, report, "FPS: 50.00")
	assert.Contains(t, report, "Frames: 2")
	assert.Contains(t, report, "Draw:   20.00ms")

	t.Run("phases", func(t *testing.T) {
		var overlay debugOverlay

		overlay.StartFrame()
		overlay.StartGameUpdate()
		overlay.StartGameDraw()
		overlay.EndFrame()
		overlay.StartFrame()

		assert.Equal(t, 1, overlay.frameCount)
		assert.GreaterOrEqual(t, overlay.frames[0].Total, overlay.frames[0].GameDraw)
	})
}
