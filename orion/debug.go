package orion

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

type frame struct {
	Total time.Duration

	Events     time.Duration
	GameUpdate time.Duration
	GameDraw   time.Duration
}

// DebugOverlay records how long each phase of a frame takes.
var DebugOverlay debugOverlay

type debugOverlay struct {
	enabled bool

	frameCount int
	frames     [60 * 10]frame

	timeStartFrame      time.Time
	timeStartGameDraw   time.Time
	timeStartGameUpdate time.Time
	timeEndFrame        time.Time
	timeReadMem         time.Time

	mem runtime.MemStats
}

func (d *debugOverlay) Enable(enabled bool) {
	d.enabled = enabled
}

func (d *debugOverlay) Enabled() bool {
	return d.enabled
}

func (d *debugOverlay) StartFrame() {
	now := time.Now()

	if !d.timeStartFrame.IsZero() {
		d.record(frame{
			Total:      now.Sub(d.timeStartFrame),
			Events:     d.timeStartGameUpdate.Sub(d.timeStartFrame),
			GameUpdate: d.timeStartGameDraw.Sub(d.timeStartGameUpdate),
			GameDraw:   d.timeEndFrame.Sub(d.timeStartGameDraw),
		})
	}

	d.timeStartFrame = now
}

func (d *debugOverlay) record(f frame) {
	d.frames[d.frameCount%len(d.frames)] = f
	d.frameCount += 1
}

func (d *debugOverlay) StartGameUpdate() {
	d.timeStartGameUpdate = time.Now()
}

func (d *debugOverlay) StartGameDraw() {
	d.timeStartGameDraw = time.Now()
}

func (d *debugOverlay) EndFrame() {
	d.timeEndFrame = time.Now()

	// reading memory stats stops the world, do it once a second at most
	if d.enabled && time.Since(d.timeReadMem) >= time.Second {
		runtime.ReadMemStats(&d.mem)
		d.timeReadMem = d.timeEndFrame
	}
}

func (d *debugOverlay) fps() float64 {
	// calculate the average frame time
	var frameCount int
	var totalTime time.Duration

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			totalTime += frame.Total
		}
	}

	if frameCount == 0 {
		return 0
	}

	averageFrameTime := totalTime / time.Duration(frameCount)

	// calculate the frames per second
	return 1.0 / averageFrameTime.Seconds()
}

// slowest returns the recorded frame with the highest total duration.
func (d *debugOverlay) slowest() frame {
	var result frame

	for _, frame := range d.frames {
		if frame.Total > result.Total {
			result = frame
		}
	}

	return result
}

// Report builds a human readable summary of the recorded frames.
func (d *debugOverlay) Report() string {
	lastCycle := (d.mem.NumGC + 255) % 256
	lastCycleDur := time.Duration(d.mem.PauseNs[lastCycle])

	slowest := d.slowest()

	lines := []string{
		fmt.Sprintf("FPS: %1.2f", d.fps()),
		fmt.Sprintf("Frames: %d", d.frameCount),
		"",
		"Slowest frame",
		fmt.Sprintf("  Total:  %1.2fms", millis(slowest.Total)),
		fmt.Sprintf("  Events: %1.2fms", millis(slowest.Events)),
		fmt.Sprintf("  Update: %1.2fms", millis(slowest.GameUpdate)),
		fmt.Sprintf("  Draw:   %1.2fms", millis(slowest.GameDraw)),
		"",
		"Memory",
		fmt.Sprintf("  Heap Objects: %d", d.mem.HeapObjects),
		fmt.Sprintf("  Heap InUse:   %1.2fmb", float64(d.mem.HeapInuse)/(1024.0*1024.0)),
		fmt.Sprintf("  Stack InUse:  %1.2fmb", float64(d.mem.StackInuse)/(1024.0*1024.0)),
		"",
		"GC:",
		fmt.Sprintf("  Cycles:   %d", d.mem.NumGC),
		fmt.Sprintf("  Fraction: %1.2f%%", d.mem.GCCPUFraction*100),
		fmt.Sprintf("  Duration: %1.2fms", millis(lastCycleDur)),
	}

	return strings.Join(lines, "\n")
}

func millis(d time.Duration) float64 {
	return d.Seconds() * 1000
}
