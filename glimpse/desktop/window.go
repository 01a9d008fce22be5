//go:build !js

// Package desktop implements glimpse.Window using glfw.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/cadence/dpi"
	"github.com/oliverbestmann/cadence/event"
	"github.com/oliverbestmann/cadence/glimpse"
)

func init() {
	// glfw must be called from the main thread
	runtime.LockOSThread()
}

// glfw pumps events for all windows at once, so the queue is shared
var queue []event.Event

var (
	nextID      event.WindowID
	openWindows int
)

type glfwWindow struct {
	win *glfw.Window
	id  event.WindowID
}

var _ glimpse.Window = (*glfwWindow)(nil)

func NewWindow(width, height int, title string) (glimpse.Window, error) {
	if openWindows == 0 {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("initialize glfw: %w", err)
		}
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		if openWindows == 0 {
			glfw.Terminate()
		}

		return nil, fmt.Errorf("create window: %w", err)
	}

	nextID += 1
	openWindows += 1

	w := &glfwWindow{
		win: window,
		id:  nextID,
	}

	slog.Info("Window created",
		slog.Uint64("id", uint64(w.id)),
		slog.String("title", title),
	)

	configureEvents(window, w.id)

	return w, nil
}

func (g *glfwWindow) InnerSize() dpi.PhysicalSize[uint32] {
	width, height := g.win.GetFramebufferSize()
	return dpi.NewPhysicalSize(uint32(width), uint32(height))
}

func (g *glfwWindow) ScaleFactor() float64 {
	scaleX, _ := g.win.GetContentScale()
	return float64(scaleX)
}

func (g *glfwWindow) ID() event.WindowID {
	return g.id
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()

	openWindows -= 1
	if openWindows == 0 {
		glfw.Terminate()
	}
}

func (g *glfwWindow) Run(frame func(events []event.Event) error) error {
	for {
		if err := frame(PollEvents()); err != nil {
			return err
		}
	}
}

// PollEvents processes pending platform events and returns all events
// of all windows received since the previous call.
func PollEvents() []event.Event {
	glfw.PollEvents()

	events := queue
	queue = nil
	return events
}

func push(ev event.Event) {
	queue = append(queue, ev)
}

func configureEvents(window *glfw.Window, id event.WindowID) {
	window.SetCursorEnterCallback(func(_win *glfw.Window, entered bool) {
		if entered {
			push(event.CursorEntered(id))
		} else {
			push(event.CursorLeft(id))
		}
	})

	window.SetCursorPosCallback(func(win *glfw.Window, xpos float64, ypos float64) {
		// glfw reports screen coordinates, convert to physical pixels
		ratio := pixelRatio(win)
		push(event.CursorMoved(id, dpi.NewPhysicalPosition(xpos*ratio, ypos*ratio)))
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		push(event.Resized(id, dpi.NewPhysicalSize(uint32(width), uint32(height))))
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		push(event.Focused(id, focused))
	})

	window.SetCloseCallback(func(win *glfw.Window) {
		// the host decides if the window is actually closed
		win.SetShouldClose(false)
		push(event.CloseRequested(id))
	})

	window.SetPosCallback(func(_win *glfw.Window, xpos int, ypos int) {
		push(event.Moved(id, dpi.NewPhysicalPosition(float64(xpos), float64(ypos))))
	})

	window.SetRefreshCallback(func(_win *glfw.Window) {
		push(event.RedrawRequested(id))
	})
}

func pixelRatio(win *glfw.Window) float64 {
	width, _ := win.GetSize()
	if width == 0 {
		return 1
	}

	fbWidth, _ := win.GetFramebufferSize()
	return float64(fbWidth) / float64(width)
}
