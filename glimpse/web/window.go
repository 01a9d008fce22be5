//go:build js

// Package web implements glimpse.Window on top of a html canvas.
package web

import (
	"syscall/js"

	"github.com/oliverbestmann/cadence/dpi"
	"github.com/oliverbestmann/cadence/event"
	"github.com/oliverbestmann/cadence/glimpse"
)

var nextID event.WindowID

type jsWindow struct {
	canvas js.Value
	id     event.WindowID

	events    []event.Event
	listeners []listener
}

type listener struct {
	target js.Value
	name   string
	fn     js.Func
}

var _ glimpse.Window = (*jsWindow)(nil)

func NewWindow(width, height int, title string) (glimpse.Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	nextID += 1

	win := &jsWindow{
		canvas: canvas,
		id:     nextID,
	}

	win.configureEvents()

	return win, nil
}

func (g *jsWindow) InnerSize() dpi.PhysicalSize[uint32] {
	ratio := g.ScaleFactor()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Float()
	height := vv.Get("height").Float()
	return dpi.NewPhysicalSize(uint32(width*ratio), uint32(height*ratio))
}

func (g *jsWindow) ScaleFactor() float64 {
	return js.Global().Get("devicePixelRatio").Float()
}

func (g *jsWindow) ID() event.WindowID {
	return g.id
}

func (g *jsWindow) Terminate() {
	for _, l := range g.listeners {
		l.target.Call("removeEventListener", l.name, l.fn)
		l.fn.Release()
	}

	g.listeners = nil
}

func (g *jsWindow) Run(frame func(events []event.Event) error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    break
                }
            }
        }
	})`)

	errc := make(chan error, 1)

	renderWrapper := func(this js.Value, args []js.Value) any {
		resizeCanvas(g.canvas)

		events := g.events
		g.events = nil

		if err := frame(events); err != nil {
			errc <- err
			return false
		}

		return true
	}

	fn := js.FuncOf(renderWrapper)
	defer fn.Release()

	helper.Call("run", fn)

	return <-errc
}

func (g *jsWindow) push(ev event.Event) {
	g.events = append(g.events, ev)
}

func (g *jsWindow) listen(target js.Value, name string, handler func(ev js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler(args[0])
		return nil
	})

	target.Call("addEventListener", name, fn)

	g.listeners = append(g.listeners, listener{target: target, name: name, fn: fn})
}

func (g *jsWindow) configureEvents() {
	window := js.Global()

	g.listen(g.canvas, "mouseenter", func(ev js.Value) {
		g.push(event.CursorEntered(g.id))
	})

	g.listen(g.canvas, "mouseleave", func(ev js.Value) {
		g.push(event.CursorLeft(g.id))
	})

	g.listen(g.canvas, "mousemove", func(ev js.Value) {
		ratio := g.ScaleFactor()
		x := ev.Get("offsetX").Float() * ratio
		y := ev.Get("offsetY").Float() * ratio
		g.push(event.CursorMoved(g.id, dpi.NewPhysicalPosition(x, y)))
	})

	g.listen(window, "resize", func(ev js.Value) {
		g.push(event.Resized(g.id, g.InnerSize()))
	})

	g.listen(window, "focus", func(ev js.Value) {
		g.push(event.Focused(g.id, true))
	})

	g.listen(window, "blur", func(ev js.Value) {
		g.push(event.Focused(g.id, false))
	})

	g.listen(window, "pagehide", func(ev js.Value) {
		g.push(event.CloseRequested(g.id))
	})
}

func resizeCanvas(canvas js.Value) {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	canvas.Set("width", viewWidth*ratio)
	canvas.Set("height", viewHeight*ratio)
}
