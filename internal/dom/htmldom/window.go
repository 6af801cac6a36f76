package htmldom

import (
	"github.com/Zachkp/portfolio/internal/dom"
)

// ScrollCall records a programmatic scroll request.
type ScrollCall struct {
	Top    float64
	Smooth bool
}

// Window is the viewport of a Document. Scrolling and intersection are
// driven by the caller through Scroll and Intersect.
type Window struct {
	doc       *Document
	scrollY   float64
	scrolls   []ScrollCall
	listeners map[string][]dom.Handler
	observers []*observer
}

var _ dom.Window = (*Window)(nil)

func newWindow(d *Document) *Window {
	return &Window{doc: d, listeners: make(map[string][]dom.Handler)}
}

func (w *Window) ScrollY() float64 { return w.scrollY }

// ScrollTo records the request and jumps to the clamped offset without
// emitting scroll events.
func (w *Window) ScrollTo(top float64, smooth bool) {
	w.scrolls = append(w.scrolls, ScrollCall{Top: top, Smooth: smooth})
	if top < 0 {
		top = 0
	}
	w.scrollY = top
}

// Scrolls returns every ScrollTo request so far.
func (w *Window) Scrolls() []ScrollCall { return w.scrolls }

func (w *Window) On(event string, h dom.Handler) {
	w.listeners[event] = append(w.listeners[event], h)
}

func (w *Window) fire(typ string) {
	ev := &Event{typ: typ}
	for _, h := range w.listeners[typ] {
		h(ev)
	}
}

// Scroll moves the viewport to y and fires a scroll event.
func (w *Window) Scroll(y float64) {
	w.scrollY = y
	w.fire("scroll")
}

// Load fires the window load event.
func (w *Window) Load() { w.fire("load") }

func (w *Window) NewIntersectionObserver(opts dom.ObserverOptions, cb func([]dom.IntersectionEntry)) dom.IntersectionObserver {
	o := &observer{opts: opts, cb: cb}
	w.observers = append(w.observers, o)
	return o
}

// Intersect reports that el now has the given visible ratio. Every live
// observer watching el receives one entry; it is intersecting when the ratio
// is positive and reaches the observer's threshold.
func (w *Window) Intersect(el *Element, ratio float64) {
	for _, o := range w.observers {
		if o.disconnected || !o.watching(el) {
			continue
		}
		o.cb([]dom.IntersectionEntry{{
			Target:       el,
			Intersecting: ratio > 0 && ratio >= o.opts.Threshold,
			Ratio:        ratio,
		}})
	}
}

// Observed reports whether any live observer watches el.
func (w *Window) Observed(el *Element) bool {
	for _, o := range w.observers {
		if !o.disconnected && o.watching(el) {
			return true
		}
	}
	return false
}

// ObserverOptions returns the options of every observer created so far.
func (w *Window) ObserverOptions() []dom.ObserverOptions {
	out := make([]dom.ObserverOptions, 0, len(w.observers))
	for _, o := range w.observers {
		out = append(out, o.opts)
	}
	return out
}

type observer struct {
	opts         dom.ObserverOptions
	cb           func([]dom.IntersectionEntry)
	targets      []*Element
	disconnected bool
}

func (o *observer) watching(el *Element) bool {
	for _, t := range o.targets {
		if t == el {
			return true
		}
	}
	return false
}

func (o *observer) Observe(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || o.watching(e) {
		return
	}
	o.targets = append(o.targets, e)
}

func (o *observer) Unobserve(el dom.Element) {
	e, ok := el.(*Element)
	if !ok {
		return
	}
	for i, t := range o.targets {
		if t == e {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return
		}
	}
}

func (o *observer) Disconnect() {
	o.disconnected = true
	o.targets = nil
}
