//go:build js && wasm

// Package jsdom backs the dom interfaces with the browser through syscall/js.
package jsdom

import (
	"strings"
	"syscall/js"
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Env returns the live page.
func Env() dom.Env {
	g := js.Global()
	return dom.Env{
		Document:  &document{v: g.Get("document")},
		Window:    &window{v: g},
		Scheduler: timers{v: g},
	}
}

// wrap turns a possibly null JS node into a possibly nil Element.
func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &element{v: v}
}

func wrapList(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &element{v: list.Index(i)})
	}
	return out
}

// listen registers h for the event on target. The callback lives as long as
// the page, so it is never released.
func listen(target js.Value, name string, h dom.Handler) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		h(&event{v: ev})
		return nil
	})
	target.Call("addEventListener", name, cb)
}

type event struct{ v js.Value }

func (e *event) Type() string { return e.v.Get("type").String() }

func (e *event) Target() dom.Element {
	t := e.v.Get("target")
	// Window and document targets are not elements.
	if t.IsNull() || t.IsUndefined() || t.Get("closest").IsUndefined() {
		return nil
	}
	return &element{v: t}
}

func (e *event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }

type element struct{ v js.Value }

func (e *element) ID() string  { return e.v.Get("id").String() }
func (e *element) Tag() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *element) Attr(name string) string {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return ""
	}
	return a.String()
}

func (e *element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *element) HasClass(name string) bool { return e.v.Get("classList").Call("contains", name).Bool() }
func (e *element) AddClass(name string)      { e.v.Get("classList").Call("add", name) }
func (e *element) RemoveClass(name string)   { e.v.Get("classList").Call("remove", name) }
func (e *element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *element) SetStyle(prop, value string) {
	if value == "" {
		e.v.Get("style").Call("removeProperty", prop)
		return
	}
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *element) Value() string               { return e.v.Get("value").String() }
func (e *element) SetValue(v string)           { e.v.Set("value", v) }
func (e *element) Text() string                { return e.v.Get("textContent").String() }
func (e *element) SetText(s string)            { e.v.Set("textContent", s) }
func (e *element) Disabled() bool              { return e.v.Get("disabled").Bool() }
func (e *element) SetDisabled(d bool)          { e.v.Set("disabled", d) }
func (e *element) OffsetTop() float64          { return e.v.Get("offsetTop").Float() }
func (e *element) Remove()                     { e.v.Call("remove") }
func (e *element) Reset()                      { e.v.Call("reset") }
func (e *element) On(ev string, h dom.Handler) { listen(e.v, ev, h) }

func (e *element) QuerySelector(sel string) dom.Element {
	return wrap(e.v.Call("querySelector", sel))
}

func (e *element) QuerySelectorAll(sel string) []dom.Element {
	return wrapList(e.v.Call("querySelectorAll", sel))
}

func (e *element) Closest(sel string) dom.Element { return wrap(e.v.Call("closest", sel)) }

func (e *element) Parent() dom.Element { return wrap(e.v.Get("parentElement")) }

func (e *element) AppendChild(child dom.Element) {
	if c, ok := child.(*element); ok {
		e.v.Call("appendChild", c.v)
	}
}

type document struct{ v js.Value }

func (d *document) QuerySelector(sel string) dom.Element {
	return wrap(d.v.Call("querySelector", sel))
}

func (d *document) QuerySelectorAll(sel string) []dom.Element {
	return wrapList(d.v.Call("querySelectorAll", sel))
}

func (d *document) GetElementByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	return wrap(d.v.Call("getElementById", id))
}

func (d *document) CreateElement(tag string) dom.Element {
	return &element{v: d.v.Call("createElement", tag)}
}

func (d *document) Head() dom.Element           { return wrap(d.v.Get("head")) }
func (d *document) Body() dom.Element           { return wrap(d.v.Get("body")) }
func (d *document) On(ev string, h dom.Handler) { listen(d.v, ev, h) }

type window struct{ v js.Value }

func (w *window) ScrollY() float64 { return w.v.Get("scrollY").Float() }

func (w *window) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	opts := js.Global().Get("Object").New()
	opts.Set("top", top)
	opts.Set("behavior", behavior)
	w.v.Call("scrollTo", opts)
}

func (w *window) On(ev string, h dom.Handler) { listen(w.v, ev, h) }

func (w *window) NewIntersectionObserver(opts dom.ObserverOptions, cb func([]dom.IntersectionEntry)) dom.IntersectionObserver {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		list := args[0]
		entries := make([]dom.IntersectionEntry, 0, list.Length())
		for i := 0; i < list.Length(); i++ {
			e := list.Index(i)
			entries = append(entries, dom.IntersectionEntry{
				Target:       &element{v: e.Get("target")},
				Intersecting: e.Get("isIntersecting").Bool(),
				Ratio:        e.Get("intersectionRatio").Float(),
			})
		}
		cb(entries)
		return nil
	})
	o := js.Global().Get("Object").New()
	o.Set("threshold", opts.Threshold)
	if opts.RootMargin != "" {
		o.Set("rootMargin", opts.RootMargin)
	}
	return &observer{v: js.Global().Get("IntersectionObserver").New(fn, o), fn: fn}
}

type observer struct {
	v  js.Value
	fn js.Func
}

func (o *observer) Observe(el dom.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("unobserve", e.v)
	}
}

func (o *observer) Disconnect() {
	o.v.Call("disconnect")
	o.fn.Release()
}

// timers schedules callbacks with setTimeout so they run on the page's
// event loop like every other handler.
type timers struct{ v js.Value }

func (t timers) AfterFunc(d time.Duration, f func()) dom.Timer {
	tm := &timer{win: t.v}
	tm.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		tm.done = true
		tm.fn.Release()
		f()
		return nil
	})
	tm.id = t.v.Call("setTimeout", tm.fn, d.Milliseconds())
	return tm
}

type timer struct {
	win  js.Value
	id   js.Value
	fn   js.Func
	done bool
}

func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.win.Call("clearTimeout", t.id)
	t.fn.Release()
	return true
}
