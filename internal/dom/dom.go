// Package dom is the narrow slice of the browser the page behaviors depend on.
//
// Controllers never touch a browser directly: they receive an Env and register
// handlers against it. In the browser the Env is backed by syscall/js (see
// package jsdom); on the host it is backed by an in-memory document (see
// package htmldom).
package dom

import "time"

// Handler reacts to a dispatched event.
type Handler func(Event)

// Event is a dispatched UI event.
type Event interface {
	Type() string
	// Target is the element the event was dispatched on. It is nil for
	// events fired on the window.
	Target() Element
	PreventDefault()
	DefaultPrevented() bool
}

// Element is a node of the page. Methods returning an Element return a nil
// interface when nothing matches.
type Element interface {
	ID() string
	Tag() string
	Attr(name string) string
	SetAttr(name, value string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips the class and reports whether it is now present.
	ToggleClass(name string) bool

	Style(prop string) string
	SetStyle(prop, value string)

	Value() string
	SetValue(v string)
	Text() string
	SetText(s string)
	Disabled() bool
	SetDisabled(bool)

	// OffsetTop is the element's vertical offset from the top of the document.
	OffsetTop() float64

	QuerySelector(sel string) Element
	QuerySelectorAll(sel string) []Element
	// Closest returns the element itself or its nearest ancestor matching sel.
	Closest(sel string) Element
	Parent() Element

	AppendChild(child Element)
	// Remove detaches the element. Removing a detached element is a no-op.
	Remove()
	// Reset restores a form's controls to their markup defaults.
	Reset()

	On(event string, h Handler)
}

// Document is the page root.
type Document interface {
	QuerySelector(sel string) Element
	QuerySelectorAll(sel string) []Element
	GetElementByID(id string) Element
	CreateElement(tag string) Element
	Head() Element
	Body() Element
	On(event string, h Handler)
}

// ObserverOptions configures an IntersectionObserver.
type ObserverOptions struct {
	Threshold  float64
	RootMargin string
}

// IntersectionEntry reports a visibility change of one observed element.
type IntersectionEntry struct {
	Target       Element
	Intersecting bool
	Ratio        float64
}

// IntersectionObserver watches elements for viewport intersection.
type IntersectionObserver interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// Window is the viewport.
type Window interface {
	ScrollY() float64
	ScrollTo(top float64, smooth bool)
	On(event string, h Handler)
	NewIntersectionObserver(opts ObserverOptions, cb func([]IntersectionEntry)) IntersectionObserver
}

// Timer is a pending deferred callback.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// Scheduler runs deferred callbacks on the event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Env bundles everything a controller needs from the host.
type Env struct {
	Document  Document
	Window    Window
	Scheduler Scheduler
}
