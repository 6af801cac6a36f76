// Package htmldom is an in-memory implementation of the dom interfaces on top
// of golang.org/x/net/html. It has no layout engine: offsets, scrolling,
// intersection and time are driven explicitly by the caller, which makes it a
// deterministic host for the page behaviors.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Document is a parsed page.
type Document struct {
	root      *html.Node
	elems     map[*html.Node]*Element
	listeners map[string][]dom.Handler
	win       *Window
	clock     *Clock
}

var _ dom.Document = (*Document)(nil)

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	d := &Document{
		root:      root,
		elems:     make(map[*html.Node]*Element),
		listeners: make(map[string][]dom.Handler),
		clock:     NewClock(),
	}
	d.win = newWindow(d)
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Env returns the document, its window and its clock as a dom.Env.
func (d *Document) Env() dom.Env {
	return dom.Env{Document: d, Window: d.win, Scheduler: d.clock}
}

// Window returns the document's viewport.
func (d *Document) Window() *Window { return d.win }

// Clock returns the scheduler shared by everything bound to this document.
func (d *Document) Clock() *Clock { return d.clock }

func (d *Document) QuerySelector(sel string) dom.Element {
	return d.wrap(queryFirst(d.root, parseSelector(sel)))
}

func (d *Document) QuerySelectorAll(sel string) []dom.Element {
	return d.wrapAll(queryAll(d.root, parseSelector(sel)))
}

// Find is QuerySelector returning the concrete type, for test assertions.
func (d *Document) Find(sel string) *Element {
	n := queryFirst(d.root, parseSelector(sel))
	if n == nil {
		return nil
	}
	return d.element(n)
}

// FindAll is QuerySelectorAll returning concrete types.
func (d *Document) FindAll(sel string) []*Element {
	nodes := queryAll(d.root, parseSelector(sel))
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.element(n))
	}
	return out
}

func (d *Document) GetElementByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	return d.QuerySelector("#" + id)
}

func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	return d.element(n)
}

func (d *Document) Head() dom.Element {
	return d.wrap(queryFirst(d.root, parseSelector("head")))
}

func (d *Document) Body() dom.Element {
	return d.wrap(queryFirst(d.root, parseSelector("body")))
}

func (d *Document) On(event string, h dom.Handler) {
	d.listeners[event] = append(d.listeners[event], h)
}

// Dispatch fires an event at el: the target's handlers run first, then each
// ancestor's, then the document's. It returns the event for inspection.
func (d *Document) Dispatch(el *Element, typ string) *Event {
	ev := &Event{typ: typ, target: el}
	for n := el.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if e, ok := d.elems[n]; ok {
			e.fire(ev)
		}
	}
	if el.attached() {
		for _, h := range d.listeners[typ] {
			h(ev)
		}
	}
	return ev
}

// Click dispatches a click on el.
func (d *Document) Click(el *Element) *Event { return d.Dispatch(el, "click") }

// Submit dispatches a submit on a form.
func (d *Document) Submit(form *Element) *Event { return d.Dispatch(form, "submit") }

// SetOffsetTop fixes the layout offset reported for the element matching sel.
func (d *Document) SetOffsetTop(sel string, y float64) error {
	el := d.Find(sel)
	if el == nil {
		return fmt.Errorf("no element matches %q", sel)
	}
	el.offsetTop = y
	return nil
}

// element returns the stable wrapper for n.
func (d *Document) element(n *html.Node) *Element {
	if e, ok := d.elems[n]; ok {
		return e
	}
	e := &Element{doc: d, node: n, styles: make(map[string]string)}
	d.elems[n] = e
	return e
}

// wrap converts a possibly nil node into a possibly nil interface value.
func (d *Document) wrap(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return d.element(n)
}

func (d *Document) wrapAll(nodes []*html.Node) []dom.Element {
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.element(n))
	}
	return out
}

// Event is a dispatched event.
type Event struct {
	typ       string
	target    *Element
	prevented bool
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.typ }

func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }
