package htmldom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Element wraps a node of a Document. Wrappers are stable: the same node
// always yields the same *Element.
type Element struct {
	doc       *Document
	node      *html.Node
	styles    map[string]string
	parsed    bool
	value     *string
	offsetTop float64
	listeners map[string][]dom.Handler
}

var _ dom.Element = (*Element)(nil)

func (e *Element) ID() string              { return getAttr(e.node, "id") }
func (e *Element) Tag() string             { return e.node.Data }
func (e *Element) Attr(name string) string { return getAttr(e.node, name) }

// SetAttr sets a markup attribute.
func (e *Element) SetAttr(name, val string) { setAttr(e.node, name, val) }

func (e *Element) classes() []string { return strings.Fields(getAttr(e.node, "class")) }

func (e *Element) HasClass(name string) bool { return contains(e.classes(), name) }

func (e *Element) AddClass(name string) {
	cls := e.classes()
	if contains(cls, name) {
		return
	}
	setAttr(e.node, "class", strings.Join(append(cls, name), " "))
}

func (e *Element) RemoveClass(name string) {
	cls := e.classes()
	kept := cls[:0]
	for _, c := range cls {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		removeAttr(e.node, "class")
		return
	}
	setAttr(e.node, "class", strings.Join(kept, " "))
}

func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *Element) loadStyles() {
	if e.parsed {
		return
	}
	e.parsed = true
	for _, decl := range strings.Split(getAttr(e.node, "style"), ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		e.styles[strings.TrimSpace(prop)] = strings.TrimSpace(val)
	}
}

func (e *Element) Style(prop string) string {
	e.loadStyles()
	return e.styles[prop]
}

func (e *Element) SetStyle(prop, value string) {
	e.loadStyles()
	if value == "" {
		delete(e.styles, prop)
	} else {
		e.styles[prop] = value
	}
	props := make([]string, 0, len(e.styles))
	for p := range e.styles {
		props = append(props, p)
	}
	sort.Strings(props)
	decls := make([]string, 0, len(props))
	for _, p := range props {
		decls = append(decls, p+": "+e.styles[p])
	}
	if len(decls) == 0 {
		removeAttr(e.node, "style")
		return
	}
	setAttr(e.node, "style", strings.Join(decls, "; "))
}

// Value follows form-control semantics: the live value if one was set,
// otherwise the markup default (value attribute, or text for a textarea).
func (e *Element) Value() string {
	if e.value != nil {
		return *e.value
	}
	if e.node.Data == "textarea" {
		return e.Text()
	}
	return getAttr(e.node, "value")
}

func (e *Element) SetValue(v string) { e.value = &v }

func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func (e *Element) Disabled() bool { return hasAttr(e.node, "disabled") }

func (e *Element) SetDisabled(v bool) {
	if v {
		setAttr(e.node, "disabled", "")
		return
	}
	removeAttr(e.node, "disabled")
}

func (e *Element) OffsetTop() float64 { return e.offsetTop }

func (e *Element) QuerySelector(sel string) dom.Element {
	return e.doc.wrap(queryFirst(e.node, parseSelector(sel)))
}

func (e *Element) QuerySelectorAll(sel string) []dom.Element {
	return e.doc.wrapAll(queryAll(e.node, parseSelector(sel)))
}

func (e *Element) Closest(sel string) dom.Element {
	s := parseSelector(sel)
	for n := e.node; n != nil; n = n.Parent {
		if s.matches(n) {
			return e.doc.element(n)
		}
	}
	return nil
}

func (e *Element) Parent() dom.Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.element(p)
}

// AppendChild moves child under e. Children from another document are ignored.
func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c.doc != e.doc {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

func (e *Element) Reset() {
	for _, n := range queryAll(e.node, parseSelector("input, textarea, select")) {
		e.doc.element(n).value = nil
	}
}

func (e *Element) On(event string, h dom.Handler) {
	if e.listeners == nil {
		e.listeners = make(map[string][]dom.Handler)
	}
	e.listeners[event] = append(e.listeners[event], h)
}

func (e *Element) fire(ev *Event) {
	for _, h := range e.listeners[ev.typ] {
		h(ev)
	}
}

// attached reports whether the element is reachable from the document root.
func (e *Element) attached() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}
