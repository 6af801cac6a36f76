package htmldom

import (
	"strings"

	"golang.org/x/net/html"
)

// selector is a parsed selector list: groups separated by commas, each group
// a chain of compounds joined by the descendant combinator.
//
// Supported compounds: tag, .class, #id, [attr], [attr=val] and any
// concatenation of those ("button.primary[type=submit]").
type selector [][]compound

type attrMatch struct {
	key string
	val string
	any bool
}

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

func parseSelector(sel string) selector {
	var out selector
	for _, group := range strings.Split(sel, ",") {
		parts := strings.Fields(group)
		if len(parts) == 0 {
			continue
		}
		chain := make([]compound, 0, len(parts))
		for _, p := range parts {
			chain = append(chain, parseCompound(p))
		}
		out = append(out, chain)
	}
	return out
}

func parseCompound(s string) compound {
	var c compound

	// Attribute blocks first so that dots and hashes inside values are not
	// mistaken for class or id markers.
	for {
		open := strings.IndexByte(s, '[')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open:], ']')
		if end < 0 {
			break
		}
		body := s[open+1 : open+end]
		s = s[:open] + s[open+end+1:]
		if eq := strings.IndexByte(body, '='); eq >= 0 {
			c.attrs = append(c.attrs, attrMatch{
				key: strings.TrimSpace(body[:eq]),
				val: strings.Trim(strings.TrimSpace(body[eq+1:]), `"'`),
			})
		} else {
			c.attrs = append(c.attrs, attrMatch{key: strings.TrimSpace(body), any: true})
		}
	}

	i := strings.IndexAny(s, ".#")
	if i < 0 {
		c.tag = strings.ToLower(s)
		return c
	}
	c.tag = strings.ToLower(s[:i])
	s = s[i:]
	for len(s) > 0 {
		marker := s[0]
		s = s[1:]
		next := strings.IndexAny(s, ".#")
		if next < 0 {
			next = len(s)
		}
		name := s[:next]
		s = s[next:]
		switch marker {
		case '.':
			c.classes = append(c.classes, name)
		case '#':
			c.id = name
		}
	}
	return c
}

func (sel selector) matches(n *html.Node) bool {
	for _, chain := range sel {
		if matchChain(n, chain) {
			return true
		}
	}
	return false
}

// matchChain matches right to left: the last compound must match n, every
// earlier compound some ancestor, in order.
func matchChain(n *html.Node, chain []compound) bool {
	last := len(chain) - 1
	if !chain[last].matches(n) {
		return false
	}
	i := last - 1
	for p := n.Parent; p != nil && i >= 0; p = p.Parent {
		if chain[i].matches(p) {
			i--
		}
	}
	return i < 0
}

func (c compound) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && c.tag != "*" && n.Data != c.tag {
		return false
	}
	if c.id != "" && getAttr(n, "id") != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(getAttr(n, "class"))
		for _, want := range c.classes {
			if !contains(have, want) {
				return false
			}
		}
	}
	for _, a := range c.attrs {
		if a.any {
			if !hasAttr(n, a.key) {
				return false
			}
			continue
		}
		if getAttr(n, a.key) != a.val {
			return false
		}
	}
	return true
}

// queryAll returns matching descendants of root in document order, root excluded.
func queryAll(root *html.Node, sel selector) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if sel.matches(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

func queryFirst(root *html.Node, sel selector) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if sel.matches(c) {
				found = c
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
