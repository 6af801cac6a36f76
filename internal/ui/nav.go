package ui

import (
	"log/slog"
	"strings"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Navigation turns in-page nav links into smooth scrolls that stop just
// below the fixed header.
type Navigation struct {
	doc    dom.Document
	win    dom.Window
	offset float64
	menu   *MobileMenu
	log    *slog.Logger
}

// NewNavigation intercepts clicks on every .nav-link whose href is a
// fragment. Links to other pages keep their default behavior.
func NewNavigation(env dom.Env, cfg Config, menu *MobileMenu) *Navigation {
	n := &Navigation{
		doc:    env.Document,
		win:    env.Window,
		offset: cfg.HeaderOffset,
		menu:   menu,
		log:    cfg.Logger,
	}
	for _, link := range env.Document.QuerySelectorAll(".nav-link") {
		href := link.Attr("href")
		if !strings.HasPrefix(href, "#") {
			continue
		}
		id := href[1:]
		link.On("click", func(e dom.Event) {
			e.PreventDefault()
			n.ScrollTo(id)
		})
	}
	return n
}

// ScrollTo scrolls to the section with the given id and closes the mobile
// menu. It reports false, doing nothing, when no such section exists.
func (n *Navigation) ScrollTo(id string) bool {
	target := n.doc.GetElementByID(id)
	if target == nil {
		n.log.Debug("nav target missing", "id", id)
		return false
	}
	n.win.ScrollTo(target.OffsetTop()-n.offset, true)
	if n.menu != nil {
		n.menu.Close()
	}
	return true
}
