package ui

import (
	"github.com/Zachkp/portfolio/internal/dom"
)

const (
	headerShown  = "translateY(0)"
	headerHidden = "translateY(-100%)"
	headerShadow = "0 2px 20px rgba(0, 0, 0, 0.1)"
)

// Header slides the fixed header away while the reader scrolls down and
// brings it back on any upward scroll. It also casts a shadow once the page
// has moved.
type Header struct {
	el          dom.Element
	win         dom.Window
	last        float64
	hideAfter   float64
	shadowAfter float64
}

func NewHeader(env dom.Env, cfg Config) *Header {
	h := &Header{
		el:          env.Document.QuerySelector(".header"),
		win:         env.Window,
		hideAfter:   cfg.HideHeaderAfter,
		shadowAfter: cfg.ShadowAfter,
	}
	if h.el == nil {
		cfg.Logger.Debug("header missing, scroll effects disabled")
		return h
	}
	h.last = env.Window.ScrollY()

	update := h.Update
	if cfg.ScrollDebounce > 0 {
		update = Debounce(env.Scheduler, cfg.ScrollDebounce, h.Update)
	}
	env.Window.On("scroll", func(dom.Event) { update() })
	return h
}

// Update applies both header rules for the current scroll offset.
func (h *Header) Update() {
	if h.el == nil {
		return
	}
	y := h.win.ScrollY()

	if hideHeader(h.last, y, h.hideAfter) {
		h.el.SetStyle("transform", headerHidden)
	} else {
		h.el.SetStyle("transform", headerShown)
	}
	h.last = y

	if y > h.shadowAfter {
		h.el.SetStyle("box-shadow", headerShadow)
	} else {
		h.el.SetStyle("box-shadow", "none")
	}
}

// hideHeader reports whether moving from prev to cur should hide the header.
func hideHeader(prev, cur, after float64) bool {
	return cur > prev && cur > after
}
