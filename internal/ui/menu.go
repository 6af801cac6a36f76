package ui

import "github.com/Zachkp/portfolio/internal/dom"

// MobileMenu opens and closes the collapsed navigation. The menu and the
// hamburger always carry the "active" class together.
type MobileMenu struct {
	menu      dom.Element
	hamburger dom.Element
}

func NewMobileMenu(env dom.Env, cfg Config) *MobileMenu {
	m := &MobileMenu{
		menu:      env.Document.QuerySelector(".nav-menu"),
		hamburger: env.Document.QuerySelector(".hamburger"),
	}
	if m.menu == nil || m.hamburger == nil {
		cfg.Logger.Debug("mobile menu incomplete, toggle disabled")
		return m
	}

	m.hamburger.On("click", func(dom.Event) { m.Toggle() })
	env.Document.On("click", func(e dom.Event) {
		if t := e.Target(); t != nil && t.Closest(".navbar") != nil {
			return
		}
		if m.Open() {
			m.Close()
		}
	})
	return m
}

// Open reports whether the menu is showing.
func (m *MobileMenu) Open() bool {
	return m.menu != nil && m.menu.HasClass("active")
}

// Toggle flips the menu and keeps the hamburger in step.
func (m *MobileMenu) Toggle() {
	if m.menu == nil || m.hamburger == nil {
		return
	}
	if m.menu.ToggleClass("active") {
		m.hamburger.AddClass("active")
	} else {
		m.hamburger.RemoveClass("active")
	}
}

// Close hides the menu whether or not it was open.
func (m *MobileMenu) Close() {
	if m.menu != nil {
		m.menu.RemoveClass("active")
	}
	if m.hamburger != nil {
		m.hamburger.RemoveClass("active")
	}
}
