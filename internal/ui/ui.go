// Package ui wires the portfolio page behaviors: smooth-scroll navigation,
// the hero typing effect, scroll reveal, the auto-hiding header, skill bars,
// the contact form and the mobile menu.
//
// Every controller receives a dom.Env and owns its own state; nothing is
// global, so a page can be initialised against the browser or against an
// in-memory document.
package ui

import (
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom"
)

// Page holds the controllers created by Init.
type Page struct {
	Menu   *MobileMenu
	Skills *SkillBars
	Nav    *Navigation
	Typing *Typing
	Reveal *Reveal
	Header *Header
	Form   *ContactForm
}

// Init attaches every behavior to the page once. A nil submitter simulates
// delivery after cfg.SubmitDelay.
func Init(env dom.Env, cfg Config, submitter contact.Submitter) *Page {
	cfg.defaults()
	if submitter == nil {
		submitter = &contact.SimulatedSubmitter{Scheduler: env.Scheduler, Delay: cfg.SubmitDelay}
	}

	InjectStyles(env.Document)

	p := &Page{}
	p.Menu = NewMobileMenu(env, cfg)
	p.Skills = NewSkillBars(env, cfg)
	p.Nav = NewNavigation(env, cfg, p.Menu)
	p.Typing = NewTyping(env, cfg)
	p.Reveal = NewReveal(env, cfg, p.Skills.Animate)
	p.Header = NewHeader(env, cfg)
	p.Form = NewContactForm(env, cfg, submitter)
	markLoaded(env)

	cfg.Logger.Debug("page behaviors initialised")
	return p
}

// markLoaded tags <body> once the window has finished loading, which the
// stylesheet uses for the entrance fade.
func markLoaded(env dom.Env) {
	env.Window.On("load", func(dom.Event) {
		if body := env.Document.Body(); body != nil {
			body.AddClass("loaded")
		}
	})
}
