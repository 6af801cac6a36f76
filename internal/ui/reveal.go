package ui

import (
	"github.com/Zachkp/portfolio/internal/dom"
)

// aboutSectionID is the section whose appearance starts the skill bars.
const aboutSectionID = "about"

// Reveal latches the "active" class onto revealable elements the first time
// they scroll into view. Section titles are made revealable at startup.
type Reveal struct {
	obs     dom.IntersectionObserver
	onAbout func()
}

func NewReveal(env dom.Env, cfg Config, onAbout func()) *Reveal {
	r := &Reveal{onAbout: onAbout}

	for _, title := range env.Document.QuerySelectorAll(".section-title") {
		title.AddClass("reveal")
	}
	targets := env.Document.QuerySelectorAll(".reveal")
	if len(targets) == 0 {
		cfg.Logger.Debug("no reveal targets")
		return r
	}

	r.obs = env.Window.NewIntersectionObserver(dom.ObserverOptions{
		Threshold:  cfg.RevealThreshold,
		RootMargin: cfg.RevealRootMargin,
	}, r.handle)
	for _, el := range targets {
		r.obs.Observe(el)
	}
	return r
}

func (r *Reveal) handle(entries []dom.IntersectionEntry) {
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		e.Target.AddClass("active")
		// Once active an element stays active, so there is nothing left to watch.
		r.obs.Unobserve(e.Target)
		if e.Target.ID() == aboutSectionID && r.onAbout != nil {
			r.onAbout()
		}
	}
}
