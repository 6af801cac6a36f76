package ui

import "github.com/Zachkp/portfolio/internal/dom"

// Typing ends the CSS typing effect on the hero text once it has played.
type Typing struct {
	el dom.Element
}

func NewTyping(env dom.Env, cfg Config) *Typing {
	t := &Typing{el: env.Document.QuerySelector(".typing-text")}
	if t.el == nil {
		cfg.Logger.Debug("typing text missing, effect disabled")
		return t
	}
	env.Scheduler.AfterFunc(cfg.TypingDelay, t.finish)
	return t
}

// finish drops the caret and the animation for good.
func (t *Typing) finish() {
	t.el.SetStyle("border-right", "none")
	t.el.SetStyle("animation", "none")
}
