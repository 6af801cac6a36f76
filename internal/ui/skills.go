package ui

import "github.com/Zachkp/portfolio/internal/dom"

// SkillBars grows each .skill-progress bar from zero to its data-width.
type SkillBars struct {
	doc dom.Document
}

// NewSkillBars collapses every bar so the later animation starts from 0%.
func NewSkillBars(env dom.Env, _ Config) *SkillBars {
	for _, bar := range env.Document.QuerySelectorAll(".skill-progress") {
		bar.SetStyle("width", "0%")
	}
	return &SkillBars{doc: env.Document}
}

// Animate sets every bar to its target width. Calling it again re-applies
// the same widths.
func (s *SkillBars) Animate() {
	for _, bar := range s.doc.QuerySelectorAll(".skill-progress") {
		if w := bar.Attr("data-width"); w != "" {
			bar.SetStyle("width", w)
		}
	}
}
