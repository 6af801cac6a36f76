package ui

import (
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Debounce returns a function that runs fn once calls have stopped for wait.
// Each call restarts the window.
func Debounce(s dom.Scheduler, wait time.Duration, fn func()) func() {
	var pending dom.Timer
	return func() {
		if pending != nil {
			pending.Stop()
		}
		pending = s.AfterFunc(wait, fn)
	}
}
