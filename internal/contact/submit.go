package contact

import (
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
)

// DefaultSendDelay is how long SimulatedSubmitter pretends the send takes.
const DefaultSendDelay = 2000 * time.Millisecond

// Submitter delivers a validated message. Submit must not block: done is
// called exactly once, later, on the event loop, with nil on success.
type Submitter interface {
	Submit(m Message, done func(error))
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(m Message, done func(error))

func (f SubmitterFunc) Submit(m Message, done func(error)) { f(m, done) }

// SimulatedSubmitter reports success after Delay without sending anything.
type SimulatedSubmitter struct {
	Scheduler dom.Scheduler
	Delay     time.Duration
}

// NewSimulatedSubmitter uses DefaultSendDelay.
func NewSimulatedSubmitter(s dom.Scheduler) *SimulatedSubmitter {
	return &SimulatedSubmitter{Scheduler: s, Delay: DefaultSendDelay}
}

func (s *SimulatedSubmitter) Submit(_ Message, done func(error)) {
	s.Scheduler.AfterFunc(s.Delay, func() { done(nil) })
}
