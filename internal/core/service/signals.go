package service

import "context"

// Signals is a small synchronous publish/subscribe hub decoupling the session
// and cart services: logout publishes session-ended, the cart service reacts
// by clearing itself. Handlers run inline on the publishing goroutine; all
// store mutations happen on the single command goroutine, so no locking.
type Signals struct {
	sessionEnded []func(ctx context.Context)
}

func NewSignals() *Signals {
	return &Signals{}
}

// OnSessionEnded registers a handler invoked whenever a session ends.
func (s *Signals) OnSessionEnded(fn func(ctx context.Context)) {
	s.sessionEnded = append(s.sessionEnded, fn)
}

// PublishSessionEnded invokes all registered handlers in order.
func (s *Signals) PublishSessionEnded(ctx context.Context) {
	for _, fn := range s.sessionEnded {
		fn(ctx)
	}
}
