// Package shutdown implements the per-service single-shot shutdown
// signal every operator's serving loop awaits: the term RPC and an
// operating-system signal handler both fire it, and firing is
// idempotent after the first call.
package shutdown

import "sync"

// Latch is a fire-once, multi-wait signal. The idiomatic Go rendition
// of spec.md §4.4's "single-shot queue of unit tokens": a channel
// closed exactly once, which every waiter can receive from without
// coordination.
type Latch struct {
	once sync.Once
	ch   chan struct{}
}

// New returns an unfired Latch.
func New() *Latch {
	return &Latch{ch: make(chan struct{})}
}

// Fire signals the latch. Redundant calls after the first are no-ops,
// satisfying spec.md §8's idempotence requirement for term.
func (l *Latch) Fire() {
	l.once.Do(func() { close(l.ch) })
}

// Done returns a channel that is closed once Fire has been called. The
// serving loop selects on it alongside incoming RPCs.
func (l *Latch) Done() <-chan struct{} {
	return l.ch
}

// Fired reports whether Fire has already been called, without
// blocking.
func (l *Latch) Fired() bool {
	select {
	case <-l.ch:
		return true
	default:
		return false
	}
}
