package cluster

import "sync"

// Barrier blocks each arriving participant until all n participants have
// arrived, then releases them together. It is cyclic: after a release the
// barrier is ready for the next round.
//
// Failure is not modeled: once every participant reaches Wait, release is
// unconditional. A participant that never arrives blocks the rest forever;
// that is an accepted property of the execution model, not an error case.
type Barrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	round   chan struct{}
}

// NewBarrier returns a barrier for n participants. n must be >= 1.
func NewBarrier(n int) *Barrier {
	return &Barrier{
		n:     n,
		round: make(chan struct{}),
	}
}

// Wait blocks until all participants of the current round have called Wait.
// The last arrival releases the round and resets the barrier.
func (b *Barrier) Wait() {
	b.mu.Lock()
	release := b.round
	b.arrived++

	if b.arrived == b.n {
		b.arrived = 0
		b.round = make(chan struct{})
		close(release)
		b.mu.Unlock()

		return
	}
	b.mu.Unlock()

	<-release
}

// Participants returns the number of participants per round.
func (b *Barrier) Participants() int {
	return b.n
}
