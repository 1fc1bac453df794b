package cluster

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestBarrierReleasesAllParticipants(t *testing.T) {
	const n = 8

	b := NewBarrier(n)

	var before, after int32
	var wg sync.WaitGroup

	for range n {
		wg.Go(func() {
			atomic.AddInt32(&before, 1)
			b.Wait()
			// Every participant must have arrived by now.
			if got := atomic.LoadInt32(&before); got != n {
				t.Errorf("released with %d arrivals, want %d", got, n)
			}
			atomic.AddInt32(&after, 1)
		})
	}

	wg.Wait()
	if after != n {
		t.Errorf("after = %d, want %d", after, n)
	}
}

func TestBarrierCyclicReuse(t *testing.T) {
	const n = 3
	const rounds = 20

	b := NewBarrier(n)

	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			for range rounds {
				b.Wait()
			}
		})
	}

	wg.Wait()
}

func TestBarrierSingleParticipant(t *testing.T) {
	b := NewBarrier(1)
	// Must not block.
	b.Wait()
	b.Wait()

	if b.Participants() != 1 {
		t.Errorf("Participants() = %d, want 1", b.Participants())
	}
}
