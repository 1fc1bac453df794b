package cluster

import (
	"errors"
	"sync"
)

// ErrScratchExhausted is returned when an allocation would exceed the arena's
// scratch capacity.
var ErrScratchExhausted = errors.New("cluster: scratch memory exhausted")

// Arena is a bounded allocator for core-shared scratch memory.
//
// It models the small shared data memory of an embedded cluster: allocations
// are counted in bytes against a fixed capacity and fail once the budget is
// spent. Every Alloc must be paired with the matching Free before the
// borrowing computation returns.
type Arena struct {
	mu       sync.Mutex
	capacity int // bytes
	used     int // bytes
}

// NewArena returns an arena with the given scratch capacity in bytes.
func NewArena(capacity int) *Arena {
	return &Arena{capacity: capacity}
}

// AllocI8 allocates n 8-bit scratch slots, or ErrScratchExhausted if the
// remaining capacity is insufficient.
func (a *Arena) AllocI8(n int) ([]int8, error) {
	if err := a.reserve(n); err != nil {
		return nil, err
	}

	return make([]int8, n), nil
}

// FreeI8 releases scratch obtained from AllocI8.
func (a *Arena) FreeI8(buf []int8) {
	a.release(len(buf))
}

// AllocI16 allocates n 16-bit scratch slots, or ErrScratchExhausted if the
// remaining capacity is insufficient.
func (a *Arena) AllocI16(n int) ([]int16, error) {
	if err := a.reserve(2 * n); err != nil {
		return nil, err
	}

	return make([]int16, n), nil
}

// FreeI16 releases scratch obtained from AllocI16.
func (a *Arena) FreeI16(buf []int16) {
	a.release(2 * len(buf))
}

// Capacity returns the total scratch capacity in bytes.
func (a *Arena) Capacity() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.capacity
}

// Used returns the currently allocated scratch in bytes.
func (a *Arena) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.used
}

func (a *Arena) reserve(bytes int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.used+bytes > a.capacity {
		return ErrScratchExhausted
	}
	a.used += bytes

	return nil
}

func (a *Arena) release(bytes int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.used -= bytes
	if a.used < 0 {
		a.used = 0
	}
}
