// Package cluster models the execution context of an embedded multicore
// cluster: a fixed pool of identical worker cores with SPMD fork-join
// dispatch, a barrier primitive, and a bounded shared scratch allocator.
//
// Kernels that support multicore execution take a [Team] and dispatch a
// worker entry to n cores via [Team.Fork]. The calling goroutine always acts
// as core 0; the remaining cores run on a fixed set of pool goroutines
// created once per Team. There is no preemption, cancellation, or timeout:
// each worker runs to completion, and the only synchronization point is the
// barrier.
package cluster
