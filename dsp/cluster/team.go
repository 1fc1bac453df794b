package cluster

import (
	"io"
	"os"
	"sync"
)

// DefaultScratchCapacity is the scratch arena size used when no option
// overrides it. It mirrors the small shared data memory of a typical
// embedded cluster.
const DefaultScratchCapacity = 64 << 10

// EntryFunc is a worker entry point dispatched to every participating core.
type EntryFunc func(wc *WorkerContext)

type config struct {
	scratchBytes int
	diag         io.Writer
}

// Option configures a Team.
type Option func(*config)

// WithScratchCapacity sets the scratch arena capacity in bytes.
func WithScratchCapacity(bytes int) Option {
	return func(cfg *config) {
		if bytes > 0 {
			cfg.scratchBytes = bytes
		}
	}
}

// WithDiagWriter sets the writer for runtime diagnostics (default os.Stderr).
func WithDiagWriter(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.diag = w
		}
	}
}

// Team is a fixed pool of worker cores with SPMD fork-join dispatch.
//
// A Team with zero workers represents an execution context without worker
// cores (the controller side of a heterogeneous system); kernels refuse
// parallel execution on such a context.
//
// Fork dispatches are serialized: a Team runs one fork at a time, matching
// the single-flight assumption of the kernels that share its scratch arena.
type Team struct {
	workers int
	diag    io.Writer
	arena   *Arena

	mu     sync.Mutex // serializes Fork and Close
	cmds   []chan forkCmd
	loopWG sync.WaitGroup
	closed bool
}

type forkCmd struct {
	entry EntryFunc
	wc    *WorkerContext
	done  *sync.WaitGroup
}

// NewTeam creates a team with the given number of worker cores.
//
// The calling goroutine always acts as core 0 of a dispatch, so a team of n
// workers starts n-1 pool goroutines. workers may be 0 to model a context
// with no worker cores at all.
func NewTeam(workers int, opts ...Option) *Team {
	cfg := config{
		scratchBytes: DefaultScratchCapacity,
		diag:         os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if workers < 0 {
		workers = 0
	}

	t := &Team{
		workers: workers,
		diag:    cfg.diag,
		arena:   NewArena(cfg.scratchBytes),
	}

	for core := 1; core < workers; core++ {
		cmds := make(chan forkCmd)
		t.cmds = append(t.cmds, cmds)

		t.loopWG.Add(1)
		go func() {
			defer t.loopWG.Done()
			for cmd := range cmds {
				cmd.entry(cmd.wc)
				cmd.done.Done()
			}
		}()
	}

	return t
}

// NumWorkers returns the number of worker cores in the team.
func (t *Team) NumWorkers() int {
	return t.workers
}

// HasWorkers reports whether the calling context has worker cores available.
func (t *Team) HasWorkers() bool {
	return t.workers > 0
}

// Arena returns the team's shared scratch arena.
func (t *Team) Arena() *Arena {
	return t.arena
}

// DiagWriter returns the writer for runtime diagnostics.
func (t *Team) DiagWriter() io.Writer {
	return t.diag
}

// Fork runs entry on n cores (indices 0..n-1) and returns once the entry has
// returned on every participating core. The calling goroutine runs core 0.
//
// Precondition: 1 <= n <= NumWorkers(). Requesting more cores than the team
// owns is a fatal caller error, not a checked condition.
//
// Each dispatch gets a fresh barrier sized for its n participants; workers
// reach it through [WorkerContext.Barrier].
func (t *Team) Fork(n int, entry EntryFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := NewBarrier(n)

	var done sync.WaitGroup
	done.Add(n - 1)

	for core := 1; core < n; core++ {
		t.cmds[core-1] <- forkCmd{
			entry: entry,
			wc:    &WorkerContext{core: core, barrier: b},
			done:  &done,
		}
	}

	entry(&WorkerContext{core: 0, barrier: b})
	done.Wait()
}

// Close stops the pool goroutines. The team must not be used afterwards.
func (t *Team) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true

	for _, cmds := range t.cmds {
		close(cmds)
	}
	t.loopWG.Wait()
}

// WorkerContext is the per-core view of one dispatch: the core's identity
// within the team and the dispatch barrier.
type WorkerContext struct {
	core    int
	barrier *Barrier
}

// CoreIndex returns the zero-based index of this core within the dispatch.
func (wc *WorkerContext) CoreIndex() int {
	return wc.core
}

// Barrier blocks until every core participating in the dispatch has reached
// its barrier call.
func (wc *WorkerContext) Barrier() {
	wc.barrier.Wait()
}
