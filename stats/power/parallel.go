package power

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-fixdsp/dsp/cluster"
	"github.com/cwbudde/algo-fixdsp/internal/fixmath"
)

// rmsTaskQ8 is the shared work descriptor handed to every core of one RMS
// dispatch. The source vector is read-only for the duration of the dispatch;
// the partials buffer is write-partitioned, each core owning exactly the slot
// matching its core index.
type rmsTaskQ8 struct {
	src      []int8
	fracBits uint
	nPE      int
	partials []int8
}

// run is the per-core worker: compute this core's sub-range, reduce it with
// the accumulation kernel into the core's partial slot, then join the
// barrier so the orchestrator can read all slots.
func (task *rmsTaskQ8) run(wc *cluster.WorkerContext) {
	core := wc.CoreIndex()
	offset, length := partition(len(task.src), task.nPE, core)

	task.partials[core] = fixmath.MeanSqQ8(task.src[offset:offset+length], task.fracBits)

	wc.Barrier()
}

type rmsTaskQ16 struct {
	src      []int16
	fracBits uint
	nPE      int
	partials []int16
}

func (task *rmsTaskQ16) run(wc *cluster.WorkerContext) {
	core := wc.CoreIndex()
	offset, length := partition(len(task.src), task.nPE, core)

	task.partials[core] = fixmath.MeanSqQ16(task.src[offset:offset+length], task.fracBits)

	wc.Barrier()
}

// partition returns one core's sub-range of a blockSize-element vector split
// across nPE cores.
//
// Partitioning is front-loaded: every core takes the nominal length
// ceil(blockSize/nPE) starting at core*nominal, and when blockSize does not
// divide evenly the last core shrinks to the remainder blockSize mod nominal
// instead of a full share. The tail core never grows.
//
// Preconditions (not checked): blockSize >= 1, 1 <= nPE, and nPE small
// enough that every core's sub-range is non-empty.
func partition(blockSize, nPE, core int) (offset, length int) {
	nominal := (blockSize + nPE - 1) / nPE

	length = nominal
	if core == nPE-1 && blockSize%nPE != 0 {
		length = blockSize % nominal
	}

	return core * nominal, length
}

// RMSQ8Parallel computes the RMS value of an 8-bit fixed-point vector on
// cores worker cores and writes it to res.
//
// The team must have worker cores available; invoked on a worker-less
// context the function writes a diagnostic to the team's diagnostic writer
// and returns nil with res untouched. This refusal is a defined no-op, not
// an error.
//
// With cores == 1 no scratch is allocated and no fork happens: the
// accumulation kernel runs directly on the calling core and writes straight
// into res. With cores > 1 a partial-results buffer of one slot per core is
// taken from the team's scratch arena; if the arena cannot provide it the
// function fails fast with an error wrapping [cluster.ErrScratchExhausted]
// and dispatches nothing. The buffer is released before returning.
//
// Preconditions (not checked): len(src) >= 1, 1 <= cores <=
// team.NumWorkers(), and cores low enough that every sub-range is non-empty
// (see the package comment for the uneven-split bias of the two-level
// reduction).
func RMSQ8Parallel(team *cluster.Team, src []int8, fracBits uint, cores int, res *int8) error {
	if team == nil || !team.HasWorkers() {
		fmt.Fprintln(diagWriter(team), "power: parallel RMS requires a team with worker cores")
		return nil
	}

	if cores == 1 {
		*res = fixmath.MeanSqQ8(src, fracBits)
		return nil
	}

	partials, err := team.Arena().AllocI8(cores)
	if err != nil {
		return fmt.Errorf("power: allocating %d partial-result slots: %w", cores, err)
	}
	defer team.Arena().FreeI8(partials)

	task := &rmsTaskQ8{
		src:      src,
		fracBits: fracBits,
		nPE:      cores,
		partials: partials,
	}
	team.Fork(cores, task.run)

	var accu int32
	for _, p := range partials {
		accu += int32(p)
	}
	*res = int8(accu / int32(cores))

	return nil
}

// RMSQ16Parallel is the 16-bit sample counterpart of RMSQ8Parallel.
func RMSQ16Parallel(team *cluster.Team, src []int16, fracBits uint, cores int, res *int16) error {
	if team == nil || !team.HasWorkers() {
		fmt.Fprintln(diagWriter(team), "power: parallel RMS requires a team with worker cores")
		return nil
	}

	if cores == 1 {
		*res = fixmath.MeanSqQ16(src, fracBits)
		return nil
	}

	partials, err := team.Arena().AllocI16(cores)
	if err != nil {
		return fmt.Errorf("power: allocating %d partial-result slots: %w", cores, err)
	}
	defer team.Arena().FreeI16(partials)

	task := &rmsTaskQ16{
		src:      src,
		fracBits: fracBits,
		nPE:      cores,
		partials: partials,
	}
	team.Fork(cores, task.run)

	var accu int32
	for _, p := range partials {
		accu += int32(p)
	}
	*res = int16(accu / int32(cores))

	return nil
}

func diagWriter(team *cluster.Team) io.Writer {
	if team != nil {
		return team.DiagWriter()
	}

	return os.Stderr
}
