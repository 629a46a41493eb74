package maq

import (
	"time"

	"github.com/malone-c/sparse-maq/core"
	"github.com/malone-c/sparse-maq/hull"
	"github.com/malone-c/sparse-maq/ingest"
	"github.com/malone-c/sparse-maq/qini"
)

// Solve runs the full pipeline — preprocess, prune, build — over the flat
// buffers and returns the Qini path together with the interning table.
//
// Ownership: Solve consumes b (see ingest.Buffers); on return every slice
// field of b is nil and the caller must not have touched the buffers since
// the call began.
//
// Solve is reentrant across calls — there is no package-level mutable
// state — but a single Buffers value can be solved only once.
//
// Complexity: O(T log K̄) for pruning plus O(T log U) for the build, where
// T is the flat option count, U the unit count, and K̄ the mean per-unit
// option count. Peak memory is the input buffers plus the materialized
// units; the buffers are released before pruning begins.
func Solve(b *ingest.Buffers, budget float64, opts ...Option) core.Result {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Preprocess: flat buffers → per-unit option slices + interning
	//    table. The buffers are dead after this line.
	start := time.Now()
	units, arms := ingest.Preprocess(b)
	cfg.Observer.PhaseDone(PhasePreprocess, time.Since(start))

	// 3) Prune each unit to its concave envelope, in place.
	start = time.Now()
	hull.Prune(units)
	cfg.Observer.PhaseDone(PhasePrune, time.Since(start))

	// 4) Build the greedy path up to the budget.
	start = time.Now()
	path := qini.BuildPath(units, budget)
	cfg.Observer.PhaseDone(PhaseBuild, time.Since(start))

	// 5) Assemble: the interning table moves to the caller.
	return core.Result{Path: path, Arms: arms}
}

// SolveJagged is Solve for jagged inputs: per-unit identifier, reward and
// cost slices instead of flat buffers. Intended for tests, examples, and
// small adapters; large callers should assemble ingest.Buffers and use
// Solve to stay on the zero-copy path.
func SolveJagged(ids [][]string, rewards, costs [][]float64, budget float64, opts ...Option) core.Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	units, arms := ingest.PreprocessJagged(ids, rewards, costs)
	cfg.Observer.PhaseDone(PhasePreprocess, time.Since(start))

	start = time.Now()
	hull.Prune(units)
	cfg.Observer.PhaseDone(PhasePrune, time.Since(start))

	start = time.Now()
	path := qini.BuildPath(units, budget)
	cfg.Observer.PhaseDone(PhaseBuild, time.Since(start))

	return core.Result{Path: path, Arms: arms}
}
