package ingest

import (
	"github.com/malone-c/sparse-maq/core"
	"github.com/malone-c/sparse-maq/intern"
)

// internHint bounds the initial interning-table size. Real inputs carry a
// handful to a few thousand distinct treatments; the table doubles on
// demand past this.
const internHint = 256

// Preprocess walks the flat buffers in unit-major, option-major order,
// interns every string identifier into a dense 0..N-1 id, and materializes
// one exactly-sized option slice per unit.
//
// Ownership: Preprocess consumes b. On return every slice field of b is
// nil, so the (potentially multi-GB) backing arrays are collectable before
// hull pruning begins.
//
// Edge cases:
//
//   - NumUnits == 0 returns empty units and an empty interning table.
//   - An empty unit yields a nil option slice; no error.
//   - A duplicate identifier — within or across units — reuses its dense id.
//
// Preprocess does not fail. Offsets that violate the Buffers contract are
// the caller's responsibility (use ValidateBuffers when in doubt).
func Preprocess(b *Buffers) (units [][]core.Option, arms []string) {
	u := int(b.NumUnits)
	units = make([][]core.Option, u)
	tab := intern.New(internHint)

	// 1) Unit-major, option-major walk. Dense ids are assigned in exactly
	//    this order, which fixes the interning table's layout.
	var i, j, lo, hi int
	for i = 0; i < u; i++ {
		lo, hi = int(b.ListOffsets[i]), int(b.ListOffsets[i+1])
		if lo == hi {
			continue // empty unit: nothing to materialize
		}

		// 2) Reserve the inner slice to its exact length before pushing.
		opts := make([]core.Option, 0, hi-lo)
		for j = lo; j < hi; j++ {
			// 3) Borrowed byte-range lookup: no per-option allocation.
			id := tab.Intern(b.StrData[b.StrOffsets[j]:b.StrOffsets[j+1]])
			opts = append(opts, core.Option{ID: id, Reward: b.Rewards[j], Cost: b.Costs[j]})
		}
		units[i] = opts
	}

	// 4) Surrender the interning table and release the input buffers.
	arms = tab.Strings()
	b.release()

	return units, arms
}

// PreprocessJagged is the jagged-input variant of Preprocess for callers —
// chiefly tests and small adapters — that hold per-unit slices rather than
// flat buffers. The three outer slices must have equal length, as must each
// triple of inner slices.
//
// Interning semantics are identical to Preprocess: dense ids in first-seen
// order during the unit-major, option-major walk.
func PreprocessJagged(ids [][]string, rewards, costs [][]float64) (units [][]core.Option, arms []string) {
	u := len(ids)
	units = make([][]core.Option, u)
	tab := intern.New(internHint)

	var i, j int
	for i = 0; i < u; i++ {
		if len(ids[i]) == 0 {
			continue
		}
		opts := make([]core.Option, 0, len(ids[i]))
		for j = 0; j < len(ids[i]); j++ {
			id := tab.InternString(ids[i][j])
			opts = append(opts, core.Option{ID: id, Reward: rewards[i][j], Cost: costs[i][j]})
		}
		units[i] = opts
	}

	return units, tab.Strings()
}
