package qini_test

import (
	"math"
	"testing"

	"github.com/malone-c/sparse-maq/core"
	"github.com/malone-c/sparse-maq/hull"
	"github.com/malone-c/sparse-maq/ingest"
	"github.com/malone-c/sparse-maq/qini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prunedUnits runs the jagged preprocessor and the hull pruner, returning
// builder-ready envelopes.
func prunedUnits(ids [][]string, rewards, costs [][]float64) [][]core.Option {
	units, _ := ingest.PreprocessJagged(ids, rewards, costs)
	hull.Prune(units)

	return units
}

// assertPathShape asserts the universal path invariants: equal lengths and
// monotone non-decreasing cumulative sequences.
func assertPathShape(t *testing.T, p core.SolutionPath) {
	t.Helper()
	require.Len(t, p.Gain, len(p.Spend), "Gain length")
	require.Len(t, p.Unit, len(p.Spend), "Unit length")
	require.Len(t, p.Arm, len(p.Spend), "Arm length")
	for i := 1; i < len(p.Spend); i++ {
		assert.GreaterOrEqual(t, p.Spend[i], p.Spend[i-1], "Spend non-decreasing at %d", i)
		assert.GreaterOrEqual(t, p.Gain[i], p.Gain[i-1], "Gain non-decreasing at %d", i)
	}
}

// replaySpendGain recomputes cumulative spend and gain at every step from
// the committed assignments and checks them against the emitted path:
// at each step the totals must equal the sum over units of the currently
// active option.
func replaySpendGain(t *testing.T, units [][]core.Option, p core.SolutionPath) {
	t.Helper()
	active := make(map[int]core.Option, len(units))
	for i := range p.Spend {
		u := p.Unit[i]
		var found core.Option
		ok := false
		for _, o := range units[u] {
			if o.ID == p.Arm[i] {
				found, ok = o, true
				break
			}
		}
		require.True(t, ok, "step %d commits an option present on unit %d's envelope", i, u)
		active[u] = found

		var spend, gain float64
		for _, o := range active {
			spend += o.Cost
			gain += o.Reward
		}
		assert.InDelta(t, spend, p.Spend[i], 1e-9, "spend self-consistency at step %d", i)
		assert.InDelta(t, gain, p.Gain[i], 1e-9, "gain self-consistency at step %d", i)
	}
}

// TestBuildPath_EmptyUnits verifies no input yields an empty, complete path.
func TestBuildPath_EmptyUnits(t *testing.T) {
	p := qini.BuildPath(nil, 100)

	assert.Zero(t, p.Len(), "no units, no steps")
	assert.True(t, p.Complete, "nothing left to upgrade")
}

// TestBuildPath_NonPositiveBudget verifies budget ≤ 0 returns an empty
// path with Complete=false: nothing was consumed.
func TestBuildPath_NonPositiveBudget(t *testing.T) {
	units := prunedUnits(
		[][]string{{"a"}},
		[][]float64{{10}},
		[][]float64{{5}},
	)

	for _, budget := range []float64{0, -1} {
		p := qini.BuildPath(units, budget)
		assert.Zero(t, p.Len(), "budget %v buys nothing", budget)
		assert.False(t, p.Complete, "budget %v leaves upgrades on the table", budget)
	}
}

// TestBuildPath_SingleUnitSingleOption verifies the smallest non-trivial
// solve: one affordable option, one step, complete.
func TestBuildPath_SingleUnitSingleOption(t *testing.T) {
	units := prunedUnits([][]string{{"only"}}, [][]float64{{7}}, [][]float64{{3}})

	p := qini.BuildPath(units, 10)

	require.Equal(t, 1, p.Len())
	assert.Equal(t, 3.0, p.Spend[0])
	assert.Equal(t, 7.0, p.Gain[0])
	assert.Equal(t, 0, p.Unit[0])
	assert.Equal(t, uint32(0), p.Arm[0])
	assert.True(t, p.Complete)
}

// TestBuildPath_FiveUnitScenario replays the published five-unit fixture:
// the greedy order is fully determined (all priorities distinct) and the
// second-to-last record must read spend 47, gain 65.
func TestBuildPath_FiveUnitScenario(t *testing.T) {
	units := prunedUnits(
		[][]string{{"0", "1", "2", "3"}, {"0", "1", "2"}, {"0", "1", "2"}, {"0", "1", "2"}, {"0", "1", "2"}},
		[][]float64{{0, 15, 22, 30}, {0, 18, 32}, {0, 10, 19}, {0, 17, 28}, {0, 8, 18}},
		[][]float64{{0, 10, 20, 21}, {0, 15, 25}, {0, 8, 16}, {0, 12, 22}, {0, 7, 14}},
	)

	p := qini.BuildPath(units, 50)

	require.Equal(t, 5, p.Len())
	assert.Equal(t, []float64{10, 22, 33, 47, 72}, p.Spend)
	assert.Equal(t, []float64{15, 32, 47, 65, 97}, p.Gain)
	assert.Equal(t, 47.0, p.Spend[p.Len()-2], "published second-to-last spend")
	assert.Equal(t, 65.0, p.Gain[p.Len()-2], "published second-to-last gain")
	assert.False(t, p.Complete, "budget exhausted with upgrades remaining")
	assertPathShape(t, p)
	replaySpendGain(t, units, p)
}

// TestBuildPath_TwoUnitMonotonicity verifies the two-unit fixture yields a
// non-empty path, strictly monotone in both cumulative sequences.
func TestBuildPath_TwoUnitMonotonicity(t *testing.T) {
	units := prunedUnits(
		[][]string{{"1", "2"}, {"3", "4"}},
		[][]float64{{10, 20}, {8, 16}},
		[][]float64{{5, 10}, {4, 8}},
	)

	p := qini.BuildPath(units, 15)

	require.NotZero(t, p.Len())
	for i := 1; i < p.Len(); i++ {
		assert.Greater(t, p.Spend[i], p.Spend[i-1], "spend strictly increases at %d", i)
		assert.Greater(t, p.Gain[i], p.Gain[i-1], "gain strictly increases at %d", i)
	}
	replaySpendGain(t, units, p)
}

// TestBuildPath_DominatedArmNeverAppears verifies the hull-pruned middle
// arm of the three-option unit is absent from the emitted path.
func TestBuildPath_DominatedArmNeverAppears(t *testing.T) {
	ids := [][]string{{"1", "2", "3"}}
	units, arms := ingest.PreprocessJagged(ids, [][]float64{{10, 12, 30}}, [][]float64{{5, 10, 15}})
	hull.Prune(units)

	p := qini.BuildPath(units, 20)

	require.NotZero(t, p.Len())
	for i, a := range p.Arm {
		assert.NotEqual(t, "2", arms[a], "dominated arm emitted at step %d", i)
	}
	assert.Equal(t, []float64{5, 15}, p.Spend)
	assert.Equal(t, []float64{10, 30}, p.Gain)
	assert.True(t, p.Complete)
}

// TestBuildPath_UpgradeRefunds verifies the replacement semantic: after an
// upgrade, cumulative spend reflects only the unit's new option.
func TestBuildPath_UpgradeRefunds(t *testing.T) {
	units := prunedUnits([][]string{{"lo", "hi"}}, [][]float64{{10, 18}}, [][]float64{{4, 10}})

	p := qini.BuildPath(units, math.Inf(1))

	require.Equal(t, 2, p.Len())
	assert.Equal(t, []float64{4, 10}, p.Spend, "upgrade refunds the prior cost")
	assert.Equal(t, []float64{10, 18}, p.Gain, "upgrade refunds the prior reward")
	assert.Equal(t, []int{0, 0}, p.Unit)
	assert.True(t, p.Complete)
}

// TestBuildPath_InfiniteBudgetExhausts verifies an unbounded budget drives
// every unit to the end of its envelope and reports completion.
func TestBuildPath_InfiniteBudgetExhausts(t *testing.T) {
	units := prunedUnits(
		[][]string{{"a", "b"}, {"c"}, {}},
		[][]float64{{5, 9}, {4}, {}},
		[][]float64{{2, 5}, {3}, {}},
	)

	p := qini.BuildPath(units, math.Inf(1))

	assert.True(t, p.Complete, "infinite budget must exhaust the supply")
	// Final gain is the sum of each unit's terminal envelope reward.
	assert.Equal(t, 13.0, p.Gain[p.Len()-1])
	assert.Equal(t, 8.0, p.Spend[p.Len()-1])
	replaySpendGain(t, units, p)
}

// TestBuildPath_ZeroCostServedFirst verifies a zero-cost positive-reward
// option prices at +Inf and is committed before any paid option.
func TestBuildPath_ZeroCostServedFirst(t *testing.T) {
	units := prunedUnits(
		[][]string{{"paid"}, {"free"}},
		[][]float64{{100}, {1}},
		[][]float64{{1}, {0}},
	)

	p := qini.BuildPath(units, 10)

	require.NotZero(t, p.Len())
	assert.Equal(t, 1, p.Unit[0], "the free option goes first")
	assert.Equal(t, 0.0, p.Spend[0], "free option costs nothing")
}

// TestBuildPath_RoundedUpTerminalStep verifies the terminal record may
// overshoot the budget by exactly one step, and every earlier record stays
// strictly under it.
func TestBuildPath_RoundedUpTerminalStep(t *testing.T) {
	units := prunedUnits(
		[][]string{{"a"}, {"b"}, {"c"}, {"d"}},
		[][]float64{{30}, {20}, {10}, {5}},
		[][]float64{{10}, {10}, {10}, {10}},
	)

	p := qini.BuildPath(units, 25)

	require.Equal(t, 3, p.Len(), "third step crosses the budget and terminates")
	assert.Equal(t, 30.0, p.Spend[p.Len()-1], "terminal record overshoots")
	for i := 0; i < p.Len()-1; i++ {
		assert.Less(t, p.Spend[i], 25.0, "pre-terminal records stay under budget")
	}
	assert.False(t, p.Complete)
}

// TestBuildPath_FirstAssignmentsIncreaseSpend verifies every step that is
// a first assignment (not an upgrade) strictly increases cumulative spend.
func TestBuildPath_FirstAssignmentsIncreaseSpend(t *testing.T) {
	units := prunedUnits(
		[][]string{{"a", "b"}, {"c"}, {"d", "e"}},
		[][]float64{{6, 11}, {5}, {4, 7}},
		[][]float64{{2, 5}, {3}, {2, 4}},
	)

	p := qini.BuildPath(units, math.Inf(1))

	seen := make(map[int]bool)
	for i := range p.Spend {
		if !seen[p.Unit[i]] {
			seen[p.Unit[i]] = true
			prev := 0.0
			if i > 0 {
				prev = p.Spend[i-1]
			}
			assert.Greater(t, p.Spend[i], prev, "first assignment at step %d must add cost", i)
		}
	}
	replaySpendGain(t, units, p)
}

// TestBuildPath_CompleteMeansNoUpgradeLeft verifies the completion flag by
// exhaustive check: when Complete, every unit with a non-empty envelope is
// committed to its final option.
func TestBuildPath_CompleteMeansNoUpgradeLeft(t *testing.T) {
	units := prunedUnits(
		[][]string{{"a", "b", "c"}, {"d"}, {}},
		[][]float64{{3, 5, 6}, {2}, {}},
		[][]float64{{1, 2, 3}, {1}, {}},
	)

	p := qini.BuildPath(units, math.Inf(1))

	require.True(t, p.Complete)
	last := make(map[int]uint32)
	for i := range p.Spend {
		last[p.Unit[i]] = p.Arm[i]
	}
	for u, opts := range units {
		if len(opts) == 0 {
			continue
		}
		assert.Equal(t, opts[len(opts)-1].ID, last[u], "unit %d must end on its terminal envelope option", u)
	}
}

// TestBuildPath_ReadsUnitsOnly verifies the builder never mutates the
// envelopes it is handed.
func TestBuildPath_ReadsUnitsOnly(t *testing.T) {
	units := prunedUnits([][]string{{"a", "b"}}, [][]float64{{5, 9}}, [][]float64{{2, 5}})
	before := make([]core.Option, len(units[0]))
	copy(before, units[0])

	qini.BuildPath(units, math.Inf(1))

	assert.Equal(t, before, units[0], "builder must treat units as read-only")
}
