package qini

import (
	"container/heap"

	"github.com/malone-c/sparse-maq/core"
)

// BuildPath runs the greedy allocation loop over pruned units and returns
// the full Qini path up to the budget.
//
// Contract:
//
//   - units must satisfy the hull postconditions (package hull); BuildPath
//     reads them and never mutates.
//   - budget ≤ 0 returns an empty path with Complete=false: nothing was
//     consumed, and upgrades remain by fiat.
//   - Otherwise the loop runs until the heap empties or cumulative spend
//     reaches the budget. Complete reports whether the heap is empty at
//     exit, so a final step that both reaches the budget and takes the
//     last entry still yields Complete=true. The terminal record may
//     overshoot the budget by exactly one step — the Qini "rounded-up"
//     solution.
//
// BuildPath does not fail: empty input yields empty outputs and
// Complete=true.
func BuildPath(units [][]core.Option, budget float64) core.SolutionPath {
	// 1) A non-positive budget buys nothing; report incompleteness without
	//    touching the units at all.
	if budget <= 0 {
		return core.SolutionPath{Complete: false}
	}

	// 2) Size the runner: the path can hold at most one step per surviving
	//    option, so reserve exactly that once and never reallocate.
	total := 0
	for _, u := range units {
		total += len(u)
	}

	r := &runner{
		units:  units,
		budget: budget,
		active: make([]int, len(units)),
		pq:     make(entryPQ, 0, len(units)),
		path: core.SolutionPath{
			Spend: make([]float64, 0, total),
			Gain:  make([]float64, 0, total),
			Unit:  make([]int, 0, total),
			Arm:   make([]uint32, 0, total),
		},
	}

	// 3) Seed, run, and stamp the completion flag.
	r.init()
	r.process()
	r.path.Complete = r.pq.Len() == 0

	return r.path
}

// runner holds the mutable state of one build.
type runner struct {
	units  [][]core.Option // pruned envelopes; read-only here
	budget float64
	active []int   // active[u] = 1 + position of u's committed option, 0 if none
	spend  float64 // cumulative cost of all active assignments
	gain   float64 // cumulative reward of all active assignments
	pq     entryPQ // max-heap of pending first assignments and upgrades
	path   core.SolutionPath
}

// init pushes each non-empty unit's first envelope option, priced at its
// raw reward-per-cost ratio. Pruning guarantees Reward > 0; a zero cost
// divides to +Inf, which the max-heap serves first.
func (r *runner) init() {
	heap.Init(&r.pq)
	var first core.Option
	for u := range r.units {
		if len(r.units[u]) == 0 {
			continue // empty unit: never enters the heap
		}
		first = r.units[u][0]
		heap.Push(&r.pq, entry{unit: u, pos: 0, priority: first.Reward / first.Cost})
	}
}

// process is the main greedy loop: pop the globally best pending upgrade,
// refund the unit's previous assignment if it had one, commit, and offer
// the unit's next envelope option back to the heap.
func (r *runner) process() {
	var (
		e    entry
		c    core.Option
		prev core.Option
	)
	for r.pq.Len() > 0 && r.spend < r.budget {
		// 1) Pop the highest marginal-return candidate.
		e = heap.Pop(&r.pq).(entry)
		c = r.units[e.unit][e.pos]

		// 2) Refund the unit's current assignment, if any: a unit has
		//    exactly one active option at a time.
		if r.active[e.unit] > 0 {
			prev = r.units[e.unit][r.active[e.unit]-1]
			r.spend -= prev.Cost
			r.gain -= prev.Reward
		}

		// 3) Commit the candidate and record the cumulative step.
		r.spend += c.Cost
		r.gain += c.Reward
		r.active[e.unit] = e.pos + 1

		r.path.Spend = append(r.path.Spend, r.spend)
		r.path.Gain = append(r.path.Gain, r.gain)
		r.path.Unit = append(r.path.Unit, e.unit)
		r.path.Arm = append(r.path.Arm, c.ID)

		// 4) Offer the unit's next envelope option. Concavity makes the
		//    upgrade priority positive and no greater than the one just
		//    served, so the heap order is preserved.
		if next := e.pos + 1; next < len(r.units[e.unit]) {
			n := r.units[e.unit][next]
			heap.Push(&r.pq, entry{
				unit:     e.unit,
				pos:      next,
				priority: (n.Reward - c.Reward) / (n.Cost - c.Cost),
			})
		}

		// 5) The loop condition re-checks spend < budget: a step that
		//    reaches or crosses the budget is the rounded-up terminal
		//    record and ends the build.
	}
}

// entry is one pending assignment: the option at units[unit][pos], priced
// by its marginal reward per unit of cost. Index pairs keep the heap valid
// without holding pointers into the option slices.
type entry struct {
	unit     int
	pos      int
	priority float64
}

// entryPQ is a max-heap of entries ordered by priority descending,
// driven through container/heap.
type entryPQ []entry

// Len returns the number of pending entries.
func (pq entryPQ) Len() int { return len(pq) }

// Less inverts the usual min-heap order: greater priority wins.
func (pq entryPQ) Less(i, j int) bool { return pq[i].priority > pq[j].priority }

// Swap swaps two entries.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push, x must be an entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; called by heap.Pop after the
// root has been swapped to the back.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
