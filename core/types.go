package core

// Option is the atomic record of the system: one treatment available to one
// unit. After preprocessing, ID is a dense index into the interning table
// (see Result.Arms). Reward and Cost are IEEE-754 doubles.
//
// Options are value-typed (3 machine words) and freely copied.
type Option struct {
	ID     uint32  // dense treatment id assigned at first encounter
	Reward float64 // scalar reward of committing this option
	Cost   float64 // scalar cost of committing this option
}

// SolutionPath is the Qini path: four parallel sequences recording every
// incremental assignment in the order the greedy builder committed it, plus
// a completion flag.
//
// Invariants:
//
//   - Spend, Gain, Unit and Arm always have equal length.
//   - Spend and Gain are monotone non-decreasing.
//   - Spend[len-1] is ≤ the budget, or exceeds it by exactly one step
//     (the "rounded-up" terminal record).
type SolutionPath struct {
	// Spend[i] is the cumulative cost after step i.
	Spend []float64
	// Gain[i] is the cumulative reward after step i.
	Gain []float64
	// Unit[i] is the positional index of the unit assigned or upgraded at step i.
	Unit []int
	// Arm[i] is the dense treatment id now active on Unit[i].
	Arm []uint32
	// Complete is true iff the builder stopped because no positive-marginal
	// upgrade remained, rather than because the budget was exhausted.
	Complete bool
}

// Len returns the number of committed steps in the path.
func (p *SolutionPath) Len() int { return len(p.Spend) }

// Result packages a solve: the emitted path plus the interning table.
// Arms[id] recovers the original string identifier of dense id `id`;
// it is insertion-ordered (first-seen during the unit-major walk) and is
// handed to the caller by move.
type Result struct {
	Path SolutionPath
	Arms []string
}
