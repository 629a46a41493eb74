package hull

import (
	"sort"

	"github.com/malone-c/sparse-maq/core"
)

// Prune reduces every unit to its concave upper envelope, in place.
// Units are independent; see PruneUnit for the per-unit contract.
func Prune(units [][]core.Option) {
	for i := range units {
		units[i] = PruneUnit(units[i])
	}
}

// PruneUnit sorts opts by cost and returns the slice cut down to the
// upper-left convex hull of its positive-reward points. The returned slice
// shares opts' backing array; the input ordering is destroyed either way.
//
// The scan follows the classic upper-hull discipline with two deviations
// demanded by the allocation setting:
//
//   - points with reward ≤ 0 can never appear on the envelope and are
//     filtered as encountered;
//   - slope ties keep the earlier (cheaper) option, and equal-cost ties
//     keep the higher reward.
func PruneUnit(opts []core.Option) []core.Option {
	if len(opts) == 0 {
		return opts
	}

	// 1) Sort by cost ascending. Stability is irrelevant: equal-cost
	//    ordering is resolved by the push guard below.
	sort.Slice(opts, func(i, j int) bool { return opts[i].Cost < opts[j].Cost })

	// 2) Skip the leading prefix of non-positive rewards.
	first := 0
	for first < len(opts) && opts[first].Reward <= 0 {
		first++
	}

	// 3) Nothing positive survives: the unit is empty.
	if first == len(opts) {
		return opts[:0]
	}

	// 4) Seed the stack with the first positive-reward option. The stack
	//    reuses opts' backing array: the write index never catches up with
	//    the read index, so candidates are read before being overwritten.
	stack := append(opts[:0], opts[first])

	// 5) Scan the remaining candidates in cost order.
	var c core.Option
	for i := first + 1; i < len(opts); i++ {
		c = opts[i]

		// 5a) Pop while the candidate dominates the stack top.
		for len(stack) > 0 && dominates(stack, c) {
			stack = stack[:len(stack)-1]
		}

		// 5b) Push only strict improvements: positive reward, and strictly
		//     more of it than the surviving top (resolves equal-cost ties
		//     toward the higher reward).
		if c.Reward > 0 && (len(stack) == 0 || c.Reward > stack[len(stack)-1].Reward) {
			stack = append(stack, c)
		}
	}

	return stack
}

// dominates reports whether candidate c makes the current stack top
// redundant. With j the option under the top (or the (0,0,0) origin when
// the stack holds a single entry), k the top, and l the candidate, the
// test is the cross-multiplied slope comparison
//
//	(r_l − r_k)/(c_l − c_k) > (r_k − r_j)/(c_k − c_j)
//
// i.e. the envelope through j and l passes above k. Equality is not
// domination: ties keep the earlier option. A non-positive top is always
// dominated (it was only ever provisional).
//
// Equal costs need no special casing: under IEEE-754 the cross products
// compare finitely and the push guard settles the tie.
func dominates(stack []core.Option, c core.Option) bool {
	k := stack[len(stack)-1]
	if k.Reward <= 0 {
		return true
	}

	var j core.Option // origin sentinel (0,0,0) below the first hull point
	if len(stack) >= 2 {
		j = stack[len(stack)-2]
	}

	return (c.Reward-k.Reward)*(k.Cost-j.Cost) > (k.Reward-j.Reward)*(c.Cost-k.Cost)
}
