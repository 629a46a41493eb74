// Package hull prunes dominated treatment options from each unit
// independently, retaining only the upper-left concave envelope of
// positive-reward (cost, reward) points — the options an optimal
// budget-constrained allocator could ever commit.
//
// 🚀 What is LP-dominance?
//
//	An option is dominated when some mixture of cheaper and dearer options
//	delivers strictly more reward at its cost. Geometrically: the point
//	lies strictly below the segment joining its hull neighbors; points on
//	the segment (equal slopes) are kept. The scan is a
//	Graham-scan variant walking options in cost order and popping stack
//	tops whose marginal slope is no longer the steepest available.
//
// Postconditions per surviving unit:
//
//   - strictly increasing cost,
//   - strictly increasing reward,
//   - non-increasing marginal slope (concavity),
//   - every reward > 0.
//
// These are exactly the preconditions the greedy path builder relies on:
// each unit's upgrade priorities come out positive and non-increasing, so
// the heap never needs decrease-key.
//
// Complexity:
//
//   - Time:  O(n log n) per unit for the sort; the hull scan itself is
//     amortized O(n) — each option is pushed and popped at most once.
//   - Space: O(1) beyond the unit — the scan reuses the unit's backing
//     array as its stack.
//
// On real sparse-MAQ data most treatments are dominated, so pruning
// shrinks the working set by orders of magnitude before the builder runs.
package hull
