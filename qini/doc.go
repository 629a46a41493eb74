// Package qini implements the greedy Qini path builder: the global
// allocation loop that repeatedly commits the single most cost-effective
// pending upgrade across all units until the budget — or the supply of
// positive-marginal upgrades — runs out.
//
// The builder consumes pruned units (see package hull) and relies on their
// postconditions: within a unit, costs and rewards strictly increase and
// marginal slopes never do. Each unit therefore holds at most one live heap
// entry at a time, and replacing a unit's committed option by the next one
// on its envelope ("an upgrade") refunds the old cost and reward before
// charging the new — a unit has exactly one active assignment.
//
// Notes on implementation choices:
//
//   - The heap stores (unit, position) index pairs rather than pointers
//     into the option slices; the units slice is never resized while the
//     heap is live, so the pairs stay valid for the whole build.
//   - The heap is a max-heap on marginal reward per unit of cost, via
//     container/heap with Less inverted.
//   - Zero-cost positive-reward options price at +Inf and are consumed
//     before any paid option, as they should be.
//   - Ties in priority fall to the heap's sift order; callers must not
//     rely on a specific order among equal priorities.
//
// Complexity:
//
//   - Time:  O(T log U) worst case — every option enters the heap at most
//     once; each push/pop costs O(log U) since at most one entry per unit
//     is live.
//   - Space: O(U) for the heap and active-assignment table, plus the four
//     output vectors (reserved up front at one slot per pruned option).
package qini
