// Package ingest owns the boundary between the caller's columnar world and
// the sparse-maq core: the flat-buffer contract, an optional pre-flight
// validator, and the preprocessor that materializes per-unit option slices.
//
// 🚀 Why flat buffers?
//
//	At T ≈ 2.5×10^8 options, a jagged container interface costs seconds of
//	pure copy overhead. Six flat buffers — list offsets, rewards, costs,
//	string offsets, string bytes, and a unit count — cost nothing: the
//	caller hands over ownership and the core walks them once.
//
// The ownership contract is strict:
//
//   - Once a Buffers value is passed to Preprocess (or maq.Solve), the
//     caller must not read or modify any of its slices.
//   - Preprocess nils every slice before returning, so multi-GB backing
//     arrays become collectable before pruning begins.
//
// Validation is the caller's job. ValidateBuffers exists for callers who
// want the length and monotonicity invariants checked up front; the core
// itself never calls it, and behavior on malformed buffers is undefined.
//
// Complexity:
//
//   - Preprocess: O(T) time over the flat length T; O(T) output space.
//   - ValidateBuffers: O(U + T) time, O(1) space.
package ingest
