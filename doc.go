// Package maq (sparse-maq) builds budget-constrained treatment allocation
// curves — Qini paths — over sparse, ragged inputs in Go.
//
// 🚀 What is sparse-maq?
//
//	A single-threaded, allocation-conscious library that turns millions of
//	(unit, treatment, reward, cost) records into the complete sequence of
//	incremental assignments ranked by marginal cost-effectiveness:
//
//	  • Flat-buffer ingest: six owned buffers in, zero copies on the hot path
//	  • String interning: dense integer ids via borrowed byte-range lookup
//	  • Convex-hull pruning: per-unit LP-dominance on the (cost, reward) plane
//	  • Greedy path building: a max-heap of marginal upgrades with refunds
//
// ✨ Why choose sparse-maq?
//
//   - Sparse-first          — variable-length option lists per unit, no padding
//   - Memory-bounded        — input buffers are released before pruning begins
//   - Deterministic         — identical inputs replay to identical paths
//   - Observable            — pluggable per-phase timing, zerolog sink included
//
// The Solve entry point lives in this package; the pipeline stages are
// organized under five subpackages:
//
//	core/    — Option, SolutionPath and Result value types shared by all stages
//	intern/  — string→dense-id table with heterogeneous byte-range lookup
//	ingest/  — flat-buffer contract, optional validation, the preprocessor
//	hull/    — per-unit convex-hull pruner (upper-left concave envelope)
//	qini/    — greedy priority-queue path builder with upgrade semantics
//
// Quick ASCII picture of one unit's options on the (cost, reward) plane:
//
//	reward
//	  │        ●  kept
//	  │    ●  kept
//	  │  ×  dominated
//	  │ ●  kept
//	  └──────────────── cost
//
// The pruner keeps only the concave upper envelope; the builder then walks
// envelopes across all units in order of marginal reward per unit of cost
// until the budget is spent.
//
//	go get github.com/malone-c/sparse-maq
package maq
