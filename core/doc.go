// Package core defines the value types shared by every stage of the
// sparse-maq pipeline: the Option triple, the SolutionPath emitted by the
// greedy builder, and the Result record returned to the caller.
//
// The types here are deliberately plain. Options are three machine words
// and freely copied; paths are four parallel slices appended in lockstep.
// No stage ever reaches back into another stage's state — the pipeline is
// strictly linear (ingest → prune → build → assemble) and core is the only
// vocabulary the stages share.
package core
