package maq

import (
	"time"

	"github.com/rs/zerolog"
)

// Phase names reported to PhaseObserver.PhaseDone, in pipeline order.
const (
	// PhasePreprocess covers buffer walking, interning, and unit
	// materialization (package ingest).
	PhasePreprocess = "preprocess"

	// PhasePrune covers per-unit convex-hull pruning (package hull).
	PhasePrune = "prune"

	// PhaseBuild covers the greedy path build (package qini).
	PhaseBuild = "build"
)

// PhaseObserver receives wall-clock timings as each pipeline phase
// completes. Implementations must be cheap and must not fail: the solve
// proceeds identically whatever the observer does.
type PhaseObserver interface {
	// PhaseDone reports that the named phase finished after elapsed
	// wall-clock time. Called exactly once per phase, in pipeline order.
	PhaseDone(phase string, elapsed time.Duration)
}

// nopObserver is the default: timings are measured but dropped.
type nopObserver struct{}

func (nopObserver) PhaseDone(string, time.Duration) {}

// logObserver emits one structured log line per phase.
type logObserver struct {
	log zerolog.Logger
}

// NewLogObserver adapts a zerolog logger into a PhaseObserver.
func NewLogObserver(l zerolog.Logger) PhaseObserver {
	return logObserver{log: l}
}

// PhaseDone logs the phase name and elapsed duration at info level.
func (o logObserver) PhaseDone(phase string, elapsed time.Duration) {
	o.log.Info().
		Str("phase", phase).
		Dur("elapsed", elapsed).
		Msg("maq: phase complete")
}
