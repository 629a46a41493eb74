package maq

import (
	"os"

	"github.com/rs/zerolog"
)

// profileEnv is the environment switch that turns on the default
// per-phase timing sink. Observational only: results never change.
const profileEnv = "PROFILE"

// Options configures a solve. Only observability is configurable — the
// allocation semantics themselves have no knobs.
type Options struct {
	// Observer receives one PhaseDone callback per pipeline phase.
	// Defaults to a no-op unless PROFILE=1 is set in the environment,
	// in which case timings go to a zerolog sink on stderr.
	Observer PhaseObserver
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithObserver installs a custom per-phase observer. Each phase owns its
// own timer; the observer never couples phases.
func WithObserver(o PhaseObserver) Option {
	return func(opts *Options) {
		opts.Observer = o
	}
}

// WithLogger routes per-phase timings to the given zerolog logger,
// regardless of the PROFILE environment variable.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Observer = NewLogObserver(l)
	}
}

// WithProfiling forces the default stderr timing sink on, as if PROFILE=1
// were set.
func WithProfiling() Option {
	return func(opts *Options) {
		opts.Observer = NewLogObserver(defaultLogger())
	}
}

// DefaultOptions returns the Options a bare Solve call runs with:
// a no-op observer, or the stderr zerolog sink when PROFILE=1.
func DefaultOptions() Options {
	o := Options{Observer: nopObserver{}}
	if os.Getenv(profileEnv) == "1" {
		o.Observer = NewLogObserver(defaultLogger())
	}

	return o
}

// defaultLogger builds the stderr sink used by PROFILE=1 and WithProfiling.
func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
