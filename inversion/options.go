package inversion

import (
	"math"
	"math/rand"
)

const (
	panicToleranceInvalid = "inversion: WithTolerance: tol must be finite, non-negative"
	panicStepsInvalid     = "inversion: WithSteps: need 1 ≤ minSteps ≤ maxSteps"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); runtime inputs are checked by Invert.
type Option func(*Options)

// NewOptions returns DefaultOptions with opts applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTolerance sets the convergence threshold on |Δx|.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithSteps sets the minimum and maximum number of Newton steps.
func WithSteps(minSteps, maxSteps int) Option {
	if minSteps < 1 || maxSteps < minSteps {
		panic(panicStepsInvalid)
	}

	return func(o *Options) {
		o.MinSteps = minSteps
		o.MaxSteps = maxSteps
	}
}

// WithRand injects the random source used for CRFmarg.
// nil restores the process-wide source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed is WithRand(NewRand(seed)).
func WithSeed(seed int64) Option {
	return WithRand(NewRand(seed))
}

// WithPolicy selects the CRFmin > CRFmax policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Inconsistent = p }
}

// WithStrict toggles domain validation of mass and radius.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithStepHook installs a per-step callback.
func WithStepHook(h StepHook) Option {
	return func(o *Options) { o.OnStep = h }
}
