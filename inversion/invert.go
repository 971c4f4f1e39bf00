package inversion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hardcore/model"
)

// Invert returns (CRFmin, CRFmax, CRFmarg) for an observed mass [M⊕] and
// radius [R⊕], plus convergence diagnostics.
//
// opts == nil ⇒ DefaultOptions(). The returned error is non-nil only for
// invalid Options, a Strict-mode domain violation, or an inconsistent
// pair under RejectInconsistent (the computed Result is still returned).
//
// Complexity: O(MaxSteps) evaluations of the Newton term.
func Invert(mass, radius float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}
	if o.Strict {
		if err := validateObservation(mass, radius); err != nil {
			return Result{}, err
		}
	}

	var res Result

	// Stage 1: CRFmin.
	res.Min, res.Method, res.Steps, res.Converged = minCRF(mass, radius, o)

	// Stage 2: CRFmax, closed form.
	res.Max = clamp01(model.CRFMax(mass, radius))

	// Stage 3: reconcile the two independent bounds.
	res.Inconsistent = res.Min > res.Max
	if res.Inconsistent {
		switch o.Inconsistent {
		case SwapBounds:
			res.Min, res.Max = res.Max, res.Min
		case RejectInconsistent:
			res.Marg = math.NaN()

			return res, fmt.Errorf("%w: min=%g max=%g", ErrInconsistentBounds, res.Min, res.Max)
		}
	}

	// Stage 4: marginal draw.
	res.Marg = uniform(res.Min, res.Max, o.Rand)

	return res, nil
}

// minCRF applies the boundary checks and otherwise runs the damped Newton
// iteration. It returns the clamped CRFmin, how it was obtained, the number
// of Newton steps and whether the tolerance was met.
func minCRF(mass, radius float64, o Options) (float64, Method, int, bool) {
	if radius <= model.CorefullRadius(mass) {
		return 1, IronBound, 0, true
	}
	if radius >= model.CorelessRadius(mass) {
		return 0, SilicateBound, 0, true
	}

	var (
		prev  = 0.0
		curr  = initialGuess
		delta = math.Abs(curr - prev)
		steps int
	)
	// A NaN delta fails the > comparison, so a degenerate iterate ends the
	// loop as soon as MinSteps is reached.
	for (delta > o.Tolerance || steps < o.MinSteps) && steps < o.MaxSteps {
		prev = curr
		curr = prev - model.NewtonTerm(mass, radius, prev)
		delta = math.Abs(curr - prev)
		steps++
		if o.OnStep != nil {
			o.OnStep(steps, curr, delta)
		}
	}

	return clamp01(curr), Newton, steps, delta <= o.Tolerance
}

// clamp01 clamps x to [0,1]; NaN passes through.
func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
