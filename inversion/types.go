package inversion

import "math/rand"

// Defaults - single source of truth for zero-config behavior.
const (
	// DefaultTolerance is the |Δx| threshold that ends the Newton iteration.
	DefaultTolerance = 1e-3

	// DefaultMinSteps is the minimum number of Newton steps, applied even if
	// the first step already meets the tolerance.
	DefaultMinSteps = 3

	// DefaultMaxSteps caps the Newton iteration. Reaching it is not an error.
	DefaultMaxSteps = 50

	// initialGuess is the CRF the iteration starts from.
	initialGuess = 0.5
)

// Method tells how CRFmin was obtained.
type Method int

const (
	// Newton: CRFmin is the (clamped) root of Forward(M, x) = R.
	Newton Method = iota

	// IronBound: R ≤ CorefullRadius(M), so CRFmin = 1 without iteration.
	IronBound

	// SilicateBound: R ≥ CorelessRadius(M), so CRFmin = 0 without iteration.
	SilicateBound
)

// String returns a short lowercase name.
func (m Method) String() string {
	switch m {
	case Newton:
		return "newton"
	case IronBound:
		return "iron-bound"
	case SilicateBound:
		return "silicate-bound"
	default:
		return "unknown"
	}
}

// Policy selects how Invert handles CRFmin > CRFmax.
//
//   - SampleBetween — report both bounds as computed; CRFmarg is drawn
//     between them (it lies in [CRFmax, CRFmin]). Default.
//   - SwapBounds    — exchange Min and Max first, so Min ≤ Marg ≤ Max.
//   - RejectInconsistent — return ErrInconsistentBounds with Marg = NaN.
type Policy int

const (
	SampleBetween Policy = iota
	SwapBounds
	RejectInconsistent
)

// String returns the policy name as used in configuration files.
func (p Policy) String() string {
	switch p {
	case SampleBetween:
		return "sample"
	case SwapBounds:
		return "swap"
	case RejectInconsistent:
		return "reject"
	default:
		return "unknown"
	}
}

// ParsePolicy maps "sample", "swap" or "reject" to a Policy.
// The empty string selects SampleBetween.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "sample":
		return SampleBetween, nil
	case "swap":
		return SwapBounds, nil
	case "reject":
		return RejectInconsistent, nil
	default:
		return SampleBetween, ErrBadOptions
	}
}

// StepHook is called after every Newton step with the 1-based step index,
// the new iterate (before clamping) and |Δx|.
type StepHook func(step int, crf, delta float64)

// Options configures Invert.
//
// Fields:
//   - Tolerance    — stop once |Δx| ≤ Tolerance (and MinSteps reached).
//   - MinSteps     — Newton steps always executed (≥ 1).
//   - MaxSteps     — hard cap on Newton steps (≥ MinSteps).
//   - Rand         — source for CRFmarg; nil ⇒ process-wide math/rand.
//   - Inconsistent — policy for CRFmin > CRFmax.
//   - Strict       — reject non-finite or non-positive mass/radius.
//   - OnStep       — optional hook, called after every Newton step.
//
// Start from DefaultOptions (or NewOptions): the zero value has
// MinSteps == 0 and is rejected with ErrBadOptions.
type Options struct {
	Tolerance    float64
	MinSteps     int
	MaxSteps     int
	Rand         *rand.Rand
	Inconsistent Policy
	Strict       bool
	OnStep       StepHook
}

// DefaultOptions returns the reference configuration: tolerance 1e-3,
// 3..50 steps, global RNG, SampleBetween, permissive inputs.
func DefaultOptions() Options {
	return Options{
		Tolerance:    DefaultTolerance,
		MinSteps:     DefaultMinSteps,
		MaxSteps:     DefaultMaxSteps,
		Inconsistent: SampleBetween,
	}
}

// Result is the outcome of one inversion.
type Result struct {
	// Min, Max and Marg are CRFmin, CRFmax and CRFmarg.
	Min, Max, Marg float64

	// Method tells whether Min came from a boundary check or from Newton.
	Method Method

	// Steps is the number of Newton steps taken (0 for boundary cases).
	Steps int

	// Converged is false only when the iteration stopped at MaxSteps
	// with |Δx| > Tolerance, or produced NaN.
	Converged bool

	// Inconsistent reports that CRFmin > CRFmax was observed before any
	// policy was applied.
	Inconsistent bool
}

// Triple returns (Min, Max, Marg).
func (r Result) Triple() (crfMin, crfMax, crfMarg float64) {
	return r.Min, r.Max, r.Marg
}
