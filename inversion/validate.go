package inversion

import "math"

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	// NaN would make every |Δx| > tol comparison false and stop the loop
	// at MinSteps regardless of progress.
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return ErrBadOptions
	}
	if o.MinSteps < 1 || o.MaxSteps < o.MinSteps {
		return ErrBadOptions
	}
	switch o.Inconsistent {
	case SampleBetween, SwapBounds, RejectInconsistent:
		// ok
	default:
		return ErrBadOptions
	}

	return nil
}

// validateObservation enforces finite, strictly positive mass and radius.
// Only called under Options.Strict.
func validateObservation(mass, radius float64) error {
	if !positiveFinite(mass) {
		return &DomainError{Param: "mass", Value: mass}
	}
	if !positiveFinite(radius) {
		return &DomainError{Param: "radius", Value: radius}
	}

	return nil
}

func positiveFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}
