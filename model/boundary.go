package model

import "math"

// CorelessRadius returns the radius [R⊕] of a solid planet of the given
// mass [M⊕] with no iron core (CRF = 0).
//
// Recommended for mass ≥ 0.1; smaller masses are extrapolated.
// mass ≤ 0 yields NaN or ±Inf.
func CorelessRadius(mass float64) float64 {
	return corelessPoly.Eval(math.Log(mass))
}

// CorefullRadius returns the radius [R⊕] of a solid planet of the given
// mass [M⊕] made entirely of iron (CRF = 1).
//
// Same domain caveats as CorelessRadius.
func CorefullRadius(mass float64) float64 {
	return corefullPoly.Eval(math.Log(mass))
}

// CRFMax returns the maximum core radius fraction consistent with an
// observed radius: CorefullRadius(mass) / radius.
//
// The value is not clamped; it exceeds 1 whenever radius is below the
// pure-iron radius. radius ≤ 0 is the caller's responsibility.
func CRFMax(mass, radius float64) float64 {
	return CorefullRadius(mass) / radius
}
