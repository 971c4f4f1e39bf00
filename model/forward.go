package model

import "math"

// Forward returns the radius [R⊕] of a two-layer planet of the given mass
// [M⊕] and core radius fraction crf.
//
// Algorithm:
//  1. Evaluate eight coefficient polynomials a0..a7 at crf (degree ≤ 10).
//  2. Return Σₖ aₖ·(log10 M)ᵏ, k = 0..7.
//
// Contract: 0 ≤ crf ≤ 1. Values outside that range are evaluated anyway
// and the result is an extrapolation of the fit.
//
// Complexity: O(1) (fixed number of terms).
func Forward(mass, crf float64) float64 {
	return forwardSurface.Eval(crf, math.Log10(mass))
}

// ForwardCoefficients exposes a0..a7 for the given crf, i.e. the
// coefficients of the degree-7 polynomial in log10(M) used by Forward.
func ForwardCoefficients(crf float64) [8]float64 {
	return forwardSurface.Coefficients(crf)
}
