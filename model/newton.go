package model

import "math"

// NewtonTerm returns f(crf)/f′(crf) for the implicit equation
//
//	f(crf) = Forward(mass, crf) − radius = 0
//
// so that one Newton step is crf − NewtonTerm(mass, radius, crf).
//
// The published expression is scaled by ½ relative to the exact ratio, so
// iterating it is a damped Newton method with step ½: convergence is
// linear, the error roughly halving per step.
//
// Numerator and denominator are hard-coded analytic expressions: each is a
// degree-7 polynomial in ln(M) whose coefficients are polynomials in crf.
// No guard is applied: where f′ vanishes the result is ±Inf or NaN and
// propagates to the caller.
func NewtonTerm(mass, radius, crf float64) float64 {
	var (
		lnM = math.Log(mass)
		num [8]float64
		den [8]float64
	)
	num = newtonNumerator.Coefficients(crf)
	num[0] -= newtonRadiusScale * radius
	den = newtonDenominator.Coefficients(crf)

	return Poly(num[:]).Eval(lnM) / Poly(den[:]).Eval(lnM)
}
