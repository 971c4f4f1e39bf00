// Package model holds the closed-form two-layer (iron core + silicate
// mantle) planet model: boundary curves, the forward mass/CRF → radius
// relation, its analytic Newton correction, and the CRFmax bound.
//
// 🚀 What is a core radius fraction?
//
//	CRF = R_core / R_planet, a number in [0,1]:
//	  • 0 — no core, a pure silicate (mantle-only) planet
//	  • 1 — all core, a pure iron planet
//
// ✨ Key features:
//   - CorelessRadius / CorefullRadius — end-member radii as functions of mass
//   - Forward — radius of a planet of given mass and CRF
//   - NewtonTerm — f/f′ of Forward(M, CRF) − R, for root finding in CRF
//   - CRFMax — upper CRF bound implied by an observed radius
//
// Every function is pure and safe for concurrent use. Inputs are not
// validated: masses below ~0.1 M⊕ or CRF outside [0,1] are extrapolated,
// and non-positive mass propagates NaN/Inf. Callers that want domain
// checks use the inversion package with Options.Strict.
//
// Units: masses in Earth masses, radii in Earth radii.
//
// The polynomial coefficients are frozen empirical constants from
// Suissa, Chen & Kipping (2018). They are stored verbatim in coeffs.go and
// must not be edited.
package model
