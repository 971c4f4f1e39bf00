// Package inversion recovers the range of core radius fractions (CRF)
// consistent with an observed planet mass and radius.
//
// 🚀 What does Invert return?
//
//	Given (M, R) in Earth units it returns three numbers:
//	  • CRFmin  — smallest core consistent with R (two-layer model root)
//	  • CRFmax  — largest core, CorefullRadius(M)/R
//	  • CRFmarg — one draw uniform in [CRFmin, CRFmax]
//
// Algorithm:
//  1. If R ≤ CorefullRadius(M) ⇒ CRFmin = 1 (no iteration).
//     Else if R ≥ CorelessRadius(M) ⇒ CRFmin = 0 (no iteration).
//  2. Otherwise solve Forward(M, x) = R for x by damped Newton iteration
//     from x = 0.5, stopping once |Δx| ≤ Tolerance after at least MinSteps
//     steps, or after MaxSteps steps. CRFmin = clamp(x, 0, 1).
//  3. CRFmax = clamp(CorefullRadius(M)/R, 0, 1).
//  4. CRFmarg = CRFmin + (CRFmax − CRFmin)·u, u ~ U[0,1).
//
// Non-convergence is silent: Result.Converged reports it, no error is
// returned. Inputs are not validated unless Options.Strict is set.
//
// Both bounds come from independent formulas, so CRFmin > CRFmax is
// possible just above the pure-iron radius. Options.Inconsistent selects
// what happens then (see Policy).
//
// ⚙️ Usage:
//
//	res, err := inversion.Invert(1.0, 1.0, nil) // defaults, global RNG
//
//	opts := inversion.NewOptions(
//	  inversion.WithSeed(42),                    // reproducible CRFmarg
//	  inversion.WithPolicy(inversion.SwapBounds), // keep Min ≤ Max
//	)
//	res, err = inversion.Invert(1.0, 1.0, &opts)
//
// Concurrency:
//   - Invert holds no state. With Options.Rand == nil it draws from the
//     process-wide math/rand source, which is safe for concurrent use.
//   - A *rand.Rand supplied through Options is NOT goroutine-safe; give
//     each goroutine its own Options.
package inversion
