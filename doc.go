// Package hardcore converts between a rocky planet's mass, radius and core
// radius fraction (CRF) under a two-layer iron-core + silicate-mantle model.
//
// 🚀 Two directions:
//
//	Forward:  (M, CRF) → R
//	Invert:   (M, R)   → (CRFmin, CRFmax, CRFmarg)
//
// ✨ Why hardcore?
//
//   - Pure Go, no cgo; stateless and safe for concurrent use
//   - Frozen, verbatim empirical coefficients (Suissa, Chen & Kipping 2018)
//   - Injectable randomness for reproducible marginal draws
//   - Convergence diagnostics and an opt-in strict validation layer
//
// Under the hood, everything is organized under two subpackages:
//
//	model/     — boundary curves, forward model, Newton term, CRFmax
//	inversion/ — the bounded Newton inversion, options, policies, errors
//
// A small CLI lives in cmd/hardcore.
//
// Units: masses in Earth masses (recommended ≥ 0.1), radii in Earth radii.
//
//	go get github.com/katalvlaran/hardcore
package hardcore
