package hardcore

import (
	"github.com/katalvlaran/hardcore/inversion"
	"github.com/katalvlaran/hardcore/model"
)

// Forward returns the radius [R⊕] of a planet with the given mass [M⊕] and
// core radius fraction (0 ≤ crf ≤ 1, not enforced).
func Forward(mass, crf float64) float64 {
	return model.Forward(mass, crf)
}

// Invert returns CRFmin, CRFmax and a marginal CRF drawn uniformly between
// them, using default options and the process-wide random source.
//
// Default options never produce an error, so none is returned; callers
// that need diagnostics or validation use InvertWithOptions.
func Invert(mass, radius float64) (crfMin, crfMax, crfMarg float64) {
	res, _ := inversion.Invert(mass, radius, nil)

	return res.Triple()
}

// InvertWithOptions is inversion.Invert. opts == nil ⇒ defaults.
func InvertWithOptions(mass, radius float64, opts *inversion.Options) (inversion.Result, error) {
	return inversion.Invert(mass, radius, opts)
}
