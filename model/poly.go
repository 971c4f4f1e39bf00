package model

// Poly is a polynomial stored in ascending degree order:
// p(x) = p[0] + p[1]·x + … + p[n]·xⁿ.
type Poly []float64

// Eval evaluates p at x using Horner's scheme.
// An empty polynomial evaluates to 0.
//
// Complexity: O(len(p)).
func (p Poly) Eval(x float64) float64 {
	var (
		acc float64
		i   int
	)
	for i = len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// Degree returns the formal degree of p (len(p)−1), or −1 for an empty p.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Surface is a degree-7 polynomial in an outer variable (a logarithm of
// mass) whose eight coefficients are themselves polynomials in CRF:
//
//	s(crf, u) = Σₖ s[k](crf)·uᵏ,  k = 0..7.
type Surface [8]Poly

// Coefficients evaluates the eight inner polynomials at crf.
//
// Complexity: O(Σ len(s[k])).
func (s *Surface) Coefficients(crf float64) [8]float64 {
	var (
		out [8]float64
		k   int
	)
	for k = range s {
		out[k] = s[k].Eval(crf)
	}

	return out
}

// Eval returns s(crf, u).
func (s *Surface) Eval(crf, u float64) float64 {
	var c = s.Coefficients(crf)

	return Poly(c[:]).Eval(u)
}
