// Package inversion: sentinel error set.
// All failures returned by this package match one of these sentinels via
// errors.Is. Numeric degeneracy (NaN/Inf, non-convergence) is NOT an error
// unless the caller opts in through Options.Strict or RejectInconsistent.

package inversion

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomain is returned under Options.Strict when mass or radius
	// is non-finite or not strictly positive.
	ErrInvalidDomain = errors.New("inversion: observation outside model domain")

	// ErrBadOptions indicates nonsensical Options (negative or NaN tolerance,
	// step limits out of order, unknown policy).
	ErrBadOptions = errors.New("inversion: invalid options")

	// ErrInconsistentBounds is returned under RejectInconsistent when
	// CRFmin > CRFmax.
	ErrInconsistentBounds = errors.New("inversion: CRFmin exceeds CRFmax")
)

// DomainError reports which observation failed strict validation.
type DomainError struct {
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("inversion: %s=%g must be finite and > 0", e.Param, e.Value)
}

// Unwrap lets errors.Is(err, ErrInvalidDomain) match.
func (e *DomainError) Unwrap() error {
	return ErrInvalidDomain
}
