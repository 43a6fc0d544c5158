// SPDX-License-Identifier: MIT
// Package poly: sentinel error set. All functions return these sentinels
// (optionally wrapped with operation context via %w) and tests match them
// with errors.Is. No function panics on user-triggered conditions.

package poly

import "errors"

var (
	// ErrNoCoefficients is returned when a constructor receives an empty
	// coefficient sequence; at least one coefficient is required so the
	// coefficient domain is known.
	ErrNoCoefficients = errors.New("poly: no coefficients")

	// ErrDivisorZero is returned by QuoRem/Mod/GCD when the divisor is the
	// zero polynomial.
	ErrDivisorZero = errors.New("poly: division by zero polynomial")

	// ErrVariableMismatch is returned by binary operations whose operands
	// carry different variable labels.
	ErrVariableMismatch = errors.New("poly: variable mismatch")

	// ErrNegativeDegree is returned when a monomial of negative degree is
	// requested.
	ErrNegativeDegree = errors.New("poly: negative degree")
)
