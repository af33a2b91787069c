// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// validators.go - parameter checks shared by constructors.

package builder

import "fmt"

// validateMin ensures got >= min, wrapping ErrTooFewVertices.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %g: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}
