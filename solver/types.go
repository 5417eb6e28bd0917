// SPDX-License-Identifier: MIT
// Package solver: method enum, options and sentinel error set.

package solver

import (
	"errors"
	"fmt"
	"math"
)

// Residual evaluates the system F at x, writing F(x) into out.
// len(out) == len(x) is guaranteed by the solver; implementations must not
// retain either slice.
type Residual func(x, out []float64)

// Method selects the root-finding back-end. The set is closed: Solve
// dispatches over it exhaustively and rejects anything else with
// ErrUnknownMethod.
type Method int

const (
	// Krylov is matrix-free Newton–GMRES (the default strategy).
	Krylov Method = iota

	// Broyden is Broyden's good method with an inverse-Jacobian update.
	Broyden

	// Powell is a dense Newton/steepest-descent hybrid with a fresh
	// finite-difference Jacobian per iteration.
	Powell
)

// String returns the canonical lower-case method name.
func (m Method) String() string {
	switch m {
	case Krylov:
		return "krylov"
	case Broyden:
		return "broyden"
	case Powell:
		return "powell"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to its Method value. Accepted names are
// "krylov", "broyden" and "powell" (with "hybr" as an alias for the latter,
// matching the conventional hybrid-Powell naming).
func ParseMethod(name string) (Method, error) {
	switch name {
	case "krylov":
		return Krylov, nil
	case "broyden":
		return Broyden, nil
	case "powell", "hybr":
		return Powell, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
}

// Options configures a solve.
//   - Tolerance:     convergence threshold on ‖F(x)‖∞; must be > 0 and finite.
//   - MaxIterations: hard budget of outer iterations; must be ≥ 1. The
//     budget is mandatory — there is no unbounded mode.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// Default solver configuration.
const (
	// DefaultTolerance bounds the residual inf-norm at convergence.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the outer iteration count.
	DefaultMaxIterations = 300
)

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// validate checks an Options value against its documented domain.
func (o Options) validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if o.MaxIterations < 1 {
		return ErrBadBudget
	}

	return nil
}

// Sentinel errors returned by Solve.
var (
	// ErrNilResidual indicates a nil residual function.
	ErrNilResidual = errors.New("solver: residual function is nil")

	// ErrEmptyGuess indicates an empty initial guess.
	ErrEmptyGuess = errors.New("solver: initial guess is empty")

	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("solver: tolerance must be positive and finite")

	// ErrBadBudget indicates a non-positive iteration budget.
	ErrBadBudget = errors.New("solver: iteration budget must be >= 1")

	// ErrUnknownMethod indicates a Method outside the supported set.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrNoConvergence indicates the budget was exhausted before the
	// residual met the tolerance. The returned state is discarded: Solve
	// never hands back an unconverged point.
	ErrNoConvergence = errors.New("solver: failed to converge within iteration budget")
)
