// SPDX-License-Identifier: MIT
// Package fitness: judge enum, model type and sentinel error set.

package fitness

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Judge is the decision rule used to threshold significance. The set is
// closed: Significant dispatches over it exhaustively and rejects anything
// else with ErrUnknownJudge.
type Judge int

const (
	// PVal flags a pair when its upper-tail p-value is below alpha.
	PVal Judge = iota

	// InvBinom flags a pair when its count reaches the inverse-binomial
	// threshold c*. Selects exactly the same pairs as PVal at equal alpha.
	InvBinom
)

// String returns the canonical judge name.
func (j Judge) String() string {
	switch j {
	case PVal:
		return "p_val"
	case InvBinom:
		return "inv_binom"
	default:
		return "unknown"
	}
}

// ParseJudge maps a judge name ("p_val" or "inv_binom") to its Judge value.
func ParseJudge(name string) (Judge, error) {
	switch name {
	case "p_val":
		return PVal, nil
	case "inv_binom":
		return InvBinom, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownJudge)
	}
}

// Sentinel errors returned by the fitness package.
var (
	// ErrNilAggregate indicates a nil *temporal.Aggregate.
	ErrNilAggregate = errors.New("fitness: aggregate is nil")

	// ErrNilModel indicates a method call on a nil *Model.
	ErrNilModel = errors.New("fitness: model is nil")

	// ErrOrderMismatch indicates an aggregate whose order or period count
	// does not match the model it is tested against.
	ErrOrderMismatch = errors.New("fitness: aggregate does not match model")

	// ErrBadAlpha indicates a significance level outside (0,1) exclusive.
	ErrBadAlpha = errors.New("fitness: alpha must be in (0,1) exclusive")

	// ErrUnknownJudge indicates a Judge outside the supported set.
	ErrUnknownJudge = errors.New("fitness: unknown judge")

	// ErrNotConverged indicates the calibration residual did not meet the
	// tolerance. No model is returned in that case.
	ErrNotConverged = errors.New("fitness: calibration did not converge")
)

// Model is a fitted null model: one activity parameter per node plus the
// period count it was calibrated against. Immutable after Fit; every
// accessor copies or returns a scalar.
type Model struct {
	theta   []float64
	periods int
}

// N returns the number of nodes.
func (m *Model) N() int { return len(m.theta) }

// Periods returns the number of observation periods T the model was
// calibrated against.
func (m *Model) Periods() int { return m.periods }

// Activities returns a copy of the fitted activity parameters θ, in node
// index order. Isolated nodes carry exactly 0.
func (m *Model) Activities() []float64 {
	return append([]float64(nil), m.theta...)
}

// TieProbability returns the per-period tie probability
// p_ij = θ_i·θ_j/(1+θ_i·θ_j), or 0 on the diagonal.
// Panics if i or j is out of range (programmer error).
func (m *Model) TieProbability(i, j int) float64 {
	if i == j {
		return 0
	}
	u := m.theta[i] * m.theta[j]

	return u / (1 + u)
}

// ProbMatrix exports all pairwise tie probabilities as a fresh symmetric
// matrix with a zero diagonal.
func (m *Model) ProbMatrix() *mat.SymDense {
	n := len(m.theta)
	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p.SetSym(i, j, m.TieProbability(i, j))
		}
	}

	return p
}
