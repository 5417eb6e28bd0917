// SPDX-License-Identifier: MIT
// Package fitness: per-pair significance testing against the fitted model.
//
// Null distribution per pair: X_ij ~ Binomial(T, p_ij). The p-value is the
// strict upper tail P(X > observed), evaluated through the regularized
// incomplete beta function (distuv.Binomial.Survival) so large T never
// touches factorials. The strict tail is what makes an always-tied pair
// under a saturated model (p→1, observed=T) come out with p-value 0 rather
// than 1.

package fitness

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yoshitaka-ogisu/ST-filter/temporal"
)

// PValues returns the symmetric p-value matrix for agg under the fitted
// model. Diagonal convention: NaN (sentinel, never evaluated).
//
// Errors: ErrNilModel, ErrNilAggregate, ErrOrderMismatch.
func (m *Model) PValues(agg *temporal.Aggregate) (*mat.Dense, error) {
	if err := m.checkAggregate(agg); err != nil {
		return nil, err
	}

	n := m.N()
	pv := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		pv.Set(i, i, math.NaN())
		for j := i + 1; j < n; j++ {
			tail := upperTail(agg.Count(i, j), m.periods, m.TieProbability(i, j))
			pv.Set(i, j, tail)
			pv.Set(j, i, tail)
		}
	}

	return pv, nil
}

// Significant returns the 0/1 significant-tie matrix for agg at level alpha
// under the given judge. Both judges select exactly the same pairs for the
// same alpha; InvBinom merely works through the integer threshold c*
// instead of the tail probability. A pair with count 0 is never flagged.
//
// Errors: ErrNilModel, ErrNilAggregate, ErrOrderMismatch, ErrBadAlpha,
// ErrUnknownJudge.
func (m *Model) Significant(agg *temporal.Aggregate, alpha float64, judge Judge) (*mat.Dense, error) {
	if err := m.checkAggregate(agg); err != nil {
		return nil, err
	}
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}

	var flag func(i, j int) bool
	switch judge {
	case PVal:
		flag = func(i, j int) bool {
			count := agg.Count(i, j)

			return count > 0 && upperTail(count, m.periods, m.TieProbability(i, j)) < alpha
		}
	case InvBinom:
		flag = func(i, j int) bool {
			return agg.Count(i, j) >= smallestSignificant(m.periods, m.TieProbability(i, j), alpha)
		}
	default:
		return nil, ErrUnknownJudge
	}

	n := m.N()
	sig := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if flag(i, j) {
				sig.Set(i, j, 1)
				sig.Set(j, i, 1)
			}
		}
	}

	return sig, nil
}

// Thresholds returns the integer threshold grid the InvBinom judge works
// through: cell (i,j) holds the smallest count that would be flagged
// significant at level alpha for that pair. Diagonal convention: 0.
//
// Errors: ErrNilModel, ErrBadAlpha.
func (m *Model) Thresholds(alpha float64) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}

	n := m.N()
	th := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := float64(smallestSignificant(m.periods, m.TieProbability(i, j), alpha))
			th.Set(i, j, c)
			th.Set(j, i, c)
		}
	}

	return th, nil
}

// checkAggregate guards the model/aggregate pairing for the test methods.
func (m *Model) checkAggregate(agg *temporal.Aggregate) error {
	if m == nil {
		return ErrNilModel
	}
	if agg == nil {
		return ErrNilAggregate
	}
	if agg.N() != m.N() || agg.Periods() != m.periods {
		return ErrOrderMismatch
	}

	return nil
}

// validateAlpha enforces alpha ∈ (0,1) exclusive.
func validateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return ErrBadAlpha
	}

	return nil
}

// upperTail returns P(X > k) for X ~ Binomial(periods, p).
func upperTail(k, periods int, p float64) float64 {
	switch {
	case k >= periods || p <= 0:
		return 0
	case p >= 1:
		return 1
	default:
		dist := distuv.Binomial{N: float64(periods), P: p}

		return dist.Survival(float64(k))
	}
}

// smallestSignificant returns the smallest count c ≥ 1 with
// P(X > c) < alpha, by binary search over the (non-increasing) upper tail.
// c = periods always qualifies since P(X > periods) = 0.
func smallestSignificant(periods int, p, alpha float64) int {
	lo, hi := 1, periods
	for lo < hi {
		mid := lo + (hi-lo)/2
		if upperTail(mid, periods, p) < alpha {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
