package fitness_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yoshitaka-ogisu/ST-filter/fitness"
	"github.com/yoshitaka-ogisu/ST-filter/solver"
	"github.com/yoshitaka-ogisu/ST-filter/temporal"
)

// fitCommunities fits the standing fixture once per test.
func fitCommunities(t *testing.T) (*fitness.Model, *temporal.Aggregate) {
	t.Helper()
	agg := communitiesAggregate(t)
	model, err := fitness.Fit(agg, solver.Krylov, nil)
	require.NoError(t, err, "fixture must calibrate")

	return model, agg
}

// TestSignificant_CommunityPairsFlagged checks the headline behavior: the
// heavily repeated pairs are significant, the incidental ones are not.
func TestSignificant_CommunityPairsFlagged(t *testing.T) {
	model, agg := fitCommunities(t)

	sig, err := model.Significant(agg, 0.01, fitness.PVal)
	require.NoError(t, err)

	assert.Equal(t, 1.0, sig.At(0, 1), "pair 0-1 tied 8/20 vs uniform expectation 3")
	assert.Equal(t, 1.0, sig.At(2, 3), "pair 2-3 tied 8/20 vs uniform expectation 3")
	assert.Equal(t, 0.0, sig.At(0, 2), "a single incidental tie is not significant")
	assert.Equal(t, 0.0, sig.At(1, 3), "a single incidental tie is not significant")
	assert.Equal(t, 0.0, sig.At(0, 3), "a never-observed pair is never significant")
}

// TestSignificant_JudgesSelectSamePairs is the consistency invariant: for
// equal alpha the p-value judge and the inverse-binomial judge must flag
// exactly the same pairs.
func TestSignificant_JudgesSelectSamePairs(t *testing.T) {
	model, agg := fitCommunities(t)

	for _, alpha := range []float64{0.001, 0.01, 0.05, 0.2, 0.5} {
		byP, err := model.Significant(agg, alpha, fitness.PVal)
		require.NoError(t, err)
		byThreshold, err := model.Significant(agg, alpha, fitness.InvBinom)
		require.NoError(t, err)

		assert.True(t, mat.Equal(byP, byThreshold),
			"judges must agree at alpha=%g", alpha)
	}
}

// TestSignificant_MonotonicInAlpha verifies that raising alpha never
// removes a flagged tie.
func TestSignificant_MonotonicInAlpha(t *testing.T) {
	model, agg := fitCommunities(t)

	previous := -1.0
	for _, alpha := range []float64{0.0001, 0.001, 0.01, 0.1, 0.4, 0.9} {
		sig, err := model.Significant(agg, alpha, fitness.PVal)
		require.NoError(t, err)

		flagged := mat.Sum(sig)
		assert.GreaterOrEqual(t, flagged, previous,
			"flag count must not drop when alpha rises to %g", alpha)
		previous = flagged
	}
}

// TestOutputs_ShapeInvariants verifies symmetry and the diagonal
// conventions of every derived matrix.
func TestOutputs_ShapeInvariants(t *testing.T) {
	model, agg := fitCommunities(t)
	n := model.N()

	pv, err := model.PValues(agg)
	require.NoError(t, err)
	sig, err := model.Significant(agg, 0.05, fitness.InvBinom)
	require.NoError(t, err)
	th, err := model.Thresholds(0.05)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		assert.True(t, math.IsNaN(pv.At(i, i)), "p-value diagonal is NaN")
		assert.Equal(t, 0.0, sig.At(i, i), "significance diagonal is zero")
		assert.Equal(t, 0.0, th.At(i, i), "threshold diagonal is zero")
		for j := i + 1; j < n; j++ {
			assert.Equal(t, pv.At(i, j), pv.At(j, i), "p-values symmetric at (%d,%d)", i, j)
			assert.Equal(t, sig.At(i, j), sig.At(j, i), "flags symmetric at (%d,%d)", i, j)
			assert.Equal(t, th.At(i, j), th.At(j, i), "thresholds symmetric at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, pv.At(i, j), 0.0, "p-value lower bound")
			assert.LessOrEqual(t, pv.At(i, j), 1.0, "p-value upper bound")
		}
	}
}

// TestSignificant_ParameterErrors covers alpha domain and the closed judge set.
func TestSignificant_ParameterErrors(t *testing.T) {
	model, agg := fitCommunities(t)

	for _, alpha := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err := model.Significant(agg, alpha, fitness.PVal)
		assert.ErrorIs(t, err, fitness.ErrBadAlpha, "alpha=%v is outside (0,1)", alpha)
	}

	_, err := model.Significant(agg, 0.05, fitness.Judge(9))
	assert.ErrorIs(t, err, fitness.ErrUnknownJudge, "judge outside the closed set")

	_, err = model.Thresholds(0)
	assert.ErrorIs(t, err, fitness.ErrBadAlpha, "thresholds share the alpha domain")
}

// TestParseJudge pins the string-named judge surface.
func TestParseJudge(t *testing.T) {
	j, err := fitness.ParseJudge("p_val")
	require.NoError(t, err)
	assert.Equal(t, fitness.PVal, j)

	j, err = fitness.ParseJudge("inv_binom")
	require.NoError(t, err)
	assert.Equal(t, fitness.InvBinom, j)

	_, err = fitness.ParseJudge("bonferroni")
	assert.ErrorIs(t, err, fitness.ErrUnknownJudge)

	assert.Equal(t, "p_val", fitness.PVal.String())
	assert.Equal(t, "inv_binom", fitness.InvBinom.String())
	assert.Equal(t, "unknown", fitness.Judge(9).String())
}
