// Package fitness calibrates the maximum-entropy null model of a temporal
// network and tests every observed pair count against it.
//
// 🚀 The null model
//
//	Each node i carries one latent activity parameter θ_i ≥ 0. In every
//	observation period, pair (i,j) ties independently with probability
//
//	    p_ij = θ_i·θ_j / (1 + θ_i·θ_j)
//
//	Fit solves the calibration system — for every node, the expected
//	aggregate tie count Σ_{j≠i} T·p_ij must equal the observed row sum —
//	jointly over all n unknowns, delegating the root finding to the
//	pluggable solver package. Isolated nodes (row sum 0) are a degenerate
//	fixed point a generic solver may miss, so their θ is pinned to 0
//	directly and they are excluded from the solved system.
//
//	Fit returns a Model only when the maximum calibration residual is below
//	the solver tolerance; anything else is an error, never a silently wrong
//	θ — every downstream p-value depends on the calibration being correct.
//
// ✨ Significance testing
//
//	Under the fitted model the count of pair (i,j) is Binomial(T, p_ij).
//	Two judges decide significance at level alpha, and always select exactly
//	the same pairs:
//		• PVal     — p-value P(X > observed) < alpha (strict upper tail,
//		  evaluated through the regularized incomplete beta — stable for
//		  any T, no factorials)
//		• InvBinom — observed ≥ c*, where c* is the smallest count whose
//		  upper tail falls below alpha; Thresholds exposes the c* grid
//	A pair never observed tied (count 0) is never significant.
//
// The p-value matrix convention: symmetric, NaN on the diagonal (a node
// never ties itself; the cell is a sentinel, never evaluated).
package fitness
