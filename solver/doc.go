// Package solver provides generic multivariate nonlinear-equation solving:
// given F: ℝⁿ → ℝⁿ and an initial guess, find x with F(x) ≈ 0.
//
// 🚀 Contract
//
//	x, err := solver.Solve(residual, x0, solver.Krylov, &opts)
//
//	Solve succeeds — and only succeeds — when ‖F(x)‖∞ < opts.Tolerance
//	within opts.MaxIterations outer iterations. On budget exhaustion it
//	returns ErrNoConvergence; it never returns an unconverged point as a
//	success. Back-ends are interchangeable strategies behind one contract;
//	callers wishing to retry a failed solve must change the method or the
//	initial guess, since re-running an identical deterministic solve fails
//	identically.
//
// Back-ends (closed Method enum; ParseMethod for the string-named surface):
//
//   - Krylov  — matrix-free Newton–GMRES: the Jacobian is never formed,
//     Jacobian-vector products come from forward differences and each
//     Newton step is solved approximately in a Krylov subspace.
//     Best default: O(n) memory per basis vector, no O(n³) factorization.
//   - Broyden — Broyden's good method: one finite-difference Jacobian at
//     the start, inverse kept current by rank-one updates afterwards.
//     Cheapest per iteration when F is expensive to evaluate.
//   - Powell  — dense hybrid: fresh finite-difference Jacobian each
//     iteration, Newton step by least-squares solve, steepest-descent
//     fallback when the Newton direction stalls. Most robust on small,
//     ill-scaled systems.
//
// All back-ends share a backtracking line search on ‖F‖∞ and are fully
// deterministic for a given (F, x0, Options).
//
// Errors (sentinel): ErrNilResidual, ErrEmptyGuess, ErrBadTolerance,
// ErrBadBudget, ErrUnknownMethod, ErrNoConvergence.
package solver
