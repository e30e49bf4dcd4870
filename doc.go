// Package geomcore is the numerical and data-structural core of a
// parametric geometric modeler.
//
// The subpackages provide the foundations the constraint engine is built
// on:
//
//   - geom: 3D/2D vector and quaternion algebra — arithmetic, rotation,
//     projection, and the tolerance-sensitive intersection operations.
//   - store: the ordered handle store, a sorted-by-handle container with
//     log-time lookup and cheap bulk tag-and-remove mutation.
//   - dense: a fixed-capacity dense linear solver (up to 16 unknowns),
//     Gaussian elimination with partial pivoting.
//   - list: a plain growable sequence for scratch element runs.
//
// This package itself drives the Newton-Raphson iteration that ties them
// together: each step evaluates residuals, builds a Jacobian (analytic or
// forward-difference), solves the dense system, and applies the update.
//
//	solver, _ := geomcore.NewNewtonSolver(2, residual,
//	    geomcore.WithTolerance(1e-10),
//	    geomcore.WithLogger(geomcore.NewTextLogger(slog.LevelDebug)))
//	x := []float64{1, 1} // initial guess, updated in place
//	stats, err := solver.Solve(x)
//
// Everything here is single threaded: the owning document or solver
// context must serialize mutating access.
package geomcore
