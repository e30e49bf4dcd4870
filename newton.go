package geomcore

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/geomcore/dense"
)

// ResidualFunc evaluates the system's n residuals at x, writing them into
// r. Both slices have length n; the function must not retain them.
type ResidualFunc func(x, r []float64)

// JacobianFunc writes the partial derivative of residual i with respect to
// unknown j into jac[i][j], for the active n-by-n block.
type JacobianFunc func(x []float64, jac *[dense.MaxUnknowns][dense.MaxUnknowns]float64)

// SolveStats reports the outcome of one solve run.
type SolveStats struct {
	// Iterations is the number of Newton steps taken.
	Iterations int
	// Residual is the final residual max-norm.
	Residual float64
}

// NewtonSolver drives Newton-Raphson iteration over a system of n
// residual equations in n unknowns, taking one dense linear solve per
// step. It reuses a single dense.System as scratch across iterations.
//
// A NewtonSolver may be reused across solve runs but not concurrently.
type NewtonSolver struct {
	n        int
	residual ResidualFunc
	opts     options

	sys dense.System
	r   []float64
	r2  []float64
}

// NewNewtonSolver creates a solver for n unknowns with the given residual
// function. Returns *ErrTooManyUnknowns when n exceeds the dense solver
// capacity.
func NewNewtonSolver(n int, residual ResidualFunc, optFns ...Option) (*NewtonSolver, error) {
	if n > dense.MaxUnknowns {
		return nil, &ErrTooManyUnknowns{N: n}
	}
	if n < 1 {
		return nil, fmt.Errorf("system must have at least one unknown, got %d", n)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &NewtonSolver{
		n:        n,
		residual: residual,
		opts:     opts,
		r:        make([]float64, n),
		r2:       make([]float64, n),
	}, nil
}

// Solve iterates from the initial guess in x, updating x in place, until
// the residual max-norm falls below the configured tolerance. On success
// x holds the solution. Returns ErrDidNotConverge when the iteration
// budget runs out, or *ErrSingularStep when a step's Jacobian admits no
// unique solution; x then holds the last iterate and must not be trusted.
func (s *NewtonSolver) Solve(x []float64) (SolveStats, error) {
	if len(x) != s.n {
		return SolveStats{}, fmt.Errorf("got %d initial values for %d unknowns", len(x), s.n)
	}

	log := s.opts.logger
	start := time.Now()

	stats := SolveStats{Residual: math.Inf(1)}
	for iter := 0; iter < s.opts.maxIterations; iter++ {
		s.residual(x, s.r)
		stats.Residual = maxNorm(s.r)
		log.LogIteration(iter, stats.Residual)

		if stats.Residual < s.opts.tolerance {
			s.opts.metrics.RecordSolve(stats.Iterations, time.Since(start), nil)
			log.LogSolve(s.n, stats.Iterations, stats.Residual, nil)
			return stats, nil
		}

		if err := s.step(x, iter); err != nil {
			s.opts.metrics.RecordSolve(stats.Iterations, time.Since(start), err)
			log.LogSolve(s.n, stats.Iterations, stats.Residual, err)
			return stats, err
		}
		stats.Iterations++
	}

	err := fmt.Errorf("%w: residual %g after %d iterations",
		ErrDidNotConverge, stats.Residual, stats.Iterations)
	s.opts.metrics.RecordSolve(stats.Iterations, time.Since(start), err)
	log.LogSolve(s.n, stats.Iterations, stats.Residual, err)
	return stats, err
}

// step solves J·dx = -r for the current iterate and applies the update.
func (s *NewtonSolver) step(x []float64, iter int) error {
	start := time.Now()

	if s.opts.jacobian != nil {
		s.opts.jacobian(x, &s.sys.A)
	} else {
		s.forwardDifference(x)
	}

	s.sys.N = s.n
	for i := 0; i < s.n; i++ {
		s.sys.B[i] = -s.r[i]
	}

	err := s.sys.Solve()
	s.opts.metrics.RecordIteration(time.Since(start), err)
	if err != nil {
		return &ErrSingularStep{Iteration: iter, cause: err}
	}

	for j := 0; j < s.n; j++ {
		x[j] += s.sys.X[j]
	}
	return nil
}

// forwardDifference approximates the Jacobian one column at a time from
// the residual already evaluated at x.
func (s *NewtonSolver) forwardDifference(x []float64) {
	h := s.opts.diffStep
	for j := 0; j < s.n; j++ {
		saved := x[j]
		x[j] = saved + h
		s.residual(x, s.r2)
		x[j] = saved

		for i := 0; i < s.n; i++ {
			s.sys.A[i][j] = (s.r2[i] - s.r[i]) / h
		}
	}
}

func maxNorm(r []float64) float64 {
	var m float64
	for _, v := range r {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
