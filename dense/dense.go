// Package dense provides a fixed-capacity dense linear solver, the
// numerical kernel of the constraint engine's Newton iteration.
//
// A System is a scratch object: the caller writes the coefficient matrix A
// and right-hand side B for the current step, calls Solve, and reads the
// solution from X. Nothing is retained between solves, so one System can
// be reused across iterations.
package dense

import (
	"errors"
	"fmt"
	"math"
)

// MaxUnknowns is the largest system a System can hold. It reflects the
// largest constraint sub-system the surrounding solver decomposes problems
// into; exceeding it is a caller-side logic error.
const MaxUnknowns = 16

// singularEps is the pivot magnitude below which the matrix is treated as
// singular rather than merely ill conditioned.
const singularEps = 1e-10

// ErrSingular is returned by Solve when the system is singular or near
// singular and has no unique solution this step. The caller's constraint
// logic must handle it, typically by reformulating; X is meaningless.
var ErrSingular = errors.New("dense: matrix is singular")

// System holds one n-by-n linear system A·X = B with n ≤ MaxUnknowns.
// The caller fills A, B, and N directly.
type System struct {
	A [MaxUnknowns][MaxUnknowns]float64
	B [MaxUnknowns]float64
	X [MaxUnknowns]float64
	N int
}

// Solve computes X such that A·X = B by Gaussian elimination with partial
// pivoting, choosing the largest-magnitude candidate pivot at each column
// since the conditioning of a constraint Jacobian varies per step. A and B
// are destroyed. Returns ErrSingular when no unique solution exists.
//
// N outside [0, MaxUnknowns] panics.
func (s *System) Solve() error {
	n := s.N
	if n < 0 || n > MaxUnknowns {
		panic(fmt.Sprintf("dense: system size %d out of range", n))
	}

	// Forward elimination.
	for i := 0; i < n; i++ {
		// Row exchange to bring the largest remaining entry in this
		// column onto the diagonal.
		imax := i
		max := math.Abs(s.A[i][i])
		for ip := i + 1; ip < n; ip++ {
			if v := math.Abs(s.A[ip][i]); v > max {
				max = v
				imax = ip
			}
		}
		if max < singularEps {
			return ErrSingular
		}
		if imax != i {
			s.A[i], s.A[imax] = s.A[imax], s.A[i]
			s.B[i], s.B[imax] = s.B[imax], s.B[i]
		}

		for ip := i + 1; ip < n; ip++ {
			f := s.A[ip][i] / s.A[i][i]
			for jp := i; jp < n; jp++ {
				s.A[ip][jp] -= f * s.A[i][jp]
			}
			s.B[ip] -= f * s.B[i]
		}
	}

	// Back substitution.
	for i := n - 1; i >= 0; i-- {
		sum := s.B[i]
		for j := i + 1; j < n; j++ {
			sum -= s.A[i][j] * s.X[j]
		}
		s.X[i] = sum / s.A[i][i]
	}
	return nil
}
