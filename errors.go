package geomcore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geomcore/dense"
)

var (
	// ErrDidNotConverge is returned when the Newton iteration exhausts its
	// iteration budget with the residual still above tolerance.
	ErrDidNotConverge = errors.New("newton iteration did not converge")
)

// ErrTooManyUnknowns indicates a system larger than the dense solver's
// fixed capacity. The surrounding solver is expected to decompose problems
// below that bound before ever reaching this core.
type ErrTooManyUnknowns struct {
	N int
}

func (e *ErrTooManyUnknowns) Error() string {
	return fmt.Sprintf("%d unknowns exceeds the solver capacity of %d", e.N, dense.MaxUnknowns)
}

// ErrSingularStep indicates the Jacobian was singular at some iteration:
// no unique Newton step exists for the current formulation. Wraps
// dense.ErrSingular.
type ErrSingularStep struct {
	Iteration int
	cause     error
}

func (e *ErrSingularStep) Error() string {
	return fmt.Sprintf("singular jacobian at iteration %d", e.Iteration)
}

func (e *ErrSingularStep) Unwrap() error { return e.cause }
