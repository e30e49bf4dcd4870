package geomcore

type options struct {
	maxIterations int
	tolerance     float64
	diffStep      float64
	jacobian      JacobianFunc
	logger        *Logger
	metrics       MetricsCollector
}

func defaultOptions() options {
	return options{
		maxIterations: 50,
		tolerance:     1e-10,
		diffStep:      1e-7,
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
}

// Option configures a NewtonSolver.
type Option func(*options)

// WithMaxIterations sets the iteration budget before the solver gives up
// with ErrDidNotConverge. The default is 50.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithTolerance sets the residual max-norm below which the system counts
// as converged. The default is 1e-10, appropriate when parameters are in
// the modeler's working length units.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithDifferenceStep sets the step used by the forward-difference Jacobian
// when no analytic Jacobian is configured. The default is 1e-7.
func WithDifferenceStep(h float64) Option {
	return func(o *options) {
		o.diffStep = h
	}
}

// WithJacobian configures an analytic Jacobian. Without it the solver
// approximates the Jacobian by forward differences, costing one residual
// evaluation per unknown per iteration.
func WithJacobian(j JacobianFunc) Option {
	return func(o *options) {
		o.jacobian = j
	}
}

// WithLogger configures structured logging for solve runs.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures a metrics collector for solve runs.
//
// If nil is passed, metrics stay disabled.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
