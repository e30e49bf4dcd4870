package geom

const (
	// LengthEps is the default length tolerance, in the modeler's working
	// units. Two points closer than this are treated as coincident.
	LengthEps = 1e-6

	// VeryPositive is returned as a distance when no meaningful finite
	// distance exists (e.g. distance to a zero-length line).
	VeryPositive = 1e10
)
