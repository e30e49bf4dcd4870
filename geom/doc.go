// Package geom provides the 3D/2D vector and quaternion algebra used by the
// modeler's constraint engine: arithmetic, rotation, projection, line and
// plane intersection, and bounding-box tests.
//
// All types are plain float64 value types. Every operation is a pure
// function of its inputs — no allocation, no shared state — so values can
// be freely created and discarded per computation.
//
// Geometric degeneracies (parallel planes, skew lines, zero-length
// normalization) are reported through explicit boolean returns, never
// through panics; see the individual operations.
package geom
