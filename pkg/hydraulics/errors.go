package hydraulics

import "errors"

// Sentinel errors for the engine boundary. Callers discriminate with
// errors.Is; no panics cross this package.
var (
	// ErrConfiguration indicates a geometry was constructed with a missing or
	// invalid shape parameter.
	ErrConfiguration = errors.New("invalid channel geometry configuration")

	// ErrInvalidInput indicates a non-positive discharge, slope, roughness,
	// length, or boundary depth in the channel parameters.
	ErrInvalidInput = errors.New("invalid channel parameters")

	// ErrGeometricDomain indicates a depth outside the valid domain of the
	// active shape, e.g. depth at or above the diameter of a circular conduit.
	ErrGeometricDomain = errors.New("depth outside geometric domain")
)
