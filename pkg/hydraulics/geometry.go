// Package hydraulics computes steady, gradually-varied open-channel flow
// profiles for a single prismatic reach using the standard step method.
//
// The package is purely functional: one ChannelParams value in, one
// WaterSurfaceProfile value out, with no shared state between calls.
// Root-finding loops run a fixed maximum number of iterations and return
// their best estimate when the cap is reached; the Converged diagnostics on
// the results distinguish converged from best-effort output.
package hydraulics

import (
	"fmt"
	"math"
)

// ChannelShape identifies the cross-section variant of a ChannelGeometry.
type ChannelShape string

const (
	ShapeRectangular ChannelShape = "rectangular"
	ShapeTrapezoidal ChannelShape = "trapezoidal"
	ShapeTriangular  ChannelShape = "triangular"
	ShapeCircular    ChannelShape = "circular"
)

// ChannelGeometry describes a prismatic cross-section. Exactly one shape is
// active; only the parameters belonging to that shape are meaningful.
// Construct with the New* functions so the shape invariants are checked once,
// up front, rather than on every section-property call. Values decoded from
// JSON must be re-checked with Validate.
type ChannelGeometry struct {
	Shape ChannelShape `json:"shape" yaml:"shape"`

	// BottomWidth is the bed width in meters or feet. Used by rectangular and
	// trapezoidal sections.
	BottomWidth float64 `json:"bottom_width,omitempty" yaml:"bottom-width,omitempty"`

	// SideSlope is the horizontal:vertical bank ratio. Used by trapezoidal
	// and triangular sections.
	SideSlope float64 `json:"side_slope,omitempty" yaml:"side-slope,omitempty"`

	// Diameter of a circular conduit.
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
}

// NewRectangular returns a rectangular section of the given bottom width.
func NewRectangular(bottomWidth float64) (ChannelGeometry, error) {
	g := ChannelGeometry{Shape: ShapeRectangular, BottomWidth: bottomWidth}
	return g, g.Validate()
}

// NewTrapezoidal returns a trapezoidal section with the given bottom width
// and side slope (horizontal:vertical).
func NewTrapezoidal(bottomWidth, sideSlope float64) (ChannelGeometry, error) {
	g := ChannelGeometry{Shape: ShapeTrapezoidal, BottomWidth: bottomWidth, SideSlope: sideSlope}
	return g, g.Validate()
}

// NewTriangular returns a triangular section with the given side slope. The
// bottom width is fixed at zero.
func NewTriangular(sideSlope float64) (ChannelGeometry, error) {
	g := ChannelGeometry{Shape: ShapeTriangular, SideSlope: sideSlope}
	return g, g.Validate()
}

// NewCircular returns a circular conduit of the given diameter.
func NewCircular(diameter float64) (ChannelGeometry, error) {
	g := ChannelGeometry{Shape: ShapeCircular, Diameter: diameter}
	return g, g.Validate()
}

// Validate checks that the parameters required by the active shape are
// present and positive.
func (g ChannelGeometry) Validate() error {
	switch g.Shape {
	case ShapeRectangular:
		if g.BottomWidth <= 0 {
			return fmt.Errorf("%w: rectangular section requires bottom width > 0, got %g", ErrConfiguration, g.BottomWidth)
		}
	case ShapeTrapezoidal:
		if g.BottomWidth <= 0 {
			return fmt.Errorf("%w: trapezoidal section requires bottom width > 0, got %g", ErrConfiguration, g.BottomWidth)
		}
		if g.SideSlope <= 0 {
			return fmt.Errorf("%w: trapezoidal section requires side slope > 0, got %g", ErrConfiguration, g.SideSlope)
		}
	case ShapeTriangular:
		if g.SideSlope <= 0 {
			return fmt.Errorf("%w: triangular section requires side slope > 0, got %g", ErrConfiguration, g.SideSlope)
		}
	case ShapeCircular:
		if g.Diameter <= 0 {
			return fmt.Errorf("%w: circular section requires diameter > 0, got %g", ErrConfiguration, g.Diameter)
		}
	default:
		return fmt.Errorf("%w: unknown channel shape %q", ErrConfiguration, g.Shape)
	}
	return nil
}

// MaxDepth returns the largest depth the section can convey, or +Inf for
// open sections.
func (g ChannelGeometry) MaxDepth() float64 {
	if g.Shape == ShapeCircular {
		return g.Diameter
	}
	return math.Inf(1)
}

func (g ChannelGeometry) checkDepth(y float64) error {
	if y <= 0 {
		return fmt.Errorf("%w: depth must be > 0, got %g", ErrGeometricDomain, y)
	}
	if g.Shape == ShapeCircular && y >= g.Diameter {
		return fmt.Errorf("%w: depth %g exceeds conduit diameter %g", ErrGeometricDomain, y, g.Diameter)
	}
	return nil
}

// centralAngle is the wetted central angle of a partially full circular
// conduit: theta = 2*acos(1 - 2y/d).
func (g ChannelGeometry) centralAngle(y float64) float64 {
	return 2 * math.Acos(1-2*y/g.Diameter)
}

// Area returns the flow area at depth y.
func (g ChannelGeometry) Area(y float64) (float64, error) {
	if err := g.checkDepth(y); err != nil {
		return 0, err
	}
	switch g.Shape {
	case ShapeRectangular:
		return g.BottomWidth * y, nil
	case ShapeTrapezoidal:
		return (g.BottomWidth + g.SideSlope*y) * y, nil
	case ShapeTriangular:
		return g.SideSlope * y * y, nil
	default: // circular
		theta := g.centralAngle(y)
		d := g.Diameter
		return (d * d / 8) * (theta - math.Sin(theta)), nil
	}
}

// TopWidth returns the free-surface width at depth y.
func (g ChannelGeometry) TopWidth(y float64) (float64, error) {
	if err := g.checkDepth(y); err != nil {
		return 0, err
	}
	switch g.Shape {
	case ShapeRectangular:
		return g.BottomWidth, nil
	case ShapeTrapezoidal:
		return g.BottomWidth + 2*g.SideSlope*y, nil
	case ShapeTriangular:
		return 2 * g.SideSlope * y, nil
	default: // circular
		return g.Diameter * math.Sin(g.centralAngle(y)/2), nil
	}
}

// WetPerimeter returns the wetted perimeter at depth y.
func (g ChannelGeometry) WetPerimeter(y float64) (float64, error) {
	if err := g.checkDepth(y); err != nil {
		return 0, err
	}
	switch g.Shape {
	case ShapeRectangular:
		return g.BottomWidth + 2*y, nil
	case ShapeTrapezoidal:
		return g.BottomWidth + 2*y*math.Sqrt(1+g.SideSlope*g.SideSlope), nil
	case ShapeTriangular:
		return 2 * y * math.Sqrt(1+g.SideSlope*g.SideSlope), nil
	default: // circular
		return g.Diameter * g.centralAngle(y) / 2, nil
	}
}

// HydraulicRadius returns area divided by wetted perimeter at depth y.
func (g ChannelGeometry) HydraulicRadius(y float64) (float64, error) {
	a, err := g.Area(y)
	if err != nil {
		return 0, err
	}
	p, err := g.WetPerimeter(y)
	if err != nil {
		return 0, err
	}
	return a / p, nil
}

// clampDepth pulls a trial depth back inside the section's valid domain so
// iterative solvers can keep going instead of producing NaN.
func (g ChannelGeometry) clampDepth(y float64) float64 {
	const floor = 1e-6
	if y < floor {
		return floor
	}
	if g.Shape == ShapeCircular {
		ceil := g.Diameter * (1 - 1e-6)
		if y > ceil {
			return ceil
		}
	}
	return y
}
