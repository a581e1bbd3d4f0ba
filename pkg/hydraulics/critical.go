package hydraulics

import "math"

// CriticalDepth finds the depth at which the Froude number equals one for
// the parameter set's discharge and geometry.
//
// Rectangular and triangular sections use their closed forms and always
// converge. Trapezoidal and circular sections are refined iteratively from a
// rectangular-equivalent seed; the search adjusts the depth by the sign of
// Fr-1 and halves its step on every sign reversal. When the iteration cap is
// reached the best estimate is returned with converged=false rather than an
// error.
func CriticalDepth(p ChannelParams) (depth float64, converged bool) {
	g := p.Gravity()
	switch p.Geometry.Shape {
	case ShapeRectangular:
		q := p.Discharge / p.Geometry.BottomWidth
		return math.Cbrt(q * q / g), true
	case ShapeTriangular:
		m := p.Geometry.SideSlope
		return math.Pow(2*p.Discharge*p.Discharge/(g*m*m), 0.2), true
	}
	return refineCriticalDepth(p)
}

// rectangularSeed estimates critical depth as if the section were a
// rectangle of the given width.
func rectangularSeed(p ChannelParams, width float64) float64 {
	q := p.Discharge / width
	return math.Cbrt(q * q / p.Gravity())
}

func refineCriticalDepth(p ChannelParams) (float64, bool) {
	width := p.Geometry.BottomWidth
	if p.Geometry.Shape == ShapeCircular {
		width = p.Geometry.Diameter
	}
	seed := rectangularSeed(p, width)

	y := p.Geometry.clampDepth(seed)
	step := seed / 2
	prevSign := 0
	for i := 0; i < MaxIterations; i++ {
		diff := p.froude(y) - 1
		if math.Abs(diff) < FroudeTolerance {
			return y, true
		}
		sign := 1
		if diff < 0 {
			sign = -1
		}
		if prevSign != 0 && sign != prevSign {
			step /= 2
		}
		prevSign = sign
		// Fr decreases with depth: supercritical means we are too shallow.
		if sign > 0 {
			y += step
		} else {
			y -= step
		}
		y = p.Geometry.clampDepth(y)
	}
	return y, false
}
