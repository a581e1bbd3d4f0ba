package hydraulics

import "math"

// section bundles the geometric properties the solvers evaluate together at
// every trial depth. Depths are clamped into the shape's valid domain before
// evaluation, so the underlying geometry calls cannot fail here.
type section struct {
	depth    float64
	area     float64
	topWidth float64
	radius   float64
}

func (p ChannelParams) section(y float64) section {
	y = p.Geometry.clampDepth(y)
	a, _ := p.Geometry.Area(y)
	t, _ := p.Geometry.TopWidth(y)
	r, _ := p.Geometry.HydraulicRadius(y)
	return section{depth: y, area: a, topWidth: t, radius: r}
}

// froude returns Q / (A * sqrt(g*A/T)), the Froude number at depth y.
func (p ChannelParams) froude(y float64) float64 {
	s := p.section(y)
	return p.Discharge / (s.area * math.Sqrt(p.Gravity()*s.area/s.topWidth))
}

// specificEnergy returns y + v²/2g at depth y.
func (p ChannelParams) specificEnergy(y float64) float64 {
	s := p.section(y)
	v := p.Discharge / s.area
	return s.depth + v*v/(2*p.Gravity())
}

// frictionSlope returns Manning's friction slope Sf = (Q*n / (kn*A*R^(2/3)))²
// at depth y.
func (p ChannelParams) frictionSlope(y float64) float64 {
	s := p.section(y)
	conveyance := (p.ManningK() / p.Roughness) * s.area * math.Pow(s.radius, 2.0/3.0)
	ratio := p.Discharge / conveyance
	return ratio * ratio
}

// manningDischarge returns the discharge Manning's equation predicts at depth
// y for the channel's slope and roughness.
func (p ChannelParams) manningDischarge(y float64) float64 {
	s := p.section(y)
	return (p.ManningK() / p.Roughness) * s.area * math.Pow(s.radius, 2.0/3.0) * math.Sqrt(p.BedSlope)
}
