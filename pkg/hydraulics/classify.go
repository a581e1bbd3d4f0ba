package hydraulics

import "math"

// slopeClassTolerance is the relative band within which normal and critical
// depth are considered equal, making the slope critical.
const slopeClassTolerance = 1e-6

// ClassifySlope labels the reach by comparing normal depth to critical
// depth. Mild channels (yn > yc) are controlled from downstream and march
// upstream; steep channels (yn < yc) are controlled from upstream and march
// downstream. The critical class is the degenerate boundary between the two
// and is handled with downstream control.
func ClassifySlope(yn, yc float64) ChannelClass {
	if math.Abs(yn-yc) <= slopeClassTolerance*yc {
		return ClassCritical
	}
	if yn > yc {
		return ClassMild
	}
	return ClassSteep
}

// ClassifyCurve labels the profile curve from the representative depth (the
// first computed station) relative to normal and critical depth. Comparisons
// at the reference depths themselves are inclusive so a profile started
// exactly on yc or yn still classifies.
func ClassifyCurve(class ChannelClass, depth, yn, yc float64) CurveType {
	switch class {
	case ClassMild:
		switch {
		case depth > yn:
			return CurveM1
		case depth >= yc:
			return CurveM2
		case depth > 0:
			return CurveM3
		}
	case ClassSteep:
		switch {
		case depth > yc:
			return CurveS1
		case depth >= yn:
			return CurveS2
		case depth > 0:
			return CurveS3
		}
	case ClassCritical:
		switch {
		case depth > yc:
			return CurveC1
		case depth == yc:
			return CurveC2
		case depth > 0:
			return CurveC3
		}
	}
	return CurveUnknown
}
