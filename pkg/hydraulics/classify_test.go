package hydraulics

import "testing"

func TestClassifySlope(t *testing.T) {
	tests := []struct {
		name   string
		yn, yc float64
		want   ChannelClass
	}{
		{"mild", 3.0, 1.4, ClassMild},
		{"steep", 0.8, 1.4, ClassSteep},
		{"critical exact", 1.4, 1.4, ClassCritical},
		{"critical within tolerance", 1.4 + 1e-9, 1.4, ClassCritical},
		{"barely mild", 1.41, 1.4, ClassMild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySlope(tt.yn, tt.yc); got != tt.want {
				t.Errorf("ClassifySlope(%g, %g) = %q, want %q", tt.yn, tt.yc, got, tt.want)
			}
		})
	}
}

func TestClassifyCurve(t *testing.T) {
	tests := []struct {
		name          string
		class         ChannelClass
		depth, yn, yc float64
		want          CurveType
	}{
		{"M1 backwater", ClassMild, 3.5, 3.0, 1.4, CurveM1},
		{"M2 drawdown", ClassMild, 2.0, 3.0, 1.4, CurveM2},
		{"M2 at critical", ClassMild, 1.4, 3.0, 1.4, CurveM2},
		{"M3 supercritical", ClassMild, 0.8, 3.0, 1.4, CurveM3},
		{"S1 above critical", ClassSteep, 1.8, 0.8, 1.4, CurveS1},
		{"S2 between", ClassSteep, 1.1, 0.8, 1.4, CurveS2},
		{"S2 at normal", ClassSteep, 0.8, 0.8, 1.4, CurveS2},
		{"S3 below normal", ClassSteep, 0.5, 0.8, 1.4, CurveS3},
		{"C1", ClassCritical, 1.6, 1.4, 1.4, CurveC1},
		{"C2", ClassCritical, 1.4, 1.4, 1.4, CurveC2},
		{"C3", ClassCritical, 1.0, 1.4, 1.4, CurveC3},
		{"nonpositive depth", ClassMild, 0, 3.0, 1.4, CurveUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCurve(tt.class, tt.depth, tt.yn, tt.yc); got != tt.want {
				t.Errorf("ClassifyCurve(%q, %g, %g, %g) = %q, want %q",
					tt.class, tt.depth, tt.yn, tt.yc, got, tt.want)
			}
		})
	}
}
