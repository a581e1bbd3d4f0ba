package hydraulics

import (
	"math"
	"sort"
)

// marchDirection is the sign applied to the station increment while the
// integrator walks the reach.
type marchDirection int

const (
	marchDownstream marchDirection = 1
	marchUpstream   marchDirection = -1
)

// Compute builds the water-surface profile for one set of channel
// parameters using the standard step method.
//
// The reach is divided into ProfileStations equal steps. The starting depth
// and marching direction come from the supplied boundary depths when
// present, otherwise from the slope classification: mild reaches start at
// critical depth at the downstream end and march upstream, steep reaches
// start at normal depth at the upstream end and march downstream. At each
// step an energy balance with averaged friction slope is solved by fixed
// small-step refinement; a supercritical-to-subcritical Froude reversal is
// replaced by the momentum-equation sequent depth and recorded as a
// hydraulic jump.
//
// Every iterative loop here is capped and best-effort. The returned
// profile's SolverConverged flag reports whether all loops met their
// tolerance before hitting the cap.
func Compute(p ChannelParams) (*WaterSurfaceProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	yc, ycConverged := CriticalDepth(p)
	yn, ynConverged := NormalDepth(p, yc)
	class := ClassifySlope(yn, yc)

	dir, x, y := startCondition(p, class, yc, yn)
	startDepth := y

	profile := &WaterSurfaceProfile{
		Params:          p,
		ChannelClass:    class,
		CriticalDepth:   yc,
		NormalDepth:     yn,
		SolverConverged: ycConverged && ynConverged,
	}

	dx := p.Length / ProfileStations
	minEnergy := p.specificEnergy(yc)

	states := make([]FlowState, 0, ProfileStations+1)
	states = append(states, p.flowState(x, y, yc, yn))

	for i := 0; i < ProfileStations; i++ {
		next := x + float64(dir)*dx
		if next < -1e-9 || next > p.Length+1e-9 {
			break
		}

		// The flow regime is read off the depth's position relative to
		// critical depth: Fr is monotone decreasing in depth with Fr(yc)=1,
		// so y < yc is the supercritical branch. Comparing depths keeps the
		// branch choice stable when the march starts exactly at yc.
		supercritical := y < yc
		energy := p.specificEnergy(y)
		sf := p.frictionSlope(y)

		trial, expected, refined := p.refineStep(y, supercritical, energy, sf, dx, dir, yc)
		if !refined {
			profile.SolverConverged = false
		}

		// A supercritical-to-subcritical reversal is a hydraulic jump; the
		// sequent depth from the momentum equation overrides the
		// energy-balance result at this station.
		if profile.Jump == nil && supercritical && trial >= yc {
			jump := NewHydraulicJump(next, y, p.froude(y))
			profile.Jump = &jump
			trial = p.Geometry.clampDepth(jump.DownstreamDepth)
		}

		// The section cannot pass the discharge with less than the critical
		// specific energy; a balance target below that chokes the flow.
		if expected < minEnergy {
			profile.Choking = true
		}

		x, y = next, trial
		states = append(states, p.flowState(x, y, yc, yn))
	}

	// Upstream marches record stations in descending order.
	sort.Slice(states, func(i, j int) bool { return states[i].Station < states[j].Station })
	profile.Stations = states
	profile.CurveType = ClassifyCurve(class, startDepth, yn, yc)

	return profile, nil
}

// startCondition selects the initial station, depth, and marching direction.
// Priority: both boundary depths supplied → downstream depth, march
// upstream; downstream only → same; upstream only → march downstream; no
// boundary → slope classification decides the control point.
func startCondition(p ChannelParams, class ChannelClass, yc, yn float64) (marchDirection, float64, float64) {
	switch {
	case p.DownstreamDepth > 0:
		// Covers the custom boundary case with both depths supplied: the
		// downstream depth controls and the march runs upstream.
		return marchUpstream, p.Length, p.DownstreamDepth
	case p.UpstreamDepth > 0:
		return marchDownstream, 0, p.UpstreamDepth
	case class == ClassSteep:
		return marchDownstream, 0, yn
	default:
		// Mild slopes are controlled from downstream; the critical class
		// uses the same downstream control.
		return marchUpstream, p.Length, yc
	}
}

// refineStep solves the energy balance for the next station's depth. The
// trial depth starts TrialNudge away from the current depth in the
// direction implied by the flow regime, then moves in RefineDepthStep
// increments until the specific energy at the trial depth matches the
// current energy adjusted by the averaged-friction-slope head loss, within
// EnergyTolerance relative error. The loop is capped at MaxIterations. The
// returned expected value is the last balance target; the bool reports
// whether the tolerance was met.
func (p ChannelParams) refineStep(y float64, supercritical bool, energy, sf, dx float64, dir marchDirection, yc float64) (trial, expected float64, converged bool) {
	trial = p.Geometry.clampDepth(y + trialNudge(supercritical))

	for i := 0; i < MaxIterations; i++ {
		trialEnergy := p.specificEnergy(trial)
		headLoss := (sf + p.frictionSlope(trial)) / 2 * dx

		// Total head rises in the upstream direction by the friction loss.
		expected = energy - headLoss
		if dir == marchUpstream {
			expected = energy + headLoss
		}

		if math.Abs(trialEnergy-expected)/expected < EnergyTolerance {
			return trial, expected, true
		}

		// Move the trial depth so its energy approaches the expected value:
		// dE/dy = 1 - Fr², positive on the subcritical branch and negative
		// on the supercritical branch.
		if (trialEnergy > expected) == (trial >= yc) {
			trial -= RefineDepthStep
		} else {
			trial += RefineDepthStep
		}
		trial = p.Geometry.clampDepth(trial)
	}
	return trial, expected, false
}

// trialNudge returns the initial depth offset for the next station: up on
// the subcritical branch, down on the supercritical branch.
func trialNudge(supercritical bool) float64 {
	if supercritical {
		return -TrialNudge
	}
	return TrialNudge
}

// flowState snapshots the flow condition at one station.
func (p ChannelParams) flowState(x, y, yc, yn float64) FlowState {
	s := p.section(y)
	v := p.Discharge / s.area
	return FlowState{
		Station:        x,
		Depth:          s.depth,
		Velocity:       v,
		Froude:         p.froude(y),
		SpecificEnergy: s.depth + v*v/(2*p.Gravity()),
		CriticalDepth:  yc,
		NormalDepth:    yn,
		TopWidth:       s.topWidth,
	}
}
