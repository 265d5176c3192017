package stepmapwall

import "math"

// trapezoid is the same accelerate-cruise-decelerate time model stepmap
// uses, parameterized separately here per axis (along vs. diagonal).
func trapezoid(i int, am, vs, vm, seg float64) float64 {
	d := seg * float64(i)
	threshold := (vm*vm - vs*vs) / am
	if d < threshold {
		return 2 * (math.Sqrt(vs*vs+am*d) - vs) / am * 1000
	}
	return (am*d + (vm-vs)*(vm-vs)) / (am * vm) * 1000
}

// buildStepTables fills the along/diagonal cost tables for wall hop counts
// 0..2N-1. Entry 0 is unused in both (a straight run is always at least one
// hop). The along table charges the trapezoidal cost of i hops directly;
// the diagonal table absorbs TurnTime once and charges i-1 further
// diagonal hops, mirroring a single slalom turn into every diagonal run.
func buildStepTables(n int, p CostParams) (along, diag []Step) {
	along = make([]Step, 2*n)
	diag = make([]Step, 2*n)
	for i := 1; i < 2*n; i++ {
		a := trapezoid(i, p.MaxAccelAlong, p.StartSpeed, p.MaxSpeedAlong, p.SegmentAlong)
		d := p.TurnTime + trapezoid(i-1, p.MaxAccelDiag, p.StartSpeed, p.MaxSpeedDiag, p.SegmentDiag)
		along[i] = Step(a / p.ScalingFactor)
		diag[i] = Step(d / p.ScalingFactor)
	}
	return along, diag
}
