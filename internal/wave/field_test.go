package wave

import (
	"math"
	"testing"
)

func TestPositionsSpanDomain(t *testing.T) {
	xs := Positions()
	if len(xs) != NumSamples {
		t.Fatalf("len(Positions()) = %d, want %d", len(xs), NumSamples)
	}
	if xs[0] != 0 {
		t.Fatalf("first position = %v, want 0", xs[0])
	}
	if math.Abs(xs[len(xs)-1]-DomainMax) > 1e-9 {
		t.Fatalf("last position = %v, want %v", xs[len(xs)-1], DomainMax)
	}
	step := DomainMax / float64(NumSamples-1)
	if got := xs[1] - xs[0]; math.Abs(got-step) > 1e-12 {
		t.Fatalf("grid step = %v, want %v", got, step)
	}
}

func TestComputeReturnsFullFiniteFrame(t *testing.T) {
	p := DefaultParams()
	p.Time = 7.5
	p.Dispersion = true

	out := Compute(p, p.WavelengthNm)
	if len(out) != NumSamples {
		t.Fatalf("len(Compute()) = %d, want %d", len(out), NumSamples)
	}
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d = %v, want finite", i, v)
		}
		if limit := p.Amplitude * VisualizationScale; math.Abs(v) > limit+1e-12 {
			t.Fatalf("sample %d = %v, beyond amplitude bound %v", i, v, limit)
		}
	}
}

func TestComputeZeroAtOriginAtTimeZero(t *testing.T) {
	p := DefaultParams()
	if got := Compute(p, p.WavelengthNm)[0]; got != 0 {
		t.Fatalf("amplitude at x=0, t=0 = %v, want 0", got)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	p := DefaultParams()
	p.Time = 3.14
	p.Dispersion = true

	a := Compute(p, 420)
	b := Compute(p, 420)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

// The model restarts the phase at each boundary: medium 1 oscillates in k1*x,
// medium 2 in k2*(x-b1), medium 3 in k3*(x-b2).
func TestComputeMatchesPiecewisePhaseModel(t *testing.T) {
	p := DefaultParams()
	p.Time = 1.25
	wl := p.WavelengthNm

	out := Compute(p, wl)
	xs := Positions()

	k1 := 2 * math.Pi * p.N1 / wl
	k2 := 2 * math.Pi * p.N2 / wl
	k3 := 2 * math.Pi * p.N3 / wl
	scale := p.Amplitude * VisualizationScale
	wt := p.Speed * p.Time

	for _, i := range []int{0, 499, 999, 1000, 1500, 2000, 2500, 2999} {
		x := xs[i]
		var want float64
		switch {
		case x <= p.Boundary1:
			want = scale * math.Sin(k1*x-wt)
		case x <= p.Boundary2:
			want = scale * math.Sin(k2*(x-p.Boundary1)-wt)
		default:
			want = scale * math.Sin(k3*(x-p.Boundary2)-wt)
		}
		if math.Abs(out[i]-want) > 1e-12 {
			t.Fatalf("sample %d (x=%v) = %v, want %v", i, x, out[i], want)
		}
	}
}

// An inverted boundary pair is not producible through the setters, but a host
// constructing Params directly must still get a well-defined frame: region 2
// is empty and everything past Boundary1 falls to medium 3.
func TestComputeInvertedBoundariesDegradeCleanly(t *testing.T) {
	p := DefaultParams()
	p.Boundary1 = 2000
	p.Boundary2 = 1000
	p.Time = 0.5

	out := Compute(p, p.WavelengthNm)
	xs := Positions()

	k1 := 2 * math.Pi * p.N1 / p.WavelengthNm
	k3 := 2 * math.Pi * p.N3 / p.WavelengthNm
	scale := p.Amplitude * VisualizationScale
	wt := p.Speed * p.Time

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d = %v, want finite", i, v)
		}
		x := xs[i]
		var want float64
		if x <= p.Boundary1 {
			want = scale * math.Sin(k1*x-wt)
		} else {
			want = scale * math.Sin(k3*(x-p.Boundary2)-wt)
		}
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("sample %d (x=%v) = %v, want %v (no region 2 expected)", i, x, v, want)
		}
	}
}

// One tick advances the phase by Speed*dt everywhere, so no sample can move
// further than the amplitude scale times that phase step.
func TestComputeSmoothAcrossOneTick(t *testing.T) {
	p := DefaultParams()
	p.Time = 4.2

	const dt = 0.01
	before := Compute(p, p.WavelengthNm)
	p.Advance(dt)
	after := Compute(p, p.WavelengthNm)

	bound := p.Amplitude*VisualizationScale*p.Speed*dt + 1e-9
	for i := range before {
		if diff := math.Abs(after[i] - before[i]); diff > bound {
			t.Fatalf("sample %d jumped %v across one tick, bound %v", i, diff, bound)
		}
	}
}

// With dispersion on, region 2 must oscillate with the corrected k2, not the
// raw N2. Checked against the closed form at a mid-region sample, and against
// the uncorrected value to make sure the shift is actually visible in the
// output.
func TestComputeDispersionShiftsRegionTwoOutput(t *testing.T) {
	p := DefaultParams()
	p.Dispersion = true

	const i = 1500
	x := Positions()[i]
	if x <= p.Boundary1 || x > p.Boundary2 {
		t.Fatalf("sample %d (x=%v) not in region 2", i, x)
	}
	scale := p.Amplitude * VisualizationScale

	for _, wl := range []float64{400, 700} {
		n2, _ := EffectiveIndices(p, wl)
		k2 := 2 * math.Pi * n2 / wl
		want := scale * math.Sin(k2*(x-p.Boundary1))

		got := Compute(p, wl)[i]
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("dispersed sample at %v nm = %v, want %v from corrected k2", wl, got, want)
		}

		k2Raw := 2 * math.Pi * p.N2 / wl
		uncorrected := scale * math.Sin(k2Raw*(x-p.Boundary1))
		if math.Abs(got-uncorrected) < 1e-4 {
			t.Fatalf("dispersed sample at %v nm = %v, indistinguishable from uncorrected %v", wl, got, uncorrected)
		}
	}
}

func TestEffectiveIndicesWithoutDispersion(t *testing.T) {
	p := DefaultParams()
	n2, n3 := EffectiveIndices(p, 400)
	if n2 != p.N2 || n3 != p.N3 {
		t.Fatalf("EffectiveIndices(400) = (%v, %v), want unchanged (%v, %v)", n2, n3, p.N2, p.N3)
	}
}

func TestEffectiveIndicesDispersionShiftsBlueMore(t *testing.T) {
	p := DefaultParams()
	p.Dispersion = true

	n2Ref, n3Ref := EffectiveIndices(p, 550)
	if math.Abs(n2Ref-(p.N2+0.0006)) > 1e-12 {
		t.Fatalf("n2 at 550 nm = %v, want %v", n2Ref, p.N2+0.0006)
	}
	if math.Abs(n3Ref-(p.N3+0.0008)) > 1e-12 {
		t.Fatalf("n3 at 550 nm = %v, want %v", n3Ref, p.N3+0.0008)
	}

	n2Blue, n3Blue := EffectiveIndices(p, 400)
	n2Red, n3Red := EffectiveIndices(p, 700)
	if n2Blue <= n2Red || n3Blue <= n3Red {
		t.Fatalf("blue indices (%v, %v) should exceed red (%v, %v)", n2Blue, n3Blue, n2Red, n3Red)
	}
	if n2Red <= p.N2 || n3Red <= p.N3 {
		t.Fatalf("dispersion should raise both indices, got (%v, %v) from (%v, %v)", n2Red, n3Red, p.N2, p.N3)
	}
}
