package wave

import "math"

const (
	// NumSamples is the fixed number of spatial samples per computed frame.
	NumSamples = 3000

	// DomainMax is the upper end of the spatial domain in position units.
	DomainMax = 3000.0

	// VisualizationScale keeps the rendered amplitude small relative to the
	// axis range. It multiplies every computed sample.
	VisualizationScale = 0.1
)

// WhiteLightWavelengths are the seven fixed sample wavelengths (nm) rendered
// together in white-light mode to show dispersion.
var WhiteLightWavelengths = [7]float64{400, 450, 500, 550, 600, 650, 700}

// positions holds the fixed sample grid: NumSamples points evenly spaced over
// [0, DomainMax], endpoints included.
var positions = func() []float64 {
	xs := make([]float64, NumSamples)
	step := DomainMax / float64(NumSamples-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	return xs
}()

// Positions returns the fixed sample positions shared by every call to
// Compute. The returned slice is shared; callers must not modify it.
func Positions() []float64 {
	return positions
}

// EffectiveIndices returns the refractive indices of media 2 and 3 for the
// given wavelength. With dispersion off they are N2 and N3 unchanged; with
// dispersion on a simplified Cauchy-style correction is applied. Medium 1 is
// always treated as dispersion-free.
func EffectiveIndices(p Params, wavelengthNm float64) (n2, n3 float64) {
	n2, n3 = p.N2, p.N3
	if !p.Dispersion {
		return n2, n3
	}
	r := 550 / wavelengthNm
	n2 += 0.0006 * r * r
	n3 += 0.0008 * r * r
	return n2, n3
}

// Compute evaluates the wave amplitude at every sample position for the given
// wavelength. The phase restarts from zero at each medium boundary; this is a
// deliberate simplification carried over from the reference model, not
// phase-continuous physics.
//
// Compute is pure: identical parameters produce identical output, and no
// state is shared between calls apart from the read-only position grid.
func Compute(p Params, wavelengthNm float64) []float64 {
	n2, n3 := EffectiveIndices(p, wavelengthNm)

	k1 := 2 * math.Pi * p.N1 / wavelengthNm
	k2 := 2 * math.Pi * n2 / wavelengthNm
	k3 := 2 * math.Pi * n3 / wavelengthNm

	scale := p.Amplitude * VisualizationScale
	wt := p.Speed * p.Time

	out := make([]float64, NumSamples)
	for i, x := range positions {
		// Each position belongs to exactly one region, checked in order,
		// so an inverted boundary pair degrades to an empty region 2
		// instead of producing garbage.
		var phase float64
		switch {
		case x <= p.Boundary1:
			phase = k1*x - wt
		case x <= p.Boundary2:
			phase = k2*(x-p.Boundary1) - wt
		default:
			phase = k3*(x-p.Boundary2) - wt
		}
		out[i] = scale * math.Sin(phase)
	}
	return out
}
