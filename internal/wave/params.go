package wave

import "fmt"

// Wavelengths outside this range have no spectral color and are rendered gray.
const (
	MinWavelengthNm = 380.0
	MaxWavelengthNm = 750.0
)

// Params is a snapshot of every quantity the wave computation reads. The host
// owns a single mutable instance updated through the Set* methods; Compute
// receives it by value so each frame sees a consistent snapshot.
type Params struct {
	WavelengthNm float64 // primary wavelength, nm
	Amplitude    float64
	Speed        float64 // angular-frequency proxy, multiplies Time directly
	N1, N2, N3   float64 // refractive indices, one per medium
	Boundary1    float64 // first medium boundary, 0 <= Boundary1 < Boundary2
	Boundary2    float64 // second medium boundary, Boundary2 <= DomainMax
	Dispersion   bool    // wavelength-dependent correction of N2/N3
	WhiteLight   bool    // render the seven fixed wavelengths together
	Time         float64 // simulation clock, advanced by the host per tick
}

// DefaultParams returns the reference configuration: 550 nm in air, water and
// crown glass with boundaries at thirds of the domain.
func DefaultParams() Params {
	return Params{
		WavelengthNm: 550,
		Amplitude:    5,
		Speed:        2,
		N1:           1.0003,
		N2:           1.33,
		N3:           1.52,
		Boundary1:    1000,
		Boundary2:    2000,
	}
}

// SetWavelength clamps to the visible band [380, 750] nm.
func (p *Params) SetWavelength(nm float64) {
	p.WavelengthNm = clamp(nm, MinWavelengthNm, MaxWavelengthNm)
}

// SetAmplitude clamps to the slider range [1, 10].
func (p *Params) SetAmplitude(a float64) {
	p.Amplitude = clamp(a, 1, 10)
}

// SetSpeed clamps to the slider range [1, 10].
func (p *Params) SetSpeed(s float64) {
	p.Speed = clamp(s, 1, 10)
}

// SetN1 clamps to the slider range [1, 3].
func (p *Params) SetN1(n float64) { p.N1 = clamp(n, 1, 3) }

// SetN2 clamps to the slider range [1, 3].
func (p *Params) SetN2(n float64) { p.N2 = clamp(n, 1, 3) }

// SetN3 clamps to the slider range [1, 3].
func (p *Params) SetN3(n float64) { p.N3 = clamp(n, 1, 3) }

// SetBoundary1 moves the first boundary, keeping it inside the domain and
// strictly below Boundary2.
func (p *Params) SetBoundary1(x float64) {
	p.Boundary1 = clamp(x, 0, p.Boundary2-boundaryGap)
}

// SetBoundary2 moves the second boundary, keeping it inside the domain and
// strictly above Boundary1.
func (p *Params) SetBoundary2(x float64) {
	p.Boundary2 = clamp(x, p.Boundary1+boundaryGap, DomainMax)
}

// boundaryGap is the minimum separation the setters maintain between the two
// boundaries so region 2 never collapses to nothing through the UI.
const boundaryGap = 10.0

// Advance moves the simulation clock forward by dt (the reference cadence
// uses 0.01 per animation tick).
func (p *Params) Advance(dt float64) {
	p.Time += dt
}

// Validate reports the first violated invariant, or nil. Compute itself does
// not re-validate per call; a host that bypasses the setters should validate
// after mutating.
func (p Params) Validate() error {
	if p.WavelengthNm <= 0 {
		return fmt.Errorf("wavelength %v nm: %w", p.WavelengthNm, ErrNonPositiveWavelength)
	}
	if p.N1 <= 0 || p.N2 <= 0 || p.N3 <= 0 {
		return fmt.Errorf("indices (%v, %v, %v): %w", p.N1, p.N2, p.N3, ErrNonPositiveIndex)
	}
	if p.Boundary1 < 0 || p.Boundary2 > DomainMax || p.Boundary1 >= p.Boundary2 {
		return fmt.Errorf("boundaries (%v, %v): %w", p.Boundary1, p.Boundary2, ErrBoundaryOrder)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
