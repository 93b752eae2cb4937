// Package spectrum maps wavelengths in the visible band to approximate RGB
// colors, following Dan Bruton's piecewise-linear approximation.
package spectrum

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string, suitable for lipgloss and
// echarts.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c toward other in Lab space. t=0 returns c, t=1 returns other.
func (c RGB) Blend(other RGB, t float64) RGB {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	m := a.BlendLab(b, t).Clamped()
	return RGB{
		R: uint8(math.Round(m.R * 255)),
		G: uint8(math.Round(m.G * 255)),
		B: uint8(math.Round(m.B * 255)),
	}
}

// outOfSpectrum is the neutral gray returned for wavelengths outside
// [380, 750] nm. The attenuation factor is not applied on this branch.
var outOfSpectrum = RGB{128, 128, 128}

// WavelengthToRGB converts a wavelength in nanometers to an approximate RGB
// color. Bands are half-open [a, b) except the final [645, 750], which is
// closed; brightness is attenuated toward the edges of the visible band.
func WavelengthToRGB(nm float64) RGB {
	var r, g, b float64
	switch {
	case 380 <= nm && nm < 440:
		r = -(nm - 440) / (440 - 380)
		b = 1
	case 440 <= nm && nm < 490:
		g = (nm - 440) / (490 - 440)
		b = 1
	case 490 <= nm && nm < 510:
		g = 1
		b = -(nm - 510) / (510 - 490)
	case 510 <= nm && nm < 580:
		r = (nm - 510) / (580 - 510)
		g = 1
	case 580 <= nm && nm < 645:
		r = 1
		g = -(nm - 645) / (645 - 580)
	case 645 <= nm && nm <= 750:
		r = 1
	default:
		return outOfSpectrum
	}

	var factor float64
	switch {
	case nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm < 700:
		factor = 1
	default:
		factor = 0.3 + 0.7*(750-nm)/(750-700)
	}

	return RGB{
		R: uint8(math.Round(255 * r * factor)),
		G: uint8(math.Round(255 * g * factor)),
		B: uint8(math.Round(255 * b * factor)),
	}
}
