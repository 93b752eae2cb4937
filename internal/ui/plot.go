package ui

import (
	"math"
	"strings"

	"github.com/avolle/refract/internal/spectrum"
	"github.com/avolle/refract/internal/wave"
)

// curve is one rendered waveform with its spectral color.
type curve struct {
	samples []float64
	color   spectrum.RGB
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

var (
	plotBackground = spectrum.RGB{R: 16, G: 16, B: 16}
	boundaryColor  = spectrum.RGB{R: 150, G: 150, B: 150}
)

// renderPlot draws the curves onto a braille canvas of width x height cells.
// Each cell is a 2x4 dot grid, giving 2x horizontal and 4x vertical
// resolution. b1 and b2 are the displayed boundary positions (they may lag
// the exact parameter values while the boundary springs settle), yRange is
// the amplitude mapped to the canvas edge, and tints shade the baseline per
// region.
func renderPlot(curves []curve, b1, b2 float64, tints [3]spectrum.RGB, width, height int, yRange float64) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}
	if yRange <= 0 {
		yRange = 1
	}

	cols := width
	dotCols := cols * 2
	dotRows := height * 4

	pattern := make([][]uint8, height)
	colors := make([][]spectrum.RGB, height)
	for r := range pattern {
		pattern[r] = make([]uint8, cols)
		colors[r] = make([]spectrum.RGB, cols)
	}

	for _, c := range curves {
		plotCurve(pattern, colors, c, dotCols, dotRows)
	}

	// Baseline dots shaded by the medium tint of each region.
	mid := height / 2
	for col := 0; col < cols; col++ {
		if pattern[mid][col] != 0 {
			continue
		}
		x := (float64(col) + 0.5) / float64(cols) * wave.DomainMax
		tint := tints[regionAt(x, b1, b2)]
		colors[mid][col] = plotBackground.Blend(tint, 0.45)
	}

	bcol1 := boundaryColumn(b1, cols)
	bcol2 := boundaryColumn(b2, cols)

	var out strings.Builder
	pn := newPen()
	for r := 0; r < height; r++ {
		if r > 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			if col == bcol1 || col == bcol2 {
				pn.fg(&out, boundaryColor)
				out.WriteRune('┊')
				continue
			}
			switch {
			case pattern[r][col] != 0:
				pn.fg(&out, colors[r][col])
				out.WriteRune(rune(0x2800 + uint(pattern[r][col])))
			case r == mid:
				pn.fg(&out, colors[r][col])
				out.WriteRune('·')
			default:
				out.WriteByte(' ')
			}
		}
		pn.reset(&out)
	}
	return out.String()
}

func plotCurve(pattern [][]uint8, colors [][]spectrum.RGB, c curve, dotCols, dotRows int) {
	n := len(c.samples)
	if n == 0 {
		return
	}
	for dc := 0; dc < dotCols; dc++ {
		lo := dc * n / dotCols
		hi := (dc + 1) * n / dotCols
		if hi <= lo {
			hi = lo + 1
		}
		if hi > n {
			hi = n
		}
		var sum float64
		for i := lo; i < hi; i++ {
			sum += c.samples[i]
		}
		v := sum / float64(hi-lo)

		dr := dotRowFor(v, dotRows)
		col := dc / 2
		row := dr / 4
		pattern[row][col] |= 1 << brailleBits[dc%2][dr%4]
		colors[row][col] = c.color
	}
}

// dotRowFor maps an amplitude in [-1, 1] (already normalized by the caller's
// yRange) to a dot row, top row first.
func dotRowFor(v float64, dotRows int) int {
	t := (1 - clamp01((v+1)/2)) * float64(dotRows-1)
	dr := int(math.Round(t))
	if dr < 0 {
		return 0
	}
	if dr >= dotRows {
		return dotRows - 1
	}
	return dr
}

func regionAt(x, b1, b2 float64) int {
	switch {
	case x <= b1:
		return 0
	case x <= b2:
		return 1
	default:
		return 2
	}
}

func boundaryColumn(x float64, cols int) int {
	col := int(x / wave.DomainMax * float64(cols))
	if col < 0 {
		return 0
	}
	if col >= cols {
		return cols - 1
	}
	return col
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeCurve divides samples by yRange so renderPlot can treat every
// curve uniformly in [-1, 1].
func normalizeCurve(samples []float64, yRange float64) []float64 {
	if yRange <= 0 {
		yRange = 1
	}
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v / yRange
	}
	return out
}
