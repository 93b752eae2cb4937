package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/avolle/refract/internal/spectrum"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

// termProfile resolves the terminal's color capability once per process.
// NO_COLOR wins over everything else.
var termProfile = sync.OnceValue(func() colorProfile {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return colorNone
	}
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	if strings.Contains(colorTerm, "truecolor") || strings.Contains(colorTerm, "24bit") {
		return colorTrueColor
	}
	switch term := strings.ToLower(os.Getenv("TERM")); {
	case strings.Contains(term, "256color"):
		return colorANSI256
	case term == "" || term == "dumb":
		return colorNone
	default:
		return colorANSI16
	}
})

const penUnset = -1

// pen writes foreground color changes into a frame, skipping the escape
// sequence whenever the requested color is already active. A frame ends with
// reset so the terminal never keeps our last color.
type pen struct {
	profile colorProfile
	last    int32
}

func newPen() pen {
	return pen{profile: termProfile(), last: penUnset}
}

func (p *pen) fg(sb *strings.Builder, c spectrum.RGB) {
	if p.profile == colorNone {
		return
	}
	key := int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
	if key == p.last {
		return
	}
	sb.WriteString(fgSequence(p.profile, c))
	p.last = key
}

func (p *pen) reset(sb *strings.Builder) {
	if p.profile == colorNone || p.last == penUnset {
		return
	}
	sb.WriteString("\x1b[0m")
	p.last = penUnset
}

// seqCache memoizes escape sequences per (profile, color). A frame touches
// the same handful of colors thousands of times.
var seqCache sync.Map

func fgSequence(profile colorProfile, c spectrum.RGB) string {
	key := uint32(profile)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch profile {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case colorANSI256:
		seq = fmt.Sprintf("\x1b[38;5;%dm", cube256(c))
	case colorANSI16:
		seq = fmt.Sprintf("\x1b[%dm", 30+nearestBase16(c))
	}

	seqCache.Store(key, seq)
	return seq
}

// cube256 maps into the 6x6x6 color cube of the xterm 256-color palette.
func cube256(c spectrum.RGB) int {
	r := int(c.R) * 5 / 255
	g := int(c.G) * 5 / 255
	b := int(c.B) * 5 / 255
	return 16 + 36*r + 6*g + b
}

// base16 holds the xterm defaults for the eight base colors.
var base16 = [8]spectrum.RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 0, B: 0},
	{R: 0, G: 205, B: 0},
	{R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238},
	{R: 205, G: 0, B: 205},
	{R: 0, G: 205, B: 205},
	{R: 229, G: 229, B: 229},
}

// nearestBase16 picks the closest base color by luminance-weighted distance,
// which keeps spectral greens from collapsing into cyan.
func nearestBase16(c spectrum.RGB) int {
	best, bestDist := 0, int64(1)<<62
	for i, p := range base16 {
		dr := int64(c.R) - int64(p.R)
		dg := int64(c.G) - int64(p.G)
		db := int64(c.B) - int64(p.B)
		d := 2*dr*dr + 4*dg*dg + 3*db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
