package spectrum

import "testing"

func TestWavelengthToRGBBands(t *testing.T) {
	tests := []struct {
		nm   float64
		want RGB
	}{
		{650, RGB{255, 0, 0}},   // red band, full brightness
		{550, RGB{146, 255, 0}}, // green band, partial red ramp
		{470, RGB{0, 153, 255}}, // blue band
		{500, RGB{0, 255, 128}}, // cyan band, blue ramping down
		{700, RGB{255, 0, 0}},   // edge attenuation still 1.0 here
		{300, RGB{128, 128, 128}},
		{800, RGB{128, 128, 128}},
		{379.9, RGB{128, 128, 128}},
	}
	for _, tt := range tests {
		if got := WavelengthToRGB(tt.nm); got != tt.want {
			t.Fatalf("WavelengthToRGB(%v) = %+v, want %+v", tt.nm, got, tt.want)
		}
	}
}

func TestWavelengthToRGBEdgeAttenuation(t *testing.T) {
	// Same hue bands, dimmed toward the edges of the visible range.
	dim := WavelengthToRGB(385)
	bright := WavelengthToRGB(430)
	if dim.B >= bright.B {
		t.Fatalf("violet edge not attenuated: B=%d at 385 nm vs B=%d at 430 nm", dim.B, bright.B)
	}

	deepRed := WavelengthToRGB(745)
	red := WavelengthToRGB(660)
	if deepRed.R >= red.R {
		t.Fatalf("red edge not attenuated: R=%d at 745 nm vs R=%d at 660 nm", deepRed.R, red.R)
	}
	if deepRed.G != 0 || deepRed.B != 0 {
		t.Fatalf("deep red = %+v, want pure red channel only", deepRed)
	}
}

func TestWavelengthToRGBOutOfRangeSkipsAttenuation(t *testing.T) {
	// The gray fallback is returned as-is, never dimmed.
	if got := WavelengthToRGB(375); got != (RGB{128, 128, 128}) {
		t.Fatalf("WavelengthToRGB(375) = %+v, want flat gray", got)
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 0, 0}).Hex(); got != "#ff0000" {
		t.Fatalf("Hex() = %q, want #ff0000", got)
	}
	if got := (RGB{16, 16, 16}).Hex(); got != "#101010" {
		t.Fatalf("Hex() = %q, want #101010", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{200, 100, 50}
	if got := a.Blend(b, 0); got != a {
		t.Fatalf("Blend(t=0) = %+v, want %+v", got, a)
	}
	if got := a.Blend(b, 1); got != b {
		t.Fatalf("Blend(t=1) = %+v, want %+v", got, b)
	}
}
