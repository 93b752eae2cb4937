package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avolle/refract/internal/wave"
)

func TestWriteHTMLSingleWavelength(t *testing.T) {
	var buf bytes.Buffer
	p := wave.DefaultParams()

	if err := WriteHTML(&buf, p); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Light Wave Refraction") {
		t.Fatal("expected chart title in output")
	}
	if !strings.Contains(html, "550 nm") {
		t.Fatal("expected single series named after the primary wavelength")
	}
	if strings.Contains(html, "400 nm") {
		t.Fatal("unexpected white-light series in single-wavelength export")
	}
	if strings.Contains(html, "scroll") {
		t.Fatal("unexpected series legend on a single-curve chart")
	}
}

func TestWriteHTMLWhiteLightEmitsAllSeries(t *testing.T) {
	var buf bytes.Buffer
	p := wave.DefaultParams()
	p.WhiteLight = true
	p.Dispersion = true

	if err := WriteHTML(&buf, p); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "White Light Dispersion") {
		t.Fatal("expected white-light chart title in output")
	}
	for _, want := range []string{"400 nm", "450 nm", "500 nm", "550 nm", "600 nm", "650 nm", "700 nm"} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing series %q in white-light export", want)
		}
	}
	if !strings.Contains(html, "scroll") {
		t.Fatal("expected scrollable legend for the seven-series chart")
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.html")
	p := wave.DefaultParams()

	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "echarts") {
		t.Fatal("expected rendered echarts document on disk")
	}
}
