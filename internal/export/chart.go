// Package export renders the current wave field as a standalone HTML chart.
package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/avolle/refract/internal/spectrum"
	"github.com/avolle/refract/internal/wave"
)

// WriteHTML renders the field described by p as an echarts line chart. In
// white-light mode one series per fixed wavelength is emitted; otherwise a
// single series at the primary wavelength.
func WriteHTML(w io.Writer, p wave.Params) error {
	line := newChart(p)

	if p.WhiteLight {
		for _, wl := range wave.WhiteLightWavelengths {
			addSeries(line, p, wl)
		}
	} else {
		addSeries(line, p, p.WavelengthNm)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// Save writes the chart to the given path.
func Save(path string, p wave.Params) error {
	start := time.Now()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteHTML(f, p); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"path":       path,
		"whiteLight": p.WhiteLight,
		"dispersion": p.Dispersion,
		"time":       time.Since(start),
	}).Info("Snapshot saved")
	return nil
}

func newChart(p wave.Params) *charts.Line {
	title := "Light Wave Refraction"
	if p.WhiteLight {
		title = "White Light Dispersion (Prism Effect)"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("n₁=%.4f  n₂=%.4f  n₃=%.4f  t=%.2f", p.N1, p.N2, p.N3, p.Time),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "refract",
					Title: "save as PNG",
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Position",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Amplitude",
			Type:  "value",
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	// Seven overlapping series need the legend to toggle them; a single
	// curve does not.
	if p.WhiteLight {
		line.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Type: "scroll",
		}))
	}

	line.SetXAxis(wave.Positions())
	return line
}

func addSeries(line *charts.Line, p wave.Params, wavelengthNm float64) {
	samples := wave.Compute(p, wavelengthNm)
	data := make([]opts.LineData, len(samples))
	for i, v := range samples {
		data[i] = opts.LineData{Value: v}
	}
	hex := spectrum.WavelengthToRGB(wavelengthNm).Hex()
	line.AddSeries(
		fmt.Sprintf("%.0f nm", wavelengthNm),
		data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: hex}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hex}),
	)
}
