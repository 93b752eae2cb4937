package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/avolle/refract/internal/export"
	"github.com/avolle/refract/internal/ui"
	"github.com/avolle/refract/internal/wave"
)

func main() {
	var (
		wavelength = flag.Float64("wavelength", wave.DefaultParams().WavelengthNm, "light wavelength in nm (380-750)")
		preset     = flag.String("preset", "", "start from a named scenario preset")
		whiteLight = flag.Bool("white-light", false, "start in white light mode")
		dispersion = flag.Bool("dispersion", false, "start with wavelength-dependent refraction enabled")
		exportPath = flag.String("export", "", "write an HTML chart snapshot to this path and exit")
		listPreset = flag.Bool("list-presets", false, "list scenario presets and exit")
		debug      = flag.Bool("debug", false, "enable debug logging to refract.log")
	)
	flag.Parse()

	setupLogging(*debug)

	if *listPreset {
		for _, s := range wave.Scenarios {
			fmt.Printf("%-24s %s / %s / %s\n", s.Name, s.Media[0], s.Media[1], s.Media[2])
		}
		return
	}

	params := wave.DefaultParams()
	if *preset != "" {
		s, err := wave.ScenarioByName(*preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v (see -list-presets)\n", err)
			os.Exit(1)
		}
		s.Apply(&params)
	}
	params.SetWavelength(*wavelength)
	params.WhiteLight = *whiteLight
	params.Dispersion = *dispersion

	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Headless snapshot: render the chart without starting the TUI.
	if *exportPath != "" {
		if err := export.Save(*exportPath, params); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *exportPath)
		return
	}

	program := tea.NewProgram(ui.New(params), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends log output to refract.log so it never corrupts the
// alternate screen. Without -debug, logs are discarded.
func setupLogging(debug bool) {
	if !debug {
		logrus.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile("refract.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
