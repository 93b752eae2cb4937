package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avolle/refract/internal/export"
	"github.com/avolle/refract/internal/spectrum"
	"github.com/avolle/refract/internal/wave"
)

// Parameter rows in display order.
const (
	rowWavelength = iota
	rowAmplitude
	rowSpeed
	rowN1
	rowN2
	rowN3
	rowBoundary1
	rowBoundary2
	numRows
)

type paramRow struct {
	name   string
	step   float64
	coarse float64
	format string
	unit   string
}

var paramRows = [numRows]paramRow{
	rowWavelength: {"wavelength", 5, 25, "%.0f", " nm"},
	rowAmplitude:  {"amplitude", 0.5, 1, "%.1f", ""},
	rowSpeed:      {"speed", 0.5, 1, "%.1f", ""},
	rowN1:         {"n₁", 0.01, 0.1, "%.4f", ""},
	rowN2:         {"n₂", 0.01, 0.1, "%.4f", ""},
	rowN3:         {"n₃", 0.01, 0.1, "%.4f", ""},
	rowBoundary1:  {"boundary 1", 25, 100, "%.0f", ""},
	rowBoundary2:  {"boundary 2", 25, 100, "%.0f", ""},
}

// Model is the Bubbletea model for the refract TUI. It owns the single
// mutable parameter set; ticks and key events are serialized by the message
// loop, so every recompute reads a consistent snapshot.
type Model struct {
	params      wave.Params
	mediumSel   [3]int // index into wave.Media per region
	scenarioIdx int
	zoom        float64

	cursor   int
	paused   bool
	quitting bool

	editing bool
	input   textinput.Model

	width  int
	height int

	// Spring-smoothed display values; the computation always uses the
	// exact parameters.
	dispB1   smoothed
	dispB2   smoothed
	dispZoom smoothed

	saveMsg     string
	saveMsgTime time.Time
	saving      bool

	now func() time.Time // injectable clock for tests
}

// New creates a Model with the given starting parameters.
func New(p wave.Params) Model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 10

	m := Model{
		params:   p,
		zoom:     1,
		input:    ti,
		width:    80,
		height:   24,
		dispB1:   newSmoothed(20, 8.0, 0.9, p.Boundary1),
		dispB2:   newSmoothed(20, 8.0, 0.9, p.Boundary2),
		dispZoom: newSmoothed(20, 8.0, 0.9, 1),
		now:      time.Now,
	}
	m.mediumSel = mediaForIndices(p.N1, p.N2, p.N3)
	return m
}

// mediaForIndices picks the preset whose index matches each n, falling back
// to the first entry when nothing matches exactly.
func mediaForIndices(n1, n2, n3 float64) [3]int {
	var sel [3]int
	for r, n := range [3]float64{n1, n2, n3} {
		for i, med := range wave.Media {
			if med.Index == n {
				sel[r] = i
				break
			}
		}
	}
	return sel
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickInterval()), tea.SetWindowTitle("refract"))
}

func (m Model) tickInterval() time.Duration {
	if m.params.WhiteLight {
		return whiteLightInterval
	}
	return singleWaveInterval
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		if !m.paused {
			m.params.Advance(timeStep)
		}
		m.dispB1.step(m.params.Boundary1)
		m.dispB2.step(m.params.Boundary2)
		m.dispZoom.step(m.zoom)
		if m.saveMsg != "" && m.now().Sub(m.saveMsgTime) > 5*time.Second {
			m.saveMsg = ""
		}
		return m, tickCmd(m.tickInterval())

	case snapshotSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.saveMsg = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.saveMsg = fmt.Sprintf("Saved %s", msg.path)
		}
		m.saveMsgTime = m.now()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < numRows-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjustParam(m.cursor, -paramRows[m.cursor].step)
	case "right", "l":
		m.adjustParam(m.cursor, paramRows[m.cursor].step)
	case "shift+left", "H":
		m.adjustParam(m.cursor, -paramRows[m.cursor].coarse)
	case "shift+right", "L":
		m.adjustParam(m.cursor, paramRows[m.cursor].coarse)
	case "enter":
		m.editing = true
		m.input.SetValue(fmt.Sprintf(paramRows[m.cursor].format, m.paramValue(m.cursor)))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "d":
		m.params.Dispersion = !m.params.Dispersion
	case "w":
		m.params.WhiteLight = !m.params.WhiteLight
	case "m":
		m.cycleMedium(1)
	case "M":
		m.cycleMedium(-1)
	case "p":
		m.scenarioIdx = (m.scenarioIdx + 1) % len(wave.Scenarios)
		m.applyScenario(wave.Scenarios[m.scenarioIdx])
	case "z":
		m.zoom = clampZoom(m.zoom - 0.1)
	case "Z":
		m.zoom = clampZoom(m.zoom + 0.1)
	case " ":
		m.paused = !m.paused
	case "r":
		m.reset()
	case "s":
		if !m.saving {
			m.saving = true
			p := m.params
			path := fmt.Sprintf("refract_%s.html", m.now().Format("20060102-150405"))
			return m, func() tea.Msg {
				return snapshotSavedMsg{path: path, err: export.Save(path, p)}
			}
		}
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.input.Value(), 64); err == nil {
			m.setParam(m.cursor, v)
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc", "ctrl+c":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) adjustParam(row int, delta float64) {
	m.setParam(row, m.paramValue(row)+delta)
}

func (m Model) paramValue(row int) float64 {
	switch row {
	case rowWavelength:
		return m.params.WavelengthNm
	case rowAmplitude:
		return m.params.Amplitude
	case rowSpeed:
		return m.params.Speed
	case rowN1:
		return m.params.N1
	case rowN2:
		return m.params.N2
	case rowN3:
		return m.params.N3
	case rowBoundary1:
		return m.params.Boundary1
	case rowBoundary2:
		return m.params.Boundary2
	}
	return 0
}

func (m *Model) setParam(row int, v float64) {
	switch row {
	case rowWavelength:
		m.params.SetWavelength(v)
	case rowAmplitude:
		m.params.SetAmplitude(v)
	case rowSpeed:
		m.params.SetSpeed(v)
	case rowN1:
		m.params.SetN1(v)
	case rowN2:
		m.params.SetN2(v)
	case rowN3:
		m.params.SetN3(v)
	case rowBoundary1:
		m.params.SetBoundary1(v)
	case rowBoundary2:
		m.params.SetBoundary2(v)
	}
}

// cycleMedium steps the medium preset of the region under the cursor, which
// sets its refractive index and the region label.
func (m *Model) cycleMedium(dir int) {
	region, ok := m.cursorRegion()
	if !ok {
		return
	}
	n := len(wave.Media)
	m.mediumSel[region] = (m.mediumSel[region] + dir + n) % n
	m.setParam(rowN1+region, wave.Media[m.mediumSel[region]].Index)
}

func (m Model) cursorRegion() (int, bool) {
	if m.cursor < rowN1 || m.cursor > rowN3 {
		return 0, false
	}
	return m.cursor - rowN1, true
}

func (m *Model) applyScenario(s wave.Scenario) {
	s.Apply(&m.params)
	for r, name := range s.Media {
		for i, med := range wave.Media {
			if med.Name == name {
				m.mediumSel[r] = i
				break
			}
		}
	}
}

func (m *Model) reset() {
	m.params = wave.DefaultParams()
	m.mediumSel = mediaForIndices(m.params.N1, m.params.N2, m.params.N3)
	m.scenarioIdx = 0
	m.zoom = 1
	m.cursor = 0
	m.paused = false
	m.dispB1.snap(m.params.Boundary1)
	m.dispB2.snap(m.params.Boundary2)
	m.dispZoom.snap(1)
}

func clampZoom(z float64) float64 {
	if z < 0.1 {
		return 0.1
	}
	if z > 2 {
		return 2
	}
	return z
}

// curves computes the waveforms to draw this frame, normalized to the
// current vertical range.
func (m Model) curves(yRange float64) []curve {
	if m.params.WhiteLight {
		cs := make([]curve, 0, len(wave.WhiteLightWavelengths))
		for _, wl := range wave.WhiteLightWavelengths {
			cs = append(cs, curve{
				samples: normalizeCurve(wave.Compute(m.params, wl), yRange),
				color:   spectrum.WavelengthToRGB(wl),
			})
		}
		return cs
	}
	return []curve{{
		samples: normalizeCurve(wave.Compute(m.params, m.params.WavelengthNm), yRange),
		color:   spectrum.WavelengthToRGB(m.params.WavelengthNm),
	}}
}

func (m Model) regionTints() [3]spectrum.RGB {
	var tints [3]spectrum.RGB
	for r := range tints {
		t := wave.Media[m.mediumSel[r]].Tint
		tints[r] = spectrum.RGB{R: t.R, G: t.G, B: t.B}
	}
	return tints
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 60 {
		w = 60
	}
	plotWidth := w - 4
	plotHeight := m.height - numRows - 8
	if plotHeight < 8 {
		plotHeight = 8
	}

	title := "Light Wave Refraction"
	if m.params.WhiteLight {
		title = "White Light Dispersion (Prism Effect)"
	}

	yRange := m.params.Amplitude * wave.VisualizationScale * 1.5 / m.dispZoom.pos
	plot := renderPlot(m.curves(yRange), m.dispB1.pos, m.dispB2.pos, m.regionTints(), plotWidth, plotHeight, 1)

	lines := "\n"
	lines += "  " + headerStyle.Render("refract") + "  " + titleStyle.Render(title) + "\n"
	lines += "  " + m.mediumLabels(plotWidth) + "\n"
	lines += indent(plot, "  ") + "\n"
	lines += m.paramPanel()
	lines += "  " + m.statusLine() + "\n"
	if m.saveMsg != "" {
		lines += "  " + helpStyle.Render(m.saveMsg) + "\n"
	}
	_, onMediumRow := m.cursorRegion()
	lines += "\n  " + helpStyle.Render(helpText(onMediumRow)) + "\n"
	return lines
}

// mediumLabels lays the three region labels over their share of the plot
// width, tinted to match the baseline shading.
func (m Model) mediumLabels(width int) string {
	edges := [4]float64{0, m.params.Boundary1, m.params.Boundary2, wave.DomainMax}
	out := ""
	used := 0
	for r := 0; r < 3; r++ {
		med := wave.Media[m.mediumSel[r]]
		span := int(float64(width) * (edges[r+1] - edges[r]) / wave.DomainMax)
		if r == 2 {
			span = width - used
		}
		used += span
		label := fmt.Sprintf("%s (n%s = %.4f)", med.Name, subscript(r+1), m.regionIndex(r))
		if span < len([]rune(label))+1 {
			label = med.Name
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(spectrum.RGB{R: med.Tint.R, G: med.Tint.G, B: med.Tint.B}.Hex()))
		out += style.Render(center(label, span))
	}
	return out
}

func (m Model) regionIndex(r int) float64 {
	switch r {
	case 0:
		return m.params.N1
	case 1:
		return m.params.N2
	default:
		return m.params.N3
	}
}

func subscript(i int) string {
	return [...]string{"₁", "₂", "₃"}[i-1]
}

func (m Model) paramPanel() string {
	out := ""
	for i, row := range paramRows {
		cursor := "  "
		style := labelStyle
		if i == m.cursor {
			cursor = "▸ "
			style = selectedStyle
		}
		val := fmt.Sprintf(row.format+row.unit, m.paramValue(i))
		if m.editing && i == m.cursor {
			val = m.input.View()
		} else {
			val = valueStyle.Render(val)
		}
		out += fmt.Sprintf("  %s%s %s\n", cursor, style.Render(fmt.Sprintf("%-12s", row.name)), val)
	}
	return out
}

func (m Model) statusLine() string {
	status := "▶ running"
	if m.paused {
		status = "❚❚ paused"
	}
	flags := ""
	if m.params.Dispersion {
		flags += "  dispersion"
	}
	if m.params.WhiteLight {
		flags += "  white light"
	}
	yRange := m.params.Amplitude * wave.VisualizationScale * 1.5 / m.zoom
	return statusStyle.Render(fmt.Sprintf("%s  t=%.2f  zoom %.1fx  y ±%.2f%s", status, m.params.Time, m.zoom, yRange, flags))
}

func center(s string, width int) string {
	if width < 0 {
		width = 0
	}
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
