package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeStep is how far the simulation clock advances per animation tick.
const timeStep = 0.01

// Tick cadences for the two rendering modes. White-light mode recomputes
// seven curves per frame and runs on the faster reference cadence.
const (
	singleWaveInterval = 50 * time.Millisecond
	whiteLightInterval = 10 * time.Millisecond
)

type tickMsg time.Time

type snapshotSavedMsg struct {
	path string
	err  error
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
