package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(onMediumRow bool) string {
	s := "↑/↓ select  ←/→ adjust  enter edit"
	if onMediumRow {
		s += "  m medium"
	}
	s += "  p preset  d dispersion  w white light  z/Z zoom  space pause  r reset  s export  q quit"
	return s
}
