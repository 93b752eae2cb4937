package ui

import "github.com/charmbracelet/harmonica"

// smoothed is a scalar that glides toward its target with a damped spring,
// used for displayed boundary positions and zoom so coarse key steps look
// continuous.
type smoothed struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newSmoothed(fps int, frequency, damping, initial float64) smoothed {
	return smoothed{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    initial,
	}
}

// step advances one frame toward target and returns the new position.
func (s *smoothed) step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// snap jumps to v immediately, discarding any in-flight motion.
func (s *smoothed) snap(v float64) {
	s.pos = v
	s.vel = 0
}
