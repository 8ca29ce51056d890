// Package scroll owns the shared horizontal scroll offset of a frame.
package scroll

// DefaultThreshold is the number of ticks per pixel of movement.
const DefaultThreshold = 1.6

// State is the shared scroll position. Offset starts at the display width so
// text enters from the right edge.
type State struct {
	Offset  int
	Counter float64
}

type Machine struct {
	// Threshold is ticks per pixel; values <= 0 fall back to DefaultThreshold.
	Threshold float64

	state State
	width int
}

func New(displayWidth int, threshold float64) *Machine {
	m := &Machine{Threshold: threshold}
	m.Reset(displayWidth)
	return m
}

// State returns a copy of the current position.
func (m *Machine) State() State { return m.state }

func (m *Machine) Offset() int { return m.state.Offset }

// Reset rewinds to the right edge. Called only on a track identity change.
func (m *Machine) Reset(displayWidth int) {
	m.width = displayWidth
	m.state = State{Offset: displayWidth}
}

// Advance moves the offset by the accumulated ticks and wraps seamlessly once
// a whole cycle (widest line plus separator) has scrolled past. Call it only
// on ticks where some line overflowed.
func (m *Machine) Advance(cycleLength int) {
	threshold := m.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	m.state.Counter++
	for m.state.Counter >= threshold {
		m.state.Offset--
		m.state.Counter -= threshold
	}

	if cycleLength > 0 && m.state.Offset < -cycleLength {
		m.state.Offset += cycleLength
	}
}
