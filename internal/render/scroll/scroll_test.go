package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsAtRightEdge(t *testing.T) {
	m := New(64, 1.6)
	assert.Equal(t, State{Offset: 64}, m.State())
}

func TestAdvanceCadence(t *testing.T) {
	m := New(64, 1.5)

	// 1.5 ticks per pixel: 6 ticks move 4 pixels.
	for i := 0; i < 6; i++ {
		m.Advance(1000)
	}
	assert.Equal(t, 60, m.Offset())
	assert.InDelta(t, 0, m.State().Counter, 1e-9)
}

func TestAdvanceFastThreshold(t *testing.T) {
	m := New(64, 0.5)
	m.Advance(1000)
	assert.Equal(t, 62, m.Offset())
}

func TestAdvanceDefaultsThreshold(t *testing.T) {
	m := New(64, 0)
	m.Advance(1000)
	assert.Equal(t, 64, m.Offset())
	m.Advance(1000)
	assert.Equal(t, 63, m.Offset())
}

func TestSeamlessWrap(t *testing.T) {
	m := New(64, 1)
	m.state.Offset = -129

	// -130 is not yet past the cycle.
	m.Advance(130)
	assert.Equal(t, -130, m.Offset())

	m.Advance(130)
	assert.Equal(t, -1, m.Offset(), "wraps by the cycle length, never back to the display width")
}

func TestWrapKeepsContinuityOverManyCycles(t *testing.T) {
	m := New(64, 1)
	for i := 0; i < 1000; i++ {
		before := m.Offset()
		m.Advance(130)
		after := m.Offset()
		if after != before-1 {
			assert.Equal(t, before-1+130, after)
		}
		assert.GreaterOrEqual(t, after, -130)
	}
}

func TestResetLaw(t *testing.T) {
	m := New(64, 1.6)
	for i := 0; i < 37; i++ {
		m.Advance(200)
	}
	assert.NotEqual(t, 64, m.Offset())

	m.Reset(64)
	assert.Equal(t, State{Offset: 64, Counter: 0}, m.State())
}
