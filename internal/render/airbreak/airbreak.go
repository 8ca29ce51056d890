// Package airbreak alternates between the info and logo layouts during talk
// segments.
package airbreak

const DefaultToggleTicks = 30

type SubMode int

const (
	Info SubMode = iota
	Logo
)

func (m SubMode) String() string {
	if m == Logo {
		return "logo"
	}
	return "info"
}

// Controller counts ticks and flips the sub-mode every ToggleTicks ticks.
// It starts in Info.
type Controller struct {
	ToggleTicks int

	ticks int
	mode  SubMode
}

func New(toggleTicks int) *Controller {
	return &Controller{ToggleTicks: toggleTicks}
}

// Mode returns the sub-mode the next Tick will render.
func (c *Controller) Mode() SubMode { return c.mode }

// Ticks returns the ticks spent in the current sub-mode.
func (c *Controller) Ticks() int { return c.ticks }

// Tick returns the sub-mode for this tick and advances the counter.
func (c *Controller) Tick() SubMode {
	interval := c.ToggleTicks
	if interval <= 0 {
		interval = DefaultToggleTicks
	}

	mode := c.mode
	c.ticks++
	if c.ticks >= interval {
		c.ticks = 0
		if c.mode == Info {
			c.mode = Logo
		} else {
			c.mode = Info
		}
	}
	return mode
}

// Reset returns to Info with a zero counter. Used when an air break starts
// or ends, not when its content changes.
func (c *Controller) Reset() {
	c.ticks = 0
	c.mode = Info
}
