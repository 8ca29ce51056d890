//go:build !linux

package system

// Console is a no-op outside Linux.
type Console struct {
	Logger Logger
	Paths  []string
}

func NewConsole(logger Logger) *Console {
	return &Console{Logger: orNoop(logger)}
}

func (c *Console) EnterGraphics() error {
	orNoop(c.Logger).Infof("tty", "console graphics mode not supported on this platform")
	return nil
}

func (c *Console) Restore() error { return nil }

func (c *Console) Graphics() bool { return false }
