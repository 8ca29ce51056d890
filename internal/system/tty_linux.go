//go:build linux

package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Prefer /dev/tty (active VT), fallback to /dev/tty0
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// Console switches the active VT between text and graphics mode so the
// blinking cursor and kernel messages do not draw over the framebuffer.
type Console struct {
	Logger Logger
	Paths  []string

	graphics bool
}

func NewConsole(logger Logger) *Console {
	return &Console{Logger: orNoop(logger), Paths: consolePaths}
}

// EnterGraphics sets KD_GRAPHICS and hides the cursor. Failures are logged
// and returned; the display keeps running either way.
func (c *Console) EnterGraphics() error {
	logger := orNoop(c.Logger)
	err := c.setMode(kdGraphics)
	if err != nil {
		logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	} else {
		c.graphics = true
		logger.Infof("tty", "KD_GRAPHICS set")
	}
	if cursorErr := c.writeVT("\x1b[?25l"); cursorErr != nil {
		logger.Errorf("tty", "hide cursor failed: %v", cursorErr)
		err = errors.Join(err, cursorErr)
	}
	return err
}

// Restore returns the console to text mode and shows the cursor again.
func (c *Console) Restore() error {
	logger := orNoop(c.Logger)
	err := c.writeVT("\x1b[?25h")
	if err != nil {
		logger.Errorf("tty", "show cursor failed: %v", err)
	}
	if modeErr := c.setMode(kdText); modeErr != nil {
		logger.Errorf("tty", "KD_TEXT failed: %v", modeErr)
		return errors.Join(err, modeErr)
	}
	c.graphics = false
	logger.Infof("tty", "KD_TEXT set")
	return err
}

func (c *Console) setMode(mode int) error {
	var lastErr error
	for _, p := range c.paths() {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return errors.New("KDSETMODE failed: no console device")
}

func (c *Console) writeVT(s string) error {
	var lastErr error
	for _, p := range c.paths() {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %w", lastErr)
	}
	return errors.New("write VT failed: no console device")
}

func (c *Console) paths() []string {
	if len(c.Paths) == 0 {
		return consolePaths
	}
	return c.Paths
}

// Graphics reports whether the last mode switch to KD_GRAPHICS succeeded.
func (c *Console) Graphics() bool { return c.graphics }
