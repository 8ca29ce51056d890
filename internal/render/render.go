package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Sink is the pixel output the Renderer draws into. Draw calls go to a back
// buffer; Swap makes the finished frame visible in one step.
type Sink interface {
	// Size returns the display size in pixels.
	Size() (width int, height int)
	// GlyphWidth is the fixed cell width of one character.
	GlyphWidth() int

	Clear() error
	DrawText(x, y int, c color.RGBA, text string) error
	SetPixel(x, y int, c color.RGBA)
	Swap() error
	Close() error
}

// FrameSource is implemented by sinks that can expose the last visible frame.
type FrameSource interface {
	Frame() *image.RGBA
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

var (
	// ErrSinkUnavailable means the physical output could not be acquired.
	ErrSinkUnavailable = errors.New("pixel sink unavailable")

	errSinkClosed = errors.New("sink closed")
)

// RenderError is a failed tick. The loop logs it and carries on with the
// next tick.
type RenderError struct {
	Tick uint64
	Op   string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render tick %d: %s: %v", e.Tick, e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
