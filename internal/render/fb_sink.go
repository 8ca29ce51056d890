package render

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// FBSink renders to a Linux framebuffer using an offscreen logical canvas
// the size of the matrix, scaled nearest-neighbor onto the device.
type FBSink struct {
	Logger Logger

	dev    *fb.Device
	back   *Canvas
	front  *image.RGBA
	closed bool
}

func OpenFBSink(device string, width, height int, face font.Face, glyphWidth int, logger Logger) (*FBSink, error) {
	if logger == nil {
		logger = noopLogger{}
	}
	dev, err := fb.Open(device)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSinkUnavailable, device, err)
	}
	bounds := dev.Bounds()
	logger.Infof("fb", "framebuffer open, bounds=%dx%d, canvas=%dx%d", bounds.Dx(), bounds.Dy(), width, height)

	sink := &FBSink{
		Logger: logger,
		dev:    dev,
		back:   NewCanvas(width, height, face, glyphWidth),
		front:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	sink.back.Clear()
	return sink, nil
}

func (s *FBSink) Size() (int, int) { return s.back.Size() }

func (s *FBSink) GlyphWidth() int { return s.back.GlyphWidth() }

func (s *FBSink) Clear() error {
	if s.closed {
		return errSinkClosed
	}
	s.back.Clear()
	return nil
}

func (s *FBSink) DrawText(x, y int, c color.RGBA, text string) error {
	if s.closed {
		return errSinkClosed
	}
	return s.back.DrawText(x, y, c, text)
}

func (s *FBSink) SetPixel(x, y int, c color.RGBA) { s.back.SetPixel(x, y, c) }

// Swap copies the finished back buffer to the front buffer and scales it
// onto the device. Partially drawn back buffers never reach the device.
func (s *FBSink) Swap() error {
	if s.closed {
		return errSinkClosed
	}
	s.back.copyInto(s.front)
	return blitToFB(s.dev, s.front)
}

func (s *FBSink) Frame() *image.RGBA { return s.front }

// Close blanks the panel and releases the device.
func (s *FBSink) Close() error {
	if s.closed {
		return nil
	}
	s.back.Clear()
	s.back.copyInto(s.front)
	_ = blitToFB(s.dev, s.front)
	s.closed = true
	s.dev.Close()
	return nil
}

// Helper: blit canvas to framebuffer via nearest-neighbor scaling.
func blitToFB(dev *fb.Device, canvas *image.RGBA) error {
	if dev == nil {
		return fmt.Errorf("%w: no device", ErrSinkUnavailable)
	}
	xdraw.NearestNeighbor.Scale(dev, dev.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return nil
}
