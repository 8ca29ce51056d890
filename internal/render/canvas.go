package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an RGBA back buffer with fixed-cell text drawing. Every rune
// occupies exactly glyphWidth pixels so drawn text matches the layout math.
type Canvas struct {
	img        *image.RGBA
	face       font.Face
	glyphWidth int
	ascent     int
}

func NewCanvas(width, height int, face font.Face, glyphWidth int) *Canvas {
	if glyphWidth <= 0 {
		glyphWidth = GlyphAdvance(face)
	}
	ascent := 0
	if face != nil {
		ascent = face.Metrics().Ascent.Ceil()
	}
	return &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		face:       face,
		glyphWidth: glyphWidth,
		ascent:     ascent,
	}
}

func (c *Canvas) Size() (int, int) {
	bounds := c.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (c *Canvas) GlyphWidth() int { return c.glyphWidth }

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

// DrawText draws text with a top-left anchor at (x, y). Cells outside the
// canvas are skipped.
func (c *Canvas) DrawText(x, y int, col color.RGBA, text string) error {
	if c.face == nil {
		return errors.New("canvas has no font face")
	}
	width := c.img.Bounds().Dx()
	drawer := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: c.face}
	cellX := x
	for _, r := range text {
		if cellX+c.glyphWidth > 0 && cellX < width && !unicode.IsSpace(r) {
			drawer.Dot = fixed.P(cellX, y+c.ascent)
			drawer.DrawString(string(r))
		}
		cellX += c.glyphWidth
	}
	return nil
}

func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// copyInto copies the canvas pixels into dst, which must have equal bounds.
func (c *Canvas) copyInto(dst *image.RGBA) {
	copy(dst.Pix, c.img.Pix)
}
