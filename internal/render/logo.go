package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/kexpboard/internal/assets"
	"github.com/rook-computer/kexpboard/internal/palette"
	"github.com/rook-computer/kexpboard/internal/render/layout"
)

// Logo is the static airbreak artwork: a frame with corner dots around the
// blocky station lettering, plus an optional QR panel on the right.
type Logo struct {
	Letters assets.Bitmap
	QR      assets.Bitmap
}

// Paint draws the logo into sink using the scheme colors. It does not clear
// or swap.
func (l *Logo) Paint(sink Sink, scheme palette.ColorScheme) {
	width, height := sink.Size()
	bounds := image.Rect(0, 0, width, height)

	drawRect(sink, bounds, scheme.Info)
	dots := layout.Inset(bounds, 2)
	for _, p := range []image.Point{
		dots.Min,
		{X: dots.Max.X - 1, Y: dots.Min.Y},
		{X: dots.Min.X, Y: dots.Max.Y - 1},
		{X: dots.Max.X - 1, Y: dots.Max.Y - 1},
	} {
		sink.SetPixel(p.X, p.Y, scheme.Song)
	}

	content := layout.Inset(bounds, 4)
	letterArea := content
	if qrW, qrH := l.QR.Width(), l.QR.Height(); qrW > 0 && qrW+2 < content.Dx()/2 && qrH+2 <= content.Dy() {
		var qrArea image.Rectangle
		letterArea, qrArea = layout.SplitVertical(content, content.Dx()-qrW-2)
		qrRect := layout.Center(qrArea, qrW, qrH)
		fillRect(sink, image.Rect(qrRect.Min.X-1, qrRect.Min.Y-1, qrRect.Max.X+1, qrRect.Max.Y+1), QRLight)
		paintBitmap(sink, l.QR, qrRect.Min, 1, QRDark)
	}

	bw, bh := l.Letters.Width(), l.Letters.Height()
	if bw == 0 || bh == 0 {
		return
	}
	scale := max(1, min(letterArea.Dx()/bw, letterArea.Dy()/bh))
	target := layout.Center(letterArea, bw*scale, bh*scale)
	paintBitmap(sink, l.Letters, target.Min, scale, scheme.Artist)
}

func paintBitmap(sink Sink, bitmap assets.Bitmap, origin image.Point, scale int, c color.RGBA) {
	for row, cells := range bitmap {
		for col, lit := range cells {
			if !lit {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					sink.SetPixel(origin.X+col*scale+dx, origin.Y+row*scale+dy, c)
				}
			}
		}
	}
}

func drawRect(sink Sink, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		sink.SetPixel(x, rect.Min.Y, c)
		sink.SetPixel(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		sink.SetPixel(rect.Min.X, y, c)
		sink.SetPixel(rect.Max.X-1, y, c)
	}
}

func fillRect(sink Sink, rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			sink.SetPixel(x, y, c)
		}
	}
}
