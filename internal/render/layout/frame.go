package layout

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

// Line is one text row of a frame.
type Line struct {
	Text  string
	Y     int
	Color color.RGBA
}

// Instruction is a single drawText call. X may be negative or beyond the
// display; the sink clips.
type Instruction struct {
	X     int
	Y     int
	Color color.RGBA
	Text  string
}

type Params struct {
	DisplayWidth int
	GlyphWidth   int
	Separator    string
	// Offset is the shared scroll position used by every overflowing line.
	Offset int
}

// Frame is the layout result for one tick.
type Frame struct {
	Instructions []Instruction
	// Overflow reports whether any line is wider than the display.
	Overflow bool
	// CycleLength is the widest overflowing line plus the separator width.
	// Zero when nothing overflows.
	CycleLength int
}

// PixelWidth returns the width of text in fixed glyph cells.
func PixelWidth(text string, glyphWidth int) int {
	return utf8.RuneCountInString(text) * glyphWidth
}

// Compose lays out lines: lines that fit are centered, wider lines are drawn
// twice at the shared offset so the loop is continuous.
func Compose(lines []Line, p Params) Frame {
	var frame Frame
	separatorWidth := PixelWidth(p.Separator, p.GlyphWidth)
	drawSeparator := strings.TrimSpace(p.Separator) != ""

	for _, line := range lines {
		if line.Text == "" {
			continue
		}
		width := PixelWidth(line.Text, p.GlyphWidth)
		if width <= p.DisplayWidth {
			x := max(0, (p.DisplayWidth-width)/2)
			frame.Instructions = append(frame.Instructions, Instruction{X: x, Y: line.Y, Color: line.Color, Text: line.Text})
			continue
		}

		frame.Overflow = true
		frame.CycleLength = max(frame.CycleLength, width+separatorWidth)

		x := p.Offset
		frame.Instructions = append(frame.Instructions, Instruction{X: x, Y: line.Y, Color: line.Color, Text: line.Text})
		if drawSeparator {
			frame.Instructions = append(frame.Instructions, Instruction{X: x + width, Y: line.Y, Color: line.Color, Text: p.Separator})
		}
		frame.Instructions = append(frame.Instructions, Instruction{X: x + width + separatorWidth, Y: line.Y, Color: line.Color, Text: line.Text})
	}
	return frame
}
