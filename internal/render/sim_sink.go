package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/image/font"

	"github.com/rook-computer/kexpboard/internal/palette"
)

// SimSink stands in for the matrix when no device is available. It keeps the
// same canvas as FBSink, logs each frame whose text changed, and can print an
// ANSI preview of the pixels.
type SimSink struct {
	Logger Logger

	back   *Canvas
	front  *image.RGBA
	frames uint64
	closed bool

	texts       []string
	pixels      int
	lastSummary string

	previewEvery int
	previewRows  int
	previewed    bool
	out          *termenv.Output
	styles       *lipgloss.Renderer
}

func NewSimSink(width, height int, face font.Face, glyphWidth int, logger Logger) *SimSink {
	if logger == nil {
		logger = noopLogger{}
	}
	sink := &SimSink{
		Logger: logger,
		back:   NewCanvas(width, height, face, glyphWidth),
		front:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	sink.back.Clear()
	return sink
}

// EnablePreview writes a half-block rendering of every n-th frame to w.
// The preview redraws in place.
func (s *SimSink) EnablePreview(w io.Writer, every int) {
	if w == nil || every <= 0 {
		s.previewEvery = 0
		return
	}
	s.out = termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
	s.styles = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.TrueColor))
	s.previewEvery = every
}

func (s *SimSink) Size() (int, int) { return s.back.Size() }

func (s *SimSink) GlyphWidth() int { return s.back.GlyphWidth() }

func (s *SimSink) Frames() uint64 { return s.frames }

func (s *SimSink) Clear() error {
	if s.closed {
		return errSinkClosed
	}
	s.back.Clear()
	s.texts = s.texts[:0]
	s.pixels = 0
	return nil
}

func (s *SimSink) DrawText(x, y int, c color.RGBA, text string) error {
	if s.closed {
		return errSinkClosed
	}
	if trimmed := strings.TrimSpace(text); trimmed != "" && !containsString(s.texts, trimmed) {
		s.texts = append(s.texts, trimmed)
	}
	return s.back.DrawText(x, y, c, text)
}

func (s *SimSink) SetPixel(x, y int, c color.RGBA) {
	s.pixels++
	s.back.SetPixel(x, y, c)
}

func (s *SimSink) Swap() error {
	if s.closed {
		return errSinkClosed
	}
	s.back.copyInto(s.front)
	s.frames++

	summary := s.summary()
	if summary != s.lastSummary {
		s.Logger.Infof("sim", "frame %d: %s", s.frames, summary)
		s.lastSummary = summary
	}
	if s.previewEvery > 0 && s.frames%uint64(s.previewEvery) == 0 {
		s.writePreview()
	}
	return nil
}

// LastSummary is the text of the most recently logged frame.
func (s *SimSink) LastSummary() string { return s.lastSummary }

func (s *SimSink) Frame() *image.RGBA { return s.front }

func (s *SimSink) Close() error {
	if s.closed {
		return nil
	}
	s.back.Clear()
	s.back.copyInto(s.front)
	s.closed = true
	s.Logger.Infof("sim", "simulation sink closed after %d frames", s.frames)
	return nil
}

func (s *SimSink) summary() string {
	switch {
	case len(s.texts) > 0:
		return strings.Join(s.texts, " | ")
	case s.pixels > 0:
		return "<logo>"
	default:
		return "<blank>"
	}
}

// writePreview prints two pixel rows per terminal line using the upper half
// block: foreground is the top pixel, background the bottom one.
func (s *SimSink) writePreview() {
	bounds := s.front.Bounds()
	if s.previewed && s.previewRows > 0 {
		s.out.CursorPrevLine(s.previewRows)
	}

	rows := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var line strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := s.front.RGBAAt(x, y)
			bottom := Background
			if y+1 < bounds.Max.Y {
				bottom = s.front.RGBAAt(x, y+1)
			}
			style := s.styles.NewStyle().
				Foreground(lipgloss.Color(palette.Hex(top))).
				Background(lipgloss.Color(palette.Hex(bottom)))
			line.WriteString(style.Render("▀"))
		}
		fmt.Fprintln(s.out, line.String())
		rows++
	}
	s.previewRows = rows
	s.previewed = true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
