package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

const DefaultFontSize = 10

// LoadFace loads a font file at sizePx. OpenType is tried first, then the
// freetype TrueType parser.
func LoadFace(path string, sizePx float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	if sizePx <= 0 {
		sizePx = DefaultFontSize
	}

	if parsed, perr := opentype.Parse(data); perr == nil {
		face, ferr := opentype.NewFace(parsed, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, nil
		}
	}

	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull}), nil
}

// DefaultFace returns Go Mono at sizePx, or basicfont if that fails.
func DefaultFace(sizePx float64) font.Face {
	if sizePx <= 0 {
		sizePx = DefaultFontSize
	}
	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// ResolveFace loads path when set and falls back to DefaultFace on any error.
func ResolveFace(path string, sizePx float64, logger Logger) font.Face {
	if logger == nil {
		logger = noopLogger{}
	}
	if path == "" {
		return DefaultFace(sizePx)
	}
	face, err := LoadFace(path, sizePx)
	if err != nil {
		logger.Errorf("render", "font load failed, using Go Mono: %v", err)
		return DefaultFace(sizePx)
	}
	logger.Infof("render", "loaded font %s at %.0fpx", path, sizePx)
	return face
}

// GlyphAdvance is the rounded-up advance of 'M', used as the cell width.
func GlyphAdvance(face font.Face) int {
	if face == nil {
		return basicfont.Face7x13.Advance
	}
	advance, ok := face.GlyphAdvance('M')
	if !ok || advance.Ceil() <= 0 {
		return basicfont.Face7x13.Advance
	}
	return advance.Ceil()
}
