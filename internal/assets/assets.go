package assets

import (
	_ "embed"
	"fmt"
	"strings"
)

// LogoText is the station lettering as rows of '#' (lit) and '.' (dark).
//
//go:embed logo.txt
var LogoText string

// Bitmap is a monochrome pixel pattern indexed [row][column].
type Bitmap [][]bool

func (b Bitmap) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b Bitmap) Height() int { return len(b) }

// ParseBitmap reads '#'/'.' art. Blank lines are skipped; all rows must have
// the same width.
func ParseBitmap(text string) (Bitmap, error) {
	var bitmap Bitmap
	for i, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("bitmap line %d: unexpected %q", i+1, ch)
			}
		}
		if len(bitmap) > 0 && len(row) != bitmap.Width() {
			return nil, fmt.Errorf("bitmap line %d: width %d, want %d", i+1, len(row), bitmap.Width())
		}
		bitmap = append(bitmap, row)
	}
	return bitmap, nil
}

// Logo returns the parsed station lettering.
func Logo() Bitmap {
	bitmap, err := ParseBitmap(LogoText)
	if err != nil {
		panic(err)
	}
	return bitmap
}
