package render

import (
	"image/color"

	"github.com/rook-computer/kexpboard/internal/render/airbreak"
	"github.com/rook-computer/kexpboard/internal/render/scroll"
)

// Global render defaults for the LED matrix.
var (
	Background = color.RGBA{A: 0xFF}

	// QR panels need a light quiet zone to scan.
	QRLight = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	QRDark  = color.RGBA{A: 0xFF}

	DefaultWidth  = 64
	DefaultHeight = 32
)

const (
	DefaultSeparator       = "     "
	DefaultStationID       = "KEXP 90.3 FM"
	DefaultShowFallback    = "KEXP"
	DefaultHostPlaceholder = "Air Break"
)

// Options tune the Renderer. Zero values pick the defaults above.
type Options struct {
	Separator       string
	StationID       string
	ShowFallback    string
	HostPlaceholder string
	// Brightness in percent; 0 means 100.
	Brightness      int
	ScrollThreshold float64
	AirbreakTicks   int
	// LogoQR, when set, adds a QR code of this payload to the logo.
	LogoQR string
}

func (o Options) withDefaults() Options {
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.StationID == "" {
		o.StationID = DefaultStationID
	}
	if o.ShowFallback == "" {
		o.ShowFallback = DefaultShowFallback
	}
	if o.HostPlaceholder == "" {
		o.HostPlaceholder = DefaultHostPlaceholder
	}
	if o.Brightness <= 0 || o.Brightness > 100 {
		o.Brightness = 100
	}
	if o.ScrollThreshold <= 0 {
		o.ScrollThreshold = scroll.DefaultThreshold
	}
	if o.AirbreakTicks <= 0 {
		o.AirbreakTicks = airbreak.DefaultToggleTicks
	}
	return o
}
