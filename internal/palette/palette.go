package palette

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorScheme is the three-color palette for a program.
type ColorScheme struct {
	Name   string
	Artist color.RGBA
	Song   color.RGBA
	Info   color.RGBA
}

// ShowMapping binds a program name to a scheme key.
type ShowMapping struct {
	Show string
	Key  string
}

// Resolver maps program names to schemes.
// Mapping order is significant: substring matches are scanned front to back.
type Resolver struct {
	Mapping    []ShowMapping
	Schemes    map[string]ColorScheme
	DefaultKey string
}

// NewResolver returns a Resolver over the built-in station table.
func NewResolver() *Resolver {
	return &Resolver{Mapping: StationMapping, Schemes: StationSchemes, DefaultKey: DefaultKey}
}

// Resolve returns the scheme for showName. It never fails; anything that
// does not match falls back to the default scheme.
func (r *Resolver) Resolve(showName string) ColorScheme {
	key, ok := r.Lookup(showName)
	if !ok {
		return r.Default()
	}
	if scheme, found := r.Schemes[key]; found {
		return scheme
	}
	return r.Default()
}

// Lookup returns the scheme key matched by showName, if any.
func (r *Resolver) Lookup(showName string) (string, bool) {
	if showName == "" {
		return "", false
	}

	for _, entry := range r.Mapping {
		if entry.Show == showName {
			return entry.Key, true
		}
	}

	lower := strings.ToLower(showName)
	for _, entry := range r.Mapping {
		if strings.ToLower(entry.Show) == lower {
			return entry.Key, true
		}
	}

	for _, entry := range r.Mapping {
		show := strings.ToLower(entry.Show)
		if strings.Contains(lower, show) || strings.Contains(show, lower) {
			return entry.Key, true
		}
	}
	return "", false
}

func (r *Resolver) Default() ColorScheme {
	if scheme, ok := r.Schemes[r.DefaultKey]; ok {
		return scheme
	}
	return ColorScheme{
		Name:   "Fallback",
		Artist: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Song:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Info:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Dim scales every color of the scheme to brightness percent (0-100).
func (s ColorScheme) Dim(brightness int) ColorScheme {
	s.Artist = Dim(s.Artist, brightness)
	s.Song = Dim(s.Song, brightness)
	s.Info = Dim(s.Info, brightness)
	return s
}

// Dim blends c toward black. 100 leaves the color unchanged.
func Dim(c color.RGBA, brightness int) color.RGBA {
	if brightness >= 100 {
		return c
	}
	if brightness <= 0 {
		return color.RGBA{A: 0xFF}
	}
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	r, g, b := cf.BlendRgb(colorful.Color{}, 1-float64(brightness)/100).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	return cf.Hex()
}
