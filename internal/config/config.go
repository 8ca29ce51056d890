// Package config loads runtime settings from KEXPBOARD_* environment
// variables. Command-line flags are applied on top by the binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvUpdateInterval  = "KEXPBOARD_UPDATE_INTERVAL"
	EnvMatrixCols      = "KEXPBOARD_MATRIX_COLS"
	EnvMatrixRows      = "KEXPBOARD_MATRIX_ROWS"
	EnvBrightness      = "KEXPBOARD_BRIGHTNESS"
	EnvFPS             = "KEXPBOARD_FPS"
	EnvScrollThreshold = "KEXPBOARD_SCROLL_THRESHOLD"
	EnvAirbreakTicks   = "KEXPBOARD_AIRBREAK_TICKS"
	EnvFontPath        = "KEXPBOARD_FONT_PATH"
	EnvFontSize        = "KEXPBOARD_FONT_SIZE"
	EnvGlyphWidth      = "KEXPBOARD_GLYPH_WIDTH"
	EnvSink            = "KEXPBOARD_SINK"
	EnvFBDevice        = "KEXPBOARD_FB_DEVICE"
	EnvAPIBase         = "KEXPBOARD_API_BASE"
	EnvListen          = "KEXPBOARD_LISTEN"
	EnvStation         = "KEXPBOARD_STATION"
	EnvLogoQR          = "KEXPBOARD_LOGO_QR"
	EnvStdioLog        = "KEXPBOARD_STDIO_LOG"
)

type Config struct {
	UpdateInterval  time.Duration
	Cols            int
	Rows            int
	Brightness      int
	FPS             int
	ScrollThreshold float64
	AirbreakTicks   int

	FontPath string
	FontSize float64
	// GlyphWidth overrides the advance measured from the font when > 0.
	GlyphWidth int

	Sink     string
	FBDevice string

	APIBase string
	// Listen enables the status server when non-empty.
	Listen   string
	Station  string
	LogoQR   string
	StdioLog string
}

func Default() Config {
	return Config{
		UpdateInterval:  10 * time.Second,
		Cols:            64,
		Rows:            32,
		Brightness:      100,
		FPS:             10,
		ScrollThreshold: 1.6,
		AirbreakTicks:   30,
		FontSize:        10,
		Sink:            "auto",
		FBDevice:        "/dev/fb0",
		APIBase:         "https://api.kexp.org/v2",
		Station:         "KEXP 90.3 FM",
	}
}

// FromEnv returns Default overridden by any KEXPBOARD_* variables that are set.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	get := func(name string) (string, bool) {
		raw, ok := lookup(name)
		if !ok {
			return "", false
		}
		raw = strings.TrimSpace(raw)
		return raw, raw != ""
	}
	intVar := func(name string, dst *int) {
		if raw, ok := get(name); ok {
			v, err := strconv.Atoi(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be an integer (got %q): %w", name, raw, err))
				return
			}
			*dst = v
		}
	}
	floatVar := func(name string, dst *float64) {
		if raw, ok := get(name); ok {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be a number (got %q): %w", name, raw, err))
				return
			}
			*dst = v
		}
	}
	stringVar := func(name string, dst *string) {
		if raw, ok := get(name); ok {
			*dst = raw
		}
	}

	if raw, ok := get(EnvUpdateInterval); ok {
		d, err := parseInterval(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a duration or seconds (got %q): %w", EnvUpdateInterval, raw, err))
		} else {
			cfg.UpdateInterval = d
		}
	}
	intVar(EnvMatrixCols, &cfg.Cols)
	intVar(EnvMatrixRows, &cfg.Rows)
	intVar(EnvBrightness, &cfg.Brightness)
	intVar(EnvFPS, &cfg.FPS)
	floatVar(EnvScrollThreshold, &cfg.ScrollThreshold)
	intVar(EnvAirbreakTicks, &cfg.AirbreakTicks)
	stringVar(EnvFontPath, &cfg.FontPath)
	floatVar(EnvFontSize, &cfg.FontSize)
	intVar(EnvGlyphWidth, &cfg.GlyphWidth)
	stringVar(EnvSink, &cfg.Sink)
	stringVar(EnvFBDevice, &cfg.FBDevice)
	stringVar(EnvAPIBase, &cfg.APIBase)
	stringVar(EnvListen, &cfg.Listen)
	stringVar(EnvStation, &cfg.Station)
	stringVar(EnvLogoQR, &cfg.LogoQR)
	stringVar(EnvStdioLog, &cfg.StdioLog)

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseInterval accepts Go durations ("15s") or a bare number of seconds.
func parseInterval(raw string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(raw)
}

// Validate reports every setting that cannot drive the display.
func (c Config) Validate() error {
	var errs []error
	if c.UpdateInterval <= 0 {
		errs = append(errs, fmt.Errorf("update interval must be positive (got %s)", c.UpdateInterval))
	}
	if c.Cols <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("matrix size must be positive (got %dx%d)", c.Cols, c.Rows))
	}
	if c.Brightness < 1 || c.Brightness > 100 {
		errs = append(errs, fmt.Errorf("brightness must be within 1-100 (got %d)", c.Brightness))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive (got %d)", c.FPS))
	}
	if c.ScrollThreshold <= 0 {
		errs = append(errs, fmt.Errorf("scroll threshold must be positive (got %g)", c.ScrollThreshold))
	}
	if c.AirbreakTicks <= 0 {
		errs = append(errs, fmt.Errorf("airbreak ticks must be positive (got %d)", c.AirbreakTicks))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive (got %g)", c.FontSize))
	}
	if c.GlyphWidth < 0 {
		errs = append(errs, fmt.Errorf("glyph width must not be negative (got %d)", c.GlyphWidth))
	}
	switch c.Sink {
	case "auto", "fb", "sim":
	default:
		errs = append(errs, fmt.Errorf("sink must be one of auto, fb, sim (got %q)", c.Sink))
	}
	return errors.Join(errs...)
}

// FrameInterval is the tick period derived from FPS.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(c.FPS)
}
