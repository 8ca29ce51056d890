package render

import (
	"io"

	"golang.org/x/image/font"
)

const (
	SinkAuto = "auto"
	SinkFB   = "fb"
	SinkSim  = "sim"
)

type SinkConfig struct {
	Kind       string
	Device     string
	Width      int
	Height     int
	Face       font.Face
	GlyphWidth int

	// Preview and PreviewEvery enable the simulation sink's ANSI preview.
	Preview      io.Writer
	PreviewEvery int
}

// OpenSink acquires the configured output. A framebuffer that cannot be
// opened degrades to the simulation sink instead of failing.
func OpenSink(cfg SinkConfig, logger Logger) Sink {
	if logger == nil {
		logger = noopLogger{}
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	if cfg.Kind != SinkSim {
		device := cfg.Device
		if device == "" {
			device = "/dev/fb0"
		}
		sink, err := OpenFBSink(device, cfg.Width, cfg.Height, cfg.Face, cfg.GlyphWidth, logger)
		if err == nil {
			return sink
		}
		logger.Errorf("render", "%v; running in simulation mode", err)
	}

	sim := NewSimSink(cfg.Width, cfg.Height, cfg.Face, cfg.GlyphWidth, logger)
	sim.EnablePreview(cfg.Preview, cfg.PreviewEvery)
	logger.Infof("render", "simulation sink %dx%d, display output will be logged", cfg.Width, cfg.Height)
	return sim
}
