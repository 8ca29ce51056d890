package app

import (
	"io"

	"github.com/rook-computer/kexpboard/internal/config"
	"github.com/rook-computer/kexpboard/internal/palette"
	"github.com/rook-computer/kexpboard/internal/render"
	"github.com/rook-computer/kexpboard/internal/state"
)

// RenderOptions maps configuration onto renderer tuning.
func RenderOptions(cfg config.Config) render.Options {
	return render.Options{
		StationID:       cfg.Station,
		Brightness:      cfg.Brightness,
		ScrollThreshold: cfg.ScrollThreshold,
		AirbreakTicks:   cfg.AirbreakTicks,
		LogoQR:          cfg.LogoQR,
	}
}

// OpenDisplay loads the font, acquires the sink and builds a renderer that
// publishes into store. preview is only used by the simulation sink.
func OpenDisplay(cfg config.Config, store *state.Store, preview io.Writer, logger Logger) (render.Sink, *render.Renderer) {
	if logger == nil {
		logger = NoopLogger{}
	}
	face := render.ResolveFace(cfg.FontPath, cfg.FontSize, logger)
	glyphWidth := cfg.GlyphWidth
	if glyphWidth <= 0 {
		glyphWidth = render.GlyphAdvance(face)
	}

	previewEvery := 0
	if preview != nil {
		previewEvery = 1
	}
	sink := render.OpenSink(render.SinkConfig{
		Kind:         cfg.Sink,
		Device:       cfg.FBDevice,
		Width:        cfg.Cols,
		Height:       cfg.Rows,
		Face:         face,
		GlyphWidth:   glyphWidth,
		Preview:      preview,
		PreviewEvery: previewEvery,
	}, logger)

	renderer := render.NewRenderer(sink, palette.NewResolver(), RenderOptions(cfg), logger)
	renderer.Store = store
	logger.Infof("app", "display %dx%d, glyph width %d", cfg.Cols, cfg.Rows, glyphWidth)
	return sink, renderer
}
