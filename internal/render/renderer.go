package render

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/rook-computer/kexpboard/internal/assets"
	"github.com/rook-computer/kexpboard/internal/palette"
	"github.com/rook-computer/kexpboard/internal/render/airbreak"
	"github.com/rook-computer/kexpboard/internal/render/layout"
	"github.com/rook-computer/kexpboard/internal/render/scroll"
	"github.com/rook-computer/kexpboard/internal/state"
)

// Renderer turns the current Track into one frame per Tick. Scroll and
// airbreak state live here and are only touched by Tick, so the renderer
// must be driven from a single goroutine.
type Renderer struct {
	Sink     Sink
	Resolver *palette.Resolver
	Logger   Logger
	// Store, when set, receives a copy of every presented frame.
	Store *state.Store

	opts       Options
	width      int
	height     int
	glyphWidth int
	slots      []image.Rectangle
	logo       *Logo

	scroll   *scroll.Machine
	airbreak *airbreak.Controller

	identity    state.Identity
	hasIdentity bool
	tick        uint64
}

func NewRenderer(sink Sink, resolver *palette.Resolver, opts Options, logger Logger) *Renderer {
	if logger == nil {
		logger = noopLogger{}
	}
	if resolver == nil {
		resolver = palette.NewResolver()
	}
	opts = opts.withDefaults()
	width, height := sink.Size()

	logo := &Logo{Letters: assets.Logo()}
	if opts.LogoQR != "" {
		qr, err := GenerateQRBitmap(opts.LogoQR)
		if err != nil {
			logger.Errorf("render", "logo qr code failed: %v", err)
		} else {
			logo.QR = qr
		}
	}

	return &Renderer{
		Sink:       sink,
		Resolver:   resolver,
		Logger:     logger,
		opts:       opts,
		width:      width,
		height:     height,
		glyphWidth: sink.GlyphWidth(),
		slots:      layout.Rows(image.Rect(0, 0, width, height), 3),
		logo:       logo,
		scroll:     scroll.New(width, opts.ScrollThreshold),
		airbreak:   airbreak.New(opts.AirbreakTicks),
	}
}

// Scroll returns the shared scroll position.
func (r *Renderer) Scroll() scroll.State { return r.scroll.State() }

// AirbreakMode returns the sub-mode the next airbreak tick will show.
func (r *Renderer) AirbreakMode() airbreak.SubMode { return r.airbreak.Mode() }

// Ticks returns how many ticks have been attempted.
func (r *Renderer) Ticks() uint64 { return r.tick }

// Tick renders track once. A returned error is always a *RenderError; the
// frame is abandoned and the next tick starts fresh from the same state.
func (r *Renderer) Tick(track state.Track) (err error) {
	r.tick++
	defer func() {
		if recovered := recover(); recovered != nil {
			err = &RenderError{Tick: r.tick, Op: "panic", Err: fmt.Errorf("%v", recovered)}
		}
	}()

	r.observe(track)
	scheme := r.Resolver.Resolve(track.ShowName).Dim(r.opts.Brightness)

	var lines []layout.Line
	mode := state.ModeTrack
	if track.PlayType == state.PlayTypeAirbreak {
		if r.airbreak.Tick() == airbreak.Logo {
			return r.presentLogo(scheme)
		}
		mode = state.ModeAirbreakInfo
		lines = r.airbreakLines(track, scheme)
	} else {
		lines = r.trackLines(track, scheme)
	}

	frame := layout.Compose(lines, layout.Params{
		DisplayWidth: r.width,
		GlyphWidth:   r.glyphWidth,
		Separator:    r.opts.Separator,
		Offset:       r.scroll.Offset(),
	})
	if frame.Overflow {
		r.scroll.Advance(frame.CycleLength)
	}

	if err := r.present(frame.Instructions); err != nil {
		return err
	}
	r.publish(state.FrameInfo{
		Tick:       r.tick,
		Mode:       mode,
		Scheme:     scheme.Name,
		Offset:     r.scroll.Offset(),
		Scrolling:  frame.Overflow,
		RenderedAt: time.Now(),
	})
	return nil
}

// observe resets animation state when the track identity changes. Airbreak
// state only resets when an air break starts or ends.
func (r *Renderer) observe(track state.Track) {
	id := track.Identity()
	if r.hasIdentity && id == r.identity {
		return
	}
	wasAirbreak := r.hasIdentity && r.identity.PlayType == state.PlayTypeAirbreak
	isAirbreak := track.PlayType == state.PlayTypeAirbreak

	r.scroll.Reset(r.width)
	if wasAirbreak != isAirbreak {
		r.airbreak.Reset()
	}
	r.identity = id
	r.hasIdentity = true
}

func (r *Renderer) trackLines(track state.Track, scheme palette.ColorScheme) []layout.Line {
	show := track.ShowName
	if show == "" {
		show = r.opts.ShowFallback
	}
	return []layout.Line{
		{Text: track.Artist, Y: r.slots[0].Min.Y, Color: scheme.Artist},
		{Text: track.Song, Y: r.slots[1].Min.Y, Color: scheme.Song},
		{Text: show, Y: r.slots[2].Min.Y, Color: scheme.Info},
	}
}

func (r *Renderer) airbreakLines(track state.Track, scheme palette.ColorScheme) []layout.Line {
	show := track.ShowName
	if show == "" {
		show = r.opts.ShowFallback
	}
	host := track.Host()
	if host == "" {
		host = r.opts.HostPlaceholder
	}
	return []layout.Line{
		{Text: show, Y: r.slots[0].Min.Y, Color: scheme.Artist},
		{Text: host, Y: r.slots[1].Min.Y, Color: scheme.Song},
		{Text: r.opts.StationID, Y: r.slots[2].Min.Y, Color: scheme.Info},
	}
}

func (r *Renderer) present(instructions []layout.Instruction) error {
	if err := r.Sink.Clear(); err != nil {
		return &RenderError{Tick: r.tick, Op: "clear", Err: err}
	}
	for _, in := range instructions {
		if err := r.Sink.DrawText(in.X, in.Y, in.Color, in.Text); err != nil {
			return &RenderError{Tick: r.tick, Op: "draw text", Err: err}
		}
	}
	if err := r.Sink.Swap(); err != nil {
		return &RenderError{Tick: r.tick, Op: "swap", Err: err}
	}
	return nil
}

// presentLogo bypasses layout and scrolling entirely.
func (r *Renderer) presentLogo(scheme palette.ColorScheme) error {
	if err := r.Sink.Clear(); err != nil {
		return &RenderError{Tick: r.tick, Op: "clear", Err: err}
	}
	r.logo.Paint(r.Sink, scheme)
	if err := r.Sink.Swap(); err != nil {
		return &RenderError{Tick: r.tick, Op: "swap", Err: err}
	}
	r.publish(state.FrameInfo{
		Tick:       r.tick,
		Mode:       state.ModeAirbreakLogo,
		Scheme:     scheme.Name,
		Offset:     r.scroll.Offset(),
		RenderedAt: time.Now(),
	})
	return nil
}

func (r *Renderer) publish(info state.FrameInfo) {
	if r.Store == nil {
		return
	}
	var img *image.RGBA
	if source, ok := r.Sink.(FrameSource); ok {
		img = source.Frame()
	}
	r.Store.UpdateFrame(info, img)
}

// Shutdown blanks the display and releases the sink.
func (r *Renderer) Shutdown() error {
	var errs []error
	if err := r.Sink.Clear(); err != nil && !errors.Is(err, errSinkClosed) {
		errs = append(errs, err)
	}
	if err := r.Sink.Swap(); err != nil && !errors.Is(err, errSinkClosed) {
		errs = append(errs, err)
	}
	if err := r.Sink.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
