package app

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rook-computer/kexpboard/internal/render"
	"github.com/rook-computer/kexpboard/internal/state"
	"github.com/rook-computer/kexpboard/internal/web"
)

const (
	DefaultUpdateInterval = 10 * time.Second
	DefaultFrameInterval  = 100 * time.Millisecond
)

// Fetcher returns the current track. An error means "no fresh data"; the
// app keeps showing what it already has.
type Fetcher interface {
	Fetch(ctx context.Context) (state.Track, error)
}

// App drives the display: a rare, interval-gated refresh followed by a
// render tick, both on the goroutine that called Start.
type App struct {
	Store   *state.Store
	Render  *render.Renderer
	Fetcher Fetcher
	Web     web.Server
	Logger  Logger

	UpdateInterval time.Duration
	FrameInterval  time.Duration

	current     *state.Track
	lastRefresh time.Time

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, renderer *render.Renderer, fetcher Fetcher) *App {
	return &App{
		Store:          store,
		Render:         renderer,
		Fetcher:        fetcher,
		Web:            &web.NoopServer{},
		Logger:         NoopLogger{},
		UpdateInterval: DefaultUpdateInterval,
		FrameInterval:  DefaultFrameInterval,
		exitCh:         make(chan error, 1),
	}
}

// Exit requests the loop to stop after the current tick. Safe to call from
// any goroutine; only the first call counts.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs until ctx is cancelled or Exit is called, then blanks the
// display and releases the sink.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Render.Store == nil {
		app.Render.Store = app.Store
	}

	if app.Web != nil {
		if err := app.Web.Start(ctx); err != nil {
			app.Logger.Errorf("web", "status server start error: %v", err)
		}
		defer func() { _ = app.Web.Stop() }()
	}

	app.Logger.Infof("app", "display started (refresh every %s, frame every %s)", app.updateInterval(), app.frameInterval())
	defer func() {
		if err := app.Render.Shutdown(); err != nil {
			app.Logger.Errorf("render", "shutdown: %v", err)
		}
		app.Logger.Infof("app", "display stopped")
	}()

	ticker := time.NewTicker(app.frameInterval())
	defer ticker.Stop()

	app.Step(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-app.exitCh:
			return err
		case now := <-ticker.C:
			app.Step(ctx, now)
		}
	}
}

// Step performs one loop iteration: refresh when due, then render the
// current track. Nothing is drawn until a first track has arrived.
func (app *App) Step(ctx context.Context, now time.Time) {
	if app.lastRefresh.IsZero() || now.Sub(app.lastRefresh) >= app.updateInterval() {
		app.Refresh(ctx)
		app.lastRefresh = now
	}
	if app.current == nil {
		return
	}
	if err := app.Render.Tick(*app.current); err != nil {
		app.Logger.Errorf("render", "%v", err)
		if app.Store != nil {
			app.Store.RecordFailure(err)
		}
	}
}

// Refresh asks the fetcher for fresh data and reports whether the current
// track changed.
func (app *App) Refresh(ctx context.Context) bool {
	if app.Fetcher == nil {
		return false
	}
	track, err := app.Fetcher.Fetch(ctx)
	if err != nil {
		app.Logger.Errorf("kexp", "refresh failed, keeping previous track: %v", err)
		if app.Store != nil {
			app.Store.RecordFailure(err)
		}
		return false
	}
	if app.current != nil && app.current.Equal(track) {
		return false
	}

	app.current = &track
	if app.Store != nil {
		app.Store.UpdateTrack(track)
	}
	if track.PlayType == state.PlayTypeAirbreak {
		app.Logger.Infof("app", "air break: %s", showOr(track.ShowName))
	} else {
		app.Logger.Infof("app", "now playing: %s - %s (%s)", track.Artist, track.Song, showOr(track.ShowName))
	}
	return true
}

// Current returns the track being displayed, if any.
func (app *App) Current() (state.Track, bool) {
	if app.current == nil {
		return state.Track{}, false
	}
	return *app.current, true
}

func (app *App) updateInterval() time.Duration {
	if app.UpdateInterval <= 0 {
		return DefaultUpdateInterval
	}
	return app.UpdateInterval
}

func (app *App) frameInterval() time.Duration {
	if app.FrameInterval <= 0 {
		return DefaultFrameInterval
	}
	return app.FrameInterval
}

func showOr(name string) string {
	if name == "" {
		return "KEXP"
	}
	return name
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
