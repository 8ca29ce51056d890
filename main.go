package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/kexpboard/internal/app"
	"github.com/rook-computer/kexpboard/internal/config"
	"github.com/rook-computer/kexpboard/internal/kexp"
	"github.com/rook-computer/kexpboard/internal/render"
	"github.com/rook-computer/kexpboard/internal/state"
	"github.com/rook-computer/kexpboard/internal/system"
	"github.com/rook-computer/kexpboard/internal/web"
)

var Version = "dev"

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}
	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		debugLog string
		devMode  bool
		noQuit   bool
	)

	cmd := &cobra.Command{
		Use:     "kexpboard",
		Short:   "KEXP now-playing display for RGB LED matrices",
		Long:    "kexpboard polls the KEXP API and renders the current track, show and air breaks\nonto a framebuffer-backed LED matrix, or logs frames when no framebuffer is available.",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(*cfg, debugLog, devMode, !noQuit)
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&cfg.UpdateInterval, "update-interval", cfg.UpdateInterval, "how often to poll the KEXP API ("+config.EnvUpdateInterval+")")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "matrix width in pixels ("+config.EnvMatrixCols+")")
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "matrix height in pixels ("+config.EnvMatrixRows+")")
	flags.IntVar(&cfg.Brightness, "brightness", cfg.Brightness, "brightness percent, 1-100 ("+config.EnvBrightness+")")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second ("+config.EnvFPS+")")
	flags.Float64Var(&cfg.ScrollThreshold, "scroll-threshold", cfg.ScrollThreshold, "ticks per pixel of scroll ("+config.EnvScrollThreshold+")")
	flags.IntVar(&cfg.AirbreakTicks, "airbreak-ticks", cfg.AirbreakTicks, "ticks per air break info/logo phase ("+config.EnvAirbreakTicks+")")
	flags.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF/OTF font file; empty uses Go Mono ("+config.EnvFontPath+")")
	flags.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "font size in pixels ("+config.EnvFontSize+")")
	flags.IntVar(&cfg.GlyphWidth, "glyph-width", cfg.GlyphWidth, "character cell width; 0 measures the font ("+config.EnvGlyphWidth+")")
	flags.StringVar(&cfg.Sink, "sink", cfg.Sink, "output: auto, fb or sim ("+config.EnvSink+")")
	flags.StringVar(&cfg.FBDevice, "fb", cfg.FBDevice, "framebuffer device ("+config.EnvFBDevice+")")
	flags.StringVar(&cfg.APIBase, "api", cfg.APIBase, "KEXP API base URL ("+config.EnvAPIBase+")")
	flags.StringVar(&cfg.Listen, "listen", cfg.Listen, "status server address, empty disables it ("+config.EnvListen+")")
	flags.StringVar(&cfg.Station, "station", cfg.Station, "station identifier shown during air breaks ("+config.EnvStation+")")
	flags.StringVar(&cfg.LogoQR, "logo-qr", cfg.LogoQR, "payload for a QR code next to the air break logo ("+config.EnvLogoQR+")")
	flags.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file ("+config.EnvStdioLog+")")
	flags.StringVar(&debugLog, "log", "", "write component logs to this file instead of stderr")
	flags.BoolVar(&devMode, "dev", false, "permissive CORS on the status server ("+web.EnvDevMode+")")
	flags.BoolVar(&noQuit, "no-f4", false, "do not exit when F4 is pressed")
	return cmd
}

func run(cfg config.Config, debugLog string, devMode, exitOnF4 bool) error {
	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NewFileLogger(os.Stderr)
	if debugLog != "" {
		f, err := os.OpenFile(debugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = app.NewFileLogger(f)
	}
	logger.Infof("app", "kexpboard %s starting", Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()
	sink, renderer := app.OpenDisplay(cfg, store, nil, logger)

	client := kexp.NewClient(cfg.APIBase)
	client.Logger = logger

	a := app.New(store, renderer, client)
	a.Logger = logger
	a.UpdateInterval = cfg.UpdateInterval
	a.FrameInterval = cfg.FrameInterval()

	if cfg.Listen != "" {
		serverCfg, err := web.ServerConfigFromEnv(cfg.Listen)
		if err != nil {
			return err
		}
		serverCfg.DevMode = serverCfg.DevMode || devMode
		server := web.NewHTTPServer(serverCfg, web.APIV1Deps{Store: store})
		server.Logger = logger
		a.Web = server
	}

	// Console handling only matters when we own the framebuffer.
	if _, ok := sink.(*render.FBSink); ok {
		console := system.NewConsole(logger)
		_ = console.EnterGraphics()
		defer func() { _ = console.Restore() }()
		if exitOnF4 {
			system.StartExitOnF4(ctx, logger, func() { a.Exit(nil) })
		}
	}

	err := a.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("app", "stopped: %v", err)
		return err
	}
	return nil
}
