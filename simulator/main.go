package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rook-computer/kexpboard/internal/app"
	"github.com/rook-computer/kexpboard/internal/config"
	"github.com/rook-computer/kexpboard/internal/state"
	"github.com/rook-computer/kexpboard/internal/web"
)

type simOptions struct {
	switchEvery time.Duration
	duration    time.Duration
	listen      string
	dev         bool
	preview     bool
	logPath     string
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}
	if err := newSimCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newSimCmd(cfg *config.Config) *cobra.Command {
	opts := simOptions{switchEvery: 20 * time.Second, listen: ":8080", preview: true}
	cfg.UpdateInterval = time.Second

	cmd := &cobra.Command{
		Use:   "kexpboard-sim",
		Short: "Run the display engine against a scripted track feed in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg.Sink = "sim"
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSim(*cfg, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.switchEvery, "switch", opts.switchEvery, "advance the scripted feed this often")
	flags.DurationVar(&opts.duration, "duration", 0, "stop after this long; 0 runs until interrupted")
	flags.StringVar(&opts.listen, "listen", opts.listen, "status and /sim control address, empty disables it")
	flags.BoolVar(&opts.dev, "dev", false, "permissive CORS on the status server")
	flags.BoolVar(&opts.preview, "preview", opts.preview, "draw the matrix in the terminal")
	flags.StringVar(&opts.logPath, "log", "", "write component logs to this file instead of stderr")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "matrix width in pixels")
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "matrix height in pixels")
	flags.IntVar(&cfg.Brightness, "brightness", cfg.Brightness, "brightness percent, 1-100")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	flags.Float64Var(&cfg.ScrollThreshold, "scroll-threshold", cfg.ScrollThreshold, "ticks per pixel of scroll")
	flags.IntVar(&cfg.AirbreakTicks, "airbreak-ticks", cfg.AirbreakTicks, "ticks per air break info/logo phase")
	flags.StringVar(&cfg.LogoQR, "logo-qr", cfg.LogoQR, "payload for a QR code next to the air break logo")
	return cmd
}

func runSim(cfg config.Config, opts simOptions, out io.Writer) error {
	var logger app.Logger = app.NewFileLogger(os.Stderr)
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = app.NewFileLogger(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	var preview io.Writer
	if opts.preview {
		preview = out
	}
	store := state.NewStore()
	_, renderer := app.OpenDisplay(cfg, store, preview, logger)

	control := NewSimControl(DefaultScript, opts.switchEvery)
	a := app.New(store, renderer, control)
	a.Logger = logger
	a.UpdateInterval = cfg.UpdateInterval
	a.FrameInterval = cfg.FrameInterval()

	if opts.listen != "" {
		server := web.NewHTTPServer(web.ServerConfig{ListenAddr: opts.listen, DevMode: opts.dev}, web.APIV1Deps{Store: store})
		server.Logger = logger
		mux := web.NewDefaultMux(server.Deps)
		registerSimEndpoints(mux, control)
		server.Handler = web.NewHandler(server.Config, mux)
		a.Web = server
		logger.Infof("web", "simulator control at http://%s/sim/state", displayAddr(opts.listen))
	}

	err := a.Start(ctx)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	return addr
}
