//go:build !linux

package system

import "context"

const KeyF4 = 62

func StartExitOnF4(ctx context.Context, logger Logger, onExit func()) {
	StartExitOnKey(ctx, logger, "", KeyF4, onExit)
}

func StartExitOnKey(ctx context.Context, logger Logger, pattern string, code uint16, onExit func()) {
	orNoop(logger).Infof("input", "exit key watcher not supported on this platform")
}
