//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	KeyF4 = 62

	keyPressed = 1
)

// StartExitOnF4 watches Linux evdev devices under /dev/input/event* and invokes onExit
// once when the F4 key is pressed.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartExitOnF4(ctx context.Context, logger Logger, onExit func()) {
	StartExitOnKey(ctx, logger, "/dev/input/event*", KeyF4, onExit)
}

// StartExitOnKey is StartExitOnF4 for an arbitrary device glob and key code.
func StartExitOnKey(ctx context.Context, logger Logger, pattern string, code uint16, onExit func()) {
	if onExit == nil {
		return
	}
	logger = orNoop(logger)
	layout := newEventLayout()

	paths, err := filepath.Glob(pattern)
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices found for exit key")
		return
	}

	var once sync.Once
	triggerExit := func() {
		once.Do(func() {
			logger.Infof("input", "exit key %d pressed: exiting", code)
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, layout, code, triggerExit)
	}
	logger.Infof("input", "watching %d input devices for exit key", len(paths))
}

func watchDevice(ctx context.Context, path string, layout eventLayout, code uint16, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if layout.containsKeyPress(buf[:n], code) {
			trigger()
			// Give the app a moment to unwind; then stop reading.
			time.Sleep(50 * time.Millisecond)
			return
		}
	}
}

// eventLayout describes struct input_event for this architecture:
// timeval + u16 type + u16 code + s32 value.
type eventLayout struct {
	tvSize int
	size   int
}

func newEventLayout() eventLayout {
	tvSize := binary.Size(unix.Timeval{})
	if tvSize <= 0 {
		tvSize = 16
	}
	return eventLayout{tvSize: tvSize, size: tvSize + 2 + 2 + 4}
}

func (l eventLayout) containsKeyPress(buf []byte, code uint16) bool {
	for off := 0; off+l.size <= len(buf); off += l.size {
		rec := buf[off : off+l.size]
		typ := binary.LittleEndian.Uint16(rec[l.tvSize : l.tvSize+2])
		got := binary.LittleEndian.Uint16(rec[l.tvSize+2 : l.tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[l.tvSize+4 : l.tvSize+8]))
		if typ == evKey && got == code && value == keyPressed {
			return true
		}
	}
	return false
}
