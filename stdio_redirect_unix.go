//go:build unix

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// redirectStdIO points fds 1 and 2 at path so panics and writes from any
// goroutine land in the file. A marker line separates runs.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	_, _ = fmt.Fprintf(f, "=== kexpboard %s pid %d %s ===\n", Version, os.Getpid(), time.Now().Format(time.RFC3339))
	for _, target := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(target.Fd())); err != nil {
			return fmt.Errorf("dup2 %s onto fd %d: %w", path, target.Fd(), err)
		}
	}
	return nil
}
