//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeEvent(l eventLayout, typ, code uint16, value int32) []byte {
	rec := make([]byte, l.size)
	binary.LittleEndian.PutUint16(rec[l.tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[l.tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[l.tvSize+4:], uint32(value))
	return rec
}

func TestContainsKeyPress(t *testing.T) {
	l := newEventLayout()

	var buf []byte
	buf = append(buf, encodeEvent(l, evKey, KeyF4, 0)...) // release
	buf = append(buf, encodeEvent(l, evKey, 30, 1)...)    // 'a'
	assert.False(t, l.containsKeyPress(buf, KeyF4))

	buf = append(buf, encodeEvent(l, 0x04, KeyF4, 1)...) // EV_MSC
	assert.False(t, l.containsKeyPress(buf, KeyF4))

	buf = append(buf, encodeEvent(l, evKey, KeyF4, 1)...)
	assert.True(t, l.containsKeyPress(buf, KeyF4))
	assert.False(t, l.containsKeyPress(buf[:len(buf)-1], KeyF4), "partial records are ignored")
}

func TestStartExitOnKeyWatchesDevices(t *testing.T) {
	l := newEventLayout()
	dir := t.TempDir()
	path := filepath.Join(dir, "event0")
	require.NoError(t, os.WriteFile(path, encodeEvent(l, evKey, KeyF4, 1), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	exited := make(chan struct{})
	StartExitOnKey(ctx, nil, filepath.Join(dir, "event*"), KeyF4, func() { close(exited) })

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("exit key not detected")
	}
}

func TestStartExitOnKeyWithoutDevices(t *testing.T) {
	called := false
	StartExitOnKey(context.Background(), nil, filepath.Join(t.TempDir(), "event*"), KeyF4, func() { called = true })
	assert.False(t, called)
}
