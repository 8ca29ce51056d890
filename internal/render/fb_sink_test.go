package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Sink        = (*FBSink)(nil)
	_ FrameSource = (*FBSink)(nil)
)

func TestOpenFBSinkMissingDevice(t *testing.T) {
	face := DefaultFace(DefaultFontSize)
	sink, err := OpenFBSink(filepath.Join(t.TempDir(), "fb0"), 64, 32, face, 6, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.Nil(t, sink)
}

func TestClosedFBSinkRejectsDrawing(t *testing.T) {
	sink := &FBSink{Logger: noopLogger{}, back: NewCanvas(64, 32, DefaultFace(DefaultFontSize), 6), closed: true}

	assert.NoError(t, sink.Close(), "second close is a no-op")
	assert.ErrorIs(t, sink.Clear(), errSinkClosed)
	assert.ErrorIs(t, sink.DrawText(0, 0, Background, "x"), errSinkClosed)
	assert.ErrorIs(t, sink.Swap(), errSinkClosed)
}
