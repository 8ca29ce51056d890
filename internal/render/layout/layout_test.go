package layout

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectHelpers(t *testing.T) {
	display := image.Rect(0, 0, 64, 32)

	t.Run("inset", func(t *testing.T) {
		assert.Equal(t, image.Rect(2, 2, 62, 30), Inset(display, 2))
		assert.Equal(t, display, Inset(display, 0))
	})

	t.Run("split vertical clamps", func(t *testing.T) {
		left, right := SplitVertical(display, 100)
		assert.Equal(t, display, left)
		assert.True(t, right.Empty())
	})

	t.Run("rows", func(t *testing.T) {
		rows := Rows(display, 3)
		require.Len(t, rows, 3)
		assert.Equal(t, image.Rect(0, 0, 64, 10), rows[0])
		assert.Equal(t, image.Rect(0, 10, 64, 20), rows[1])
		assert.Equal(t, image.Rect(0, 20, 64, 32), rows[2])
		assert.Nil(t, Rows(display, 0))
	})

	t.Run("center", func(t *testing.T) {
		assert.Equal(t, image.Rect(22, 9, 42, 23), Center(display, 20, 14))
		assert.Equal(t, image.Rect(0, 0, 80, 40), Center(display, 80, 40))
	})
}

func TestPixelWidth(t *testing.T) {
	assert.Equal(t, 66, PixelWidth("The Beatles", 6))
	assert.Equal(t, 18, PixelWidth("Öyö", 6))
	assert.Equal(t, 0, PixelWidth("", 6))
}

func TestComposeCentersFittingLines(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	frame := Compose([]Line{{Text: "123456", Y: 4, Color: white}}, Params{DisplayWidth: 64, GlyphWidth: 6, Offset: -40})

	require.Len(t, frame.Instructions, 1)
	assert.Equal(t, Instruction{X: 14, Y: 4, Color: white, Text: "123456"}, frame.Instructions[0])
	assert.False(t, frame.Overflow)
	assert.Equal(t, 0, frame.CycleLength)
}

func TestComposeScrollsOverflowingLines(t *testing.T) {
	p := Params{DisplayWidth: 64, GlyphWidth: 6, Separator: "     ", Offset: 10}
	frame := Compose([]Line{
		{Text: "The Beatles", Y: 0},
		{Text: "Help!", Y: 10},
	}, p)

	assert.True(t, frame.Overflow)
	assert.Equal(t, 66+30, frame.CycleLength)
	require.Len(t, frame.Instructions, 3)
	assert.Equal(t, 10, frame.Instructions[0].X)
	assert.Equal(t, 10+66+30, frame.Instructions[1].X)
	assert.Equal(t, "The Beatles", frame.Instructions[1].Text)
	assert.Equal(t, 17, frame.Instructions[2].X)
}

func TestComposeSharesOffsetAcrossLines(t *testing.T) {
	p := Params{DisplayWidth: 64, GlyphWidth: 6, Separator: "     ", Offset: -7}
	frame := Compose([]Line{
		{Text: "A Very Long Artist Name", Y: 0},
		{Text: "Short Long Long Song", Y: 10},
	}, p)

	require.Len(t, frame.Instructions, 4)
	assert.Equal(t, -7, frame.Instructions[0].X)
	assert.Equal(t, -7, frame.Instructions[2].X)
	assert.Equal(t, 23*6+30, frame.CycleLength)
}

func TestComposeVisibleSeparator(t *testing.T) {
	p := Params{DisplayWidth: 10, GlyphWidth: 2, Separator: " * ", Offset: 0}
	frame := Compose([]Line{{Text: "abcdefgh", Y: 0}}, p)

	require.Len(t, frame.Instructions, 3)
	assert.Equal(t, Instruction{X: 16, Text: " * "}, frame.Instructions[1])
	assert.Equal(t, 22, frame.Instructions[2].X)
}

func TestComposeSkipsEmptyLines(t *testing.T) {
	frame := Compose([]Line{{Text: ""}}, Params{DisplayWidth: 64, GlyphWidth: 6})
	assert.Empty(t, frame.Instructions)
}
