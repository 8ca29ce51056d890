package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo(t *testing.T) {
	logo := Logo()
	assert.Equal(t, 7, logo.Height())
	assert.Equal(t, 23, logo.Width())
	assert.True(t, logo[0][0])
	assert.False(t, logo[0][1])
}

func TestParseBitmap(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		bitmap, err := ParseBitmap("\n#.\r\n.#\n\n")
		require.NoError(t, err)
		assert.Equal(t, Bitmap{{true, false}, {false, true}}, bitmap)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := ParseBitmap("#.\n#")
		assert.Error(t, err)
	})

	t.Run("bad character", func(t *testing.T) {
		_, err := ParseBitmap("#x")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		bitmap, err := ParseBitmap("")
		require.NoError(t, err)
		assert.Equal(t, 0, bitmap.Width())
	})
}
