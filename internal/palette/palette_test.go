package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testResolver() *Resolver {
	return &Resolver{
		Mapping: []ShowMapping{
			{"Jazz", "a"},
			{"The Jazz Hour", "b"},
			{"Sonic Reducer", "c"},
			{"Broken", "missing"},
		},
		Schemes: map[string]ColorScheme{
			"a":   {Name: "A"},
			"b":   {Name: "B"},
			"c":   {Name: "C"},
			"def": {Name: "Default"},
		},
		DefaultKey: "def",
	}
}

func TestResolve(t *testing.T) {
	r := testResolver()

	testCases := []struct {
		name     string
		show     string
		expected string
	}{
		{"empty name", "", "Default"},
		{"whitespace name goes through substring matching", " ", "B"},
		{"exact match outranks substring", "The Jazz Hour", "B"},
		{"exact match", "Jazz", "A"},
		{"case-insensitive exact", "sonic reducer", "C"},
		{"mapping key inside name", "Late Night Jazz Session", "A"},
		{"name inside mapping key", "reducer", "C"},
		{"first substring hit in insertion order", "jazz hour", "A"},
		{"no match", "Polka Party", "Default"},
		{"key pointing at unknown scheme", "Broken", "Default"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Resolve(tc.show).Name)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver()
	for _, show := range []string{"", "Jazz Theatre", "the roadhouse", "Something Else", "Live"} {
		first := r.Resolve(show)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, r.Resolve(show), show)
		}
	}
}

func TestStationTable(t *testing.T) {
	r := NewResolver()

	t.Run("every mapping key has a scheme", func(t *testing.T) {
		for _, entry := range StationMapping {
			_, ok := StationSchemes[entry.Key]
			assert.True(t, ok, "missing scheme %q for %q", entry.Key, entry.Show)
		}
	})

	t.Run("known shows", func(t *testing.T) {
		assert.Equal(t, "Expansions", r.Resolve("Jazz Theatre").Name)
		assert.Equal(t, "Seek and Destroy", r.Resolve("Seek & Destroy").Name)
		assert.Equal(t, "KEXP Default", r.Resolve("").Name)
		assert.Equal(t, "KEXP Default", r.Resolve("Unknown Program").Name)
		assert.Equal(t, "Morning Show", r.Resolve(" ").Name, "a lone space is a substring of the first multi-word program")
	})
}

func TestResolverWithoutDefaultScheme(t *testing.T) {
	r := &Resolver{}
	scheme := r.Resolve("anything")
	assert.Equal(t, "Fallback", scheme.Name)
}

func TestDim(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, c, Dim(c, 100))
	assert.Equal(t, color.RGBA{A: 255}, Dim(c, 0))

	half := Dim(c, 50)
	assert.InDelta(t, 100, int(half.R), 1)
	assert.InDelta(t, 50, int(half.G), 1)
	assert.InDelta(t, 25, int(half.B), 1)

	s := ColorScheme{Artist: c, Song: c, Info: c}.Dim(50)
	assert.Equal(t, half, s.Song)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Hex(color.RGBA{R: 255, G: 128, B: 0, A: 255}))
}
