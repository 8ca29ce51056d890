package kexp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/kexpboard/internal/state"
)

func newAPI(t *testing.T, plays string, shows map[string]string) (*httptest.Server, *int32) {
	t.Helper()
	var showHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/plays/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "-airdate", r.URL.Query().Get("ordering"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(plays))
	})
	mux.HandleFunc("/shows/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&showHits, 1)
		body, ok := shows[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &showHits
}

func TestFetchTrackPlay(t *testing.T) {
	srv, hits := newAPI(t,
		`{"count":1,"results":[{"id":1,"artist":"Björk","song":"Jóga","show":42,"play_type":"trackplay","comment":"  "}]}`,
		map[string]string{"/shows/42/": `{"id":42,"program_name":"The Morning Show","host_names":["John Richards","Guest"]}`},
	)
	client := NewClient(srv.URL + "/")

	track, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Björk", track.Artist)
	assert.Equal(t, "Jóga", track.Song)
	assert.Equal(t, "The Morning Show", track.ShowName)
	require.NotNil(t, track.HostName)
	assert.Equal(t, "John Richards, Guest", *track.HostName)
	assert.Equal(t, state.PlayTypeTrackPlay, track.PlayType)
	assert.Nil(t, track.Comment)

	_, err = client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits), "show details are cached")
}

func TestFetchAirbreak(t *testing.T) {
	srv, _ := newAPI(t,
		`{"results":[{"id":2,"artist":null,"song":null,"show":7,"play_type":"airbreak"}]}`,
		map[string]string{"/shows/7/": `{"id":7,"program_name":"Drive Time","host_names":"Kevin Cole"}`},
	)
	track, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state.PlayTypeAirbreak, track.PlayType)
	assert.Empty(t, track.Artist)
	assert.Empty(t, track.Song)
	assert.Equal(t, "Drive Time", track.ShowName)
	assert.Equal(t, "Kevin Cole", track.Host())
}

func TestFetchDefaults(t *testing.T) {
	srv, _ := newAPI(t, `{"results":[{"id":3,"play_type":"trackplay","show":null}]}`, nil)
	track, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unknown Artist", track.Artist)
	assert.Equal(t, "Unknown Track", track.Song)
	assert.Empty(t, track.ShowName)
	assert.Nil(t, track.HostName)
}

func TestFetchShowFailureKeepsTrack(t *testing.T) {
	srv, _ := newAPI(t, `{"results":[{"artist":"A","song":"S","show":99,"play_type":"trackplay"}]}`, nil)
	track, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", track.Artist)
	assert.Empty(t, track.ShowName)
}

func TestFetchUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		},
		"garbage": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		},
		"empty": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[]}`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()
			_, err := NewClient(srv.URL).Fetch(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable))
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		_, err := NewClient(url).Fetch(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestTrackFromPlayShowFallback(t *testing.T) {
	artist := "A"
	track := TrackFromPlay(Play{Artist: &artist, PlayType: "mystery"}, &Show{ProgramName: "  "})
	assert.Equal(t, state.PlayTypeOther, track.PlayType)
	assert.Equal(t, "KEXP", track.ShowName)
	assert.Equal(t, "Unknown Track", track.Song)
}
