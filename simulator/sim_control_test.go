package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/kexpboard/internal/kexp"
	"github.com/rook-computer/kexpboard/internal/state"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newControl(every time.Duration) (*SimControl, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewSimControl(nil, every)
	c.now = clock.Now
	return c, clock
}

func TestScriptAdvancesOnSwitchInterval(t *testing.T) {
	c, clock := newControl(20 * time.Second)
	ctx := context.Background()

	first, err := c.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultScript[0].Artist, first.Artist)

	clock.t = clock.t.Add(19 * time.Second)
	same, _ := c.Fetch(ctx)
	assert.True(t, same.Equal(first))

	clock.t = clock.t.Add(time.Second)
	second, _ := c.Fetch(ctx)
	assert.Equal(t, DefaultScript[1].Artist, second.Artist)

	for i := 0; i < len(DefaultScript)-1; i++ {
		clock.t = clock.t.Add(20 * time.Second)
		_, _ = c.Fetch(ctx)
	}
	wrapped, _ := c.Fetch(ctx)
	assert.Equal(t, DefaultScript[0].Artist, wrapped.Artist)
}

func TestScriptCoversEveryMode(t *testing.T) {
	seen := map[state.PlayType]bool{}
	hostless := false
	for _, track := range DefaultScript {
		seen[track.PlayType] = true
		if track.PlayType == state.PlayTypeAirbreak && track.HostName == nil {
			hostless = true
		}
	}
	assert.True(t, seen[state.PlayTypeTrackPlay])
	assert.True(t, seen[state.PlayTypeAirbreak])
	assert.True(t, seen[state.PlayTypeOther])
	assert.True(t, hostless)
}

func TestOfflineFault(t *testing.T) {
	c, _ := newControl(time.Second)
	c.SetFaults(SimFaults{Offline: true})
	_, err := c.Fetch(context.Background())
	assert.ErrorIs(t, err, kexp.ErrUnavailable)

	c.Reset()
	_, err = c.Fetch(context.Background())
	assert.NoError(t, err)
}

func TestSimEndpoints(t *testing.T) {
	c, _ := newControl(time.Hour)
	mux := http.NewServeMux()
	registerSimEndpoints(mux, c)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	post := func(path, body string) simStatus {
		t.Helper()
		resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var st simStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
		return st
	}

	st := post("/sim/next", "")
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, DefaultScript[1].Artist, st.Track.Artist)

	st = post("/sim/track", `{"showName":"Sonarchy","playType":"airbreak"}`)
	assert.True(t, st.Pinned)
	assert.Equal(t, "airbreak", st.Track.PlayType)
	track, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sonarchy", track.ShowName)
	assert.Nil(t, track.HostName)

	resp, err := http.Post(srv.URL+"/sim/faults", "application/json", bytes.NewBufferString(`{"offline":true}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, c.Faults().Offline)

	st = post("/sim/reset", "")
	assert.Equal(t, 0, st.Index)
	assert.False(t, st.Pinned)
	assert.False(t, st.Faults.Offline)

	resp, err = http.Get(srv.URL + "/sim/next")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
