package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/rook-computer/kexpboard/internal/kexp"
	"github.com/rook-computer/kexpboard/internal/state"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errSimOffline = errors.New("simulated outage")

// DefaultScript covers every display mode: scrolling and static track
// lines, air breaks with and without a host, and an unclassified play.
var DefaultScript = []state.Track{
	{
		Artist:   "Björk",
		Song:     "Jóga (String & Vocal Mix)",
		ShowName: "The Morning Show",
		HostName: state.StringPtr("John Richards"),
		PlayType: state.PlayTypeTrackPlay,
	},
	{
		Artist:   "Khruangbin",
		Song:     "Maria También",
		ShowName: "Drive Time",
		HostName: state.StringPtr("Kevin Cole"),
		PlayType: state.PlayTypeTrackPlay,
	},
	{
		ShowName: "The Midday Show",
		HostName: state.StringPtr("Cheryl Waters"),
		PlayType: state.PlayTypeAirbreak,
	},
	{
		Artist:   "Sault",
		Song:     "Wildfires",
		ShowName: "Jazz Theatre",
		PlayType: state.PlayTypeTrackPlay,
	},
	{
		ShowName: "Jazz Theatre",
		PlayType: state.PlayTypeAirbreak,
	},
	{
		Artist:   "Station ID",
		Song:     "kexp.org",
		PlayType: state.PlayTypeOther,
	},
}

type SimFaults struct {
	// Offline makes every fetch fail like an unreachable API.
	Offline bool `json:"offline"`
}

type simStatus struct {
	Index  int         `json:"index"`
	Length int         `json:"length"`
	Pinned bool        `json:"pinned"`
	Faults SimFaults   `json:"faults"`
	Track  simTrackDTO `json:"track"`
}

type simTrackDTO struct {
	Artist   string  `json:"artist"`
	Song     string  `json:"song"`
	ShowName string  `json:"showName"`
	HostName *string `json:"hostName"`
	PlayType string  `json:"playType"`
}

// SimControl is a scripted stand-in for the KEXP API. The app polls it
// through Fetch; the /sim endpoints steer it from outside.
type SimControl struct {
	Switch time.Duration

	mu         sync.Mutex
	script     []state.Track
	index      int
	switchedAt time.Time
	pinned     *state.Track
	faults     SimFaults
	now        func() time.Time
}

func NewSimControl(script []state.Track, every time.Duration) *SimControl {
	if len(script) == 0 {
		script = DefaultScript
	}
	return &SimControl{Switch: every, script: append([]state.Track(nil), script...), now: time.Now}
}

// Fetch returns the scripted track, moving to the next one once the switch
// interval has passed.
func (c *SimControl) Fetch(ctx context.Context) (state.Track, error) {
	if err := ctx.Err(); err != nil {
		return state.Track{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.faults.Offline {
		return state.Track{}, errors.Join(kexp.ErrUnavailable, errSimOffline)
	}
	if c.pinned != nil {
		return *c.pinned, nil
	}

	now := c.now()
	if c.switchedAt.IsZero() {
		c.switchedAt = now
	} else if c.Switch > 0 && now.Sub(c.switchedAt) >= c.Switch {
		c.index = (c.index + 1) % len(c.script)
		c.switchedAt = now
	}
	return c.script[c.index], nil
}

// Next advances the script immediately and clears any pinned track.
func (c *SimControl) Next() {
	c.mu.Lock()
	c.pinned = nil
	c.index = (c.index + 1) % len(c.script)
	c.switchedAt = c.now()
	c.mu.Unlock()
}

// Pin shows track until Next or Reset.
func (c *SimControl) Pin(track state.Track) {
	c.mu.Lock()
	c.pinned = &track
	c.mu.Unlock()
}

func (c *SimControl) Reset() {
	c.mu.Lock()
	c.pinned = nil
	c.index = 0
	c.switchedAt = time.Time{}
	c.faults = SimFaults{}
	c.mu.Unlock()
}

func (c *SimControl) Faults() SimFaults {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.faults
}

func (c *SimControl) SetFaults(v SimFaults) {
	c.mu.Lock()
	c.faults = v
	c.mu.Unlock()
}

func (c *SimControl) status() simStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	track := c.script[c.index]
	if c.pinned != nil {
		track = *c.pinned
	}
	return simStatus{
		Index:  c.index,
		Length: len(c.script),
		Pinned: c.pinned != nil,
		Faults: c.faults,
		Track: simTrackDTO{
			Artist:   track.Artist,
			Song:     track.Song,
			ShowName: track.ShowName,
			HostName: track.HostName,
			PlayType: track.PlayType.String(),
		},
	}
}

func registerSimEndpoints(mux *http.ServeMux, control *SimControl) {
	mux.HandleFunc("/sim/state", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeSimJSON(w, http.StatusOK, control.status())
	})

	mux.HandleFunc("/sim/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		control.Reset()
		writeSimJSON(w, http.StatusOK, control.status())
	})

	mux.HandleFunc("/sim/next", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		control.Next()
		writeSimJSON(w, http.StatusOK, control.status())
	})

	mux.HandleFunc("/sim/track", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var body simTrackDTO
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&body); err != nil {
			writeSimError(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		track := state.Track{
			Artist:   strings.TrimSpace(body.Artist),
			Song:     strings.TrimSpace(body.Song),
			ShowName: strings.TrimSpace(body.ShowName),
			HostName: body.HostName,
			PlayType: state.ParsePlayType(body.PlayType),
		}
		control.Pin(track)
		writeSimJSON(w, http.StatusOK, control.status())
	})

	mux.HandleFunc("/sim/faults", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeSimJSON(w, http.StatusOK, control.Faults())
			return
		case http.MethodPost:
			var patch struct {
				Offline *bool `json:"offline"`
			}
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&patch); err != nil {
				writeSimError(w, http.StatusBadRequest, "invalid json: "+err.Error())
				return
			}
			faults := control.Faults()
			if patch.Offline != nil {
				faults.Offline = *patch.Offline
			}
			control.SetFaults(faults)
			writeSimJSON(w, http.StatusOK, faults)
		default:
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
