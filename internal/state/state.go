package state

import (
	"image"
	"sync"
	"time"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeTrack
	ModeAirbreakInfo
	ModeAirbreakLogo
)

func (m Mode) String() string {
	switch m {
	case ModeTrack:
		return "track"
	case ModeAirbreakInfo:
		return "airbreak-info"
	case ModeAirbreakLogo:
		return "airbreak-logo"
	default:
		return "idle"
	}
}

// FrameInfo describes the last frame the renderer presented.
type FrameInfo struct {
	Tick       uint64
	Mode       Mode
	Scheme     string
	Offset     int
	Scrolling  bool
	RenderedAt time.Time
}

type State struct {
	Track     *Track
	Frame     FrameInfo
	Image     *image.RGBA
	LastError string
	Failures  uint64
}

// Store holds the latest render results for readers outside the render loop.
// The render loop is the only writer.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	if snap.Track != nil {
		track := *snap.Track
		snap.Track = &track
	}
	if snap.Image != nil {
		snap.Image = cloneRGBA(snap.Image)
	}
	return snap
}

func (store *Store) UpdateTrack(track Track) {
	store.mu.Lock()
	store.state.Track = &track
	store.mu.Unlock()
}

// UpdateFrame records a presented frame. img is copied.
func (store *Store) UpdateFrame(frame FrameInfo, img *image.RGBA) {
	store.mu.Lock()
	store.state.Frame = frame
	if img != nil {
		store.state.Image = cloneRGBA(img)
	}
	store.mu.Unlock()
}

func (store *Store) RecordFailure(err error) {
	if err == nil {
		return
	}
	store.mu.Lock()
	store.state.LastError = err.Error()
	store.state.Failures++
	store.mu.Unlock()
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}
