package state

import "strings"

type PlayType int

const (
	PlayTypeOther PlayType = iota
	PlayTypeTrackPlay
	PlayTypeAirbreak
)

// ParsePlayType maps the API's play_type string onto a PlayType.
// Anything unrecognised is PlayTypeOther.
func ParsePlayType(raw string) PlayType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trackplay":
		return PlayTypeTrackPlay
	case "airbreak":
		return PlayTypeAirbreak
	default:
		return PlayTypeOther
	}
}

func (p PlayType) String() string {
	switch p {
	case PlayTypeTrackPlay:
		return "trackplay"
	case PlayTypeAirbreak:
		return "airbreak"
	default:
		return "other"
	}
}

// Track is one "now playing" record.
// HostName and Comment are optional; nil means the API did not provide them.
type Track struct {
	Artist   string
	Song     string
	ShowName string
	HostName *string
	PlayType PlayType
	Comment  *string
}

// Identity decides when scroll animation restarts.
type Identity struct {
	PlayType PlayType
	Primary  string
	Second   string
}

// Identity returns (artist, song) for music and (show, host) for air breaks.
func (t Track) Identity() Identity {
	if t.PlayType == PlayTypeAirbreak {
		return Identity{PlayType: t.PlayType, Primary: t.ShowName, Second: t.Host()}
	}
	return Identity{PlayType: t.PlayType, Primary: t.Artist, Second: t.Song}
}

// Host returns the host name or "" when absent.
func (t Track) Host() string {
	if t.HostName == nil {
		return ""
	}
	return *t.HostName
}

// Equal reports whether every field matches, including optional ones.
func (t Track) Equal(other Track) bool {
	return t.Artist == other.Artist &&
		t.Song == other.Song &&
		t.ShowName == other.ShowName &&
		t.PlayType == other.PlayType &&
		equalOptional(t.HostName, other.HostName) &&
		equalOptional(t.Comment, other.Comment)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// StringPtr is a helper for building Tracks with optional fields.
func StringPtr(s string) *string { return &s }
