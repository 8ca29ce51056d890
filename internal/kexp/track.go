package kexp

import (
	"context"
	"strings"

	"github.com/rook-computer/kexpboard/internal/state"
)

const (
	unknownArtist = "Unknown Artist"
	unknownSong   = "Unknown Track"
	defaultShow   = "KEXP"
)

// Fetch returns the current track with its show details merged in. A failed
// show lookup is logged and the track is returned without a show name.
func (c *Client) Fetch(ctx context.Context) (state.Track, error) {
	play, err := c.CurrentPlay(ctx)
	if err != nil {
		return state.Track{}, err
	}

	var show *Show
	if play.Show != nil && *play.Show != 0 {
		details, err := c.Show(ctx, *play.Show)
		if err != nil {
			c.logger().Errorf("kexp", "show %d details: %v", *play.Show, err)
		} else {
			show = &details
		}
	}
	return TrackFromPlay(play, show), nil
}

// TrackFromPlay converts API records into a Track.
func TrackFromPlay(play Play, show *Show) state.Track {
	track := state.Track{
		Artist:   valueOr(play.Artist, ""),
		Song:     valueOr(play.Song, ""),
		PlayType: state.ParsePlayType(play.PlayType),
	}
	if track.PlayType != state.PlayTypeAirbreak {
		track.Artist = valueOr(play.Artist, unknownArtist)
		track.Song = valueOr(play.Song, unknownSong)
	}
	if comment := strings.TrimSpace(valueOr(play.Comment, "")); comment != "" {
		track.Comment = &comment
	}

	if show != nil {
		track.ShowName = strings.TrimSpace(show.ProgramName)
		if track.ShowName == "" {
			track.ShowName = defaultShow
		}
		var hosts []string
		for _, name := range show.HostNames {
			if name = strings.TrimSpace(name); name != "" {
				hosts = append(hosts, name)
			}
		}
		if len(hosts) > 0 {
			joined := strings.Join(hosts, ", ")
			track.HostName = &joined
		}
	}
	return track
}

func (c *Client) logger() Logger {
	if c.Logger == nil {
		return noopLogger{}
	}
	return c.Logger
}

func valueOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return strings.TrimSpace(*s)
}
