// Package kexp fetches now-playing data from the KEXP v2 API.
package kexp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultBaseURL   = "https://api.kexp.org/v2"
	DefaultUserAgent = "KEXP-Display/1.0"
	DefaultTimeout   = 10 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnavailable covers every way a refresh can fail: network, HTTP status,
// decoding, or an empty result. Callers keep their previous track.
var ErrUnavailable = errors.New("kexp data unavailable")

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// Play is one entry of /plays/.
type Play struct {
	ID           int64   `json:"id"`
	Artist       *string `json:"artist"`
	Song         *string `json:"song"`
	Album        *string `json:"album"`
	Airdate      string  `json:"airdate"`
	Show         *int64  `json:"show"`
	ShowURI      string  `json:"show_uri"`
	Comment      *string `json:"comment"`
	PlayType     string  `json:"play_type"`
	IsLocal      bool    `json:"is_local"`
	ThumbnailURI string  `json:"thumbnail_uri"`
}

// Show is the subset of /shows/{id}/ used for display.
type Show struct {
	ID          int64     `json:"id"`
	ProgramName string    `json:"program_name"`
	ProgramTags string    `json:"program_tags"`
	HostNames   HostNames `json:"host_names"`
	StartTime   string    `json:"start_time"`
}

// HostNames accepts either a list of names or a single string.
type HostNames []string

func (h *HostNames) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}
	var single *string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("host_names: %w", err)
	}
	if single == nil || strings.TrimSpace(*single) == "" {
		*h = nil
		return nil
	}
	*h = HostNames{*single}
	return nil
}

type playsResponse struct {
	Count   int    `json:"count"`
	Results []Play `json:"results"`
}

type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
	Logger    Logger

	shows map[int64]Show
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: DefaultUserAgent,
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		Logger:    noopLogger{},
		shows:     make(map[int64]Show),
	}
}

// RecentPlays returns up to limit plays, newest first.
func (c *Client) RecentPlays(ctx context.Context, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = 1
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("ordering", "-airdate")

	var out playsResponse
	if err := c.getJSON(ctx, "/plays/?"+query.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// CurrentPlay returns the most recent play.
func (c *Client) CurrentPlay(ctx context.Context) (Play, error) {
	plays, err := c.RecentPlays(ctx, 1)
	if err != nil {
		return Play{}, err
	}
	if len(plays) == 0 {
		return Play{}, fmt.Errorf("%w: no plays returned", ErrUnavailable)
	}
	return plays[0], nil
}

// Show returns program details. Results are cached by id for the life of
// the client.
func (c *Client) Show(ctx context.Context, id int64) (Show, error) {
	if show, ok := c.shows[id]; ok {
		return show, nil
	}
	var show Show
	if err := c.getJSON(ctx, "/shows/"+strconv.FormatInt(id, 10)+"/", &show); err != nil {
		return Show{}, err
	}
	if c.shows == nil {
		c.shows = make(map[int64]Show)
	}
	c.shows[id] = show
	return show, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, path, err)
	}
	return nil
}
