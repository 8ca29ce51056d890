package web

import (
	"bytes"
	"image/png"
	"net/http"
	"sort"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/rook-computer/kexpboard/internal/palette"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type trackResponse struct {
	Artist   string  `json:"artist"`
	Song     string  `json:"song"`
	ShowName string  `json:"showName"`
	HostName *string `json:"hostName"`
	PlayType string  `json:"playType"`
	Comment  *string `json:"comment,omitempty"`
}

type frameResponse struct {
	Tick       uint64     `json:"tick"`
	Mode       string     `json:"mode"`
	Scheme     string     `json:"scheme"`
	Offset     int        `json:"offset"`
	Scrolling  bool       `json:"scrolling"`
	RenderedAt *time.Time `json:"renderedAt,omitempty"`
}

type nowPlayingResponse struct {
	Track     *trackResponse `json:"track"`
	Frame     frameResponse  `json:"frame"`
	LastError string         `json:"lastError,omitempty"`
	Failures  uint64         `json:"failures"`
}

type schemeResponse struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Song   string `json:"song"`
	Info   string `json:"info"`
}

type mappingResponse struct {
	Show string `json:"show"`
	Key  string `json:"key"`
}

type schemesResponse struct {
	Default string            `json:"default"`
	Schemes []schemeResponse  `json:"schemes"`
	Mapping []mappingResponse `json:"mapping"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/nowplaying", func(w http.ResponseWriter, r *http.Request) { handleNowPlaying(w, r, deps) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	mux.HandleFunc("/schemes", func(w http.ResponseWriter, r *http.Request) { handleSchemes(w, r, deps) })
	return mux
}

func handleNowPlaying(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if !allowRead(w, r) {
		return
	}

	snap := deps.Store.Snapshot()
	resp := nowPlayingResponse{
		Frame: frameResponse{
			Tick:      snap.Frame.Tick,
			Mode:      snap.Frame.Mode.String(),
			Scheme:    snap.Frame.Scheme,
			Offset:    snap.Frame.Offset,
			Scrolling: snap.Frame.Scrolling,
		},
		LastError: snap.LastError,
		Failures:  snap.Failures,
	}
	if !snap.Frame.RenderedAt.IsZero() {
		renderedAt := snap.Frame.RenderedAt.UTC()
		resp.Frame.RenderedAt = &renderedAt
	}
	if t := snap.Track; t != nil {
		resp.Track = &trackResponse{
			Artist:   t.Artist,
			Song:     t.Song,
			ShowName: t.ShowName,
			HostName: t.HostName,
			PlayType: t.PlayType.String(),
			Comment:  t.Comment,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if !allowRead(w, r) {
		return
	}

	snap := deps.Store.Snapshot()
	if snap.Image == nil {
		writeAPIError(w, http.StatusNotFound, "no_frame", "no frame has been presented yet")
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, snap.Image); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame-Tick", strconv.FormatUint(snap.Frame.Tick, 10))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

func handleSchemes(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if !allowRead(w, r) {
		return
	}

	keys := make([]string, 0, len(deps.Resolver.Schemes))
	for key := range deps.Resolver.Schemes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resp := schemesResponse{
		Default: deps.Resolver.DefaultKey,
		Schemes: make([]schemeResponse, 0, len(keys)),
		Mapping: make([]mappingResponse, 0, len(deps.Resolver.Mapping)),
	}
	for _, key := range keys {
		s := deps.Resolver.Schemes[key]
		resp.Schemes = append(resp.Schemes, schemeResponse{
			Key:    key,
			Name:   s.Name,
			Artist: palette.Hex(s.Artist),
			Song:   palette.Hex(s.Song),
			Info:   palette.Hex(s.Info),
		})
	}
	for _, m := range deps.Resolver.Mapping {
		resp.Mapping = append(resp.Mapping, mappingResponse{Show: m.Show, Key: m.Key})
	}
	writeJSON(w, http.StatusOK, resp)
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
