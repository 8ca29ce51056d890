package web

import (
	"net/http"

	"github.com/rook-computer/kexpboard/internal/palette"
	"github.com/rook-computer/kexpboard/internal/state"
)

// APIV1Deps is what the read-only API looks at.
type APIV1Deps struct {
	Store    *state.Store
	Resolver *palette.Resolver
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	if d.Store == nil {
		d.Store = state.NewStore()
	}
	if d.Resolver == nil {
		d.Resolver = palette.NewResolver()
	}
	return d
}

// RegisterAPIV1 registers the status routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps APIV1Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// NewDefaultMux builds the mux used by both the device and the simulator.
func NewDefaultMux(deps APIV1Deps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/api/v1/nowplaying", http.StatusFound)
	})
	return mux
}
