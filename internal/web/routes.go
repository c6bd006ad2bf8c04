// Package web serves the HTTP control API of the UI under /api/v1.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rook-computer/lcdui/internal/state"
)

// Controller queues navigation on the control loop and reads the last
// published state. Implementations must be safe for concurrent use.
type Controller interface {
	NextFrame()
	PreviousFrame()
	SwitchToFrame(frame int)
	TransitionToFrame(frame int)
	Snapshot() state.Snapshot
}

// NewMux builds the API routes. Wrong methods get 405 from the mux.
func NewMux(c Controller) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, c.Snapshot())
	})
	mux.HandleFunc("POST /api/v1/frames/next", accepted(func(*http.Request) { c.NextFrame() }))
	mux.HandleFunc("POST /api/v1/frames/previous", accepted(func(*http.Request) { c.PreviousFrame() }))
	mux.HandleFunc("POST /api/v1/frames/{n}/switch", frameCommand(c.SwitchToFrame))
	mux.HandleFunc("POST /api/v1/frames/{n}/transition", frameCommand(c.TransitionToFrame))
	return mux
}

func accepted(fn func(r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(r)
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}

func frameCommand(fn func(frame int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(r.PathValue("n"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "frame must be an integer"})
			return
		}
		fn(n)
		writeJSON(w, http.StatusAccepted, map[string]any{"status": "accepted", "frame": n})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
