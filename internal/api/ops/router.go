// Package ops serves the liveness and readiness probes over plain HTTP.
package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dtroode/bankcards-server/internal/logger"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type probeResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewRouter routes /livez and /readyz. Readiness pings the database.
func NewRouter(db Pinger, logger *logger.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		writeProbe(w, http.StatusOK, probeResponse{Status: "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Ops: readiness check failed",
				"error", err.Error())
			writeProbe(w, http.StatusServiceUnavailable, probeResponse{Status: "unavailable", Error: "database unreachable"})
			return
		}
		writeProbe(w, http.StatusOK, probeResponse{Status: "ok"})
	}).Methods(http.MethodGet)

	return r
}

func writeProbe(w http.ResponseWriter, code int, body probeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
