package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/latoulicious/ailie/internal/version"
)

// Handler exposes /health and /status
func (m *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", m.healthHandler)
	mux.HandleFunc("/status", m.statusHandler)
	return mux
}

// healthHandler answers 200 while the last ping succeeded and 503 otherwise
func (m *Monitor) healthHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := m.Snapshot()

	code := http.StatusOK
	if snapshot.Status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, snapshot)
}

// statusHandler reports details and always answers 200
func (m *Monitor) statusHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := m.Snapshot()
	info := version.Get()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"application":       "Ailie Discord Bot",
		"version":           info.Version,
		"commit":            info.ShortCommit,
		"status":            snapshot.Status,
		"uptime":            snapshot.Uptime,
		"start_time":        snapshot.StartTime.Format(time.RFC3339),
		"last_check":        snapshot.LastCheck,
		"recent_errors_24h": m.RecentErrors(),
		"components": map[string]bool{
			"database": snapshot.DatabaseConnected,
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// Serve starts the HTTP server in the background
func (m *Monitor) Serve(addr string) *http.Server {
	server := &http.Server{
		Addr:         addr,
		Handler:      m.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		m.logger.Info("Starting health check server", map[string]interface{}{"addr": addr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Health check server error", err, nil)
		}
	}()

	return server
}

// Shutdown gracefully stops the HTTP server
func (m *Monitor) Shutdown(server *http.Server) {
	if server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		m.logger.Error("Health server shutdown error", err, nil)
	} else {
		m.logger.Info("Health check server shutdown complete", nil)
	}
}
