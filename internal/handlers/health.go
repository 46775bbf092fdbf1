// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

const ServiceName = "ringviz-api"

var startTime = time.Now()

// Health reports liveness along with whether a graph is loaded and how many
// renderers are subscribed to session updates.
func (h *GraphHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	details := map[string]string{
		"go_version":   runtime.Version(),
		"num_cpu":      strconv.Itoa(runtime.NumCPU()),
		"graph_loaded": "false",
	}
	if session, err := h.viewer.Current(); err == nil {
		details["graph_loaded"] = "true"
		details["generation"] = strconv.FormatUint(session.Generation, 10)
		details["session"] = session.Token
	}
	if h.hub != nil {
		details["stream_clients"] = strconv.Itoa(h.hub.ClientCount())
	}

	writeJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   ServiceName,
		Uptime:    time.Since(startTime).String(),
		Details:   details,
	})
}
