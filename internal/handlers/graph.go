// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kesava936/money-muling-detection/internal/models"
	"github.com/kesava936/money-muling-detection/internal/parser"
	"github.com/kesava936/money-muling-detection/internal/render"
)

// GraphHandler serves the graph built from the most recent payload and the
// pattern filter applied to it.
type GraphHandler struct {
	viewer       *render.Viewer
	hub          *render.Hub
	hubPosition  parser.HubPosition
	maxBodyBytes int64
}

func NewGraphHandler(viewer *render.Viewer, hub *render.Hub, hubPosition parser.HubPosition, maxBodyBytes int64) *GraphHandler {
	return &GraphHandler{
		viewer:       viewer,
		hub:          hub,
		hubPosition:  hubPosition,
		maxBodyBytes: maxBodyBytes,
	}
}

// Upload replaces the displayed graph with one built from the request body.
func (h *GraphHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil {
		http.Error(w, "Invalid payload: "+parser.ErrEmptyPayload.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	payload, err := parser.ParsePayload(body)
	if err != nil {
		slog.Warn("rejected payload", "error", err, "bytes", len(body))
		http.Error(w, "Invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	graph, err := parser.BuildGraph(payload, parser.WithHubPosition(h.hubPosition))
	if err != nil {
		slog.Warn("failed to build graph", "error", err)
		http.Error(w, "Invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	session := h.viewer.Load(payload, graph)
	slog.Info("graph loaded",
		"rings", len(payload.FraudRings),
		"nodes", graph.Stats.TotalNodes,
		"edges", graph.Stats.TotalEdges,
		"layout", session.Layout.Name,
		"token", session.Token,
	)

	writeJSON(w, r, http.StatusOK, session)
}

func (h *GraphHandler) Current(w http.ResponseWriter, r *http.Request) {
	session, err := h.viewer.Current()
	h.respond(w, r, session, err)
}

func (h *GraphHandler) Select(w http.ResponseWriter, r *http.Request) {
	pattern, ok := patternParam(w, r)
	if !ok {
		return
	}

	session, err := h.viewer.Select(pattern)
	h.respond(w, r, session, err)
}

func (h *GraphHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	pattern, ok := patternParam(w, r)
	if !ok {
		return
	}

	session, err := h.viewer.Toggle(pattern)
	h.respond(w, r, session, err)
}

func (h *GraphHandler) Clear(w http.ResponseWriter, r *http.Request) {
	session, err := h.viewer.Clear()
	h.respond(w, r, session, err)
}

func (h *GraphHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.viewer.Legend())
}

// Stream upgrades to a websocket that receives every new render session.
func (h *GraphHandler) Stream(w http.ResponseWriter, r *http.Request) {
	h.hub.Subscribe(w, r, func() *render.Session {
		session, _ := h.viewer.Current()
		return session
	})
}

func (h *GraphHandler) respond(w http.ResponseWriter, r *http.Request, session *render.Session, err error) {
	if errors.Is(err, render.ErrNoGraph) {
		http.Error(w, "No graph loaded", http.StatusNotFound)
		return
	}

	if err != nil {
		slog.Error("graph request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, session)
}

func patternParam(w http.ResponseWriter, r *http.Request) (models.PatternType, bool) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		http.Error(w, "Missing pattern parameter", http.StatusBadRequest)
		return "", false
	}

	return models.PatternType(pattern), true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
