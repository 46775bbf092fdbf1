// Package render assembles what the graph-drawing frontend receives and tracks the
// active render session. A new session token tells the renderer to discard any
// cached positions and lay the elements out from scratch.
package render

import (
	"errors"
	"sync"

	"github.com/kesava936/money-muling-detection/internal/filter"
	"github.com/kesava936/money-muling-detection/internal/models"
)

var ErrNoGraph = errors.New("no graph loaded")

// Publisher is notified of every new render session.
type Publisher interface {
	Publish(*Session)
}

// Viewer holds the displayed graph and the active pattern selection. Loading
// a graph replaces the previous one wholesale and clears the selection.
type Viewer struct {
	mu         sync.Mutex
	publisher  Publisher
	graph      *models.Graph
	totals     *models.Stats
	legend     []models.PatternInfo
	summary    *models.Summary
	generation uint64
	selected   *models.PatternType
	session    *Session
}

// NewViewer returns an empty viewer. publisher may be nil.
func NewViewer(publisher Publisher) *Viewer {
	return &Viewer{publisher: publisher}
}

func (v *Viewer) Load(payload *models.Payload, graph *models.Graph) *Session {
	v.mu.Lock()
	defer v.mu.Unlock()

	if graph == nil {
		graph = &models.Graph{Nodes: []models.Node{}, Edges: []models.Edge{}}
	}
	v.graph = graph
	v.totals = graph.Stats
	if v.totals == nil {
		v.totals = models.ComputeStats(graph.Nodes, graph.Edges)
	}
	v.legend = []models.PatternInfo{}
	v.summary = nil
	if payload != nil {
		v.legend = filter.Legend(payload.FraudRings)
		v.summary = payload.Summary
	}
	v.generation++
	v.selected = nil

	return v.refreshLocked()
}

// Select shows only the given pattern. Selecting the pattern already shown
// returns the current session without starting a new one.
func (v *Viewer) Select(pattern models.PatternType) (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.selectLocked(&pattern)
}

func (v *Viewer) Clear() (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.selectLocked(nil)
}

// Toggle selects pattern, or clears the selection when pattern is already selected.
func (v *Viewer) Toggle(pattern models.PatternType) (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.selected != nil && *v.selected == pattern {
		return v.selectLocked(nil)
	}

	return v.selectLocked(&pattern)
}

func (v *Viewer) selectLocked(pattern *models.PatternType) (*Session, error) {
	if v.graph == nil {
		return nil, ErrNoGraph
	}

	if samePattern(v.selected, pattern) {
		return v.session, nil
	}

	v.selected = pattern

	return v.refreshLocked(), nil
}

func samePattern(a, b *models.PatternType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (v *Viewer) Current() (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.session == nil {
		return nil, ErrNoGraph
	}

	return v.session, nil
}

func (v *Viewer) Legend() []models.PatternInfo {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]models.PatternInfo{}, v.legend...)
}

// refreshLocked starts a new session for the current (generation, selection).
// Caller must hold v.mu.
func (v *Viewer) refreshLocked() *Session {
	session := NewSession(filter.Apply(v.graph, v.selected))
	session.Generation = v.generation
	session.Totals = v.totals
	session.Legend = v.legend
	session.Summary = v.summary

	v.session = session

	if v.publisher != nil {
		v.publisher.Publish(session)
	}

	return session
}
