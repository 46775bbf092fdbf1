// Package render assembles what the graph-drawing frontend receives and tracks the
// active render session. A new session token tells the renderer to discard any
// cached positions and lay the elements out from scratch.
package render

import (
	"github.com/google/uuid"

	"github.com/kesava936/money-muling-detection/internal/filter"
	"github.com/kesava936/money-muling-detection/internal/layout"
	"github.com/kesava936/money-muling-detection/internal/models"
)

// Element is a renderer element: a node, or an edge when Group is "edges".
type Element struct {
	Group string `json:"group"`
	Data  any    `json:"data"`
}

const (
	GroupNodes = "nodes"
	GroupEdges = "edges"
)

type Session struct {
	Token      string               `json:"token"`
	Generation uint64               `json:"generation"`
	Pattern    *models.PatternType  `json:"pattern"`
	Elements   []Element            `json:"elements"`
	Layout     layout.Layout        `json:"layout"`
	Style      layout.Style         `json:"style"`
	Stylesheet []layout.Rule        `json:"stylesheet"`
	Stats      *models.Stats        `json:"stats"`
	Totals     *models.Stats        `json:"totals"`
	Legend     []models.PatternInfo `json:"legend"`
	Summary    *models.Summary      `json:"summary,omitempty"`
	Empty      bool                 `json:"empty"`
	Message    string               `json:"message,omitempty"`
}

// NodeCount is the number of nodes actually drawn in this session.
func (s *Session) NodeCount() int {
	return s.Stats.TotalNodes
}

// Elements flattens a view into renderer elements, nodes first.
func Elements(view filter.View) []Element {
	elements := make([]Element, 0, len(view.Nodes)+len(view.Edges))

	for _, n := range view.Nodes {
		elements = append(elements, Element{Group: GroupNodes, Data: n})
	}

	for _, e := range view.Edges {
		elements = append(elements, Element{Group: GroupEdges, Data: e})
	}

	return elements
}

// NewSession sizes the layout and style by the view's own node count,
// not by the unfiltered graph.
func NewSession(view filter.View) *Session {
	stats := view.Stats()
	style := layout.SelectStyle(stats.TotalNodes)

	return &Session{
		Token:      uuid.NewString(),
		Pattern:    view.Pattern,
		Elements:   Elements(view),
		Layout:     layout.SelectLayout(stats.TotalNodes),
		Style:      style,
		Stylesheet: layout.Stylesheet(style),
		Stats:      stats,
		Empty:      view.Empty(),
		Message:    view.EmptyMessage(),
	}
}
