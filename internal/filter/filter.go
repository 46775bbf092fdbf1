// Package filter narrows a built graph to a single pattern for display.
package filter

import (
	"fmt"

	"github.com/kesava936/money-muling-detection/internal/models"
)

// View is a derived, independently owned projection of a graph.
type View struct {
	Pattern *models.PatternType `json:"pattern"`
	Nodes   []models.Node       `json:"nodes"`
	Edges   []models.Edge       `json:"edges"`
}

// Apply projects graph onto the selected pattern. A nil selection keeps every
// node and edge. The graph is only read; the view never shares its backing arrays.
func Apply(graph *models.Graph, selected *models.PatternType) View {
	view := View{
		Nodes: []models.Node{},
		Edges: []models.Edge{},
	}

	if selected != nil {
		p := *selected
		view.Pattern = &p
	}

	if graph == nil {
		return view
	}

	for _, n := range graph.Nodes {
		if selected == nil || n.Pattern == *selected {
			view.Nodes = append(view.Nodes, n)
		}
	}

	for _, e := range graph.Edges {
		if selected == nil || e.Pattern == *selected {
			view.Edges = append(view.Edges, e)
		}
	}

	return view
}

func (v View) Empty() bool {
	return len(v.Nodes) == 0 && len(v.Edges) == 0
}

func (v View) Stats() *models.Stats {
	return models.ComputeStats(v.Nodes, v.Edges)
}

// EmptyMessage explains an empty view. It returns "" when there is something to draw.
func (v View) EmptyMessage() string {
	if !v.Empty() {
		return ""
	}

	if v.Pattern != nil {
		return fmt.Sprintf("No %s patterns in this dataset", v.Pattern.Info().Label)
	}

	return "No fraud patterns detected"
}

// Legend lists each pattern that occurs in rings once, in first-seen order.
func Legend(rings []models.FraudRing) []models.PatternInfo {
	seen := make(map[models.PatternType]bool)
	legend := []models.PatternInfo{}

	for _, r := range rings {
		if seen[r.PatternType] {
			continue
		}
		seen[r.PatternType] = true
		legend = append(legend, r.PatternType.Info())
	}

	return legend
}
