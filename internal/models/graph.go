// Package models defines the core data structures exchanged with the detection engine
// and the renderer. It includes the ring payload, the graph model and the pattern table.
package models

// Graph is the deduplicated account graph built from one payload.
// It is never modified after construction; filtered views copy out of it.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	RiskScore float64     `json:"risk_score"`
	Pattern   PatternType `json:"pattern"`
	Color     string      `json:"color"`
}

type Edge struct {
	ID      string      `json:"id"`
	Source  string      `json:"source"`
	Target  string      `json:"target"`
	Pattern PatternType `json:"pattern"`
	Color   string      `json:"color"`
}

type Stats struct {
	TotalNodes     int                 `json:"total_nodes"`
	TotalEdges     int                 `json:"total_edges"`
	NodesByPattern map[PatternType]int `json:"nodes_by_pattern,omitempty"`
	EdgesByPattern map[PatternType]int `json:"edges_by_pattern,omitempty"`
}

// EdgeID derives the identifier of the directed edge source -> target.
func EdgeID(source, target string) string {
	return "e-" + source + "->" + target
}

// ComputeStats counts nodes and edges per pattern.
func ComputeStats(nodes []Node, edges []Edge) *Stats {
	stats := &Stats{
		TotalNodes:     len(nodes),
		TotalEdges:     len(edges),
		NodesByPattern: make(map[PatternType]int),
		EdgesByPattern: make(map[PatternType]int),
	}

	for _, n := range nodes {
		stats.NodesByPattern[n.Pattern]++
	}

	for _, e := range edges {
		stats.EdgesByPattern[e.Pattern]++
	}

	return stats
}
