// Package layout picks the renderer's layout algorithm and visual sizing from the
// number of nodes actually drawn. Every function here is pure in its node count.
package layout

// Class is the family of position-assignment algorithm.
type Class string

const (
	ClassForceDirected Class = "force_directed"
	ClassHierarchical  Class = "hierarchical"
	ClassCircular      Class = "circular"
)

// Node count bounds, inclusive, for the two smaller buckets.
const (
	ForceDirectedMaxNodes = 30
	HierarchicalMaxNodes  = 80
)

// Layout is the descriptor handed to the renderer. Name is the renderer's
// algorithm identifier; the remaining fields are only set where they apply.
type Layout struct {
	Class   Class  `json:"class"`
	Name    string `json:"name"`
	Animate bool   `json:"animate"`
	Fit     bool   `json:"fit"`
	Padding int    `json:"padding"`

	NumIter         int     `json:"numIter,omitempty"`
	NodeRepulsion   float64 `json:"nodeRepulsion,omitempty"`
	IdealEdgeLength float64 `json:"idealEdgeLength,omitempty"`
	Gravity         float64 `json:"gravity,omitempty"`

	Directed      bool    `json:"directed,omitempty"`
	SpacingFactor float64 `json:"spacingFactor,omitempty"`
}

func ClassFor(nodeCount int) Class {
	switch {
	case nodeCount <= ForceDirectedMaxNodes:
		return ClassForceDirected
	case nodeCount <= HierarchicalMaxNodes:
		return ClassHierarchical
	default:
		return ClassCircular
	}
}

// SelectLayout returns the layout for a drawing of nodeCount nodes. Negative
// counts are treated as zero, which selects the force-directed bucket.
func SelectLayout(nodeCount int) Layout {
	switch ClassFor(max(nodeCount, 0)) {
	case ClassForceDirected:
		return Layout{
			Class:           ClassForceDirected,
			Name:            "cose",
			Fit:             true,
			Padding:         60,
			NumIter:         300,
			NodeRepulsion:   6000,
			IdealEdgeLength: 120,
			Gravity:         0.3,
		}
	case ClassHierarchical:
		return Layout{
			Class:         ClassHierarchical,
			Name:          "breadthfirst",
			Fit:           true,
			Padding:       50,
			Directed:      true,
			SpacingFactor: 1.4,
		}
	default:
		return Layout{
			Class:         ClassCircular,
			Name:          "circle",
			Fit:           true,
			Padding:       50,
			SpacingFactor: 2.2,
		}
	}
}
