// Package layout picks the renderer's layout algorithm and visual sizing from the
// number of nodes actually drawn. Every function here is pure in its node count.
package layout

import "fmt"

// Style holds the size-dependent drawing parameters.
type Style struct {
	NodeRadius       int     `json:"node_radius"`
	FontSize         int     `json:"font_size"`
	CanvasHeight     int     `json:"canvas_height"`
	MinZoom          float64 `json:"min_zoom"`
	MaxZoom          float64 `json:"max_zoom"`
	WheelSensitivity float64 `json:"wheel_sensitivity"`
}

func SelectStyle(nodeCount int) Style {
	style := Style{
		MinZoom:          0.15,
		MaxZoom:          3,
		WheelSensitivity: 0.3,
	}

	switch ClassFor(max(nodeCount, 0)) {
	case ClassForceDirected:
		style.NodeRadius, style.FontSize, style.CanvasHeight = 25, 11, 520
	case ClassHierarchical:
		style.NodeRadius, style.FontSize, style.CanvasHeight = 19, 9, 520
	default:
		style.NodeRadius, style.FontSize, style.CanvasHeight = 14, 7, 650
	}

	return style
}

// Rule is one selector/style entry of the renderer's stylesheet.
type Rule struct {
	Selector string         `json:"selector"`
	Style    map[string]any `json:"style"`
}

// Stylesheet derives the renderer rules for a style. Colors are read from
// each element's own data so a single rule set serves every pattern.
func Stylesheet(style Style) []Rule {
	diameter := style.NodeRadius * 2

	return []Rule{
		{
			Selector: "node",
			Style: map[string]any{
				"label":            "data(label)",
				"background-color": "data(color)",
				"color":            "#fff",
				"font-size":        fmt.Sprintf("%dpx", style.FontSize),
				"width":            diameter,
				"height":           diameter,
				"border-width":     2,
				"border-color":     "data(color)",
				"border-opacity":   0.7,
			},
		},
		{
			Selector: "edge",
			Style: map[string]any{
				"width":              2,
				"line-color":         "data(color)",
				"line-opacity":       0.6,
				"target-arrow-color": "data(color)",
				"target-arrow-shape": "triangle",
				"curve-style":        "bezier",
				"arrow-scale":        0.9,
			},
		},
	}
}
