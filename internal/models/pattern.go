// Package models defines the core data structures exchanged with the detection engine
// and the renderer. It includes the ring payload, the graph model and the pattern table.
package models

// PatternType is the shape of suspected fund movement among a ring's members.
type PatternType string

const (
	PatternCycle      PatternType = "cycle"
	PatternFanIn      PatternType = "fan_in"
	PatternFanOut     PatternType = "fan_out"
	PatternShellChain PatternType = "shell_chain"
	PatternIsolated   PatternType = "isolated_account"
)

// Topology names the edge inference rule applied to a ring's ordered members.
type Topology int

const (
	TopologyChain Topology = iota
	TopologyCycle
	TopologyFanIn
	TopologyFanOut
)

func (t Topology) String() string {
	switch t {
	case TopologyCycle:
		return "cycle"
	case TopologyFanIn:
		return "fan_in"
	case TopologyFanOut:
		return "fan_out"
	default:
		return "chain"
	}
}

// PatternInfo is everything keyed off a pattern type: presentation and topology.
type PatternInfo struct {
	Pattern     PatternType `json:"pattern"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	Topology    Topology    `json:"-"`
}

// FallbackColor is used for isolated accounts and for patterns missing from the table.
const FallbackColor = "#3b82f6"

var patternTable = map[PatternType]PatternInfo{
	PatternCycle: {
		Label:       "Cycle",
		Description: "Circular money flow between accounts",
		Color:       "#ef4444",
		Topology:    TopologyCycle,
	},
	PatternFanIn: {
		Label:       "Fan-In",
		Description: "Multiple sources funneling to one account",
		Color:       "#f97316",
		Topology:    TopologyFanIn,
	},
	PatternFanOut: {
		Label:       "Fan-Out",
		Description: "One account distributing to many",
		Color:       "#eab308",
		Topology:    TopologyFanOut,
	},
	PatternShellChain: {
		Label:       "Shell Chain",
		Description: "Sequential layering through shell accounts",
		Color:       "#a855f7",
		Topology:    TopologyChain,
	},
	PatternIsolated: {
		Label:       "Isolated",
		Description: "Single account flagged outside any group",
		Color:       FallbackColor,
		Topology:    TopologyChain,
	},
}

// Info looks up the pattern table. Unrecognized patterns get the fallback
// entry: their raw name as label, the fallback color and the linear chain rule.
func (p PatternType) Info() PatternInfo {
	info, ok := patternTable[p]
	if !ok {
		info = PatternInfo{
			Label:       string(p),
			Description: string(p),
			Color:       FallbackColor,
			Topology:    TopologyChain,
		}
	}
	info.Pattern = p

	return info
}

func (p PatternType) Known() bool {
	_, ok := patternTable[p]
	return ok
}

func (p PatternType) Color() string {
	return p.Info().Color
}

// KnownPatterns returns the table's pattern types in a stable order.
func KnownPatterns() []PatternType {
	return []PatternType{
		PatternCycle,
		PatternFanIn,
		PatternFanOut,
		PatternShellChain,
		PatternIsolated,
	}
}
