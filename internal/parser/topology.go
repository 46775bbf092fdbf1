// Package parser provides utilities for parsing and transforming input data.
// It validates the detection engine's payload and turns it into the account graph.
package parser

import (
	"fmt"
	"strings"

	"github.com/kesava936/money-muling-detection/internal/models"
)

// HubPosition says which member of a fan_in or fan_out ring is the
// aggregation (fan_in) or distribution (fan_out) point.
type HubPosition int

const (
	HubFirst HubPosition = iota
	HubLast
)

// DefaultHubPosition matches the engine, which lists the aggregator or
// distributor ahead of its counterparties.
const DefaultHubPosition = HubFirst

func (h HubPosition) String() string {
	if h == HubLast {
		return "last"
	}
	return "first"
}

func ParseHubPosition(s string) (HubPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return HubFirst, nil
	case "last":
		return HubLast, nil
	default:
		return HubFirst, fmt.Errorf("unknown hub position %q (want first or last)", s)
	}
}

type edgeKey struct {
	source string
	target string
}

// ringEdges lists the directed pairs a ring's topology implies, in member order.
func ringEdges(topology models.Topology, members []string, hub HubPosition) []edgeKey {
	n := len(members)
	if n < 2 {
		return nil
	}

	switch topology {
	case models.TopologyCycle:
		pairs := make([]edgeKey, 0, n)
		for i := range n {
			pairs = append(pairs, edgeKey{members[i], members[(i+1)%n]})
		}
		return pairs

	case models.TopologyFanIn:
		center, others := splitHub(members, hub)
		pairs := make([]edgeKey, 0, len(others))
		for _, src := range others {
			pairs = append(pairs, edgeKey{src, center})
		}
		return pairs

	case models.TopologyFanOut:
		center, others := splitHub(members, hub)
		pairs := make([]edgeKey, 0, len(others))
		for _, tgt := range others {
			pairs = append(pairs, edgeKey{center, tgt})
		}
		return pairs

	default:
		pairs := make([]edgeKey, 0, n-1)
		for i := 0; i < n-1; i++ {
			pairs = append(pairs, edgeKey{members[i], members[i+1]})
		}
		return pairs
	}
}

func splitHub(members []string, hub HubPosition) (string, []string) {
	if hub == HubLast {
		last := len(members) - 1
		return members[last], members[:last]
	}
	return members[0], members[1:]
}
