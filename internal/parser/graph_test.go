// Package parser provides utilities for parsing and transforming input data.
// It validates the detection engine's payload and turns it into the account graph.
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesava936/money-muling-detection/internal/models"
)

func ring(id string, pattern models.PatternType, members ...string) models.FraudRing {
	return models.FraudRing{
		RingID:         id,
		PatternType:    pattern,
		RiskScore:      80,
		MemberAccounts: members,
	}
}

func payloadOf(rings ...models.FraudRing) *models.Payload {
	return &models.Payload{
		FraudRings:         rings,
		SuspiciousAccounts: []models.AccountScore{},
	}
}

func edgePairs(g *models.Graph) [][2]string {
	pairs := make([][2]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		pairs = append(pairs, [2]string{e.Source, e.Target})
	}
	return pairs
}

func findNode(g *models.Graph, id string) *models.Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

func TestBuildGraph(t *testing.T) {
	t.Run("empty rings return empty graph", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf())

		require.NoError(t, err)
		assert.NotNil(t, graph.Nodes)
		assert.NotNil(t, graph.Edges)
		assert.Empty(t, graph.Nodes)
		assert.Empty(t, graph.Edges)
		require.NotNil(t, graph.Stats)
		assert.Equal(t, 0, graph.Stats.TotalNodes)
	})

	t.Run("cycle closes the loop", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_001", models.PatternCycle, "A", "B", "C")))

		require.NoError(t, err)
		assert.Len(t, graph.Nodes, 3)
		assert.ElementsMatch(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, edgePairs(graph))
	})

	t.Run("fan in points every sender at the first member", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_002", models.PatternFanIn, "A", "B", "C", "D")))

		require.NoError(t, err)
		assert.ElementsMatch(t, [][2]string{{"B", "A"}, {"C", "A"}, {"D", "A"}}, edgePairs(graph))
	})

	t.Run("fan in with last member as aggregator", func(t *testing.T) {
		graph, err := BuildGraph(
			payloadOf(ring("RING_002", models.PatternFanIn, "A", "B", "C", "D")),
			WithHubPosition(HubLast),
		)

		require.NoError(t, err)
		assert.Len(t, graph.Edges, 3)
		assert.ElementsMatch(t, [][2]string{{"A", "D"}, {"B", "D"}, {"C", "D"}}, edgePairs(graph))
	})

	t.Run("fan out sends from the first member", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_003", models.PatternFanOut, "A", "B", "C", "D")))

		require.NoError(t, err)
		assert.ElementsMatch(t, [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}}, edgePairs(graph))
	})

	t.Run("shell chain is linear", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_004", models.PatternShellChain, "A", "B", "C", "D")))

		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}, edgePairs(graph))
	})

	t.Run("unknown pattern falls back to linear chain", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_005", models.PatternType("smurf"), "A", "B", "C")))

		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, edgePairs(graph))
		assert.Equal(t, models.FallbackColor, graph.Edges[0].Color)
		assert.Equal(t, models.PatternType("smurf"), graph.Nodes[0].Pattern)
	})

	t.Run("isolated ring contributes one node and no edges", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_006", models.PatternIsolated, "X")))

		require.NoError(t, err)
		require.Len(t, graph.Nodes, 1)
		assert.Equal(t, "X", graph.Nodes[0].ID)
		assert.Empty(t, graph.Edges)
	})

	t.Run("ring without members contributes nothing", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_007", models.PatternCycle)))

		require.NoError(t, err)
		assert.Empty(t, graph.Nodes)
		assert.Empty(t, graph.Edges)
	})

	t.Run("node and edge attributes come from the pattern table", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_001", models.PatternCycle, "A", "B")))

		require.NoError(t, err)
		node := findNode(graph, "A")
		require.NotNil(t, node)
		assert.Equal(t, "A", node.Label)
		assert.Equal(t, models.PatternCycle, node.Pattern)
		assert.Equal(t, "#ef4444", node.Color)
		assert.Equal(t, models.EdgeID("A", "B"), graph.Edges[0].ID)
		assert.Equal(t, "#ef4444", graph.Edges[0].Color)
	})

	t.Run("stats count nodes and edges per pattern", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(
			ring("RING_001", models.PatternCycle, "A", "B", "C"),
			ring("RING_002", models.PatternFanOut, "D", "E", "F"),
		))

		require.NoError(t, err)
		assert.Equal(t, 6, graph.Stats.TotalNodes)
		assert.Equal(t, 5, graph.Stats.TotalEdges)
		assert.Equal(t, 3, graph.Stats.NodesByPattern[models.PatternCycle])
		assert.Equal(t, 2, graph.Stats.EdgesByPattern[models.PatternFanOut])
	})
}

func TestBuildGraph_Scores(t *testing.T) {
	t.Run("score looked up by account id", func(t *testing.T) {
		payload := payloadOf(ring("RING_001", models.PatternCycle, "A", "B"))
		payload.SuspiciousAccounts = []models.AccountScore{
			{AccountID: "A", SuspicionScore: 92.5},
		}

		graph, err := BuildGraph(payload)

		require.NoError(t, err)
		assert.Equal(t, 92.5, findNode(graph, "A").RiskScore)
	})

	t.Run("missing score defaults", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_001", models.PatternCycle, "A", "B")))

		require.NoError(t, err)
		assert.Equal(t, float64(DefaultRiskScore), findNode(graph, "B").RiskScore)
	})

	t.Run("first score record wins", func(t *testing.T) {
		payload := payloadOf(ring("RING_001", models.PatternIsolated, "A"))
		payload.SuspiciousAccounts = []models.AccountScore{
			{AccountID: "A", SuspicionScore: 40},
			{AccountID: "A", SuspicionScore: 99},
		}

		graph, err := BuildGraph(payload)

		require.NoError(t, err)
		assert.Equal(t, float64(40), graph.Nodes[0].RiskScore)
	})

	t.Run("zero score is kept, not defaulted", func(t *testing.T) {
		payload := payloadOf(ring("RING_001", models.PatternIsolated, "A"))
		payload.SuspiciousAccounts = []models.AccountScore{{AccountID: "A", SuspicionScore: 0}}

		graph, err := BuildGraph(payload)

		require.NoError(t, err)
		assert.Equal(t, float64(0), graph.Nodes[0].RiskScore)
	})
}

func TestBuildGraph_Dedup(t *testing.T) {
	t.Run("account in several rings yields one node owned by the first ring", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(
			ring("RING_001", models.PatternFanIn, "HUB", "A"),
			ring("RING_002", models.PatternCycle, "B", "HUB", "C"),
			ring("RING_003", models.PatternShellChain, "HUB", "D"),
		))

		require.NoError(t, err)

		count := 0
		for _, n := range graph.Nodes {
			if n.ID == "HUB" {
				count++
			}
		}
		assert.Equal(t, 1, count)

		hub := findNode(graph, "HUB")
		assert.Equal(t, models.PatternFanIn, hub.Pattern)
		assert.Equal(t, "#f97316", hub.Color)
	})

	t.Run("same ordered pair from two rings yields one edge owned by the first", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(
			ring("RING_001", models.PatternShellChain, "A", "B"),
			ring("RING_002", models.PatternCycle, "A", "B", "C"),
		))

		require.NoError(t, err)

		var ab []models.Edge
		for _, e := range graph.Edges {
			if e.Source == "A" && e.Target == "B" {
				ab = append(ab, e)
			}
		}
		require.Len(t, ab, 1)
		assert.Equal(t, models.PatternShellChain, ab[0].Pattern)
		assert.Len(t, graph.Edges, 3)
	})

	t.Run("reverse direction is a distinct edge", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(
			ring("RING_001", models.PatternShellChain, "A", "B"),
			ring("RING_002", models.PatternShellChain, "B", "A"),
		))

		require.NoError(t, err)
		assert.ElementsMatch(t, [][2]string{{"A", "B"}, {"B", "A"}}, edgePairs(graph))
	})

	t.Run("duplicate member inside one ring", func(t *testing.T) {
		graph, err := BuildGraph(payloadOf(ring("RING_001", models.PatternShellChain, "A", "B", "A", "B")))

		require.NoError(t, err)
		assert.Len(t, graph.Nodes, 2)
		assert.ElementsMatch(t, [][2]string{{"A", "B"}, {"B", "A"}}, edgePairs(graph))
	})
}

func TestBuildGraph_Idempotent(t *testing.T) {
	payload := payloadOf(
		ring("RING_001", models.PatternCycle, "A", "B", "C"),
		ring("RING_002", models.PatternFanIn, "D", "A", "E"),
		ring("RING_003", models.PatternIsolated, "Z"),
	)
	payload.SuspiciousAccounts = []models.AccountScore{{AccountID: "A", SuspicionScore: 77}}

	first, err := BuildGraph(payload)
	require.NoError(t, err)

	second, err := BuildGraph(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, first.Nodes, second.Nodes)
	assert.ElementsMatch(t, first.Edges, second.Edges)
}

func TestBuildGraph_InvalidPayload(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		_, err := BuildGraph(nil)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("missing fraud rings", func(t *testing.T) {
		_, err := BuildGraph(&models.Payload{SuspiciousAccounts: []models.AccountScore{}})
		assert.ErrorIs(t, err, ErrInvalidPayload)
		assert.Contains(t, err.Error(), "fraud_rings")
	})

	t.Run("missing suspicious accounts", func(t *testing.T) {
		_, err := BuildGraph(&models.Payload{FraudRings: []models.FraudRing{}})
		assert.ErrorIs(t, err, ErrInvalidPayload)
		assert.Contains(t, err.Error(), "suspicious_accounts")
	})
}

func TestBuildGraph_DoesNotAliasPayload(t *testing.T) {
	members := []string{"A", "B"}
	payload := payloadOf(ring("RING_001", models.PatternCycle, members...))

	graph, err := BuildGraph(payload)
	require.NoError(t, err)

	members[0] = "MUTATED"
	assert.Equal(t, "A", graph.Nodes[0].ID)
}
