// Package parser provides utilities for parsing and transforming input data.
// It validates the detection engine's payload and turns it into the account graph.
package parser

import (
	"fmt"

	"github.com/kesava936/money-muling-detection/internal/models"
)

// DefaultRiskScore is assigned to ring members the engine did not list
// among the suspicious accounts.
const DefaultRiskScore = 10

type BuildOption func(*buildOptions)

type buildOptions struct {
	hub HubPosition
}

func WithHubPosition(hub HubPosition) BuildOption {
	return func(o *buildOptions) {
		o.hub = hub
	}
}

// BuildGraph turns the rings into one deduplicated graph. The first ring
// (in payload order) to mention an account or produce an edge owns it.
func BuildGraph(payload *models.Payload, opts ...BuildOption) (*models.Graph, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: no payload", ErrInvalidPayload)
	}

	if payload.FraudRings == nil {
		return nil, fmt.Errorf("%w: missing fraud_rings", ErrInvalidPayload)
	}

	if payload.SuspiciousAccounts == nil {
		return nil, fmt.Errorf("%w: missing suspicious_accounts", ErrInvalidPayload)
	}

	options := buildOptions{hub: DefaultHubPosition}
	for _, opt := range opts {
		opt(&options)
	}

	b := newGraphBuilder(payload.SuspiciousAccounts)
	for _, ring := range payload.FraudRings {
		b.addRing(ring, options.hub)
	}

	return b.freeze(), nil
}

type graphBuilder struct {
	scores    map[string]float64
	nodes     []models.Node
	edges     []models.Edge
	nodeIndex map[string]struct{}
	edgeIndex map[edgeKey]struct{}
}

func newGraphBuilder(accounts []models.AccountScore) *graphBuilder {
	scores := make(map[string]float64, len(accounts))
	for _, acc := range accounts {
		if _, exists := scores[acc.AccountID]; !exists {
			scores[acc.AccountID] = acc.SuspicionScore
		}
	}

	return &graphBuilder{
		scores:    scores,
		nodes:     []models.Node{},
		edges:     []models.Edge{},
		nodeIndex: make(map[string]struct{}),
		edgeIndex: make(map[edgeKey]struct{}),
	}
}

func (b *graphBuilder) addRing(ring models.FraudRing, hub HubPosition) {
	info := ring.PatternType.Info()

	for _, acc := range ring.MemberAccounts {
		b.addNode(acc, ring.PatternType, info.Color)
	}

	for _, pair := range ringEdges(info.Topology, ring.MemberAccounts, hub) {
		b.addEdge(pair, ring.PatternType, info.Color)
	}
}

func (b *graphBuilder) addNode(id string, pattern models.PatternType, color string) {
	if _, exists := b.nodeIndex[id]; exists {
		return
	}

	score, ok := b.scores[id]
	if !ok {
		score = DefaultRiskScore
	}

	b.nodes = append(b.nodes, models.Node{
		ID:        id,
		Label:     id,
		RiskScore: score,
		Pattern:   pattern,
		Color:     color,
	})
	b.nodeIndex[id] = struct{}{}
}

func (b *graphBuilder) addEdge(pair edgeKey, pattern models.PatternType, color string) {
	if _, exists := b.edgeIndex[pair]; exists {
		return
	}

	b.edges = append(b.edges, models.Edge{
		ID:      models.EdgeID(pair.source, pair.target),
		Source:  pair.source,
		Target:  pair.target,
		Pattern: pattern,
		Color:   color,
	})
	b.edgeIndex[pair] = struct{}{}
}

func (b *graphBuilder) freeze() *models.Graph {
	nodes := make([]models.Node, len(b.nodes))
	copy(nodes, b.nodes)

	edges := make([]models.Edge, len(b.edges))
	copy(edges, b.edges)

	return &models.Graph{
		Nodes: nodes,
		Edges: edges,
		Stats: models.ComputeStats(nodes, edges),
	}
}
