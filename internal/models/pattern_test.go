package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternInfo(t *testing.T) {
	t.Run("known patterns map to their topology", func(t *testing.T) {
		assert.Equal(t, TopologyCycle, PatternCycle.Info().Topology)
		assert.Equal(t, TopologyFanIn, PatternFanIn.Info().Topology)
		assert.Equal(t, TopologyFanOut, PatternFanOut.Info().Topology)
		assert.Equal(t, TopologyChain, PatternShellChain.Info().Topology)
		assert.Equal(t, TopologyChain, PatternIsolated.Info().Topology)
	})

	t.Run("every known pattern has a distinct label and a color", func(t *testing.T) {
		labels := make(map[string]bool)
		for _, p := range KnownPatterns() {
			info := p.Info()
			assert.True(t, p.Known())
			assert.Equal(t, p, info.Pattern)
			assert.NotEmpty(t, info.Color)
			assert.False(t, labels[info.Label], "duplicate label %s", info.Label)
			labels[info.Label] = true
		}
	})

	t.Run("unknown pattern falls back to linear chain", func(t *testing.T) {
		p := PatternType("layering_burst")
		info := p.Info()

		assert.False(t, p.Known())
		assert.Equal(t, TopologyChain, info.Topology)
		assert.Equal(t, FallbackColor, info.Color)
		assert.Equal(t, "layering_burst", info.Label)
		assert.Equal(t, p, info.Pattern)
	})

	t.Run("colors", func(t *testing.T) {
		assert.Equal(t, "#ef4444", PatternCycle.Color())
		assert.Equal(t, "#f97316", PatternFanIn.Color())
		assert.Equal(t, "#eab308", PatternFanOut.Color())
		assert.Equal(t, "#a855f7", PatternShellChain.Color())
		assert.Equal(t, FallbackColor, PatternIsolated.Color())
	})
}

func TestTopologyString(t *testing.T) {
	assert.Equal(t, "cycle", TopologyCycle.String())
	assert.Equal(t, "fan_in", TopologyFanIn.String())
	assert.Equal(t, "fan_out", TopologyFanOut.String())
	assert.Equal(t, "chain", TopologyChain.String())
}
