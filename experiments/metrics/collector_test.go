package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.Start(5)
	for i := 0; i < 10; i++ {
		c.AddNode()
	}
	c.AddLeaf()
	c.AddLeaf()
	c.AddCutoff()

	m := c.Complete()
	require.Equal(t, 5, m.Plies)
	require.Equal(t, 10, m.Nodes)
	require.Equal(t, 2, m.Leaves)
	require.Equal(t, 1, m.Cutoffs)
	require.Equal(t, m, c.Last())
}

func TestCollectorResetsPerSearch(t *testing.T) {
	c := NewCollector()
	c.Start(3)
	c.AddNode()
	c.Complete()

	c.Start(4)
	m := c.Complete()
	require.Equal(t, 4, m.Plies)
	require.Zero(t, m.Nodes, "counters must reset between searches")
}

func TestDummyCollectorIsInert(t *testing.T) {
	c := NewDummyCollector()
	c.Start(3)
	c.AddNode()
	require.Equal(t, SearchMetric{}, c.Complete())
	require.Equal(t, SearchMetric{}, c.Last())
}
