package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydarma/fluent-data/ballgraph"
	"github.com/ydarma/fluent-data/space"
	"github.com/ydarma/fluent-data/topology"
)

func build(t *testing.T, centers []space.Vector, edges [][2]int) (*ballgraph.Graph[space.Vector], []ballgraph.NodeID) {
	t.Helper()
	g := ballgraph.New[space.Vector]()
	ids := make([]ballgraph.NodeID, len(centers))
	for i, c := range centers {
		ids[i] = g.AddNode(ballgraph.Ball[space.Vector]{Center: c, Weight: 1})
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]))
	}

	return g, ids
}

func TestConnectedComponentsSingle(t *testing.T) {
	g, ids := build(t, []space.Vector{{0}, {1}, {2}}, [][2]int{{0, 1}, {1, 2}})
	comps := topology.ConnectedComponents(g)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, ids, comps[0])
}

func TestConnectedComponentsMultiple(t *testing.T) {
	g, ids := build(t, []space.Vector{{0}, {1}, {10}, {11}}, [][2]int{{0, 1}, {2, 3}})
	comps := topology.ConnectedComponents(g)
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []ballgraph.NodeID{ids[0], ids[1]}, comps[0])
	assert.ElementsMatch(t, []ballgraph.NodeID{ids[2], ids[3]}, comps[1])
}

func TestConnectedComponentsIsolatedNode(t *testing.T) {
	g, _ := build(t, []space.Vector{{0}, {1}, {100}}, [][2]int{{0, 1}})
	comps := topology.ConnectedComponents(g)
	require.Len(t, comps, 2)
}

func TestMSTSingleTriangle(t *testing.T) {
	g, _ := build(t, []space.Vector{{0, 0}, {0, 1}, {1, 0}}, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	forest, total, err := topology.MST(g, space.SqDistVector)
	require.NoError(t, err)
	assert.Len(t, forest, 2)
	assert.InDelta(t, 2.0, total, 1e-9)
}

func TestMSTForestAcrossComponents(t *testing.T) {
	g, _ := build(t, []space.Vector{{0}, {1}, {10}, {11}}, [][2]int{{0, 1}, {2, 3}})
	forest, total, err := topology.MST(g, space.SqDistVector)
	require.NoError(t, err)
	assert.Len(t, forest, 2)
	assert.InDelta(t, 2.0, total, 1e-9)
}

func TestMSTEmptyGraph(t *testing.T) {
	g := ballgraph.New[space.Vector]()
	forest, total, err := topology.MST(g, space.SqDistVector)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Equal(t, 0.0, total)
}
