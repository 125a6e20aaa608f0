package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resights/ownercalc/internal/errors"
)

func mustBuild(t *testing.T, edges [][3]interface{}) *Graph {
	t.Helper()
	g := New()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0].(string), e[1].(string), e[2].(float64)))
	}
	return g
}

func collectAll(t *testing.T, g *Graph, source, target string) []Path {
	t.Helper()
	it, err := g.EnumeratePaths(source, target)
	require.NoError(t, err)
	paths, truncated := it.Collect(0)
	require.False(t, truncated)
	return paths
}

func TestEnumeratePathsSimpleChain(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.6},
		{"B", "C", 0.5},
	})

	paths := collectAll(t, g, "A", "C")
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "B", "C"}, paths[0].Entities)
	assert.InDelta(t, 0.3, paths[0].Weight, 1e-12)
}

func TestEnumeratePathsDiamond(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.5},
		{"A", "C", 0.5},
		{"B", "D", 1.0},
		{"C", "D", 1.0},
	})

	paths := collectAll(t, g, "A", "D")
	require.Len(t, paths, 2)
	// Deterministic order: successors are visited in ID order.
	assert.Equal(t, []string{"A", "B", "D"}, paths[0].Entities)
	assert.Equal(t, []string{"A", "C", "D"}, paths[1].Entities)
	assert.InDelta(t, 0.5, paths[0].Weight, 1e-12)
	assert.InDelta(t, 0.5, paths[1].Weight, 1e-12)
}

func TestEnumeratePathsSourceEqualsTarget(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.4},
		{"B", "A", 0.3}, // cycle back to A must not add paths
	})

	it, err := g.EnumeratePaths("A", "A")
	require.NoError(t, err)

	require.True(t, it.Next())
	p := it.Path()
	assert.Equal(t, []string{"A"}, p.Entities)
	assert.Equal(t, 1.0, p.Weight)
	assert.False(t, it.Next(), "exactly one trivial path for source == target")
}

func TestEnumeratePathsNoRoute(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.5},
		{"C", "B", 0.5},
	})

	paths := collectAll(t, g, "A", "C")
	assert.Empty(t, paths)
}

func TestEnumeratePathsSkipsCycleEdges(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.4},
		{"B", "A", 0.3},
		{"A", "C", 0.9},
	})

	paths := collectAll(t, g, "A", "C")
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "C"}, paths[0].Entities)
	assert.InDelta(t, 0.9, paths[0].Weight, 1e-12)
}

func TestEnumeratePathsSelfLoopTerminates(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "A", 0.5},
		{"A", "B", 0.8},
	})

	paths := collectAll(t, g, "A", "B")
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "B"}, paths[0].Entities)
}

func TestEnumeratePathsTargetNotExpanded(t *testing.T) {
	// B owns C, but a path from A to B must stop at B: ownership through
	// the target is not part of the A -> B relationship.
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.5},
		{"B", "C", 1.0},
		{"C", "B", 0.1},
	})

	paths := collectAll(t, g, "A", "B")
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "B"}, paths[0].Entities)
}

func TestEnumeratePathsUnknownEntities(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{{"A", "B", 0.5}})

	_, err := g.EnumeratePaths("Z", "B")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))

	_, err = g.EnumeratePaths("A", "Z")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestEnumeratePathsIsLazyAndSinglePass(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.5},
		{"A", "C", 0.5},
		{"B", "D", 1.0},
		{"C", "D", 1.0},
	})

	it, err := g.EnumeratePaths("A", "D")
	require.NoError(t, err)
	require.True(t, it.Next())
	first := it.Path()

	// Draining the rest does not disturb the previously returned path.
	rest, truncated := it.Collect(0)
	assert.False(t, truncated)
	assert.Len(t, rest, 1)
	assert.Equal(t, []string{"A", "B", "D"}, first.Entities)

	// Exhausted iterators stay exhausted; re-invocation makes a fresh one.
	assert.False(t, it.Next())
	again := collectAll(t, g, "A", "D")
	assert.Len(t, again, 2)
}

func TestCollectLimitReportsTruncation(t *testing.T) {
	g := mustBuild(t, [][3]interface{}{
		{"A", "B", 0.5},
		{"A", "C", 0.5},
		{"B", "D", 1.0},
		{"C", "D", 1.0},
	})

	it, err := g.EnumeratePaths("A", "D")
	require.NoError(t, err)
	paths, truncated := it.Collect(1)
	assert.Len(t, paths, 1)
	assert.True(t, truncated, "hitting the limit with paths left must be reported")
}

func TestEnumeratePathsDenseCyclic(t *testing.T) {
	// Complete cross-ownership among four holdings plus a terminal target;
	// enumeration must terminate and visit each simple route once.
	g := New()
	nodes := []string{"H1", "H2", "H3", "H4"}
	for _, a := range nodes {
		for _, b := range nodes {
			if a != b {
				require.NoError(t, g.AddEdge(a, b, 0.25))
			}
		}
	}
	require.NoError(t, g.AddEdge("H4", "T", 1.0))

	paths := collectAll(t, g, "H1", "T")
	// Simple paths H1 ~> H4: direct, via one, or via two intermediates.
	assert.Len(t, paths, 5)
	for _, p := range paths {
		seen := map[string]bool{}
		for _, id := range p.Entities {
			assert.False(t, seen[id], "path %v repeats %s", p.Entities, id)
			seen[id] = true
		}
	}
}
