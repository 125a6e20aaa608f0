// Package graph implements the ownership-graph engine: a directed weighted
// graph over entity identifiers, simple-path enumeration with cycle
// avoidance, effective-ownership aggregation, and transitive owner/owned
// resolution.
//
// An edge A -> B with weight w means "A owns fraction w of B directly",
// w in (0, 1]. The graph is mutated only while the loader builds it; every
// query operation afterwards is read-only, so concurrent readers over the
// same graph are safe without locking.
package graph

import (
	"sort"

	"github.com/resights/ownercalc/internal/errors"
)

// Graph is the directed weighted ownership graph. At most one edge exists
// per ordered (owner, owned) pair; the loader pre-merges raw data that
// implies more.
type Graph struct {
	succ map[string]map[string]float64
	pred map[string]map[string]float64
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		succ: make(map[string]map[string]float64),
		pred: make(map[string]map[string]float64),
	}
}

// AddNode registers an entity with no edges yet. Adding an existing node is
// a no-op, so the loader can register both endpoints of every relation.
func (g *Graph) AddNode(id string) {
	if _, ok := g.succ[id]; !ok {
		g.succ[id] = make(map[string]float64)
	}
	if _, ok := g.pred[id]; !ok {
		g.pred[id] = make(map[string]float64)
	}
}

// AddEdge adds a direct ownership edge. Construction-time integrity rules:
// the fraction must lie in (0, 1] (never clamped, out-of-range data is a
// data-quality problem the caller must see), and the ordered pair must not
// already have an edge.
func (g *Graph) AddEdge(owner, owned string, fraction float64) error {
	if fraction <= 0 || fraction > 1 {
		return errors.InvalidWeightf("edge %s -> %s has fraction %v, must be in (0, 1]", owner, owned, fraction)
	}
	g.AddNode(owner)
	g.AddNode(owned)
	if _, ok := g.succ[owner][owned]; ok {
		return errors.DuplicateEdgef("edge %s -> %s already exists", owner, owned)
	}
	g.succ[owner][owned] = fraction
	g.pred[owned][owner] = fraction
	return nil
}

// Has reports whether the entity is part of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.succ[id]
	return ok
}

// Successors returns the entities directly owned by id and the owned
// fractions. The map is a copy; mutating it does not touch the graph.
func (g *Graph) Successors(id string) map[string]float64 {
	return copyWeights(g.succ[id])
}

// Predecessors returns the direct owners of id and the owning fractions.
// The map is a copy; mutating it does not touch the graph.
func (g *Graph) Predecessors(id string) map[string]float64 {
	return copyWeights(g.pred[id])
}

// NodeCount returns the number of entities in the graph.
func (g *Graph) NodeCount() int {
	return len(g.succ)
}

// EdgeCount returns the number of direct ownership edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, out := range g.succ {
		n += len(out)
	}
	return n
}

func copyWeights(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// sortedEdges returns the outgoing (or incoming) edges of a node in
// deterministic order, so path enumeration and set resolution produce stable
// results across runs.
func sortedEdges(m map[string]float64) []edge {
	out := make([]edge, 0, len(m))
	for id, w := range m {
		out = append(out, edge{to: id, fraction: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].to < out[j].to })
	return out
}

type edge struct {
	to       string
	fraction float64
}
