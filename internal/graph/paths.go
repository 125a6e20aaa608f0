package graph

import "github.com/resights/ownercalc/internal/errors"

// Path is a simple directed path through the ownership graph: an ordered
// sequence of entity IDs where each consecutive pair is a direct edge and no
// entity repeats. Weight is the product of the edge fractions along it.
//
// The zero-length path (source == target) has Entities of length one and
// Weight 1, representing full self-ownership.
type Path struct {
	Entities []string `json:"entities"`
	Weight   float64  `json:"weight"`
}

// PathIterator lazily enumerates all simple paths from a source to a target.
//
// Traditional approach (eager):
//
//	paths := allPaths(src, dst) // materializes every path up front
//
// Lazy approach:
//
//	it, err := g.EnumeratePaths(src, dst)
//	for it.Next() {
//	  p := it.Path() // only the active DFS branch is in memory
//	}
//
// The path count is exponential in the worst case (dense graphs); the
// iterator never truncates on its own, but its laziness lets a caller stop
// consuming after any cutoff it chooses. A single iterator is one traversal;
// call EnumeratePaths again for a fresh sequence.
type PathIterator struct {
	g      *Graph
	source string
	target string

	// trivial covers source == target: exactly one zero-length path is
	// emitted and no traversal happens.
	trivial     bool
	trivialDone bool

	stack   []pathFrame
	onPath  map[string]bool
	path    []string
	current Path
}

// pathFrame is one level of the iterative DFS: a node on the active path,
// its outgoing edges in deterministic order, the next edge to try, and the
// weight product accumulated from the source up to this node.
type pathFrame struct {
	id     string
	succ   []edge
	next   int
	weight float64
}

// EnumeratePaths starts a depth-first enumeration of all simple paths from
// source to target. Edges closing a cycle (leading back onto the active
// path) are skipped, which bounds traversal even on cyclic graphs, and the
// target is never expanded further: ownership "through" the target is not
// part of the source -> target relationship.
func (g *Graph) EnumeratePaths(source, target string) (*PathIterator, error) {
	if !g.Has(source) {
		return nil, errors.NotFoundf("entity %q not in graph", source)
	}
	if !g.Has(target) {
		return nil, errors.NotFoundf("entity %q not in graph", target)
	}

	it := &PathIterator{g: g, source: source, target: target}
	if source == target {
		it.trivial = true
		return it, nil
	}

	it.stack = []pathFrame{{id: source, succ: sortedEdges(g.succ[source]), weight: 1.0}}
	it.onPath = map[string]bool{source: true}
	it.path = []string{source}
	return it, nil
}

// Next advances to the next path. Returns true if a path is available.
func (it *PathIterator) Next() bool {
	if it.trivial {
		if it.trivialDone {
			return false
		}
		it.trivialDone = true
		it.current = Path{Entities: []string{it.source}, Weight: 1.0}
		return true
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.next >= len(top.succ) {
			// Branch exhausted, backtrack.
			delete(it.onPath, top.id)
			it.stack = it.stack[:len(it.stack)-1]
			it.path = it.path[:len(it.path)-1]
			continue
		}

		e := top.succ[top.next]
		top.next++

		if it.onPath[e.to] {
			// Cycle-closing edge (self-loops included): following it would
			// repeat an entity on the active path, so it contributes no path.
			continue
		}

		w := top.weight * e.fraction
		if e.to == it.target {
			ents := make([]string, len(it.path)+1)
			copy(ents, it.path)
			ents[len(it.path)] = e.to
			it.current = Path{Entities: ents, Weight: w}
			return true
		}

		it.stack = append(it.stack, pathFrame{id: e.to, succ: sortedEdges(it.g.succ[e.to]), weight: w})
		it.onPath[e.to] = true
		it.path = append(it.path, e.to)
	}
	return false
}

// Path returns the current path. Valid after Next() has returned true; the
// returned value is independent of the iterator's internal state.
func (it *PathIterator) Path() Path {
	return it.current
}

// Collect drains the iterator into a slice, up to limit paths (limit <= 0
// means unbounded). The second return value reports whether paths remained
// when the limit was hit, so callers imposing a cutoff can tell a complete
// result from a truncated one instead of being silently cut short.
func (it *PathIterator) Collect(limit int) ([]Path, bool) {
	var paths []Path
	for it.Next() {
		if limit > 0 && len(paths) >= limit {
			return paths, true
		}
		paths = append(paths, it.current)
	}
	return paths, false
}
