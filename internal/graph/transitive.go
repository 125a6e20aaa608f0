package graph

import "sort"

// Ancestors returns every direct and indirect owner of id, the entity itself
// excluded even when a cycle leads back to it. The result is a duplicate-free
// sorted slice; this operation answers "who", not "how much", so no weights
// or routes are reported.
func (g *Graph) Ancestors(id string) []string {
	return g.expand(id, g.pred)
}

// Descendants returns every directly and indirectly owned entity of id, the
// entity itself excluded.
func (g *Graph) Descendants(id string) []string {
	return g.expand(id, g.succ)
}

// expand is a breadth-first traversal over the given adjacency direction.
// The visited set makes it terminate on cyclic graphs and emit each entity
// once under diamond ownership.
func (g *Graph) expand(start string, adj map[string]map[string]float64) []string {
	visited := map[string]bool{start: true}
	queue := []string{start}
	var out []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range adj[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			out = append(out, next)
			queue = append(queue, next)
		}
	}
	sort.Strings(out)
	return out
}
