package graph

// Aggregate combines per-path weights into a single effective ownership
// fraction: parallel chains add, sequential hops multiply (the multiplying
// already happened in each path's weight). An empty slice aggregates to 0,
// meaning "no ownership relationship", which is a valid result and not an
// error. The sum is reported as-is even when overlapping structure pushes it
// past 1.0 - clamping here would hide data-quality problems from callers.
func Aggregate(paths []Path) float64 {
	total := 0.0
	for _, p := range paths {
		total += p.Weight
	}
	return total
}

// AggregateAll drains the iterator and aggregates every remaining path,
// for callers that need the effective fraction but not the paths themselves.
func AggregateAll(it *PathIterator) float64 {
	total := 0.0
	for it.Next() {
		total += it.current.Weight
	}
	return total
}
