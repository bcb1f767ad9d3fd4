// File: components.go
// Role: connected-components diagnostic, via breadth-first traversal.
package topology

import "github.com/ydarma/fluent-data/ballgraph"

// ConnectedComponents partitions every live node of g into its connected
// components. Components are returned in ascending order of their
// smallest member id; within a component, ids appear in BFS visit order
// starting from that smallest member, so the result is fully
// deterministic for a given graph snapshot.
//
// Complexity: O(V + E).
func ConnectedComponents[P any](g *ballgraph.Graph[P]) [][]ballgraph.NodeID {
	snap := g.Snapshot()

	visited := make(map[ballgraph.NodeID]bool)
	var components [][]ballgraph.NodeID

	for _, id := range snap.Nodes() {
		if visited[id] {
			continue
		}
		components = append(components, bfsComponent(snap, id, visited))
	}

	return components
}

// bfsComponent walks the component containing start, marking every
// visited node in visited, and returns it in breadth-first order.
func bfsComponent[P any](g *ballgraph.Graph[P], start ballgraph.NodeID, visited map[ballgraph.NodeID]bool) []ballgraph.NodeID {
	order := []ballgraph.NodeID{start}
	visited[start] = true
	queue := []ballgraph.NodeID{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range g.Neighbors(cur) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			order = append(order, nbr)
			queue = append(queue, nbr)
		}
	}

	return order
}
