package routing

import (
	"fmt"

	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
)

type RouteInfo struct {
	Weight float64
	Edges  []int32
}

//*******************************************
// shortest path index
//*******************************************

// Immutable search structure over a graph. Has to be rebuilt by the owner
// whenever the graph changes.
type ShortestPathIndex struct {
	graph     graph.IGraph
	first_out Array[int32]
	edge_ids  Array[int32]
	heads     Array[int32]
	weights   Array[float64]
}

// Flattens the adjacency of the graph into offset arrays. Panics on negative weights.
func NewShortestPathIndex(g graph.IGraph) *ShortestPathIndex {
	vertex_count := g.VertexCount()
	first_out := NewArray[int32](vertex_count + 1)
	edge_ids := NewArray[int32](g.EdgeCount())
	heads := NewArray[int32](g.EdgeCount())
	weights := NewArray[float64](g.EdgeCount())

	pos := int32(0)
	for v := 0; v < vertex_count; v++ {
		first_out[v] = pos
		g.ForAdjacentEdges(int32(v), func(ref graph.EdgeRef) {
			weight := g.GetEdge(ref.EdgeID).Weight
			if weight < 0 {
				panic(fmt.Sprintf("negative weight %v on edge %v", weight, ref.EdgeID))
			}
			edge_ids[pos] = ref.EdgeID
			heads[pos] = ref.OtherID
			weights[pos] = weight
			pos += 1
		})
	}
	first_out[vertex_count] = pos

	return &ShortestPathIndex{
		graph:     g,
		first_out: first_out,
		edge_ids:  edge_ids,
		heads:     heads,
		weights:   weights,
	}
}

func (self *ShortestPathIndex) VertexCount() int {
	return self.first_out.Length() - 1
}

// Computes the fastest route between two vertices.
//
// Returns an empty optional if target is unreachable or a vertex is out of range.
func (self *ShortestPathIndex) BuildRoute(source, target int32) Optional[RouteInfo] {
	if !self._IsVertex(source) || !self._IsVertex(target) {
		return None[RouteInfo]()
	}
	alg := NewDijkstra(self, source, target)
	if !alg.CalcShortestPath() {
		return None[RouteInfo]()
	}
	return alg.GetShortestPath(target)
}

// Computes the shortest path tree from source to every reachable vertex.
func (self *ShortestPathIndex) BuildRoutesFrom(source int32) Optional[*Dijkstra] {
	if !self._IsVertex(source) {
		return None[*Dijkstra]()
	}
	alg := NewDijkstra(self, source, -1)
	alg.CalcShortestPath()
	return Some(alg)
}

func (self *ShortestPathIndex) _IsVertex(vertex int32) bool {
	return vertex >= 0 && int(vertex) < self.VertexCount()
}
