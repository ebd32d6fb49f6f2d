package graph

import (
	"fmt"

	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	VertexCount() int
	EdgeCount() int
	GetEdge(edge int32) Edge
	// Iterates the outgoing edges of a vertex in insertion order.
	ForAdjacentEdges(vertex int32, callback func(EdgeRef))
}

//*******************************************
// directed weighted graph
//******************************************

// Graph with a fixed vertex count. Edges get ids in insertion order.
type DirectedWeightedGraph struct {
	edges     List[Edge]
	incidence Array[List[int32]]
}

func NewDirectedWeightedGraph(vertex_count int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{
		edges:     NewList[Edge](vertex_count),
		incidence: NewArray[List[int32]](vertex_count),
	}
}

func (self *DirectedWeightedGraph) AddEdge(edge Edge) int32 {
	if !self.IsVertex(edge.From) || !self.IsVertex(edge.To) {
		panic(fmt.Sprintf("edge %v -> %v out of range for %v vertices", edge.From, edge.To, self.VertexCount()))
	}
	id := int32(self.edges.Length())
	self.edges.Add(edge)
	self.incidence[edge.From].Add(id)
	return id
}
func (self *DirectedWeightedGraph) VertexCount() int {
	return self.incidence.Length()
}
func (self *DirectedWeightedGraph) EdgeCount() int {
	return self.edges.Length()
}
func (self *DirectedWeightedGraph) IsVertex(vertex int32) bool {
	return vertex >= 0 && int(vertex) < self.incidence.Length()
}
func (self *DirectedWeightedGraph) GetEdge(edge int32) Edge {
	return self.edges[edge]
}
func (self *DirectedWeightedGraph) ForAdjacentEdges(vertex int32, callback func(EdgeRef)) {
	for _, edge_id := range self.incidence[vertex] {
		callback(EdgeRef{
			EdgeID:  edge_id,
			OtherID: self.edges[edge_id].To,
		})
	}
}
