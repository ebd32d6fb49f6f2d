package routing

import (
	"math"

	. "github.com/ttpr0/go-transit/util"
)

type flag_d struct {
	path_length float64
	prev_edge   int32
	visited     bool
}

// One-to-one (end >= 0) or one-to-all (end == -1) dijkstra over a ShortestPathIndex.
type Dijkstra struct {
	heap     PriorityQueue[int32, float64]
	start_id int32
	end_id   int32
	index    *ShortestPathIndex
	flags    []flag_d
}

func NewDijkstra(index *ShortestPathIndex, start, end int32) *Dijkstra {
	d := Dijkstra{index: index, start_id: start, end_id: end}

	flags := make([]flag_d, index.VertexCount())
	for i := 0; i < len(flags); i++ {
		flags[i].path_length = math.Inf(1)
		flags[i].prev_edge = -1
	}
	flags[start].path_length = 0
	d.flags = flags

	heap := NewPriorityQueue[int32, float64](100)
	heap.Enqueue(start, 0)
	d.heap = heap

	return &d
}

func (self *Dijkstra) CalcShortestPath() bool {
	index := self.index
	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			return self.end_id == -1
		}
		curr_flag := self.flags[curr_id]
		if curr_flag.visited {
			continue
		}
		if curr_id == self.end_id {
			return true
		}
		curr_flag.visited = true
		self.flags[curr_id] = curr_flag
		for i := index.first_out[curr_id]; i < index.first_out[curr_id+1]; i++ {
			other_id := index.heads[i]
			other_flag := self.flags[other_id]
			if other_flag.visited {
				continue
			}
			new_length := curr_flag.path_length + index.weights[i]
			if other_flag.path_length > new_length {
				other_flag.prev_edge = index.edge_ids[i]
				other_flag.path_length = new_length
				self.flags[other_id] = other_flag
				self.heap.Enqueue(other_id, new_length)
			}
		}
	}
}

// Weight of the shortest path to target, +Inf if unreachable.
func (self *Dijkstra) GetPathLength(target int32) float64 {
	if target < 0 || int(target) >= len(self.flags) {
		return math.Inf(1)
	}
	return self.flags[target].path_length
}

// Walks the predecessor edges back from target.
func (self *Dijkstra) GetShortestPath(target int32) Optional[RouteInfo] {
	if target < 0 || int(target) >= len(self.flags) {
		return None[RouteInfo]()
	}
	length := self.flags[target].path_length
	if math.IsInf(length, 1) {
		return None[RouteInfo]()
	}
	path := make([]int32, 0, 10)
	curr_id := target
	for curr_id != self.start_id {
		edge_id := self.flags[curr_id].prev_edge
		path = append(path, edge_id)
		curr_id = self.index.graph.GetEdge(edge_id).From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return Some(RouteInfo{
		Weight: length,
		Edges:  path,
	})
}
