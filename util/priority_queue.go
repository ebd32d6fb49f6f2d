package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQItem[T any, P constraints.Ordered] struct {
	value T
	prio  P
	seq   int64
}

// Binary min-heap. Items with equal priority are dequeued in insertion order,
// which keeps searches over the queue deterministic.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items []_PQItem[T, P]
	seq   int64
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: make([]_PQItem[T, P], 0, cap),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(value T, prio P) {
	self.items = append(self.items, _PQItem[T, P]{value: value, prio: prio, seq: self.seq})
	self.seq += 1
	self._Up(len(self.items) - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.items) == 0 {
		var t T
		return t, false
	}
	top := self.items[0]
	last := len(self.items) - 1
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	if last > 0 {
		self._Down(0)
	}
	return top.value, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.items)
}

func (self *PriorityQueue[T, P]) _Less(i, j int) bool {
	a := self.items[i]
	b := self.items[j]
	if a.prio == b.prio {
		return a.seq < b.seq
	}
	return a.prio < b.prio
}

func (self *PriorityQueue[T, P]) _Up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !self._Less(i, parent) {
			break
		}
		self.items[i], self.items[parent] = self.items[parent], self.items[i]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) _Down(i int) {
	n := len(self.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && self._Less(right, left) {
			smallest = right
		}
		if !self._Less(smallest, i) {
			break
		}
		self.items[i], self.items[smallest] = self.items[smallest], self.items[i]
		i = smallest
	}
}
