package prim_kruskal

import "container/heap"

// pqItem is a heap handle for one vertex. index is kept current by Swap so
// that decreaseKey can locate the item in O(1).
type pqItem struct {
	id    int
	key   float64
	index int
}

// vertexPQ implements heap.Interface as a min-heap of vertices ordered by key,
// ties broken by ascending vertex ID.
type vertexPQ []*pqItem

// Len returns the number of queued vertices.
func (pq vertexPQ) Len() int { return len(pq) }

// Less orders by key, then by ID so extraction order is deterministic.
func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].key == pq[j].key {
		return pq[i].id < pq[j].id
	}

	return pq[i].key < pq[j].key
}

// Swap swaps elements i and j and refreshes their stored positions.
func (pq vertexPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends a *pqItem. Called by heap.Push. Complexity: O(log N) amortized.
func (pq *vertexPQ) Push(x interface{}) {
	it := x.(*pqItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes the last element. Called by heap.Pop. Complexity: O(log N) amortized.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1 // no longer queued
	*pq = old[:n-1]

	return it
}

// insert queues a vertex and returns its handle.
func (pq *vertexPQ) insert(id int, key float64) *pqItem {
	it := &pqItem{id: id, key: key}
	heap.Push(pq, it)

	return it
}

// extractMin removes and returns the vertex with the smallest key.
func (pq *vertexPQ) extractMin() *pqItem {
	return heap.Pop(pq).(*pqItem)
}

// decreaseKey lowers the key of a queued item and restores heap order.
// Complexity: O(log N).
func (pq *vertexPQ) decreaseKey(it *pqItem, key float64) {
	if it.index < 0 || key >= it.key {
		return
	}
	it.key = key
	heap.Fix(pq, it.index)
}
