package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// searchNode is one frontier entry. Several entries may exist for the same
// cell; only the one whose f equals the cell's best-known cost is live.
type searchNode struct {
	cell    gridgraph.Cell
	idx     int // row-major index of cell
	g, h, f int
	seq     uint64 // push order
}

// nodePQ is a min-heap of *searchNode under the "lazy-decrease-key" approach:
// improved cells get a fresh entry and the old one is discarded when popped.
type nodePQ []*searchNode

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by F ascending, then G descending (deeper candidates first
// among equal F), then by push order so equal nodes pop first-in first-out.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }

// Pop removes and returns the last element after heap reordering.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// frontier is the open set of one search.
type frontier struct {
	pq  nodePQ
	seq uint64
}

func newFrontier(capacity int) *frontier {
	fr := &frontier{pq: make(nodePQ, 0, capacity)}
	heap.Init(&fr.pq)
	return fr
}

func (fr *frontier) push(n *searchNode) {
	n.seq = fr.seq
	fr.seq++
	heap.Push(&fr.pq, n)
}

func (fr *frontier) popBest() *searchNode {
	return heap.Pop(&fr.pq).(*searchNode)
}

// peek returns the best entry without removing it. The frontier must not be empty.
func (fr *frontier) peek() *searchNode { return fr.pq[0] }

func (fr *frontier) empty() bool { return fr.pq.Len() == 0 }

func (fr *frontier) len() int { return fr.pq.Len() }
