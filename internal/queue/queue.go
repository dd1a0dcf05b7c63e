// Package queue provides a value-based binary heap of search candidates.
package queue

// Item is a candidate held by the queue.
type Item struct {
	ID       uint64  // Candidate identifier
	Distance float32 // Priority; ties are broken by ID
}

// PriorityQueue is a max-heap of Items ordered by (Distance, ID).
//
// The farthest candidate sits at the top, which makes it a bounded top-k
// collector: a new candidate only has to beat the root.
type PriorityQueue struct {
	items []Item
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]Item, 0, capacity),
	}
}

// push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) push(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// pop removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue) pop() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// PushBounded offers item to a queue holding at most k items.
// It reports whether the item was kept.
func (pq *PriorityQueue) PushBounded(item Item, k int) bool {
	if len(pq.items) < k {
		pq.push(item)
		return true
	}
	if k == 0 || !before(item, pq.items[0]) {
		return false
	}
	pq.items[0] = item
	pq.siftDown(0)
	return true
}

// Drain pops every item and returns them nearest first.
func (pq *PriorityQueue) Drain() []Item {
	out := make([]Item, len(pq.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = pq.pop()
	}
	return out
}

// before reports whether a ranks strictly ahead of b.
func before(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.ID < b.ID
}

// less orders the heap farthest first.
func (pq *PriorityQueue) less(i, j int) bool {
	return before(pq.items[j], pq.items[i])
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
