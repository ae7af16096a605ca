package search

import "container/heap"

// step is one link in an immutable path chain. Every frontier entry
// points at its own chain, so two entries reaching the same node never
// share a visible path.
type step struct {
	id   string
	prev *step // nil for the origin
}

// path materializes the chain as an origin-first slice.
func (s *step) path() []string {
	n := 0
	for c := s; c != nil; c = c.prev {
		n++
	}
	out := make([]string, n)
	for c := s; c != nil; c = c.prev {
		n--
		out[n] = c.id
	}
	return out
}

// entry is one frontier record: a candidate pop plus everything the
// strategies order by.
type entry struct {
	id     string
	parent string  // empty for the origin entry
	g      float64 // cost accumulated along this entry's path
	h      float64 // heuristic at id; zero for uninformed methods
	seq    uint64  // global insertion ordinal, breaks priority ties
	steps  *step   // path chain ending at id
}

// frontier is the strategy-shaped container driving the engine loop.
// Callers must check empty() before pop().
type frontier interface {
	push(e *entry)
	pop() *entry
	empty() bool
}

// fifo pops entries oldest-first (BFS).
type fifo struct{ items []*entry }

func (f *fifo) push(e *entry) { f.items = append(f.items, e) }

func (f *fifo) pop() *entry {
	e := f.items[0]
	f.items = f.items[1:]
	return e
}

func (f *fifo) empty() bool { return len(f.items) == 0 }

// lifo pops entries newest-first (DFS).
type lifo struct{ items []*entry }

func (l *lifo) push(e *entry) { l.items = append(l.items, e) }

func (l *lifo) pop() *entry {
	n := len(l.items) - 1
	e := l.items[n]
	l.items = l.items[:n]
	return e
}

func (l *lifo) empty() bool { return len(l.items) == 0 }

// ordered pops the least entry according to the injected comparison.
// Duplicates accumulate under the lazy-decrease-key pattern; the engine
// discards stale ones at pop time.
type ordered struct{ pq entryPQ }

func newOrdered(less func(a, b *entry) bool) *ordered {
	o := &ordered{pq: entryPQ{less: less}}
	heap.Init(&o.pq)
	return o
}

func (o *ordered) push(e *entry) { heap.Push(&o.pq, e) }

func (o *ordered) pop() *entry { return heap.Pop(&o.pq).(*entry) }

func (o *ordered) empty() bool { return o.pq.Len() == 0 }

// lessGreedy orders by heuristic alone; equal estimates fall back to
// node ID, then to insertion order.
func lessGreedy(a, b *entry) bool {
	if a.h != b.h {
		return a.h < b.h
	}
	if a.id != b.id {
		return a.id < b.id
	}
	return a.seq < b.seq
}

// lessAStar orders by f = g + h; equal f falls back to insertion order.
func lessAStar(a, b *entry) bool {
	fa, fb := a.g+a.h, b.g+b.h
	if fa != fb {
		return fa < fb
	}
	return a.seq < b.seq
}

// lessCostFirst orders by g, then h, then insertion order.
func lessCostFirst(a, b *entry) bool {
	if a.g != b.g {
		return a.g < b.g
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// lessWeighted orders by f = g + w·h; equal f falls back to insertion
// order.
func lessWeighted(w float64) func(a, b *entry) bool {
	return func(a, b *entry) bool {
		fa, fb := a.g+w*a.h, b.g+w*b.h
		if fa != fb {
			return fa < fb
		}
		return a.seq < b.seq
	}
}

// entryPQ is a min-heap of *entry ordered by the injected less.
type entryPQ struct {
	items []*entry
	less  func(a, b *entry) bool
}

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq.items) }

// Less defers to the strategy comparison: smaller → higher priority.
func (pq entryPQ) Less(i, j int) bool { return pq.less(pq.items[i], pq.items[j]) }

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an *entry.
func (pq *entryPQ) Push(x interface{}) { pq.items = append(pq.items, x.(*entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
