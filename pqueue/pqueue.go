// Package pqueue implements the best-first max-priority queue the macro
// solver drives its branch-and-bound search from (spec.md §4.5): the
// frontier node with the highest admissible quality bound is explored
// next. It is a direct adaptation of dijkstra.nodePQ's min-heap-over-
// container/heap shape, flipped to a max-heap and with insertion-order
// tie-breaking added so traversal order is reproducible across runs with
// identical input.
package pqueue

import "container/heap"

// Item is one entry in a Queue. Value carries whatever payload the caller
// associates with a priority (macro stores a search node: a State plus
// the move list that reached it); pqueue itself never inspects Value.
type Item struct {
	Value    interface{}
	Priority uint16
	seq      int64
}

// Queue is a max-priority queue ordered by Item.Priority descending, ties
// broken by insertion order (earlier-pushed items dequeue first). It
// implements container/heap.Interface directly, the same shape as
// dijkstra's nodePQ, so it can also be driven with heap.Push/heap.Pop
// directly if a caller needs that.
//
// Queue supports the "lazy decrease-key" pattern spec.md §4.5 calls for:
// pushing a duplicate Item for a state whose bound has tightened, and
// letting the caller's own visited-set check skip stale entries when they
// surface from Dequeue — Queue does not deduplicate or track visited
// state itself.
type Queue struct {
	items []*Item
	next  int64
}

// New returns an empty Queue ready to use. The zero value is also usable;
// New exists for symmetry with the rest of the module's constructors.
func New() *Queue { return &Queue{} }

// Len reports the number of items currently queued.
func (q *Queue) Len() int { return len(q.items) }

// Less orders by descending Priority, then ascending insertion sequence.
func (q *Queue) Less(i, j int) bool {
	if q.items[i].Priority != q.items[j].Priority {
		return q.items[i].Priority > q.items[j].Priority
	}

	return q.items[i].seq < q.items[j].seq
}

// Swap exchanges two queued items; required by container/heap.Interface.
func (q *Queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push appends x to the backing slice; required by container/heap.Interface.
// Callers should use Enqueue instead of calling this directly.
func (q *Queue) Push(x interface{}) { q.items = append(q.items, x.(*Item)) }

// Pop removes and returns the last element of the backing slice; required
// by container/heap.Interface. Callers should use Dequeue instead of
// calling this directly.
func (q *Queue) Pop() interface{} {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]

	return it
}

// Enqueue pushes value at priority and returns the Item, so a caller can
// retain a handle (e.g. to cross-reference against its own visited set).
func (q *Queue) Enqueue(value interface{}, priority uint16) *Item {
	it := &Item{Value: value, Priority: priority, seq: q.next}
	q.next++
	heap.Push(q, it)

	return it
}

// Dequeue removes and returns the highest-priority item, or nil if the
// queue is empty.
func (q *Queue) Dequeue() *Item {
	if q.Len() == 0 {
		return nil
	}

	return heap.Pop(q).(*Item)
}

// Peek returns the highest-priority item without removing it, or nil if
// the queue is empty.
func (q *Queue) Peek() *Item {
	if q.Len() == 0 {
		return nil
	}

	return q.items[0]
}
