package aoc

import "container/heap"

// Stack is a LIFO stack. The zero value is empty and ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the most recently pushed value. It reports false if the stack
// is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

// While pops values and passes them to f until the stack is empty or f
// returns false. f may push more values.
func (s *Stack[T]) While(f func(T) bool) {
	popWhile(s.Pop, f)
}

// Queue is a FIFO queue. The zero value is empty and ready to use.
type Queue[T any] struct {
	items []T
}

// NewQueue returns a queue holding in, first value at the front.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: in}
}

func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes the oldest value. It reports false if the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	v = q.items[0]
	q.items = q.items[1:]
	return v, true
}

// While is Stack.While in first-in first-out order.
func (q *Queue[T]) While(f func(T) bool) {
	popWhile(q.Pop, f)
}

func popWhile[T any](pop func() (T, bool), f func(T) bool) {
	for {
		v, ok := pop()
		if !ok || !f(v) {
			return
		}
	}
}

// PQI is an item in a PQ. P is its priority; change it only through
// PQ.Update while the item is queued.
type PQI[T any] struct {
	V  T
	P  int
	ix int
}

// Index returns the item's position in its queue, or -1 once it has been
// popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// PQ is an indexed priority queue. Build one with MinQueue or MaxQueue.
type PQ[T any] struct {
	h itemHeap[T]
}

// MinQueue returns a priority queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{h: itemHeap[T]{first: func(a, b int) bool { return a < b }}}
}

// MaxQueue returns a priority queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{h: itemHeap[T]{first: func(a, b int) bool { return a > b }}}
}

func (q *PQ[T]) Len() int {
	return len(q.h.items)
}

func (q *PQ[T]) Push(it *PQI[T]) {
	heap.Push(&q.h, it)
}

func (q *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&q.h).(*PQI[T])
}

// Update restores the heap order after it.P has changed.
func (q *PQ[T]) Update(it *PQI[T]) {
	heap.Fix(&q.h, it.ix)
}

// itemHeap implements heap.Interface, keeping each item's ix current.
type itemHeap[T any] struct {
	items []*PQI[T]
	first func(a, b int) bool
}

func (h itemHeap[T]) Len() int { return len(h.items) }

func (h itemHeap[T]) Less(i, j int) bool {
	return h.first(h.items[i].P, h.items[j].P)
}

func (h itemHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].ix = i
	h.items[j].ix = j
}

func (h *itemHeap[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(h.items)
	h.items = append(h.items, it)
}

func (h *itemHeap[T]) Pop() any {
	n := len(h.items) - 1
	it := h.items[n]
	h.items[n] = nil
	it.ix = -1
	h.items = h.items[:n]
	return it
}
