package ringbuffer

// RingP is a lean fixed-size ring for plain history tracking: add elements,
// read them back oldest-first by index. There is no removal and no resizing,
// and the storage is allocated up front, which makes RingP cheap to embed by
// value inside tracking state.
//
// Not safe for concurrent use.
type RingP[T any] struct {
	items []T
	next  int
	count int
}

// NewRingP creates a ring that retains the last 'size' elements.
// A size of zero or less yields a ring that retains nothing.
func NewRingP[T any](size int) RingP[T] {
	if size < 0 {
		size = 0
	}
	return RingP[T]{
		items: make([]T, size),
	}
}

// Add inserts an element, overwriting the oldest once the ring is full.
func (r *RingP[T]) Add(item T) {
	if len(r.items) == 0 {
		return
	}
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	if r.count < len(r.items) {
		r.count++
	}
}

// Len returns the number of elements currently stored.
func (r *RingP[T]) Len() int {
	return r.count
}

// Size returns the fixed size of the ring.
func (r *RingP[T]) Size() int {
	return len(r.items)
}

// Peek returns the element at logical index i, where 0 is the oldest.
// An out of range index returns the zero value.
func (r *RingP[T]) Peek(i int) T {
	if i < 0 || i >= r.count {
		var zero T
		return zero
	}
	if r.count < len(r.items) {
		return r.items[i]
	}
	return r.items[(r.next+i)%len(r.items)]
}

// Clear empties the ring.
func (r *RingP[T]) Clear() {
	r.next = 0
	r.count = 0
}
