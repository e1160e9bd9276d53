package ringbuffer

import "errors"

var ErrNegativeSize = errors.New("size must not be negative")

// RingT is a fixed-capacity circular buffer. Once the buffer is full, adding
// another element overwrites the oldest one, so the buffer always holds the
// most recent Capacity() elements, in insertion order.
//
// Storage grows lazily: a buffer of capacity 1000 that has only ever seen
// three elements holds a three element slice. The cursor is the physical slot
// that the next Add will write to. While the buffer is not yet full, the
// cursor is simply the element count, and logical order equals physical
// order. Once full, the cursor points at the logically oldest element, and
// reads wrap around from there.
//
// RingT is not safe for concurrent use. Accessors return copies of the
// content, never views into the internal storage.
type RingT[T any] struct {
	items    []T
	capacity int
	cursor   int
}

// NewRingT creates a buffer that retains the last 'capacity' elements.
// A capacity of zero is legal, and yields a buffer that retains nothing.
func NewRingT[T any](capacity int) (*RingT[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeSize
	}
	return &RingT[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}, nil
}

// FromSliceT creates a buffer pre-populated with data. If capacity is zero,
// the buffer's capacity is len(data), and the buffer starts out full.
// If data is longer than capacity, only the last 'capacity' elements are kept.
func FromSliceT[T any](data []T, capacity int) (*RingT[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeSize
	}
	r := &RingT[T]{}
	if capacity == 0 {
		r.SetSlice(data, true)
	} else {
		r.capacity = capacity
		r.items = make([]T, 0, capacity)
		r.SetSlice(data, false)
	}
	return r, nil
}

// Capacity returns the maximum number of elements the buffer retains.
func (r *RingT[T]) Capacity() int {
	return r.capacity
}

// Cursor returns the physical slot that the next Add will write to.
func (r *RingT[T]) Cursor() int {
	return r.cursor
}

// Len returns the number of elements currently stored.
func (r *RingT[T]) Len() int {
	return len(r.items)
}

func (r *RingT[T]) IsEmpty() bool {
	return len(r.items) == 0
}

func (r *RingT[T]) IsFull() bool {
	return len(r.items) == r.capacity
}

// Add appends items in order, overwriting the oldest elements once the
// buffer is full. On a zero-capacity buffer Add is a no-op.
func (r *RingT[T]) Add(items ...T) {
	if r.capacity == 0 {
		return
	}
	for _, item := range items {
		if r.cursor == len(r.items) && len(r.items) < r.capacity {
			r.items = append(r.items, item)
		} else {
			r.items[r.cursor] = item
		}
		r.cursor = (r.cursor + 1) % r.capacity
	}
}

// Get returns the element at the given logical index, oldest first.
// Negative indices count back from the newest element, so Get(-1) is the
// newest. Out of range indices return (zero, false).
func (r *RingT[T]) Get(index int) (T, bool) {
	n := len(r.items)
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		var zero T
		return zero, false
	}
	return r.items[r.physical(index)], true
}

// First returns the oldest element.
func (r *RingT[T]) First() (T, bool) {
	return r.Get(0)
}

// Last returns the newest element.
func (r *RingT[T]) Last() (T, bool) {
	return r.Get(-1)
}

// ToSlice returns the content in logical order (oldest first).
// The returned slice is a copy, so mutating it cannot affect the buffer.
func (r *RingT[T]) ToSlice() []T {
	out := make([]T, 0, len(r.items))
	if r.isWrapped() {
		out = append(out, r.items[r.cursor:]...)
		out = append(out, r.items[:r.cursor]...)
	} else {
		out = append(out, r.items...)
	}
	return out
}

// FirstN returns up to n of the oldest elements, without materializing the
// full content. Equivalent to ToSlice()[:min(n, Len())].
func (r *RingT[T]) FirstN(n int) []T {
	n = r.clampCount(n)
	out := make([]T, 0, n)
	if r.isWrapped() {
		tail := min(r.cursor+n, r.capacity)
		out = append(out, r.items[r.cursor:tail]...)
		out = append(out, r.items[:n-(tail-r.cursor)]...)
	} else {
		out = append(out, r.items[:n]...)
	}
	return out
}

// LastN returns up to n of the newest elements, in logical order.
// Equivalent to the last min(n, Len()) elements of ToSlice().
func (r *RingT[T]) LastN(n int) []T {
	n = r.clampCount(n)
	out := make([]T, 0, n)
	if r.isWrapped() {
		start := (r.cursor + len(r.items) - n) % r.capacity
		tail := min(start+n, r.capacity)
		out = append(out, r.items[start:tail]...)
		out = append(out, r.items[:n-(tail-start)]...)
	} else {
		out = append(out, r.items[len(r.items)-n:]...)
	}
	return out
}

// Remove deletes up to count elements starting at the given logical index
// (negative indices count from the end, as in Get), and returns the removed
// elements in their original order. An out of range start index removes
// nothing and returns nil. Capacity is unchanged.
// This is a full rebuild of the buffer, O(Len()).
func (r *RingT[T]) Remove(index int, count int) []T {
	n := len(r.items)
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n || count <= 0 {
		return nil
	}
	all := r.ToSlice()
	end := min(index+count, n)
	removed := make([]T, end-index)
	copy(removed, all[index:end])
	remaining := append(all[:index], all[end:]...)
	r.SetSlice(remaining, false)
	return removed
}

// RemoveAt removes the single element at the given logical index and returns
// it, or (zero, false) if the index is out of range.
func (r *RingT[T]) RemoveAt(index int) (T, bool) {
	removed := r.Remove(index, 1)
	if len(removed) == 0 {
		var zero T
		return zero, false
	}
	return removed[0], true
}

// RemoveFirst removes and returns the oldest element.
func (r *RingT[T]) RemoveFirst() (T, bool) {
	return r.RemoveAt(0)
}

// RemoveLast removes and returns the newest element.
func (r *RingT[T]) RemoveLast() (T, bool) {
	return r.RemoveAt(-1)
}

// SetSlice replaces the buffer content with data. If resize is true, the
// buffer's capacity becomes len(data) first. If data is longer than the
// capacity, only the last 'capacity' elements are kept.
func (r *RingT[T]) SetSlice(data []T, resize bool) {
	if resize {
		r.capacity = len(data)
	}
	if r.capacity == 0 {
		r.items = r.items[:0]
		r.cursor = 0
		return
	}
	start := 0
	if len(data) > r.capacity {
		start = len(data) - r.capacity
	}
	r.items = append(r.items[:0], data[start:]...)
	r.cursor = len(r.items) % r.capacity
}

// Clear empties the buffer. Capacity is unchanged.
func (r *RingT[T]) Clear() {
	r.items = r.items[:0]
	r.cursor = 0
}

// Resize changes the buffer's capacity. Growing preserves all content;
// shrinking keeps only the most recent newCapacity elements.
func (r *RingT[T]) Resize(newCapacity int) error {
	if newCapacity < 0 {
		return ErrNegativeSize
	}
	if newCapacity == r.capacity {
		return nil
	}
	if newCapacity == 0 {
		r.Clear()
		r.capacity = 0
		return nil
	}
	content := r.ToSlice()
	if len(content) > newCapacity {
		content = content[len(content)-newCapacity:]
	}
	r.capacity = newCapacity
	r.SetSlice(content, false)
	return nil
}

// isWrapped is true once the buffer is full and non-empty, i.e. when logical
// order no longer equals physical order.
func (r *RingT[T]) isWrapped() bool {
	return len(r.items) == r.capacity && r.capacity != 0
}

func (r *RingT[T]) physical(index int) int {
	if r.isWrapped() {
		return (r.cursor + index) % r.capacity
	}
	return index
}

func (r *RingT[T]) clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return min(n, len(r.items))
}
