package ringbuffer

// WeightedRingT is a FIFO ring bounded by total element weight instead of
// element count. Every element carries a caller-supplied weight (typically
// its size in bytes). Adding an element evicts the oldest elements until the
// total weight fits inside MaxWeight, so the ring holds as much recent
// history as the weight budget allows. This is the shape you want for
// something like a video packet buffer, where packets vary wildly in size
// and you care about total memory, not packet count.
//
// Not safe for concurrent use.
type WeightedRingT[T any] struct {
	// MaxWeight is the weight budget. It is exported so that an owner can
	// read it back to build a replacement ring of the same size.
	MaxWeight int

	queue       []weightedItem[T]
	head        int
	totalWeight int
}

type weightedItem[T any] struct {
	weight int
	item   T
}

// NewWeightedRingT creates a ring with the given weight budget.
func NewWeightedRingT[T any](maxWeight int) WeightedRingT[T] {
	return WeightedRingT[T]{
		MaxWeight: maxWeight,
	}
}

// Add inserts an element with the given weight, evicting the oldest elements
// until the total weight is within MaxWeight. An element heavier than
// MaxWeight cannot be retained, so adding one leaves the ring empty.
func (r *WeightedRingT[T]) Add(weight int, item T) {
	r.queue = append(r.queue, weightedItem[T]{weight: weight, item: item})
	r.totalWeight += weight
	for r.totalWeight > r.MaxWeight && r.head < len(r.queue) {
		r.totalWeight -= r.queue[r.head].weight
		var zero weightedItem[T]
		r.queue[r.head] = zero
		r.head++
	}
	r.compact()
}

// Len returns the number of elements currently stored.
func (r *WeightedRingT[T]) Len() int {
	return len(r.queue) - r.head
}

// TotalWeight returns the combined weight of all stored elements.
func (r *WeightedRingT[T]) TotalWeight() int {
	return r.totalWeight
}

// Peek returns the weight and element at logical index i, where 0 is the
// oldest, without removing it. Out of range indices return ok = false.
func (r *WeightedRingT[T]) Peek(i int) (weight int, item T, ok bool) {
	if i < 0 || i >= r.Len() {
		var zero T
		return 0, zero, false
	}
	entry := r.queue[r.head+i]
	return entry.weight, entry.item, true
}

// Next removes and returns the oldest element.
// Returns ok = false if the ring is empty.
func (r *WeightedRingT[T]) Next() (weight int, item T, ok bool) {
	if r.Len() == 0 {
		var zero T
		return 0, zero, false
	}
	entry := r.queue[r.head]
	var zero weightedItem[T]
	r.queue[r.head] = zero
	r.head++
	r.totalWeight -= entry.weight
	r.compact()
	return entry.weight, entry.item, true
}

// Clear empties the ring. MaxWeight is unchanged.
func (r *WeightedRingT[T]) Clear() {
	r.queue = r.queue[:0]
	r.head = 0
	r.totalWeight = 0
}

// compact reclaims the consumed front of the queue once it dominates the
// backing slice, keeping pop amortized O(1) without unbounded growth.
func (r *WeightedRingT[T]) compact() {
	if r.head == len(r.queue) {
		r.queue = r.queue[:0]
		r.head = 0
		return
	}
	if r.head > len(r.queue)/2 && r.head > 32 {
		n := copy(r.queue, r.queue[r.head:])
		for i := n; i < len(r.queue); i++ {
			var zero weightedItem[T]
			r.queue[i] = zero
		}
		r.queue = r.queue[:n]
		r.head = 0
	}
}
