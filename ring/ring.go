// Package ring implements a wait-free, single-producer/single-consumer
// bounded ring buffer. Head and tail counters live on separate cache lines
// so the producer and consumer never contend over a shared line.
package ring

import "sync/atomic"

const cacheLinePad = 64 - 8

// Ring is a fixed-capacity SPSC queue of T. Capacity must be a power of two;
// New panics otherwise. A single goroutine may call Push, and a single
// (possibly different) goroutine may call Pop; calling either from more
// than one goroutine concurrently is a race.
type Ring[T any] struct {
	tail uint64
	_    [cacheLinePad]byte

	head uint64
	_    [cacheLinePad]byte

	mask uint64
	buf  []T
}

// New allocates a Ring of the given capacity, which must be a power of two.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("ring: capacity must be a power of two")
	}
	return &Ring[T]{
		mask: uint64(capacity - 1),
		buf:  make([]T, capacity),
	}
}

// Cap returns the ring's fixed capacity.
func (r *Ring[T]) Cap() int {
	return int(r.mask) + 1
}

// Push attempts to enqueue v. It returns false without blocking if the ring
// is full; the caller (the producer) decides whether to spin or drop.
func (r *Ring[T]) Push(v T) bool {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail-head >= uint64(len(r.buf)) {
		return false
	}
	r.buf[tail&r.mask] = v
	atomic.StoreUint64(&r.tail, tail+1)
	return true
}

// Pop attempts to dequeue the oldest element. It returns false without
// blocking if the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head == tail {
		return zero, false
	}
	v := r.buf[head&r.mask]
	r.buf[head&r.mask] = zero
	atomic.StoreUint64(&r.head, head+1)
	return v, true
}

// Len returns a snapshot of the number of queued elements. It is only exact
// when called from the consumer or producer thread; from any other
// goroutine it is a best-effort estimate.
func (r *Ring[T]) Len() int {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	return int(tail - head)
}

// SpinPush retries Push until it succeeds. The caller supplies a yield
// callback invoked between attempts (e.g. runtime.Gosched) to avoid burning
// a full core while waiting on a slow consumer; pass nil to busy-spin with
// no yield at all.
func (r *Ring[T]) SpinPush(v T, yield func()) {
	for !r.Push(v) {
		if yield != nil {
			yield()
		}
	}
}
