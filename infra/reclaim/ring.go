package reclaim

import "sync/atomic"

// RetireRing is a lock-free SPSC ring buffer: the single writer (the
// matching path) enqueues retired resources, the reclaimer goroutine
// dequeues them.
type RetireRing[T any] struct {
	// head/tail on separate cache lines to avoid false sharing.
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte

	buf  []T
	mask uint64
}

// NewRetireRing allocates a ring with power-of-two capacity.
func NewRetireRing[T any](size uint64) *RetireRing[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("reclaim: ring size must be a power of two")
	}
	return &RetireRing[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

// Enqueue adds an element; returns false if the ring is full.
// Producer side only.
func (r *RetireRing[T]) Enqueue(v T) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Dequeue removes the oldest element; ok is false when the ring is
// empty. Consumer side only.
func (r *RetireRing[T]) Dequeue() (v T, ok bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return v, false
	}
	var zero T
	v = r.buf[t&r.mask]
	r.buf[t&r.mask] = zero
	atomic.StoreUint64(&r.tail, t+1)
	return v, true
}

func (r *RetireRing[T]) Len() int {
	return int(atomic.LoadUint64(&r.head) - atomic.LoadUint64(&r.tail))
}

func (r *RetireRing[T]) Cap() int { return len(r.buf) }

func (r *RetireRing[T]) IsEmpty() bool {
	return atomic.LoadUint64(&r.head) == atomic.LoadUint64(&r.tail)
}

func (r *RetireRing[T]) IsFull() bool {
	return r.Len() == len(r.buf)
}
