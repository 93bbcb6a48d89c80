package slotpool

import (
	"errors"
	"math"
	"sync/atomic"
)

const (
	// none is the reserved index value meaning "free list empty".
	none uint32 = math.MaxUint32

	indexBits = 32
	indexMask = 1<<indexBits - 1
)

var (
	// ErrZeroCapacity is returned by New for capacities below one.
	ErrZeroCapacity = errors.New("slotpool: capacity must be at least one")

	// ErrCapacityOverflow is returned by New when the capacity does not
	// fit the 32-bit index field (math.MaxUint32 is reserved as the
	// empty-list sentinel).
	ErrCapacityOverflow = errors.New("slotpool: capacity exceeds 32-bit index range")
)

// Pool is a fixed-capacity, lock-free pool of T.
//
// The free list is a stack of slot indices linked through next. Its head
// lives in one atomic word: the upper 32 bits hold a generation counter,
// the lower 32 bits the head index (or none). Every successful pop bumps
// the generation, so a stale head snapshot can never pass the CAS even
// when the raw index bits have cycled back.
//
// Go's sync/atomic operations are sequentially consistent, which is
// stronger than the acquire/release pairing this protocol needs.
type Pool[T any] struct {
	head      atomic.Uint64
	allocated atomic.Int64

	slots  []T
	next   []atomic.Uint32
	guards []Guard[T]
}

// New creates a pool of capacity slots. Slot contents are not
// initialized: the pool never resets a slot, neither on construction nor
// on release. Acquirers must fully overwrite the object before use.
func New[T any](capacity int) (*Pool[T], error) {
	if capacity < 1 {
		return nil, ErrZeroCapacity
	}
	if uint64(capacity) > uint64(none) {
		return nil, ErrCapacityOverflow
	}

	p := &Pool[T]{
		slots:  make([]T, capacity),
		next:   make([]atomic.Uint32, capacity),
		guards: make([]Guard[T], capacity),
	}
	// Chain all slots in index order: 0 → 1 → … → capacity-1 → none.
	for i := range p.next {
		if i == capacity-1 {
			p.next[i].Store(none)
		} else {
			p.next[i].Store(uint32(i + 1))
		}
		p.guards[i] = Guard[T]{pool: p, index: uint32(i)}
	}
	p.head.Store(pack(0, 0))
	return p, nil
}

// Acquire pops a free slot and returns its guard. It returns (nil,
// false) immediately when the pool is exhausted; it never blocks and
// never allocates. Callers own the slot until Guard.Release.
func (p *Pool[T]) Acquire() (*Guard[T], bool) {
	for {
		old := p.head.Load()
		gen, idx := unpack(old)
		if idx == none {
			return nil, false
		}
		// Candidate new head. If another goroutine pops idx first,
		// this read may be stale, but then the CAS below fails on
		// the generation and we retry.
		nxt := p.next[idx].Load()
		if p.head.CompareAndSwap(old, pack(gen+1, nxt)) {
			p.allocated.Add(1)
			g := &p.guards[idx]
			g.live = true
			return g, true
		}
	}
}

// release pushes index back onto the free stack. Only Guard.Release
// calls it, exactly once per acquire. Pushing does not bump the
// generation; bumping on pop alone is sufficient for ABA safety.
func (p *Pool[T]) release(index uint32) {
	for {
		old := p.head.Load()
		gen, idx := unpack(old)
		p.next[index].Store(idx)
		if p.head.CompareAndSwap(old, pack(gen, index)) {
			p.allocated.Add(-1)
			return
		}
	}
}

// Allocated reports the number of slots currently held by live guards.
func (p *Pool[T]) Allocated() int {
	return int(p.allocated.Load())
}

// Capacity reports the fixed slot count chosen at construction.
func (p *Pool[T]) Capacity() int {
	return len(p.slots)
}

// IsExhausted reports whether every slot is currently allocated.
func (p *Pool[T]) IsExhausted() bool {
	return p.Allocated() == p.Capacity()
}

func pack(gen, idx uint32) uint64 {
	return uint64(gen)<<indexBits | uint64(idx)
}

func unpack(w uint64) (gen, idx uint32) {
	return uint32(w >> indexBits), uint32(w & indexMask)
}
