package slotpool

// Guard is the exclusive handle for one arena slot. Guards are
// pre-allocated, one per slot, and re-armed by the pop that hands the
// slot out; only Pool.Acquire produces a usable guard, so a guard for
// an index that was never popped cannot exist.
//
// A guard is owned by one goroutine at a time. Release returns the slot
// to the free list and must be called exactly once per acquire; a second
// Release panics. Reading the slot through a dead guard is a caller
// defect and is not detected.
type Guard[T any] struct {
	pool  *Pool[T]
	index uint32
	live  bool
}

// Value returns the owned slot. The pool leaves prior contents in
// place; overwrite every field before reading.
func (g *Guard[T]) Value() *T {
	return &g.pool.slots[g.index]
}

// Index returns the slot index this guard owns.
func (g *Guard[T]) Index() uint32 {
	return g.index
}

// Release pushes the slot back onto the free list. It never fails and
// never blocks. Releasing a guard twice panics.
func (g *Guard[T]) Release() {
	if !g.live {
		panic("slotpool: guard released twice")
	}
	g.live = false
	g.pool.release(g.index)
}
