// Package slotpool implements a lock-free, fixed-capacity object pool
// backed by a contiguous arena of slots. Free slots are threaded into a
// singly-linked stack whose head is a single tagged atomic word
// (generation + index); the generation advances on every successful pop,
// which defeats the classic ABA race on the compare-and-swap path.
//
// Acquire and Release never block and never allocate. Acquire hands out
// a per-slot Guard that owns the slot exclusively until Release pushes
// it back onto the free list. One pool holds one object type; construct
// a pool per type and inject it where needed rather than sharing a
// global instance.
package slotpool
