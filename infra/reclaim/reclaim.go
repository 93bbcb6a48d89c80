// Package reclaim defers the release of pooled objects until no
// snapshot reader can still observe them. Retired resources pass
// through an SPSC ring; a background job advances the epoch and
// releases everything queued while all readers are idle.
//
// The epoch counter is owned by the Reclaimer instance; there is no
// process-wide epoch.
package reclaim

import "sync/atomic"

const idle = ^uint64(0)

// Releaser is the retired-resource contract: Release hands the
// underlying slot back to its pool. slotpool guards satisfy it.
type Releaser interface {
	Release()
}

// ReaderEpoch marks when a snapshot reader entered a read section.
// Obtain instances from Reclaimer.NewReader.
type ReaderEpoch struct {
	rec  *Reclaimer
	mark atomic.Uint64
}

// Enter records the reader as active at the current epoch.
func (r *ReaderEpoch) Enter() {
	r.mark.Store(r.rec.epoch.Load())
}

// Exit records the reader as idle.
func (r *ReaderEpoch) Exit() {
	r.mark.Store(idle)
}

// Value returns the reader's current mark (idle when not reading).
func (r *ReaderEpoch) Value() uint64 {
	return r.mark.Load()
}

// Reclaimer owns the retire ring, the epoch counter, and the reader
// registry. Retire is producer-side (single writer); Advance runs on
// the reclaimer goroutine.
type Reclaimer struct {
	epoch   atomic.Uint64
	ring    *RetireRing[Releaser]
	readers []*ReaderEpoch
}

// New creates a reclaimer with a retire ring of the given
// power-of-two size.
func New(ringSize uint64) *Reclaimer {
	return &Reclaimer{ring: NewRetireRing[Releaser](ringSize)}
}

// NewReader registers and returns a reader epoch. Must be called
// before concurrent use of the reclaimer begins.
func (c *Reclaimer) NewReader() *ReaderEpoch {
	r := &ReaderEpoch{rec: c}
	r.mark.Store(idle)
	c.readers = append(c.readers, r)
	return r
}

// Retire queues a resource for deferred release. The ring is sized for
// the worst burst between Advance calls; overflowing it is a
// configuration defect.
func (c *Reclaimer) Retire(r Releaser) {
	if !c.ring.Enqueue(r) {
		panic("reclaim: retire ring full")
	}
}

// Advance bumps the epoch and releases queued resources while every
// reader is idle. The ring is FIFO, so the first unsafe element stops
// the sweep: everything behind it was retired no earlier.
func (c *Reclaimer) Advance() {
	c.epoch.Add(1)
	for {
		if c.minReaderMark() != idle {
			return
		}
		r, ok := c.ring.Dequeue()
		if !ok {
			return
		}
		r.Release()
	}
}

// Pending reports how many retired resources await release.
func (c *Reclaimer) Pending() int {
	return c.ring.Len()
}

// Epoch returns the current epoch value.
func (c *Reclaimer) Epoch() uint64 {
	return c.epoch.Load()
}

func (c *Reclaimer) minReaderMark() uint64 {
	min := idle
	for _, r := range c.readers {
		if v := r.Value(); v < min {
			min = v
		}
	}
	return min
}
