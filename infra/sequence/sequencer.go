package sequence

import "sync/atomic"

// Sequencer issues strictly monotonic sequence IDs. It is deterministic
// and replay-safe: after WAL replay it is reset to the last applied
// sequence and continues from there.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer; start is 0 on a fresh boot and the last
// replayed sequence after recovery.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Reset repositions the sequencer. Only recovery may call this, before
// concurrent use begins.
func (s *Sequencer) Reset(v uint64) {
	s.last.Store(v)
}
