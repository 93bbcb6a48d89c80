package snapshot

import (
	"sync"

	"helix/infra/reclaim"
)

// Reader marks the boundaries of consistent traversals. It is a thin
// adapter over the reclaimer's epoch marks: while any bracket is open
// no retired order a traversal can reach will be released.
//
// Brackets may overlap from different goroutines; the epoch mark is
// taken at the first Begin and held until the last End, so a second
// snapshot finishing early never unmarks one still walking.
type Reader struct {
	epoch *reclaim.ReaderEpoch

	mu    sync.Mutex
	depth int
}

// NewReader registers a reader with the reclaimer. Register all
// readers before concurrent use begins.
func NewReader(rec *reclaim.Reclaimer) *Reader {
	return &Reader{epoch: rec.NewReader()}
}

// Begin opens a snapshot bracket.
func (r *Reader) Begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.depth == 0 {
		r.epoch.Enter()
	}
	r.depth++
}

// End closes a snapshot bracket.
func (r *Reader) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.depth == 0 {
		panic("snapshot: End without matching Begin")
	}
	r.depth--
	if r.depth == 0 {
		r.epoch.Exit()
	}
}
