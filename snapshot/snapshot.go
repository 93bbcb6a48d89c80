package snapshot

import "time"

// Snapshot is the persisted restart image: every resting order plus
// the sequence it is consistent with.
type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

type OrderEntry struct {
	ID    uint64
	SeqID uint64
	Side  int
	Type  int
	Price int64
	Qty   int64
}
