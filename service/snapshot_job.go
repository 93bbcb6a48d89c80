package service

import (
	"context"
	"log"
	"time"

	"helix/snapshot"
)

// WriteSnapshot persists every resting order under a reader bracket and
// truncates WAL segments the snapshot now covers.
func (s *OrderService) WriteSnapshot(dir string) error {
	seq := s.seqGen.Current()

	s.reader.Begin()
	err := (&snapshot.Writer{Dir: dir}).Write(seq, s.book)
	s.reader.End()
	if err != nil {
		return err
	}

	return s.wal.TruncateThrough(seq)
}

// StartSnapshotJob writes snapshots on a ticker until ctx is done.
func (s *OrderService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := s.WriteSnapshot(dir); err != nil {
					log.Printf("snapshot failed: %v", err)
				}
			}
		}
	}()
}
