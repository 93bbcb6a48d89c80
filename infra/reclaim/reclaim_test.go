package reclaim

import "testing"

type fakeSlot struct {
	released bool
}

func (f *fakeSlot) Release() { f.released = true }

func TestAdvanceReleasesWhenIdle(t *testing.T) {
	c := New(8)
	slots := []*fakeSlot{{}, {}, {}}
	for _, s := range slots {
		c.Retire(s)
	}
	if c.Pending() != 3 {
		t.Fatalf("Pending=%d, want 3", c.Pending())
	}

	c.Advance()
	for i, s := range slots {
		if !s.released {
			t.Errorf("slot %d not released with no readers registered", i)
		}
	}
	if c.Pending() != 0 {
		t.Errorf("Pending=%d after sweep, want 0", c.Pending())
	}
}

func TestActiveReaderBlocksReclamation(t *testing.T) {
	c := New(8)
	reader := c.NewReader()

	reader.Enter()
	s := &fakeSlot{}
	c.Retire(s)
	c.Advance()
	if s.released {
		t.Error("slot released while a reader was inside a read section")
	}

	reader.Exit()
	c.Advance()
	if !s.released {
		t.Error("slot not released after the reader exited")
	}
}

func TestIdleReadersDoNotBlock(t *testing.T) {
	c := New(8)
	c.NewReader() // registered but never enters
	s := &fakeSlot{}
	c.Retire(s)
	c.Advance()
	if !s.released {
		t.Error("idle reader should not block reclamation")
	}
}

func TestEpochAdvances(t *testing.T) {
	c := New(8)
	before := c.Epoch()
	c.Advance()
	c.Advance()
	if c.Epoch() != before+2 {
		t.Errorf("Epoch=%d, want %d", c.Epoch(), before+2)
	}
}

func TestRetirePanicsOnFullRing(t *testing.T) {
	c := New(2)
	reader := c.NewReader()
	reader.Enter() // hold reclamation open
	c.Retire(&fakeSlot{})
	c.Retire(&fakeSlot{})

	defer func() {
		if recover() == nil {
			t.Error("Retire on a full ring should panic")
		}
	}()
	c.Retire(&fakeSlot{})
}
