package slotpool

import (
	"math"
	"testing"
)

type payload struct {
	ID    uint64
	Price int64
	Qty   int64
}

func TestNewRejectsZeroCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		if _, err := New[payload](capacity); err != ErrZeroCapacity {
			t.Errorf("capacity %d: got %v, want ErrZeroCapacity", capacity, err)
		}
	}
}

func TestNewRejectsOverflowCapacity(t *testing.T) {
	// The sentinel index math.MaxUint32 is reserved, so anything past
	// it must be rejected. Only exercisable where int is 64-bit.
	const tooBig = int64(math.MaxUint32) + 1
	if int64(int(tooBig)) != tooBig {
		t.Skip("int is 32-bit on this platform")
	}
	if _, err := New[payload](int(tooBig)); err != ErrCapacityOverflow {
		t.Errorf("got %v, want ErrCapacityOverflow", err)
	}
}

func TestRoundTrip(t *testing.T) {
	p, err := New[payload](3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Capacity() != 3 || p.Allocated() != 0 {
		t.Fatalf("fresh pool: allocated=%d capacity=%d", p.Allocated(), p.Capacity())
	}

	var guards []*Guard[payload]
	for i := 0; i < 3; i++ {
		g, ok := p.Acquire()
		if !ok {
			t.Fatalf("acquire %d failed on non-exhausted pool", i)
		}
		guards = append(guards, g)
	}
	if !p.IsExhausted() {
		t.Error("pool with all slots out should be exhausted")
	}
	if g, ok := p.Acquire(); ok || g != nil {
		t.Error("acquire on exhausted pool should return (nil, false)")
	}

	guards[1].Release()
	if p.Allocated() != 2 {
		t.Errorf("allocated=%d after one release, want 2", p.Allocated())
	}
	g, ok := p.Acquire()
	if !ok {
		t.Fatal("acquire after release should succeed")
	}
	if g.Index() != guards[1].Index() {
		t.Errorf("reacquire returned slot %d, want the freed slot %d", g.Index(), guards[1].Index())
	}
	if p.Allocated() != 3 {
		t.Errorf("allocated=%d, want 3", p.Allocated())
	}
}

func TestInitialPopOrder(t *testing.T) {
	// Construction chains slots in index order, so the first pops come
	// out 0, 1, 2, …
	p, err := New[payload](4)
	if err != nil {
		t.Fatal(err)
	}
	for want := uint32(0); want < 4; want++ {
		g, ok := p.Acquire()
		if !ok {
			t.Fatal("unexpected exhaustion")
		}
		if g.Index() != want {
			t.Errorf("pop %d returned index %d", want, g.Index())
		}
	}
}

func TestSlotContentsSurviveUntilOverwritten(t *testing.T) {
	p, err := New[payload](1)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := p.Acquire()
	*g.Value() = payload{ID: 7, Price: 100, Qty: 5}
	g.Release()

	// No-reset policy: the reacquired slot still holds the old bytes.
	g, _ = p.Acquire()
	if g.Value().ID != 7 {
		t.Errorf("slot was reset; ID=%d, want stale 7", g.Value().ID)
	}
	g.Release()
}

func TestCountersAfterChurn(t *testing.T) {
	p, err := New[payload](16)
	if err != nil {
		t.Fatal(err)
	}
	var guards []*Guard[payload]
	for i := 0; i < 16; i++ {
		g, ok := p.Acquire()
		if !ok {
			t.Fatal("unexpected exhaustion")
		}
		guards = append(guards, g)
	}
	// Release out of order.
	for _, i := range []int{3, 15, 0, 7, 12, 1, 14, 2, 9, 4, 13, 5, 11, 6, 10, 8} {
		guards[i].Release()
	}
	if p.Allocated() != 0 {
		t.Errorf("allocated=%d after full drain, want 0", p.Allocated())
	}
	if _, ok := p.Acquire(); !ok {
		t.Error("acquire after full drain should succeed")
	}
}

func TestDoubleReleasePanics(t *testing.T) {
	p, err := New[payload](2)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := p.Acquire()
	g.Release()

	defer func() {
		if recover() == nil {
			t.Error("second Release should panic")
		}
	}()
	g.Release()
}
