package orderbook

import (
	"math/rand"
	"sort"
	"testing"
)

func TestTreeInsertFindDelete(t *testing.T) {
	tree := NewLevelTree()
	lvl := tree.Upsert(100)
	if lvl == nil {
		t.Fatal("Upsert returned nil")
	}
	if tree.Find(100) != lvl {
		t.Error("Find did not return the inserted level")
	}

	tree.Upsert(200)
	if tree.Min().Price != 100 {
		t.Error("expected min=100")
	}
	if tree.Max().Price != 200 {
		t.Error("expected max=200")
	}

	if !tree.Delete(100) {
		t.Error("Delete failed")
	}
	if tree.Find(100) != nil {
		t.Error("level 100 should be gone")
	}
	if tree.Size() != 1 {
		t.Errorf("Size=%d, want 1", tree.Size())
	}
}

func TestTreeUpsertDuplicate(t *testing.T) {
	tree := NewLevelTree()
	if tree.Upsert(150) != tree.Upsert(150) {
		t.Error("duplicate Upsert should return the same level")
	}
	if tree.Size() != 1 {
		t.Errorf("Size=%d, want 1", tree.Size())
	}
}

func TestTreeEmpty(t *testing.T) {
	tree := NewLevelTree()
	if tree.Min() != nil || tree.Max() != nil {
		t.Error("Min/Max on empty tree should be nil")
	}
	if tree.Delete(42) {
		t.Error("Delete on empty tree should report false")
	}
}

func TestTreeOrderedTraversal(t *testing.T) {
	prices := []int64{500, 100, 900, 300, 700, 200, 800, 400, 600}
	tree := NewLevelTree()
	for _, p := range prices {
		tree.Upsert(p)
	}

	var asc []int64
	tree.Ascending(func(l *PriceLevel) bool {
		asc = append(asc, l.Price)
		return true
	})
	if !sort.SliceIsSorted(asc, func(i, j int) bool { return asc[i] < asc[j] }) {
		t.Errorf("Ascending out of order: %v", asc)
	}

	var desc []int64
	tree.Descending(func(l *PriceLevel) bool {
		desc = append(desc, l.Price)
		return true
	})
	for i := range desc {
		if desc[i] != asc[len(asc)-1-i] {
			t.Fatalf("Descending is not the reverse of Ascending: %v vs %v", desc, asc)
		}
	}
}

func TestTreeTraversalEarlyStop(t *testing.T) {
	tree := NewLevelTree()
	for p := int64(1); p <= 10; p++ {
		tree.Upsert(p)
	}
	count := 0
	tree.Ascending(func(*PriceLevel) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("visited %d levels, want 3", count)
	}
}

func TestTreeRandomChurnAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewLevelTree()
	ref := map[int64]bool{}

	for i := 0; i < 5000; i++ {
		p := int64(rng.Intn(500))
		if rng.Intn(3) == 0 {
			if tree.Delete(p) != ref[p] {
				t.Fatalf("Delete(%d) disagrees with reference", p)
			}
			delete(ref, p)
		} else {
			tree.Upsert(p)
			ref[p] = true
		}
	}

	if tree.Size() != len(ref) {
		t.Fatalf("Size=%d, reference has %d", tree.Size(), len(ref))
	}
	var got []int64
	tree.Ascending(func(l *PriceLevel) bool {
		got = append(got, l.Price)
		return true
	})
	want := make([]int64, 0, len(ref))
	for p := range ref {
		want = append(want, p)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if len(got) != len(want) {
		t.Fatalf("traversal has %d levels, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("traversal[%d]=%d, want %d", i, got[i], want[i])
		}
	}
}
