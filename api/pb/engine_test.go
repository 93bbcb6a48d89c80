package pb

import "testing"

// The struct tags are maintained by hand, so one round trip guards
// against a tag/schema mismatch slipping in.
func TestHandMaintainedTagsRoundTrip(t *testing.T) {
	in := &OrderIntent{UserId: 42, Side: Side_ASK, Type: OrderType_IOC, Price: -150, Qty: 7}
	b, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out := &OrderIntent{}
	if err := Unmarshal(b, out); err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}

	snap := &SnapshotResponse{
		LastSeq: 9,
		Orders:  []*OrderEntry{{Id: 1, Side: Side_BID, Price: 100, Qty: 5}},
	}
	b, err = Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	got := &SnapshotResponse{}
	if err := Unmarshal(b, got); err != nil {
		t.Fatal(err)
	}
	if got.LastSeq != 9 || len(got.Orders) != 1 || *got.Orders[0] != *snap.Orders[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
