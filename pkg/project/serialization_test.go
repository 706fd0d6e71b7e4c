package project

import (
	"reflect"
	"testing"
)

// TestEncodeDecode_RoundTrip tests that a record with history survives a
// serialization round trip field for field, counters included.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	p := newTestProject(t)
	p.UpdateStatus("Printing")
	p.UpdateName("Special Prototype")
	p.UpdateCustomerID("CUST-001")
	p.UpdateShippingInfo(map[string]string{"Post Code": "99999"})
	p.AddComment("setup complete")
	p.AddComment("second note")
	if err := p.RemoveComment(1); err != nil {
		t.Fatalf("RemoveComment: %v", err)
	}

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.ID() != p.ID() {
		t.Errorf("id mismatch: %q vs %q", got.ID(), p.ID())
	}
	if got.LastCommentID != p.LastCommentID {
		t.Errorf("comment counter mismatch: %d vs %d", got.LastCommentID, p.LastCommentID)
	}
	if !reflect.DeepEqual(got.Comments, p.Comments) {
		t.Errorf("comments mismatch: %v vs %v", got.Comments, p.Comments)
	}
	if !reflect.DeepEqual(got.Responsible, p.Responsible) {
		t.Errorf("responsible mismatch: %v vs %v", got.Responsible, p.Responsible)
	}
	if len(got.ChangeLog) != len(p.ChangeLog) {
		t.Fatalf("change log length mismatch: %d vs %d", len(got.ChangeLog), len(p.ChangeLog))
	}
	for i := range p.ChangeLog {
		want, have := p.ChangeLog[i], got.ChangeLog[i]
		if have.ID != want.ID || have.Category != want.Category ||
			have.Seq != want.Seq || have.Description != want.Description {
			t.Errorf("entry %d mismatch: %+v vs %+v", i, have, want)
		}
		if !have.Timestamp.Equal(want.Timestamp) {
			t.Errorf("entry %d timestamp mismatch: %v vs %v", i, have.Timestamp, want.Timestamp)
		}
	}
	if got.ChangeCount(CategoryComment) != 3 {
		t.Errorf("expected 3 comment changes after round trip, got %d", got.ChangeCount(CategoryComment))
	}
}

// TestDecode_Corrupt tests that garbage blobs are rejected, not crashed on.
func TestDecode_Corrupt(t *testing.T) {
	if _, err := Decode([]byte("not msgpack at all")); err == nil {
		t.Error("expected decode error for corrupt blob, got nil")
	}
}

// TestDecode_InvalidRecord tests that structurally invalid records fail
// validation on decode.
func TestDecode_InvalidRecord(t *testing.T) {
	p := newTestProject(t)
	p.FileVersion = 0 // invalid on purpose

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Error("expected validation error for invalid record, got nil")
	}
}

// TestCommentIDs_Sorted tests the ascending-order accessor.
func TestCommentIDs_Sorted(t *testing.T) {
	p := newTestProject(t)
	p.AddComment("a")
	p.AddComment("b")
	p.AddComment("c")
	if err := p.RemoveComment(2); err != nil {
		t.Fatal(err)
	}

	got := p.CommentIDs()
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("expected [1 3], got %v", got)
	}
}

// TestSortedChangeLog tests category-then-seq ordering of the rendered log.
func TestSortedChangeLog(t *testing.T) {
	p := newTestProject(t)
	p.UpdateStatus("Printing")
	p.AddComment("note")
	p.UpdateStatus("Shipped")

	entries := p.SortedChangeLog()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// "Comment" sorts before "Status"; within a category seq ascends.
	if entries[0].Category != CategoryComment {
		t.Errorf("expected comment entry first, got %s", entries[0].Category)
	}
	if entries[1].Category != CategoryStatus || entries[1].Seq != 1 {
		t.Errorf("expected status seq 1 second, got %s #%d", entries[1].Category, entries[1].Seq)
	}
	if entries[2].Seq != 2 {
		t.Errorf("expected status seq 2 last, got #%d", entries[2].Seq)
	}
}
