package project

import (
	"strings"
	"testing"
)

// TestComments_Lifecycle runs the add/add/edit/remove scenario and checks
// both the surviving comment state and the comment-category log entries.
func TestComments_Lifecycle(t *testing.T) {
	p := newTestProject(t)

	id1 := p.AddComment("a")
	id2 := p.AddComment("b")
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected comment ids 1 and 2, got %d and %d", id1, id2)
	}

	if err := p.EditComment(2, "b2"); err != nil {
		t.Fatalf("EditComment: %v", err)
	}
	if err := p.RemoveComment(1); err != nil {
		t.Fatalf("RemoveComment: %v", err)
	}

	if len(p.Comments) != 1 {
		t.Fatalf("expected exactly one live comment, got %d", len(p.Comments))
	}
	got, ok := p.Comments[2]
	if !ok {
		t.Fatal("expected comment 2 to survive")
	}
	if !strings.HasPrefix(got, "edited ") || !strings.HasSuffix(got, ": b2") {
		t.Errorf("expected edited value for comment 2, got %q", got)
	}
	if n := p.ChangeCount(CategoryComment); n != 4 {
		t.Errorf("expected 4 comment change entries, got %d", n)
	}
}

// TestComments_IDsNeverReused tests that a removed id is never reissued.
func TestComments_IDsNeverReused(t *testing.T) {
	p := newTestProject(t)

	p.AddComment("first")
	if err := p.RemoveComment(1); err != nil {
		t.Fatalf("RemoveComment: %v", err)
	}
	if id := p.AddComment("second"); id != 2 {
		t.Errorf("expected fresh id 2 after removing id 1, got %d", id)
	}
}

// TestComments_NotFound tests edit/remove against missing ids.
func TestComments_NotFound(t *testing.T) {
	p := newTestProject(t)

	if err := p.RemoveComment(7); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound from RemoveComment, got %v", err)
	}
	if err := p.EditComment(7, "x"); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound from EditComment, got %v", err)
	}
	if n := p.ChangeCount(CategoryComment); n != 0 {
		t.Errorf("failed comment operations must not log, got %d entries", n)
	}
}

// TestUpdateMasterID tests identity reassignment and its log message.
func TestUpdateMasterID(t *testing.T) {
	p := newTestProject(t)

	p.UpdateMasterID("MAAS")
	if p.ID() != "MAAS_1" {
		t.Errorf("expected MAAS_1, got %q", p.ID())
	}
	if n := p.ChangeCount(CategoryID); n != 1 {
		t.Fatalf("expected 1 identity change entry, got %d", n)
	}
	desc := p.ChangeLog[len(p.ChangeLog)-1].Description
	if !strings.Contains(desc, "HAM_1") || !strings.Contains(desc, "MAAS_1") {
		t.Errorf("expected old and new ids in log message, got %q", desc)
	}
}

// TestUpdateResponsible tests that a role's list is replaced wholesale.
func TestUpdateResponsible(t *testing.T) {
	p := newTestProject(t)

	p.UpdateResponsible("QA", []string{"Bob", "Charlie"})
	if got := p.Responsible["QA"]; len(got) != 2 || got[0] != "Bob" {
		t.Errorf("unexpected QA assignees: %v", got)
	}
	// Other roles untouched.
	if got := p.Responsible["manager"]; len(got) != 1 || got[0] != "Alice" {
		t.Errorf("manager role should be unchanged, got %v", got)
	}

	p.UpdateResponsible("QA", []string{"Dana"})
	if got := p.Responsible["QA"]; len(got) != 1 || got[0] != "Dana" {
		t.Errorf("expected replacement of the whole list, got %v", got)
	}
	if n := p.ChangeCount(CategoryResponsible); n != 2 {
		t.Errorf("expected 2 responsible change entries, got %d", n)
	}
}

// TestUpdateQuantity_Negative tests the non-negative constraint.
func TestUpdateQuantity_Negative(t *testing.T) {
	p := newTestProject(t)

	if err := p.UpdateQuantity(-3); !IsInvalidArgument(err) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if p.Quantity != 2 {
		t.Errorf("failed update must not change quantity, got %d", p.Quantity)
	}
	if n := p.ChangeCount(CategoryQuantity); n != 0 {
		t.Errorf("failed update must not log, got %d entries", n)
	}
}

// TestUpdateShippingInfo_PostCode tests that the log message surfaces the
// post code, or "Unknown" when it is absent.
func TestUpdateShippingInfo_PostCode(t *testing.T) {
	p := newTestProject(t)

	p.UpdateShippingInfo(map[string]string{"Address": "123 Main St", "Post Code": "99999"})
	desc := p.ChangeLog[len(p.ChangeLog)-1].Description
	if !strings.Contains(desc, "99999") {
		t.Errorf("expected post code in log message, got %q", desc)
	}

	p.UpdateShippingInfo(map[string]string{"Address": "456 Side St"})
	desc = p.ChangeLog[len(p.ChangeLog)-1].Description
	if !strings.Contains(desc, "Unknown") {
		t.Errorf("expected Unknown for missing post code, got %q", desc)
	}
	if n := p.ChangeCount(CategoryShipping); n != 2 {
		t.Errorf("expected 2 shipping change entries, got %d", n)
	}
}

// TestInfo_Snapshot tests the read-side snapshot has no side effects and
// reflects current state.
func TestInfo_Snapshot(t *testing.T) {
	p := newTestProject(t)
	p.UpdateStatus("Printing")
	p.AddComment("note")

	before := len(p.ChangeLog)
	s := p.Info()
	if s.ProjectID != "HAM_1" || s.Status != "Printing" || s.Quantity != 2 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if len(s.Comments) != 1 {
		t.Errorf("expected 1 comment in snapshot, got %d", len(s.Comments))
	}
	if len(p.ChangeLog) != before {
		t.Error("Info must not mutate the change log")
	}
}
