package project

import (
	"fmt"
	"time"
)

// Mutation methods for everything except file handling, which lives in
// file.go. Log message texts follow the established record format so that
// histories written by earlier tooling read the same way.

// stamp renders a mutation timestamp for log and comment texts.
func stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// AddComment allocates the next comment id, stores the timestamped comment,
// and logs the addition. Returns the allocated id. Never fails.
func (p *Project) AddComment(text string) int {
	ts := time.Now()
	if p.Comments == nil {
		p.Comments = map[int]string{}
	}
	p.LastCommentID++
	id := p.LastCommentID
	p.Comments[id] = fmt.Sprintf("%s: %s", stamp(ts), text)
	p.appendChange(CategoryComment, ts, fmt.Sprintf("%s: comment_%d added", stamp(ts), id))
	return id
}

// RemoveComment deletes a comment by id and logs the deletion. The id is not
// reclaimed: a later AddComment will never reissue it. Returns ErrNotFound
// if no live comment has the id.
func (p *Project) RemoveComment(id int) error {
	if _, ok := p.Comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	ts := time.Now()
	delete(p.Comments, id)
	p.appendChange(CategoryComment, ts, fmt.Sprintf("%s: Comment %d deleted", stamp(ts), id))
	return nil
}

// EditComment overwrites a comment's whole value with the new text. The
// original creation timestamp is not preserved. Returns ErrNotFound if no
// live comment has the id.
func (p *Project) EditComment(id int, text string) error {
	if _, ok := p.Comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	ts := time.Now()
	p.Comments[id] = fmt.Sprintf("edited %s: %s", stamp(ts), text)
	p.appendChange(CategoryComment, ts, fmt.Sprintf("%s: Comment %d edited", stamp(ts), id))
	return nil
}

// UpdateMasterID reassigns the master ID, logging the old and new composite
// ids. The record performs no uniqueness check; that is the store's job.
func (p *Project) UpdateMasterID(newMasterID string) {
	ts := time.Now()
	oldID := p.ID()
	p.MasterID = newMasterID
	p.appendChange(CategoryID, ts, fmt.Sprintf(
		"%s: Subproject moved under master project %s. Project ID changed from %s to %s",
		stamp(ts), newMasterID, oldID, p.ID()))
}

// UpdateStatus sets the project status.
func (p *Project) UpdateStatus(newStatus string) {
	ts := time.Now()
	p.Status = newStatus
	p.appendChange(CategoryStatus, ts, fmt.Sprintf("%s Status changed to %s", stamp(ts), newStatus))
}

// UpdateResponsible replaces the entire assignee list for one role. Roles
// are independent; other roles are untouched.
func (p *Project) UpdateResponsible(role string, assignees []string) {
	ts := time.Now()
	if p.Responsible == nil {
		p.Responsible = map[string][]string{}
	}
	p.Responsible[role] = assignees
	p.appendChange(CategoryResponsible, ts, fmt.Sprintf("%s: %s updated to %v", stamp(ts), role, assignees))
}

// UpdateQuantity sets the number of copies to produce. Returns
// ErrInvalidArgument for a negative quantity.
func (p *Project) UpdateQuantity(newQuantity int) error {
	if newQuantity < 0 {
		return fmt.Errorf("quantity cannot be negative, got %d: %w", newQuantity, ErrInvalidArgument)
	}
	ts := time.Now()
	p.Quantity = newQuantity
	p.appendChange(CategoryQuantity, ts, fmt.Sprintf("%s: Quantity updated to %d", stamp(ts), newQuantity))
	return nil
}

// UpdateName sets the human-readable project name.
func (p *Project) UpdateName(newName string) {
	ts := time.Now()
	p.ProjectName = newName
	p.appendChange(CategoryName, ts, fmt.Sprintf("%s Project name updated to %s", stamp(ts), newName))
}

// UpdateCustomerID sets the customer identifier.
func (p *Project) UpdateCustomerID(newCustomerID string) {
	ts := time.Now()
	p.CustomerID = newCustomerID
	p.appendChange(CategoryCustomer, ts, fmt.Sprintf("%s Project customer updated to %s", stamp(ts), newCustomerID))
}

// UpdateShippingInfo replaces the shipping details. The log message surfaces
// the "Post Code" field specifically, falling back to "Unknown" when absent.
func (p *Project) UpdateShippingInfo(info map[string]string) {
	ts := time.Now()
	p.ShippingInfo = info
	postCode, ok := info["Post Code"]
	if !ok || postCode == "" {
		postCode = "Unknown"
	}
	p.appendChange(CategoryShipping, ts, fmt.Sprintf("%s Shipping info updated to %s", stamp(ts), postCode))
}
