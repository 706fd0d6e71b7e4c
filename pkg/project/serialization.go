package project

import (
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// Serialization helpers for the opaque per-record blob format.
//
// Records persist as msgpack: a compact binary envelope that round-trips the
// full record state, including the change log and the comment id counter.
// The blob is opaque to everything but this package; the store moves bytes,
// it never interprets them.

// Encode serializes the record to its on-disk blob form.
func (p *Project) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize project %s: %w", p.ID(), err)
	}
	return data, nil
}

// Decode deserializes a record blob and validates the result. Returns an
// error for corrupt or structurally invalid blobs.
func Decode(data []byte) (*Project, error) {
	var p Project
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to deserialize project: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project record: %w", err)
	}
	// Ensure empty rather than nil containers for consistency.
	if p.Responsible == nil {
		p.Responsible = map[string][]string{}
	}
	if p.Comments == nil {
		p.Comments = map[int]string{}
	}
	return &p, nil
}

// CommentIDs returns the live comment identifiers in ascending order.
func (p *Project) CommentIDs() []int {
	ids := make([]int, 0, len(p.Comments))
	for id := range p.Comments {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SortedChangeLog returns the change entries ordered by category and then
// by sequence number, the order histories are rendered in. The returned
// slice is a copy; the log itself keeps append order.
func (p *Project) SortedChangeLog() []ChangeEntry {
	entries := make([]ChangeEntry, len(p.ChangeLog))
	copy(entries, p.ChangeLog)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Seq < entries[j].Seq
	})
	return entries
}
