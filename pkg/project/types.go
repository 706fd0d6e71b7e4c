package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project represents one 3D-printing production job and its complete change
// history. All mutations go through the methods on this type; each one
// appends exactly one change-log entry under its own category.
type Project struct {
	// Identity. The composite ID (see ID()) must stay unique within a
	// store, but uniqueness is enforced by the store, not the record.
	MasterID string `msgpack:"master_id" json:"master_id"` // Organization/batch code (e.g. "HAM", "MAAS")
	SubID    int    `msgpack:"sub_id" json:"sub_id"`       // Sub-identifier for each printing job

	// Required state.
	FilePath    string              `msgpack:"file" json:"file"`                       // Path to the current print file (.stl or .obj)
	ArchiveDir  string              `msgpack:"archive_directory" json:"archive_directory"` // Where superseded file versions are moved
	Responsible map[string][]string `msgpack:"responsible" json:"responsible"`         // Role name → ordered assignee names
	Quantity    int                 `msgpack:"quantity" json:"quantity"`               // Copies to produce, never negative
	Volume      float64             `msgpack:"volume" json:"volume"`                   // Recomputed on every file change
	Status      string              `msgpack:"status" json:"status"`                   // Free-form, defaults to "Created"
	FileVersion int                 `msgpack:"file_version" json:"file_version"`       // Starts at 1, advances only on new-version file updates

	// Optional state.
	ProjectName  string            `msgpack:"project_name" json:"project_name,omitempty"`
	CustomerID   string            `msgpack:"customer_id" json:"customer_id,omitempty"`
	ShippingInfo map[string]string `msgpack:"shipping_info" json:"shipping_info,omitempty"`

	// Comments keyed by a per-record monotonically increasing identifier.
	// LastCommentID only ever grows; removed ids are never reissued.
	Comments      map[int]string `msgpack:"comments" json:"comments"`
	LastCommentID int            `msgpack:"last_comment_id" json:"last_comment_id"`

	// ChangeLog is the ordered, append-only record of every mutation.
	ChangeLog []ChangeEntry `msgpack:"change_log" json:"change_log"`
}

// Category identifies which kind of mutation a change-log entry records.
// Each category maintains its own sequence counter.
type Category string

const (
	CategoryID          Category = "Project ID"
	CategoryFile        Category = "Project File"
	CategoryStatus      Category = "Status"
	CategoryResponsible Category = "Responsible"
	CategoryQuantity    Category = "Quantity"
	CategoryName        Category = "Name"
	CategoryCustomer    Category = "Customer ID"
	CategoryShipping    Category = "Shipping Info"
	CategoryComment     Category = "Comment"
)

// Validate checks if the Category is a valid enum value.
func (c Category) Validate() error {
	switch c {
	case CategoryID, CategoryFile, CategoryStatus, CategoryResponsible,
		CategoryQuantity, CategoryName, CategoryCustomer, CategoryShipping,
		CategoryComment:
		return nil
	default:
		return fmt.Errorf("unknown change category: %q", c)
	}
}

// ChangeEntry is one change-log record. Entries are appended in mutation
// order; Seq is the entry's position within its own category only.
type ChangeEntry struct {
	ID          string    `msgpack:"id" json:"id"`                   // UUID - unique identifier for this entry
	Category    Category  `msgpack:"category" json:"category"`       // Which mutation kind produced it
	Seq         int       `msgpack:"seq" json:"seq"`                 // Per-category sequence number, starts at 1
	Timestamp   time.Time `msgpack:"timestamp" json:"timestamp"`     // When the mutation ran
	Description string    `msgpack:"description" json:"description"` // Human-readable description of the change
}

// Key renders the entry's legacy log key, "<Category> Change #<n>".
func (e ChangeEntry) Key() string {
	return fmt.Sprintf("%s Change #%d", e.Category, e.Seq)
}

// Validate checks if the ChangeEntry has valid field values.
func (e *ChangeEntry) Validate() error {
	if _, err := uuid.Parse(e.ID); err != nil {
		return fmt.Errorf("invalid change entry ID: not a valid UUID")
	}
	if err := e.Category.Validate(); err != nil {
		return err
	}
	if e.Seq < 1 {
		return fmt.Errorf("invalid change entry seq: must be >= 1, got %d", e.Seq)
	}
	return nil
}

// New constructs a Project with required fields and defaults. Returns
// ErrInvalidArgument for an empty master ID, empty file path, empty archive
// directory, or a negative quantity.
func New(masterID string, subID int, filePath, archiveDir string, responsible map[string][]string, quantity int) (*Project, error) {
	if masterID == "" {
		return nil, fmt.Errorf("master ID cannot be empty: %w", ErrInvalidArgument)
	}
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty: %w", ErrInvalidArgument)
	}
	if archiveDir == "" {
		return nil, fmt.Errorf("archive directory cannot be empty: %w", ErrInvalidArgument)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d: %w", quantity, ErrInvalidArgument)
	}
	if responsible == nil {
		responsible = map[string][]string{}
	}

	return &Project{
		MasterID:    masterID,
		SubID:       subID,
		FilePath:    filePath,
		ArchiveDir:  archiveDir,
		Responsible: responsible,
		Quantity:    quantity,
		Status:      DefaultStatus,
		FileVersion: 1,
		Comments:    map[int]string{},
	}, nil
}

// DefaultStatus is the status assigned to newly created projects.
const DefaultStatus = "Created"

// ID returns the composite project identifier, "{master_id}_{sub_id}".
func (p *Project) ID() string {
	return fmt.Sprintf("%s_%d", p.MasterID, p.SubID)
}

// FileVersionLabel returns "{id}_v{file_version}", the name under which the
// currently active file would be archived.
func (p *Project) FileVersionLabel() string {
	return fmt.Sprintf("%s_v%d", p.ID(), p.FileVersion)
}

// ChangeCount returns how many change-log entries exist for a category.
// This is the derived per-category counter: the next entry appended under
// the category gets Seq == ChangeCount(category) + 1.
func (p *Project) ChangeCount(category Category) int {
	n := 0
	for i := range p.ChangeLog {
		if p.ChangeLog[i].Category == category {
			n++
		}
	}
	return n
}

// appendChange records one mutation under the category's next sequence number.
func (p *Project) appendChange(category Category, ts time.Time, description string) {
	p.ChangeLog = append(p.ChangeLog, ChangeEntry{
		ID:          uuid.New().String(),
		Category:    category,
		Seq:         p.ChangeCount(category) + 1,
		Timestamp:   ts,
		Description: description,
	})
}

// Validate checks if the Project has valid field values, including every
// change-log entry. Used after deserialization to reject corrupt records.
func (p *Project) Validate() error {
	if p.MasterID == "" {
		return fmt.Errorf("master ID cannot be empty")
	}
	if p.FileVersion < 1 {
		return fmt.Errorf("invalid file version: must be >= 1, got %d", p.FileVersion)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("invalid quantity: must be >= 0, got %d", p.Quantity)
	}
	if p.Status == "" {
		return fmt.Errorf("status cannot be empty")
	}
	for id := range p.Comments {
		if id < 1 || id > p.LastCommentID {
			return fmt.Errorf("comment id %d outside issued range [1, %d]", id, p.LastCommentID)
		}
	}
	for i := range p.ChangeLog {
		if err := p.ChangeLog[i].Validate(); err != nil {
			return fmt.Errorf("change log entry %d: %w", i, err)
		}
	}
	return nil
}
