package project

// Snapshot is a read-side view of a record's current state, suitable for
// display or JSON output. Building one has no side effects.
type Snapshot struct {
	ProjectID    string              `json:"project_id"`
	ProjectName  string              `json:"project_name,omitempty"`
	CustomerID   string              `json:"customer_id,omitempty"`
	Status       string              `json:"status"`
	Quantity     int                 `json:"quantity"`
	Volume       float64             `json:"volume"`
	File         string              `json:"file"`
	FileVersion  int                 `json:"file_version"`
	ArchiveDir   string              `json:"archive_directory"`
	Responsible  map[string][]string `json:"responsible"`
	ShippingInfo map[string]string   `json:"shipping_info,omitempty"`
	Comments     map[int]string      `json:"comments"`
}

// Info returns a snapshot of all displayable attributes.
func (p *Project) Info() Snapshot {
	return Snapshot{
		ProjectID:    p.ID(),
		ProjectName:  p.ProjectName,
		CustomerID:   p.CustomerID,
		Status:       p.Status,
		Quantity:     p.Quantity,
		Volume:       p.Volume,
		File:         p.FilePath,
		FileVersion:  p.FileVersion,
		ArchiveDir:   p.ArchiveDir,
		Responsible:  p.Responsible,
		ShippingInfo: p.ShippingInfo,
		Comments:     p.Comments,
	}
}
