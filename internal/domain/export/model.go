package export

import (
	"time"

	"gorm.io/datatypes"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Criteria maps a field id to the values accepted for that field.
type Criteria map[uint][]string

// MappingEntry chooses whether a field is exported and under which column heading.
type MappingEntry struct {
	Handle   string `json:"handle"`
	Column   string `json:"column"`
	Included bool   `json:"included"`
}

type Mapping []MappingEntry

type Export struct {
	ID             uint                         `gorm:"primaryKey" json:"id"`
	FormID         uint                         `gorm:"not null;index" json:"form_id"`
	Name           string                       `gorm:"size:255;not null" json:"name"`
	Format         string                       `gorm:"size:8;default:csv" json:"format"`
	SubmissionIDs  datatypes.JSONSlice[uint]    `gorm:"type:jsonb" json:"submission_ids"`
	Criteria       datatypes.JSONType[Criteria] `gorm:"type:jsonb" json:"criteria"`
	Mapping        datatypes.JSONType[Mapping]  `gorm:"type:jsonb" json:"mapping"`
	StartRightAway bool                         `json:"start_right_away"`
	Total          int                          `json:"total"`
	Resolved       int                          `json:"resolved"`
	SnapshotID     uint                         `json:"snapshot_id"`
	File           string                       `gorm:"type:text" json:"file"`
	Finished       bool                         `json:"finished"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func (Export) TableName() string {
	return "exports"
}

// Extension returns the output file extension for the export format.
func (e *Export) Extension() string {
	if e.Format == FormatXLSX {
		return FormatXLSX
	}
	return FormatCSV
}

// Progress is the fraction of submissions already written.
func (e *Export) Progress() float64 {
	if e.Total <= 0 {
		return 0
	}
	return float64(e.Resolved) / float64(e.Total)
}
