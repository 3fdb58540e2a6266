package submission

import (
	"time"

	"gorm.io/datatypes"
)

// Submission stores the posted values of one form entry keyed by field handle.
type Submission struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	FormID        uint              `gorm:"not null;index" json:"form_id"`
	Title         string            `gorm:"size:255" json:"title"`
	Content       datatypes.JSONMap `gorm:"type:jsonb" json:"content"`
	AuthorID      *uint             `json:"author_id,omitempty"`
	IPAddress     string            `gorm:"size:64" json:"ip_address"`
	UserAgent     string            `gorm:"type:text" json:"user_agent"`
	SubmittedFrom string            `gorm:"type:text" json:"submitted_from"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Value returns the raw stored value for a field handle.
func (s Submission) Value(handle string) (any, bool) {
	if s.Content == nil {
		return nil, false
	}
	v, ok := s.Content[handle]
	return v, ok
}

type Note struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	AuthorID     *uint     `json:"author_id,omitempty"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
