package job

import (
	"time"

	"gorm.io/datatypes"
)

// JobType selects the executor that runs a job.
type JobType string

const (
	JobTypeExport JobType = "export"
)

// JobStatus represents the current state of a job
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"     // Waiting in queue
	JobStatusScheduling JobStatus = "scheduling" // Picked by the worker
	JobStatusRunning    JobStatus = "running"    // Currently executing
	JobStatusCompleted  JobStatus = "completed"  // Finished successfully
	JobStatusFailed     JobStatus = "failed"     // Gave up
)

const DefaultMaxAttempts = 3

// Payload carries the job arguments.
type Payload struct {
	ExportID uint `json:"export_id,omitempty"`
}

// Job is a queued unit of background work.
type Job struct {
	ID           uint                        `gorm:"primaryKey;column:id" json:"id"`
	Type         JobType                     `gorm:"size:32;not null" json:"type"`
	Payload      datatypes.JSONType[Payload] `gorm:"type:jsonb" json:"payload"`
	Status       JobStatus                   `gorm:"size:16;default:'queued'" json:"status"`
	Progress     float64                     `json:"progress"`
	Attempts     int                         `json:"attempts"`
	MaxAttempts  int                         `gorm:"default:3" json:"max_attempts"`
	ErrorMessage string                      `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	StartedAt    *time.Time                  `gorm:"column:started_at" json:"started_at,omitempty"`
	CompletedAt  *time.Time                  `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

// TableName specifies the database table name
func (Job) TableName() string {
	return "jobs"
}

// NewExportJob builds a queued job that runs the given export.
func NewExportJob(exportID uint) *Job {
	return &Job{
		Type:        JobTypeExport,
		Payload:     datatypes.NewJSONType(Payload{ExportID: exportID}),
		Status:      JobStatusQueued,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// CanRetry reports whether another attempt is allowed.
func (j *Job) CanRetry() bool {
	max := j.MaxAttempts
	if max <= 0 {
		max = DefaultMaxAttempts
	}
	return j.Attempts < max
}

// Done reports whether the job reached a terminal state.
func (j *Job) Done() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
