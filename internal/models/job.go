package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobStatus represents the status of a job in the queue
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// JobType represents the type of job to be processed
type JobType string

const (
	JobTypeEpisodeGeneration JobType = "episode_generation"
)

// GenerationPayload is the input for an episode generation job.
type GenerationPayload struct {
	UserID       string `json:"user_id"`
	DisplayName  string `json:"display_name,omitempty"`
	Topic        string `json:"topic,omitempty"`
	Language     string `json:"language,omitempty"`
	EpisodeIndex int    `json:"episode_index"`
}

// GenerationResult is the output of a completed episode generation job:
// the produced script plus the location of its rendered audio.
type GenerationResult struct {
	UserID       string `json:"user_id"`
	EpisodeIndex int    `json:"episode_index"`
	Script       string `json:"script"`
	AudioPath    string `json:"audio_path"`
	IntroPath    string `json:"intro_path,omitempty"`
}

// Job represents a background generation job. A unique key (the user id)
// enforces at most one pending or processing job per user.
type Job struct {
	gorm.Model
	Type        JobType                                 `json:"type" gorm:"not null;index:idx_jobs_type_status"`
	Status      JobStatus                               `json:"status" gorm:"default:'pending';index:idx_jobs_type_status"`
	UniqueKey   string                                  `json:"unique_key,omitempty" gorm:"index"`
	Payload     datatypes.JSONType[GenerationPayload]   `json:"payload"`
	Result      datatypes.JSONType[*GenerationResult]   `json:"result,omitempty"`
	StartedAt   *time.Time                              `json:"started_at"`
	CompletedAt *time.Time                              `json:"completed_at"`
	Error       string                                  `json:"error,omitempty"`
	ErrorCode   string                                  `json:"error_code,omitempty"`
	WorkerID    string                                  `json:"worker_id,omitempty"`
	CreatedBy   string                                  `json:"created_by,omitempty"`
}

// IsTerminal returns true if the job is in a terminal state
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// CanProcess returns true if the job is ready to be picked up by a worker
func (j *Job) CanProcess() bool {
	return j.Status == JobStatusPending
}
