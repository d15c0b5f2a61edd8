package types

import "time"

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// GenerateAcceptedResponse acknowledges a queued generation request
type GenerateAcceptedResponse struct {
	BaseResponse
	JobID        uint   `json:"job_id"`
	UserID       string `json:"user_id"`
	EpisodeIndex int    `json:"episode_index"`
}

// JobStatusResponse reports the state of a generation job
type JobStatusResponse struct {
	BaseResponse
	JobID       uint        `json:"job_id"`
	JobStatus   string      `json:"job_status"`
	ErrorCode   string      `json:"error_code,omitempty"`
	Error       string      `json:"error,omitempty"`
	Result      interface{} `json:"result,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// EpisodeSegmentView is one episode entry of a podcast response
type EpisodeSegmentView struct {
	Index     int    `json:"index"`
	Script    string `json:"script"`
	AudioPath string `json:"audio_path"`
}

// PodcastResponse for a user's podcast with its segments
type PodcastResponse struct {
	BaseResponse
	UserID       string               `json:"user_id"`
	Topic        string               `json:"topic"`
	Language     string               `json:"language"`
	Lineup       string               `json:"lineup"`
	CurrentIndex int                  `json:"current_index"`
	Complete     bool                 `json:"complete"`
	IntroPath    string               `json:"intro_path,omitempty"`
	Segments     []EpisodeSegmentView `json:"segments"`
	CreatedAt    time.Time            `json:"created_at"`
}
