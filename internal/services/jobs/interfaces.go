package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/lisapod/lisapod-api/internal/models"
)

// Repository errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// Repository defines the interface for job persistence.
type Repository interface {
	// CreateJobUnique inserts the job, or returns the active job already
	// carrying its type and unique key. The bool reports whether an insert
	// happened. Check and insert are atomic.
	CreateJobUnique(ctx context.Context, job *models.Job) (*models.Job, bool, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error)

	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)
	CompleteJob(ctx context.Context, jobID uint, result *models.GenerationResult) error
	FailJob(ctx context.Context, jobID uint, errorCode, errorMsg string) error

	DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error)
}

// Service defines the job queue interface used by the API and the workers.
// A failed job stays failed: retrying means submitting a new request.
type Service interface {
	EnqueueUnique(ctx context.Context, payload models.GenerationPayload, createdBy string) (*models.Job, error)
	GetJob(ctx context.Context, jobID uint) (*models.Job, error)
	ListJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error)

	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)
	CompleteJob(ctx context.Context, jobID uint, result *models.GenerationResult) error
	FailJob(ctx context.Context, jobID uint, errorCode string, cause error) error

	CleanupOldJobs(ctx context.Context, retentionDays int) (int64, error)
}
