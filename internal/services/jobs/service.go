package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/lisapod/lisapod-api/internal/models"
)

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// EnqueueUnique creates an episode generation job keyed by the user id. If an
// active job already exists for the user, that job is returned instead of
// creating a duplicate.
func (s *service) EnqueueUnique(ctx context.Context, payload models.GenerationPayload, createdBy string) (*models.Job, error) {
	if payload.UserID == "" {
		return nil, fmt.Errorf("payload user ID is required")
	}

	job, created, err := s.repo.CreateJobUnique(ctx, &models.Job{
		Type:      models.JobTypeEpisodeGeneration,
		Status:    models.JobStatusPending,
		UniqueKey: payload.UserID,
		Payload:   datatypes.NewJSONType(payload),
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("enqueueing job: %w", err)
	}
	if !created {
		log.Printf("[DEBUG] Active job %d already queued for user %s (status: %s)",
			job.ID, payload.UserID, job.Status)
		return job, nil
	}

	log.Printf("[DEBUG] Enqueued episode %d generation for user %s as job %d",
		payload.EpisodeIndex, payload.UserID, job.ID)
	return job, nil
}

// ListJobsByStatus returns recent jobs in the given status, newest first.
func (s *service) ListJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error) {
	jobs, err := s.repo.GetJobsByStatus(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *service) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return job, nil
}

func (s *service) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	job, err := s.repo.ClaimNextJob(ctx, workerID, jobTypes)
	if err != nil {
		if errors.Is(err, ErrNoJobsAvailable) {
			return nil, err
		}
		return nil, fmt.Errorf("claiming job: %w", err)
	}

	log.Printf("[DEBUG] Worker %s claimed %s job %d", workerID, job.Type, job.ID)
	return job, nil
}

func (s *service) CompleteJob(ctx context.Context, jobID uint, result *models.GenerationResult) error {
	if err := s.repo.CompleteJob(ctx, jobID, result); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("completing job: %w", err)
	}

	log.Printf("[DEBUG] Job %d completed", jobID)
	return nil
}

func (s *service) FailJob(ctx context.Context, jobID uint, errorCode string, cause error) error {
	if err := s.repo.FailJob(ctx, jobID, errorCode, cause.Error()); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("failing job: %w", err)
	}

	log.Printf("[ERROR] Job %d failed with %s: %v", jobID, errorCode, cause)
	return nil
}

func (s *service) CleanupOldJobs(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention days must be positive")
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	deleted, err := s.repo.DeleteOldJobs(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up old jobs: %w", err)
	}

	if deleted > 0 {
		log.Printf("[DEBUG] Deleted %d old jobs (older than %d days)", deleted, retentionDays)
	}
	return deleted, nil
}
