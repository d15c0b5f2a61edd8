package workers

import (
	"context"
	"fmt"
	"log"

	"github.com/lisapod/lisapod-api/internal/models"
	"github.com/lisapod/lisapod-api/internal/services/jobs"
	"github.com/lisapod/lisapod-api/internal/services/orchestrator"
	apperrors "github.com/lisapod/lisapod-api/pkg/errors"
)

// GenerationProcessor runs episode generation jobs through the orchestrator.
type GenerationProcessor struct {
	orchestrator orchestrator.Orchestrator
	jobService   jobs.Service
}

// NewGenerationProcessor creates a processor for episode generation jobs
func NewGenerationProcessor(orch orchestrator.Orchestrator, jobService jobs.Service) *GenerationProcessor {
	return &GenerationProcessor{
		orchestrator: orch,
		jobService:   jobService,
	}
}

// CanProcess returns true for episode generation jobs
func (p *GenerationProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeEpisodeGeneration
}

// ProcessJob runs one generation and records the outcome on the job. A failed
// generation marks the job failed and is not an infrastructure error; only a
// failure to record the outcome is returned to the worker.
func (p *GenerationProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	payload := job.Payload.Data()

	result, err := p.orchestrator.GenerateEpisode(ctx, orchestrator.Request{
		UserID:       payload.UserID,
		DisplayName:  payload.DisplayName,
		Topic:        payload.Topic,
		Language:     payload.Language,
		EpisodeIndex: payload.EpisodeIndex,
	})
	if err != nil {
		code := string(apperrors.GetCode(err))
		log.Printf("[ERROR] Generation job %d for user %s failed: %v", job.ID, payload.UserID, err)
		if failErr := p.jobService.FailJob(ctx, job.ID, code, err); failErr != nil {
			return fmt.Errorf("recording job failure: %w", failErr)
		}
		return nil
	}

	if err := p.jobService.CompleteJob(ctx, job.ID, &models.GenerationResult{
		UserID:       result.UserID,
		EpisodeIndex: result.EpisodeIndex,
		Script:       result.Script,
		AudioPath:    result.AudioPath,
		IntroPath:    result.IntroPath,
	}); err != nil {
		return fmt.Errorf("recording job completion: %w", err)
	}

	return nil
}
