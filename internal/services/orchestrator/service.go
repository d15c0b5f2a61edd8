package orchestrator

import (
	"context"
	"errors"
	"log"

	"github.com/lisapod/lisapod-api/internal/models"
	"github.com/lisapod/lisapod-api/internal/services/narration"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
	"github.com/lisapod/lisapod-api/internal/services/scripts"
	apperrors "github.com/lisapod/lisapod-api/pkg/errors"
)

// Service wires the content generator, the narration renderer and the
// progression store into the episode state machine.
type Service struct {
	generator    scripts.Generator
	renderer     narration.Renderer
	store        podcasts.Service
	episodeCount int
	locks        *userLocks
}

var _ Orchestrator = (*Service)(nil)

// NewService creates the orchestrator. episodeCount is the lineup length;
// requests beyond it are rejected.
func NewService(generator scripts.Generator, renderer narration.Renderer, store podcasts.Service, episodeCount int) *Service {
	if episodeCount <= 0 {
		episodeCount = 5
	}
	return &Service{
		generator:    generator,
		renderer:     renderer,
		store:        store,
		episodeCount: episodeCount,
		locks:        newUserLocks(),
	}
}

// Validate is the synchronous pre-flight check. It rejects requests that are
// doomed regardless of what generation would produce, so callers can fail
// fast before queueing work.
func (s *Service) Validate(ctx context.Context, req Request) error {
	if req.UserID == "" {
		return apperrors.New(apperrors.ErrCodeMissingField, "user_id is required")
	}
	if req.EpisodeIndex < 1 {
		return apperrors.Newf(apperrors.ErrCodeInvalidInput, "episode index %d is invalid", req.EpisodeIndex)
	}
	if req.EpisodeIndex > s.episodeCount {
		return apperrors.Newf(apperrors.ErrCodeSequenceViolation,
			"episode %d requested but the lineup has %d episodes", req.EpisodeIndex, s.episodeCount)
	}

	if req.EpisodeIndex == 1 {
		if req.Topic == "" {
			return apperrors.New(apperrors.ErrCodeMissingField, "topic is required to start a podcast")
		}
		_, err := s.store.GetByUserID(ctx, req.UserID)
		if err == nil {
			return apperrors.Newf(apperrors.ErrCodePodcastExists,
				"user %s already has a podcast; clear it to start over", req.UserID)
		}
		if !podcasts.IsNotFound(err) {
			return apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "checking existing podcast")
		}
		return nil
	}

	podcast, err := s.store.GetByUserID(ctx, req.UserID)
	if err != nil {
		if podcasts.IsNotFound(err) {
			return apperrors.RecordAbsent(req.UserID)
		}
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "loading podcast")
	}
	if podcast.Status == models.PodcastStatusGenerating {
		return apperrors.Newf(apperrors.ErrCodeGenerationBusy,
			"a generation run is already in progress for user %s", req.UserID)
	}
	if podcast.IsComplete(s.episodeCount) {
		return apperrors.Newf(apperrors.ErrCodeSequenceViolation,
			"podcast for user %s is complete with %d episodes", req.UserID, s.episodeCount)
	}
	if expected := podcast.CurrentIndex + 1; req.EpisodeIndex != expected {
		return apperrors.SequenceViolation(req.EpisodeIndex, expected)
	}
	return nil
}

// GenerateEpisode runs one full generation: bootstrap for episode 1,
// continuation for everything after. At most one run per user is in flight;
// a concurrent request is rejected, never queued behind the first.
func (s *Service) GenerateEpisode(ctx context.Context, req Request) (*Result, error) {
	if err := s.Validate(ctx, req); err != nil {
		return nil, err
	}

	if !s.locks.TryAcquire(req.UserID) {
		return nil, apperrors.Newf(apperrors.ErrCodeGenerationBusy,
			"a generation run is already in progress for user %s", req.UserID)
	}
	defer s.locks.Release(req.UserID)

	if req.EpisodeIndex == 1 {
		return s.bootstrap(ctx, req)
	}
	return s.continuation(ctx, req)
}

// bootstrap generates lineup, intro and episode 1, renders both audio
// artifacts, then persists everything in one transaction. Nothing is stored
// until every step has succeeded.
func (s *Service) bootstrap(ctx context.Context, req Request) (*Result, error) {
	lineup, err := s.generator.GenerateLineup(ctx, req.Topic, req.Language)
	if err != nil {
		return nil, err
	}

	introScript, err := s.generator.GenerateIntro(ctx, req.Topic, lineup, req.Language)
	if err != nil {
		return nil, err
	}
	introPath, err := s.renderer.Render(ctx, introScript, narration.IntroKey(req.UserID))
	if err != nil {
		return nil, err
	}

	script, err := s.generator.GenerateEpisode(ctx, scripts.EpisodeRequest{
		Topic:         req.Topic,
		EpisodeIndex:  1,
		Lineup:        lineup,
		PriorSegments: []string{introScript},
		Language:      req.Language,
	})
	if err != nil {
		s.discardArtifacts(ctx, req.UserID, introPath)
		return nil, err
	}
	audioPath, err := s.renderer.Render(ctx, script, narration.EpisodeKey(req.UserID, 1))
	if err != nil {
		s.discardArtifacts(ctx, req.UserID, introPath)
		return nil, err
	}

	_, err = s.store.Create(ctx, podcasts.CreateParams{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Topic:       req.Topic,
		Language:    req.Language,
		Lineup:      lineup,
		IntroPath:   introPath,
		FirstScript: script,
		FirstAudio:  audioPath,
	})
	if err != nil {
		s.discardArtifacts(ctx, req.UserID, introPath, audioPath)
		if errors.Is(err, podcasts.ErrPodcastExists) {
			return nil, apperrors.Newf(apperrors.ErrCodePodcastExists,
				"user %s already has a podcast; clear it to start over", req.UserID)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "persisting bootstrap result")
	}

	log.Printf("[INFO] Bootstrapped podcast for user %s: topic %q, language %q", req.UserID, req.Topic, req.Language)
	return &Result{
		UserID:       req.UserID,
		EpisodeIndex: 1,
		Script:       script,
		AudioPath:    audioPath,
		IntroPath:    introPath,
		Complete:     s.episodeCount == 1,
	}, nil
}

// continuation generates the next episode against the stored lineup and the
// transcript so far. The database status claim guards against runs from
// other processes; the in-process lock already covers this one.
func (s *Service) continuation(ctx context.Context, req Request) (*Result, error) {
	if err := s.store.ClaimGeneration(ctx, req.UserID); err != nil {
		switch {
		case podcasts.IsNotFound(err):
			return nil, apperrors.RecordAbsent(req.UserID)
		case errors.Is(err, podcasts.ErrGenerationInProgress):
			return nil, apperrors.Newf(apperrors.ErrCodeGenerationBusy,
				"a generation run is already in progress for user %s", req.UserID)
		default:
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "claiming generation")
		}
	}
	defer func() {
		if err := s.store.ReleaseGeneration(context.WithoutCancel(ctx), req.UserID); err != nil {
			log.Printf("[ERROR] Failed to release generation claim for user %s: %v", req.UserID, err)
		}
	}()

	podcast, err := s.store.GetByUserID(ctx, req.UserID)
	if err != nil {
		if podcasts.IsNotFound(err) {
			return nil, apperrors.RecordAbsent(req.UserID)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "loading podcast")
	}
	if expected := podcast.CurrentIndex + 1; req.EpisodeIndex != expected {
		return nil, apperrors.SequenceViolation(req.EpisodeIndex, expected)
	}

	prior := make([]string, 0, len(podcast.Segments))
	for _, segment := range podcast.Segments {
		prior = append(prior, segment.Script)
	}

	script, err := s.generator.GenerateEpisode(ctx, scripts.EpisodeRequest{
		Topic:         podcast.Topic,
		EpisodeIndex:  req.EpisodeIndex,
		Lineup:        podcast.Lineup,
		PriorSegments: prior,
		Language:      podcast.Language,
	})
	if err != nil {
		return nil, err
	}

	audioPath, err := s.renderer.Render(ctx, script, narration.EpisodeKey(req.UserID, req.EpisodeIndex))
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendEpisode(ctx, req.UserID, req.EpisodeIndex, script, audioPath); err != nil {
		s.discardArtifacts(ctx, req.UserID, audioPath)
		var seqErr podcasts.SequenceError
		if errors.As(err, &seqErr) {
			return nil, apperrors.SequenceViolation(seqErr.Requested, seqErr.Expected)
		}
		if podcasts.IsNotFound(err) {
			return nil, apperrors.RecordAbsent(req.UserID)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "persisting episode")
	}

	log.Printf("[INFO] Generated episode %d for user %s", req.EpisodeIndex, req.UserID)
	return &Result{
		UserID:       req.UserID,
		EpisodeIndex: req.EpisodeIndex,
		Script:       script,
		AudioPath:    audioPath,
		Complete:     req.EpisodeIndex >= s.episodeCount,
	}, nil
}

// discardArtifacts removes audio rendered during a run that will not be
// persisted. Failures are logged only; an orphaned file is harmless and gets
// overwritten on the next attempt.
func (s *Service) discardArtifacts(ctx context.Context, userID string, locations ...string) {
	for _, location := range locations {
		if location == "" {
			continue
		}
		if err := s.renderer.DeleteArtifact(context.WithoutCancel(ctx), location); err != nil {
			log.Printf("[WARN] Failed to discard artifact %s for user %s: %v", location, userID, err)
		}
	}
}
