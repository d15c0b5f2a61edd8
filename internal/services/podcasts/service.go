package podcasts

import (
	"context"
	"fmt"
	"log"

	"github.com/lisapod/lisapod-api/internal/models"
	"github.com/lisapod/lisapod-api/internal/services/narration"
)

type service struct {
	repo     Repository
	renderer narration.Renderer
}

// NewService creates a progression store service. The renderer is used for
// best-effort artifact cleanup and admin artifact checks.
func NewService(repo Repository, renderer narration.Renderer) Service {
	return &service{repo: repo, renderer: renderer}
}

// Create persists the full bootstrap result: user row, podcast row and the
// first episode segment. CurrentIndex starts at 1 because episode 1 is part
// of the bootstrap.
func (s *service) Create(ctx context.Context, params CreateParams) (*models.Podcast, error) {
	if params.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if params.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if params.Lineup == "" {
		return nil, fmt.Errorf("lineup is required")
	}

	if err := s.repo.EnsureUser(ctx, params.UserID, params.DisplayName); err != nil {
		return nil, err
	}

	podcast := &models.Podcast{
		UserID:       params.UserID,
		Topic:        params.Topic,
		Language:     params.Language,
		Lineup:       params.Lineup,
		CurrentIndex: 1,
		Status:       models.PodcastStatusIdle,
		IntroPath:    params.IntroPath,
		Segments: []models.EpisodeSegment{
			{Index: 1, Script: params.FirstScript, AudioPath: params.FirstAudio},
		},
	}
	if err := s.repo.CreatePodcast(ctx, podcast); err != nil {
		return nil, err
	}
	return podcast, nil
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*models.Podcast, error) {
	return s.repo.GetPodcastByUserID(ctx, userID)
}

func (s *service) GetLineup(ctx context.Context, userID string) (string, error) {
	podcast, err := s.repo.GetPodcastByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return podcast.Lineup, nil
}

func (s *service) GetSegments(ctx context.Context, userID string) ([]models.EpisodeSegment, error) {
	podcast, err := s.repo.GetPodcastByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return podcast.Segments, nil
}

func (s *service) Transcript(ctx context.Context, userID string) (string, error) {
	segments, err := s.GetSegments(ctx, userID)
	if err != nil {
		return "", err
	}
	return models.Transcript(segments), nil
}

func (s *service) AppendEpisode(ctx context.Context, userID string, index int, script, audioPath string) error {
	return s.repo.AppendEpisode(ctx, userID, index, script, audioPath)
}

// Clear deletes the stored record, then best-effort deletes the artifacts the
// record referenced. A failed file deletion is logged, not surfaced: the
// record is already gone and the user can start over.
func (s *service) Clear(ctx context.Context, userID string) error {
	artifacts, err := s.repo.DeletePodcast(ctx, userID)
	if err != nil {
		return err
	}
	for _, location := range artifacts {
		if err := s.renderer.DeleteArtifact(ctx, location); err != nil {
			log.Printf("[WARN] Failed to delete artifact %s for user %s: %v", location, userID, err)
		}
	}
	return nil
}

func (s *service) ClaimGeneration(ctx context.Context, userID string) error {
	return s.repo.ClaimGeneration(ctx, userID)
}

func (s *service) ReleaseGeneration(ctx context.Context, userID string) error {
	return s.repo.ReleaseGeneration(ctx, userID)
}

func (s *service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	return s.repo.ListUsers(ctx)
}

// Describe builds the admin view of a user's podcast, checking each artifact
// against storage.
func (s *service) Describe(ctx context.Context, userID string) (*PodcastView, error) {
	podcast, err := s.repo.GetPodcastByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &PodcastView{
		UserID:       podcast.UserID,
		Topic:        podcast.Topic,
		Language:     podcast.Language,
		CurrentIndex: podcast.CurrentIndex,
		Status:       string(podcast.Status),
		CreatedAt:    podcast.CreatedAt,
	}

	if podcast.IntroPath != "" {
		view.Artifacts = append(view.Artifacts, s.artifactView(ctx, "intro", podcast.IntroPath))
	}
	for _, segment := range podcast.Segments {
		name := fmt.Sprintf("episode_%d", segment.Index)
		view.Artifacts = append(view.Artifacts, s.artifactView(ctx, name, segment.AudioPath))
	}
	return view, nil
}

func (s *service) artifactView(ctx context.Context, name, location string) ArtifactView {
	exists, err := s.renderer.ArtifactExists(ctx, location)
	if err != nil {
		log.Printf("[WARN] Failed to check artifact %s: %v", location, err)
	}
	return ArtifactView{Name: name, Location: location, Exists: exists}
}

func (s *service) Stats(ctx context.Context) (*UsageStats, error) {
	return s.repo.Stats(ctx)
}
