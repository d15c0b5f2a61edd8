package podcasts

import (
	"context"
	"time"

	"github.com/lisapod/lisapod-api/internal/models"
)

// Repository defines the data access interface for the progression store.
type Repository interface {
	// Users
	EnsureUser(ctx context.Context, userID, displayName string) error
	ListUsers(ctx context.Context) ([]UserSummary, error)

	// Podcast lifecycle
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	GetPodcastByUserID(ctx context.Context, userID string) (*models.Podcast, error)
	AppendEpisode(ctx context.Context, userID string, index int, script, audioPath string) error
	DeletePodcast(ctx context.Context, userID string) ([]string, error)

	// Single-writer guard
	ClaimGeneration(ctx context.Context, userID string) error
	ReleaseGeneration(ctx context.Context, userID string) error

	// Aggregates
	Stats(ctx context.Context) (*UsageStats, error)
}

// Service defines the business logic interface over the progression store.
type Service interface {
	// Bootstrap persistence: user row, podcast row and the first segment
	// land in one transaction.
	Create(ctx context.Context, params CreateParams) (*models.Podcast, error)

	// Reads. Absence of a record surfaces as ErrPodcastNotFound and is
	// distinguishable from an empty-but-present record.
	GetByUserID(ctx context.Context, userID string) (*models.Podcast, error)
	GetLineup(ctx context.Context, userID string) (string, error)
	GetSegments(ctx context.Context, userID string) ([]models.EpisodeSegment, error)

	// Transcript joins the stored segment scripts in episode order. It only
	// ever grows as episodes are appended.
	Transcript(ctx context.Context, userID string) (string, error)

	// AppendEpisode is the sole mutator after creation: the segment list
	// and the current index advance together or not at all.
	AppendEpisode(ctx context.Context, userID string, index int, script, audioPath string) error

	// Clear deletes the record and best-effort deletes its artifacts.
	Clear(ctx context.Context, userID string) error

	// Single-writer guard, backed by the podcast row's status column.
	ClaimGeneration(ctx context.Context, userID string) error
	ReleaseGeneration(ctx context.Context, userID string) error

	// Admin read surface
	ListUsers(ctx context.Context) ([]UserSummary, error)
	Describe(ctx context.Context, userID string) (*PodcastView, error)
	Stats(ctx context.Context) (*UsageStats, error)
}

// CreateParams carries everything the bootstrap path persists at once.
type CreateParams struct {
	UserID      string
	DisplayName string
	Topic       string
	Language    string
	Lineup      string
	IntroPath   string
	FirstScript string
	FirstAudio  string
}

// UserSummary is one row of the admin user listing.
type UserSummary struct {
	UserID       string    `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	PodcastCount int64     `json:"podcast_count"`
}

// ArtifactView pairs an artifact location with its existence on storage.
type ArtifactView struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Exists   bool   `json:"exists"`
}

// PodcastView is the admin view of one user's podcast.
type PodcastView struct {
	UserID       string         `json:"user_id"`
	Topic        string         `json:"topic"`
	Language     string         `json:"language"`
	CurrentIndex int            `json:"current_index"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	Artifacts    []ArtifactView `json:"artifacts"`
}

// UsageStats aggregates bot usage for the admin surface.
type UsageStats struct {
	TotalUsers         int64            `json:"total_users"`
	TotalPodcasts      int64            `json:"total_podcasts"`
	PodcastsByLanguage map[string]int64 `json:"podcasts_by_language"`
	PodcastsToday      int64            `json:"podcasts_today"`
}
