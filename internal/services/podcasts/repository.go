package podcasts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lisapod/lisapod-api/internal/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed progression store repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// EnsureUser creates the user row on first interaction; later calls are no-ops.
func (r *repository) EnsureUser(ctx context.Context, userID, displayName string) error {
	var user models.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking user: %w", err)
	}

	user = models.User{UserID: userID, DisplayName: displayName}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// ListUsers returns all users with their podcast counts.
func (r *repository) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var summaries []UserSummary
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.user_id, users.display_name, users.created_at, COUNT(podcasts.id) AS podcast_count").
		Joins("LEFT JOIN podcasts ON podcasts.user_id = users.user_id AND podcasts.deleted_at IS NULL").
		Group("users.user_id, users.display_name, users.created_at").
		Order("users.created_at").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return summaries, nil
}

// CreatePodcast persists the podcast row together with its segments in one
// transaction. Fails if the user already has an active podcast.
func (r *repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Podcast{}).Where("user_id = ?", podcast.UserID).Count(&count).Error; err != nil {
			return fmt.Errorf("checking existing podcast: %w", err)
		}
		if count > 0 {
			return ErrPodcastExists
		}
		if err := tx.Create(podcast).Error; err != nil {
			return fmt.Errorf("creating podcast: %w", err)
		}
		return nil
	})
}

// GetPodcastByUserID retrieves a user's podcast with segments in episode order.
func (r *repository) GetPodcastByUserID(ctx context.Context, userID string) (*models.Podcast, error) {
	var podcast models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("episode_index ASC")
		}).
		Where("user_id = ?", userID).
		First(&podcast).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// AppendEpisode extends the segment list and advances the current index in a
// single transaction. A reader never observes one without the other.
func (r *repository) AppendEpisode(ctx context.Context, userID string, index int, script, audioPath string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var podcast models.Podcast
		if err := tx.Where("user_id = ?", userID).First(&podcast).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPodcastNotFound
			}
			return fmt.Errorf("getting podcast: %w", err)
		}

		if index != podcast.CurrentIndex+1 {
			return SequenceError{Requested: index, Expected: podcast.CurrentIndex + 1}
		}

		segment := models.EpisodeSegment{
			PodcastID: podcast.ID,
			Index:     index,
			Script:    script,
			AudioPath: audioPath,
		}
		if err := tx.Create(&segment).Error; err != nil {
			return fmt.Errorf("creating segment: %w", err)
		}

		result := tx.Model(&models.Podcast{}).
			Where("id = ? AND current_index = ?", podcast.ID, podcast.CurrentIndex).
			Update("current_index", index)
		if result.Error != nil {
			return fmt.Errorf("advancing current index: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("concurrent modification of podcast %d", podcast.ID)
		}
		return nil
	})
}

// DeletePodcast removes the record and its segments, returning every
// referenced artifact location for best-effort cleanup by the caller.
func (r *repository) DeletePodcast(ctx context.Context, userID string) ([]string, error) {
	var artifacts []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var podcast models.Podcast
		if err := tx.Preload("Segments").Where("user_id = ?", userID).First(&podcast).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPodcastNotFound
			}
			return fmt.Errorf("getting podcast: %w", err)
		}

		if podcast.IntroPath != "" {
			artifacts = append(artifacts, podcast.IntroPath)
		}
		for _, segment := range podcast.Segments {
			artifacts = append(artifacts, segment.AudioPath)
		}

		// Hard delete: a soft-deleted row would keep holding the unique
		// user_id index and block the user's next bootstrap.
		if err := tx.Unscoped().Where("podcast_id = ?", podcast.ID).Delete(&models.EpisodeSegment{}).Error; err != nil {
			return fmt.Errorf("deleting segments: %w", err)
		}
		if err := tx.Unscoped().Delete(&podcast).Error; err != nil {
			return fmt.Errorf("deleting podcast: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// ClaimGeneration flips the podcast from idle to generating. The conditional
// update is the cross-connection single-writer guard.
func (r *repository) ClaimGeneration(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("user_id = ? AND status = ?", userID, models.PodcastStatusIdle).
		Update("status", models.PodcastStatusGenerating)
	if result.Error != nil {
		return fmt.Errorf("claiming generation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either no record or another run holds the claim.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("claiming generation: %w", err)
		}
		if count == 0 {
			return ErrPodcastNotFound
		}
		return ErrGenerationInProgress
	}
	return nil
}

// ReleaseGeneration returns the podcast to idle.
func (r *repository) ReleaseGeneration(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("user_id = ?", userID).
		Update("status", models.PodcastStatusIdle).Error
	if err != nil {
		return fmt.Errorf("releasing generation: %w", err)
	}
	return nil
}

// Stats aggregates totals, counts by language and podcasts created today.
func (r *repository) Stats(ctx context.Context) (*UsageStats, error) {
	stats := &UsageStats{PodcastsByLanguage: make(map[string]int64)}

	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Podcast{}).Count(&stats.TotalPodcasts).Error; err != nil {
		return nil, fmt.Errorf("counting podcasts: %w", err)
	}

	type languageCount struct {
		Language string
		Count    int64
	}
	var byLanguage []languageCount
	err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Select("language, COUNT(*) AS count").
		Group("language").
		Scan(&byLanguage).Error
	if err != nil {
		return nil, fmt.Errorf("counting podcasts by language: %w", err)
	}
	for _, lc := range byLanguage {
		stats.PodcastsByLanguage[lc.Language] = lc.Count
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	err = r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.PodcastsToday).Error
	if err != nil {
		return nil, fmt.Errorf("counting podcasts today: %w", err)
	}

	return stats, nil
}
