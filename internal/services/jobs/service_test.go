package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lisapod/lisapod-api/internal/models"
)

func setupTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}))

	return NewService(NewRepository(db)), db
}

func testPayload(userID string, index int) models.GenerationPayload {
	return models.GenerationPayload{
		UserID:       userID,
		Topic:        "ocean life",
		Language:     "en",
		EpisodeIndex: index,
	}
}

func TestEnqueueUnique(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	job, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)
	assert.Equal(t, "user-1", job.UniqueKey)
	assert.Equal(t, 1, job.Payload.Data().EpisodeIndex)
}

func TestEnqueueUnique_ReturnsActiveJob(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	first, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)

	second, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestEnqueueUnique_NewJobAfterTerminal(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	first, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)

	claimed, err := svc.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	require.Equal(t, first.ID, claimed.ID)
	require.NoError(t, svc.CompleteJob(ctx, claimed.ID, &models.GenerationResult{
		UserID:       "user-1",
		EpisodeIndex: 1,
		Script:       "script",
		AudioPath:    "user-1/episode_1.mp3",
	}))

	second, err := svc.EnqueueUnique(ctx, testPayload("user-1", 2), "api")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateJobUnique_SingleInsertPerKey(t *testing.T) {
	_, db := setupTestService(t)
	repo := NewRepository(db)
	ctx := context.Background()

	newJob := func() *models.Job {
		return &models.Job{
			Type:      models.JobTypeEpisodeGeneration,
			Status:    models.JobStatusPending,
			UniqueKey: "user-1",
		}
	}

	first, created, err := repo.CreateJobUnique(ctx, newJob())
	require.NoError(t, err)
	assert.True(t, created)

	// The losing enqueue gets the winner's job, not a second row.
	second, created, err := repo.CreateJobUnique(ctx, newJob())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Where("unique_key = ?", "user-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnqueueUnique_RequiresUserID(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.EnqueueUnique(context.Background(), models.GenerationPayload{EpisodeIndex: 1}, "api")
	assert.Error(t, err)
}

func TestClaimNextJob_OldestFirst(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	first, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)
	second, err := svc.EnqueueUnique(ctx, testPayload("user-2", 1), "api")
	require.NoError(t, err)

	// Force distinct creation times; sqlite timestamps can collide.
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)

	claimed, err := svc.ClaimNextJob(ctx, "worker-1", []models.JobType{models.JobTypeEpisodeGeneration})
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, models.JobStatusProcessing, claimed.Status)
	assert.Equal(t, "worker-1", claimed.WorkerID)
	require.NotNil(t, claimed.StartedAt)

	claimed, err = svc.ClaimNextJob(ctx, "worker-2", nil)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestCompleteJob(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	job, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)

	result := &models.GenerationResult{
		UserID:       "user-1",
		EpisodeIndex: 1,
		Script:       "script",
		AudioPath:    "user-1/episode_1.mp3",
		IntroPath:    "user-1/intro.mp3",
	}
	require.NoError(t, svc.CompleteJob(ctx, job.ID, result))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, got.Status)
	assert.True(t, got.IsTerminal())
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.Result.Data())
	assert.Equal(t, "user-1/episode_1.mp3", got.Result.Data().AudioPath)
}

func TestFailJob_IsTerminal(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	job, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)

	require.NoError(t, svc.FailJob(ctx, job.ID, "GENERATION_FAILED", assert.AnError))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, got.Status)
	assert.Equal(t, "GENERATION_FAILED", got.ErrorCode)
	assert.True(t, got.IsTerminal())

	// Failed jobs are never picked up again.
	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestListJobsByStatus(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	failed, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)
	require.NoError(t, svc.FailJob(ctx, failed.ID, "RENDER_FAILED", assert.AnError))

	_, err = svc.EnqueueUnique(ctx, testPayload("user-2", 1), "api")
	require.NoError(t, err)

	failedJobs, err := svc.ListJobsByStatus(ctx, models.JobStatusFailed, 10)
	require.NoError(t, err)
	require.Len(t, failedJobs, 1)
	assert.Equal(t, failed.ID, failedJobs[0].ID)

	pendingJobs, err := svc.ListJobsByStatus(ctx, models.JobStatusPending, 10)
	require.NoError(t, err)
	assert.Len(t, pendingJobs, 1)

	completedJobs, err := svc.ListJobsByStatus(ctx, models.JobStatusCompleted, 10)
	require.NoError(t, err)
	assert.Empty(t, completedJobs)
}

func TestGetJob_NotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.GetJob(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCleanupOldJobs(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	job, err := svc.EnqueueUnique(ctx, testPayload("user-1", 1), "api")
	require.NoError(t, err)
	require.NoError(t, svc.FailJob(ctx, job.ID, "GENERATION_FAILED", assert.AnError))

	// Age the job past the retention window.
	old := time.Now().AddDate(0, 0, -10)
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", job.ID).Update("created_at", old).Error)

	// Pending jobs survive cleanup regardless of age.
	pending, err := svc.EnqueueUnique(ctx, testPayload("user-2", 1), "api")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", pending.ID).Update("created_at", old).Error)

	deleted, err := svc.CleanupOldJobs(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = svc.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = svc.GetJob(ctx, pending.ID)
	assert.NoError(t, err)

	_, err = svc.CleanupOldJobs(ctx, 0)
	assert.Error(t, err)
}
