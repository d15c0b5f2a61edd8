package orchestrator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lisapod/lisapod-api/internal/models"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
	"github.com/lisapod/lisapod-api/internal/services/scripts"
	apperrors "github.com/lisapod/lisapod-api/pkg/errors"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateLineup(ctx context.Context, topic, language string) (string, error) {
	args := m.Called(ctx, topic, language)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) GenerateIntro(ctx context.Context, topic, lineup, language string) (string, error) {
	args := m.Called(ctx, topic, lineup, language)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) GenerateEpisode(ctx context.Context, req scripts.EpisodeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, script, destinationKey string) (string, error) {
	args := m.Called(ctx, script, destinationKey)
	return args.String(0), args.Error(1)
}

func (m *mockRenderer) ArtifactExists(ctx context.Context, location string) (bool, error) {
	args := m.Called(ctx, location)
	return args.Bool(0), args.Error(1)
}

func (m *mockRenderer) DeleteArtifact(ctx context.Context, location string) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

type testHarness struct {
	svc       *Service
	generator *mockGenerator
	renderer  *mockRenderer
	store     podcasts.Service
	db        *gorm.DB
}

func setupHarness(t *testing.T, episodeCount int) *testHarness {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Podcast{}, &models.EpisodeSegment{}))

	generator := new(mockGenerator)
	renderer := new(mockRenderer)
	store := podcasts.NewService(podcasts.NewRepository(db), renderer)
	return &testHarness{
		svc:       NewService(generator, renderer, store, episodeCount),
		generator: generator,
		renderer:  renderer,
		store:     store,
		db:        db,
	}
}

const testLineup = "Ocean Life: Secrets of the Deep\nEpisode 1: Tides\nEpisode 2: Reefs\nEpisode 3: Trenches"

// seedPodcast stores a bootstrapped podcast without going through generation.
func (h *testHarness) seedPodcast(t *testing.T, userID string) {
	t.Helper()
	_, err := h.store.Create(context.Background(), podcasts.CreateParams{
		UserID:      userID,
		DisplayName: "Alice",
		Topic:       "ocean life",
		Language:    "en",
		Lineup:      testLineup,
		IntroPath:   userID + "/intro.mp3",
		FirstScript: "Episode one script.",
		FirstAudio:  userID + "/episode_1.mp3",
	})
	require.NoError(t, err)
}

func TestGenerateEpisode_Bootstrap(t *testing.T) {
	h := setupHarness(t, 3)
	ctx := context.Background()

	h.generator.On("GenerateLineup", mock.Anything, "ocean life", "en").Return(testLineup, nil)
	h.generator.On("GenerateIntro", mock.Anything, "ocean life", testLineup, "en").Return("Intro script.", nil)
	h.generator.On("GenerateEpisode", mock.Anything, mock.MatchedBy(func(req scripts.EpisodeRequest) bool {
		return req.EpisodeIndex == 1 &&
			req.Lineup == testLineup &&
			len(req.PriorSegments) == 1 &&
			req.PriorSegments[0] == "Intro script."
	})).Return("Episode one script.", nil)
	h.renderer.On("Render", mock.Anything, "Intro script.", "user-1/intro").Return("user-1/intro.mp3", nil)
	h.renderer.On("Render", mock.Anything, "Episode one script.", "user-1/episode_1").Return("user-1/episode_1.mp3", nil)

	result, err := h.svc.GenerateEpisode(ctx, Request{
		UserID:       "user-1",
		DisplayName:  "Alice",
		Topic:        "ocean life",
		Language:     "en",
		EpisodeIndex: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.EpisodeIndex)
	assert.Equal(t, "user-1/intro.mp3", result.IntroPath)
	assert.Equal(t, "user-1/episode_1.mp3", result.AudioPath)
	assert.False(t, result.Complete)

	podcast, err := h.store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, podcast.CurrentIndex)
	assert.Equal(t, testLineup, podcast.Lineup)
	assert.Equal(t, models.PodcastStatusIdle, podcast.Status)
}

func TestGenerateEpisode_Bootstrap_PodcastExists(t *testing.T) {
	h := setupHarness(t, 3)
	h.seedPodcast(t, "user-1")

	_, err := h.svc.GenerateEpisode(context.Background(), Request{
		UserID:       "user-1",
		Topic:        "something new",
		EpisodeIndex: 1,
	})
	assert.Equal(t, apperrors.ErrCodePodcastExists, apperrors.GetCode(err))
	h.generator.AssertNotCalled(t, "GenerateLineup", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateEpisode_Bootstrap_NothingPersistedOnFailure(t *testing.T) {
	h := setupHarness(t, 3)
	ctx := context.Background()

	h.generator.On("GenerateLineup", mock.Anything, "ocean life", "en").Return(testLineup, nil)
	h.generator.On("GenerateIntro", mock.Anything, "ocean life", testLineup, "en").Return("Intro script.", nil)
	h.renderer.On("Render", mock.Anything, "Intro script.", "user-1/intro").Return("user-1/intro.mp3", nil)
	h.generator.On("GenerateEpisode", mock.Anything, mock.Anything).
		Return("", apperrors.GenerationFailed("episode script", assert.AnError))
	h.renderer.On("DeleteArtifact", mock.Anything, "user-1/intro.mp3").Return(nil)

	_, err := h.svc.GenerateEpisode(ctx, Request{
		UserID:       "user-1",
		Topic:        "ocean life",
		Language:     "en",
		EpisodeIndex: 1,
	})
	assert.Equal(t, apperrors.ErrCodeGenerationFailed, apperrors.GetCode(err))

	// No trace of the failed run remains.
	_, err = h.store.GetByUserID(ctx, "user-1")
	assert.True(t, podcasts.IsNotFound(err))
	h.renderer.AssertCalled(t, "DeleteArtifact", mock.Anything, "user-1/intro.mp3")
}

func TestGenerateEpisode_Continuation(t *testing.T) {
	h := setupHarness(t, 3)
	ctx := context.Background()
	h.seedPodcast(t, "user-1")

	h.generator.On("GenerateEpisode", mock.Anything, mock.MatchedBy(func(req scripts.EpisodeRequest) bool {
		return req.EpisodeIndex == 2 &&
			req.Topic == "ocean life" &&
			len(req.PriorSegments) == 1 &&
			req.PriorSegments[0] == "Episode one script."
	})).Return("Episode two script.", nil)
	h.renderer.On("Render", mock.Anything, "Episode two script.", "user-1/episode_2").Return("user-1/episode_2.mp3", nil)

	result, err := h.svc.GenerateEpisode(ctx, Request{UserID: "user-1", EpisodeIndex: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.EpisodeIndex)
	assert.False(t, result.Complete)

	podcast, err := h.store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, podcast.CurrentIndex)
	require.Len(t, podcast.Segments, 2)
	assert.Equal(t, models.PodcastStatusIdle, podcast.Status)
}

func TestGenerateEpisode_FinalEpisodeMarksComplete(t *testing.T) {
	h := setupHarness(t, 2)
	ctx := context.Background()
	h.seedPodcast(t, "user-1")

	h.generator.On("GenerateEpisode", mock.Anything, mock.Anything).Return("Episode two script.", nil)
	h.renderer.On("Render", mock.Anything, mock.Anything, "user-1/episode_2").Return("user-1/episode_2.mp3", nil)

	result, err := h.svc.GenerateEpisode(ctx, Request{UserID: "user-1", EpisodeIndex: 2})
	require.NoError(t, err)
	assert.True(t, result.Complete)

	// The completed podcast rejects further requests.
	_, err = h.svc.GenerateEpisode(ctx, Request{UserID: "user-1", EpisodeIndex: 3})
	assert.Equal(t, apperrors.ErrCodeSequenceViolation, apperrors.GetCode(err))
}

func TestGenerateEpisode_SequenceViolation(t *testing.T) {
	h := setupHarness(t, 3)
	h.seedPodcast(t, "user-1")

	for _, index := range []int{3, 1} {
		_, err := h.svc.GenerateEpisode(context.Background(), Request{
			UserID:       "user-1",
			Topic:        "ocean life",
			EpisodeIndex: index,
		})
		code := apperrors.GetCode(err)
		if index == 1 {
			assert.Equal(t, apperrors.ErrCodePodcastExists, code)
		} else {
			assert.Equal(t, apperrors.ErrCodeSequenceViolation, code)
		}
	}
	h.generator.AssertNotCalled(t, "GenerateEpisode", mock.Anything, mock.Anything)
}

func TestGenerateEpisode_RecordAbsent(t *testing.T) {
	h := setupHarness(t, 3)

	_, err := h.svc.GenerateEpisode(context.Background(), Request{UserID: "missing", EpisodeIndex: 2})
	assert.Equal(t, apperrors.ErrCodeRecordAbsent, apperrors.GetCode(err))
}

func TestGenerateEpisode_RenderFailureLeavesIndexUnchanged(t *testing.T) {
	h := setupHarness(t, 3)
	ctx := context.Background()
	h.seedPodcast(t, "user-1")

	h.generator.On("GenerateEpisode", mock.Anything, mock.Anything).Return("Episode two script.", nil)
	h.renderer.On("Render", mock.Anything, mock.Anything, "user-1/episode_2").
		Return("", apperrors.RenderFailed("user-1/episode_2", assert.AnError))

	_, err := h.svc.GenerateEpisode(ctx, Request{UserID: "user-1", EpisodeIndex: 2})
	assert.Equal(t, apperrors.ErrCodeRenderFailed, apperrors.GetCode(err))

	podcast, err := h.store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, podcast.CurrentIndex)
	assert.Len(t, podcast.Segments, 1)
	assert.Equal(t, models.PodcastStatusIdle, podcast.Status)

	// The same index can be requested again once the failure is resolved.
	h.renderer.ExpectedCalls = nil
	h.renderer.On("Render", mock.Anything, mock.Anything, "user-1/episode_2").Return("user-1/episode_2.mp3", nil)
	result, err := h.svc.GenerateEpisode(ctx, Request{UserID: "user-1", EpisodeIndex: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.EpisodeIndex)
}

func TestGenerateEpisode_FullArc(t *testing.T) {
	h := setupHarness(t, 5)
	ctx := context.Background()

	h.generator.On("GenerateLineup", mock.Anything, "ocean life", "en").Return(testLineup, nil)
	h.generator.On("GenerateIntro", mock.Anything, "ocean life", testLineup, "en").Return("Intro script.", nil)
	h.renderer.On("Render", mock.Anything, "Intro script.", "user-1/intro").Return("user-1/intro.mp3", nil)
	for index := 1; index <= 5; index++ {
		index := index
		script := fmt.Sprintf("Script %d.", index)
		key := fmt.Sprintf("user-1/episode_%d", index)
		h.generator.On("GenerateEpisode", mock.Anything, mock.MatchedBy(func(req scripts.EpisodeRequest) bool {
			return req.EpisodeIndex == index
		})).Return(script, nil)
		h.renderer.On("Render", mock.Anything, script, key).Return(key+".mp3", nil)
	}

	result, err := h.svc.GenerateEpisode(ctx, Request{
		UserID:       "user-1",
		DisplayName:  "Alice",
		Topic:        "ocean life",
		Language:     "en",
		EpisodeIndex: 1,
	})
	require.NoError(t, err)
	require.False(t, result.Complete)

	for index := 2; index <= 5; index++ {
		result, err = h.svc.GenerateEpisode(ctx, Request{UserID: "user-1", EpisodeIndex: index})
		require.NoError(t, err)
		assert.Equal(t, index, result.EpisodeIndex)
		assert.Equal(t, index == 5, result.Complete)
	}

	podcast, err := h.store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, podcast.CurrentIndex)
	assert.True(t, podcast.IsComplete(5))
	assert.Equal(t, testLineup, podcast.Lineup)
	require.Len(t, podcast.Segments, 5)
	for i, segment := range podcast.Segments {
		assert.Equal(t, i+1, segment.Index)
	}

	transcript, err := h.store.Transcript(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Script 1.\nScript 2.\nScript 3.\nScript 4.\nScript 5.", transcript)
}

func TestValidate(t *testing.T) {
	h := setupHarness(t, 5)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      Request
		wantCode apperrors.ErrorCode
	}{
		{"missing user", Request{EpisodeIndex: 1, Topic: "x"}, apperrors.ErrCodeMissingField},
		{"zero index", Request{UserID: "u", EpisodeIndex: 0}, apperrors.ErrCodeInvalidInput},
		{"negative index", Request{UserID: "u", EpisodeIndex: -2}, apperrors.ErrCodeInvalidInput},
		{"beyond lineup", Request{UserID: "u", EpisodeIndex: 6}, apperrors.ErrCodeSequenceViolation},
		{"missing topic", Request{UserID: "u", EpisodeIndex: 1}, apperrors.ErrCodeMissingField},
		{"no record", Request{UserID: "u", EpisodeIndex: 2}, apperrors.ErrCodeRecordAbsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.svc.Validate(ctx, tt.req)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
		})
	}

	assert.NoError(t, h.svc.Validate(ctx, Request{UserID: "u", Topic: "ocean life", EpisodeIndex: 1}))
}

func TestValidate_GenerationBusy(t *testing.T) {
	h := setupHarness(t, 3)
	ctx := context.Background()
	h.seedPodcast(t, "user-1")

	err := h.db.Model(&models.Podcast{}).Where("user_id = ?", "user-1").
		Update("status", models.PodcastStatusGenerating).Error
	require.NoError(t, err)

	err = h.svc.Validate(ctx, Request{UserID: "user-1", EpisodeIndex: 2})
	assert.Equal(t, apperrors.ErrCodeGenerationBusy, apperrors.GetCode(err))
}

func TestUserLocks(t *testing.T) {
	locks := newUserLocks()

	assert.True(t, locks.TryAcquire("user-1"))
	assert.False(t, locks.TryAcquire("user-1"))
	assert.True(t, locks.TryAcquire("user-2"))

	locks.Release("user-1")
	assert.True(t, locks.TryAcquire("user-1"))
}
