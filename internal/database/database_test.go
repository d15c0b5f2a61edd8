package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisapod/lisapod-api/internal/models"
)

func TestInitialize_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "podcasts.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestMigrate(t *testing.T) {
	db, err := Initialize(filepath.Join(t.TempDir(), "podcasts.db"), false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())

	for _, model := range []any{&models.User{}, &models.Podcast{}, &models.EpisodeSegment{}, &models.Job{}} {
		assert.True(t, db.DB.Migrator().HasTable(model))
	}
}

func TestHealthCheck_NotInitialized(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
