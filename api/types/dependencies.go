package types

import (
	"github.com/lisapod/lisapod-api/internal/database"
	"github.com/lisapod/lisapod-api/internal/services/jobs"
	"github.com/lisapod/lisapod-api/internal/services/orchestrator"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
	"github.com/lisapod/lisapod-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	PodcastService podcasts.Service
	Orchestrator   orchestrator.Orchestrator
	JobService     jobs.Service
	WorkerPool     *workers.WorkerPool
}
