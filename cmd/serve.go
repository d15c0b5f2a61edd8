package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lisapod/lisapod-api/api"
	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/database"
	"github.com/lisapod/lisapod-api/internal/services/jobs"
	"github.com/lisapod/lisapod-api/internal/services/narration"
	"github.com/lisapod/lisapod-api/internal/services/orchestrator"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
	"github.com/lisapod/lisapod-api/internal/services/scripts"
	"github.com/lisapod/lisapod-api/internal/services/workers"
	"github.com/lisapod/lisapod-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Lisapod API server with the configured settings.

The server accepts episode generation requests, runs them on background
workers, and serves the stored podcasts and their generation jobs.

Example:
  lisapod-api serve
  lisapod-api serve --port 9090
  lisapod-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	host := serverHost
	if host == "" {
		host = cfg.Server.Host
	}
	port := serverPort
	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	deps, pool, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", host, port))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("starting worker pool: %w", err)
	}

	cleanupStop := make(chan struct{})
	go runJobCleanup(deps.JobService, cfg.Processing.JobRetentionDays, cleanupStop)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", host, port)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	close(cleanupStop)
	pool.Stop()
	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires the generation pipeline: scripts, narration,
// progression store, orchestrator, job queue and workers.
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, *workers.WorkerPool, error) {
	generator := scripts.NewClient(scripts.Config{
		APIKey:        cfg.Generation.OpenAIAPIKey,
		BaseURL:       cfg.Generation.BaseURL,
		Model:         cfg.Generation.Model,
		EpisodeCount:  cfg.Generation.EpisodeCount,
		ScriptCharCap: cfg.Generation.ScriptCharCap,
	})

	storage, err := narration.NewFilesystemStorage(cfg.Storage.EpisodesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing artifact storage: %w", err)
	}
	speech := narration.NewOpenAISpeech(narration.SpeechConfig{
		APIKey:  cfg.Generation.OpenAIAPIKey,
		BaseURL: cfg.Generation.BaseURL,
		Model:   cfg.Speech.Model,
		Voice:   cfg.Speech.Voice,
		Format:  cfg.Speech.Format,
	})
	renderer := narration.NewService(speech, storage, cfg.Speech.Format)

	podcastService := podcasts.NewService(podcasts.NewRepository(db.DB), renderer)
	orch := orchestrator.NewService(generator, renderer, podcastService, cfg.Generation.EpisodeCount)
	jobService := jobs.NewService(jobs.NewRepository(db.DB))

	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	pool.RegisterProcessor(workers.NewGenerationProcessor(orch, jobService))

	deps := &types.Dependencies{
		DB:             db,
		PodcastService: podcastService,
		Orchestrator:   orch,
		JobService:     jobService,
		WorkerPool:     pool,
	}
	return deps, pool, nil
}

// runJobCleanup deletes terminal jobs past the retention window once a day.
func runJobCleanup(jobService jobs.Service, retentionDays int, stop chan struct{}) {
	if retentionDays <= 0 {
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if _, err := jobService.CleanupOldJobs(ctx, retentionDays); err != nil {
			log.Printf("[WARN] Job cleanup failed: %v", err)
		}
		cancel()

		select {
		case <-ticker.C:
		case <-stop:
			return
		}
	}
}
