package orchestrator

import "context"

// Request identifies one episode generation attempt for one user.
type Request struct {
	UserID       string
	DisplayName  string
	Topic        string
	Language     string
	EpisodeIndex int
}

// Result is the outcome of a successful generation: the persisted script and
// artifact locations, plus whether the podcast is now complete.
type Result struct {
	UserID       string `json:"user_id"`
	EpisodeIndex int    `json:"episode_index"`
	Script       string `json:"script"`
	AudioPath    string `json:"audio_path"`
	IntroPath    string `json:"intro_path,omitempty"`
	Complete     bool   `json:"complete"`
}

// Orchestrator drives the episode progression state machine. Validate is the
// synchronous pre-flight check run before a request is queued; GenerateEpisode
// performs the full generation run and persists the outcome.
type Orchestrator interface {
	Validate(ctx context.Context, req Request) error
	GenerateEpisode(ctx context.Context, req Request) (*Result, error)
}
