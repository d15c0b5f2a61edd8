package scripts

import "context"

// EpisodeRequest carries everything a continuation episode needs: the fixed
// lineup plus the ordered scripts of every prior segment. Prior segments are
// passed as a list, not a pre-joined blob, so truncation or summarization
// policies can be added without changing this contract.
type EpisodeRequest struct {
	Topic         string
	EpisodeIndex  int
	Lineup        string
	PriorSegments []string
	Language      string
}

// Generator produces the three ordered content artifacts of a podcast:
// lineup, intro and episode scripts. Implementations call a remote
// text-completion service; errors are never retried locally.
type Generator interface {
	GenerateLineup(ctx context.Context, topic, language string) (string, error)
	GenerateIntro(ctx context.Context, topic, lineup, language string) (string, error)
	GenerateEpisode(ctx context.Context, req EpisodeRequest) (string, error)
}
