package types

// GenerateEpisodeRequest is the body of a generation request. Topic is
// required for episode 1 and ignored afterwards; the stored podcast drives
// every later episode.
type GenerateEpisodeRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	DisplayName  string `json:"display_name"`
	Topic        string `json:"topic"`
	Language     string `json:"language"`
	EpisodeIndex int    `json:"episode_index" binding:"required"`
}
