package scripts

import (
	"context"
	"fmt"
	"log"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	apperrors "github.com/lisapod/lisapod-api/pkg/errors"
)

// Config holds the completion client settings.
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	EpisodeCount  int
	ScriptCharCap int
}

// Client implements Generator using the OpenAI chat completions API.
type Client struct {
	client        *openai.Client
	model         string
	episodeCount  int
	scriptCharCap int
}

var _ Generator = (*Client)(nil)

// NewClient creates an OpenAI-backed script generator.
func NewClient(cfg Config) *Client {
	// Failed completions surface to the caller untouched; retrying is the
	// caller's decision, so the SDK's automatic retries are disabled.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.EpisodeCount <= 0 {
		cfg.EpisodeCount = 5
	}
	if cfg.ScriptCharCap <= 0 {
		cfg.ScriptCharCap = 4000
	}

	return &Client{
		client:        &client,
		model:         cfg.Model,
		episodeCount:  cfg.EpisodeCount,
		scriptCharCap: cfg.ScriptCharCap,
	}
}

// GenerateLineup produces and validates the fixed episode lineup.
func (c *Client) GenerateLineup(ctx context.Context, topic, language string) (string, error) {
	lineup, err := c.complete(ctx, buildLineupPrompt(c.episodeCount, language), lineupUserMessage(topic))
	if err != nil {
		return "", apperrors.GenerationFailed("lineup", err)
	}

	if err := ValidateLineup(lineup, c.episodeCount); err != nil {
		log.Printf("[WARN] Rejecting malformed lineup: %v", err)
		return "", apperrors.GenerationFailed("lineup", err)
	}

	return lineup, nil
}

// GenerateIntro produces the spoken series intro from the lineup.
func (c *Client) GenerateIntro(ctx context.Context, topic, lineup, language string) (string, error) {
	script, err := c.complete(ctx, buildIntroPrompt(language), introUserMessage(topic, lineup))
	if err != nil {
		return "", apperrors.GenerationFailed("intro", err)
	}
	return script, nil
}

// GenerateEpisode produces the script for one episode, chained on the
// ordered prior segments.
func (c *Client) GenerateEpisode(ctx context.Context, req EpisodeRequest) (string, error) {
	script, err := c.complete(ctx, buildEpisodePrompt(req, c.scriptCharCap), episodeUserMessage(req.Topic, req.EpisodeIndex))
	if err != nil {
		return "", apperrors.GenerationFailed(fmt.Sprintf("episode %d", req.EpisodeIndex), err)
	}
	return script, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("chat completion returned empty content")
	}
	return content, nil
}
