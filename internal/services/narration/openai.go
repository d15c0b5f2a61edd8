package narration

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// SpeechConfig holds the speech synthesis client settings.
type SpeechConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Voice   string
	Format  string
}

// OpenAISpeech implements SpeechClient using the OpenAI speech endpoint.
type OpenAISpeech struct {
	client *openai.Client
	model  string
	voice  string
	format string
}

var _ SpeechClient = (*OpenAISpeech)(nil)

// NewOpenAISpeech creates an OpenAI-backed speech client.
func NewOpenAISpeech(cfg SpeechConfig) *OpenAISpeech {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	if cfg.Model == "" {
		cfg.Model = "tts-1"
	}
	if cfg.Voice == "" {
		cfg.Voice = "alloy"
	}
	if cfg.Format == "" {
		cfg.Format = "mp3"
	}

	return &OpenAISpeech{
		client: &client,
		model:  cfg.Model,
		voice:  cfg.Voice,
		format: cfg.Format,
	}
}

// Synthesize renders the text to audio bytes.
func (s *OpenAISpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	res, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Voice:          openai.AudioSpeechNewParamsVoice(s.voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(s.format),
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer res.Body.Close()

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech synthesis returned no audio")
	}
	return audio, nil
}

// Format returns the audio container format, used as the artifact extension.
func (s *OpenAISpeech) Format() string {
	return s.format
}
