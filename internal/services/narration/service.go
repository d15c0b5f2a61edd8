package narration

import (
	"bytes"
	"context"
	"log"

	apperrors "github.com/lisapod/lisapod-api/pkg/errors"
)

// Service renders scripts to audio artifacts: synthesize, then persist.
type Service struct {
	speech  SpeechClient
	storage StorageBackend
	format  string
}

var _ Renderer = (*Service)(nil)

// NewService creates a renderer from a speech client and a storage backend.
// format is the artifact file extension ("mp3" by default).
func NewService(speech SpeechClient, storage StorageBackend, format string) *Service {
	if format == "" {
		format = "mp3"
	}
	return &Service{
		speech:  speech,
		storage: storage,
		format:  format,
	}
}

// Render synthesizes the script and writes the audio under destinationKey.
// On any failure the script is left orphaned: nothing is persisted and the
// caller decides whether to re-run the whole step.
func (s *Service) Render(ctx context.Context, script, destinationKey string) (string, error) {
	audio, err := s.speech.Synthesize(ctx, script)
	if err != nil {
		return "", apperrors.RenderFailed(destinationKey, err)
	}

	location, err := s.storage.Save(ctx, bytes.NewReader(audio), destinationKey+"."+s.format)
	if err != nil {
		return "", apperrors.RenderFailed(destinationKey, err)
	}

	log.Printf("[INFO] Rendered %d bytes of audio to %s", len(audio), location)
	return location, nil
}

// ArtifactExists reports whether a previously rendered artifact is present.
func (s *Service) ArtifactExists(ctx context.Context, location string) (bool, error) {
	return s.storage.Exists(ctx, location)
}

// DeleteArtifact removes a rendered artifact; missing artifacts are fine.
func (s *Service) DeleteArtifact(ctx context.Context, location string) error {
	return s.storage.Delete(ctx, location)
}
