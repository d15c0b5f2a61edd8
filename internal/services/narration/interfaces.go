package narration

import (
	"context"
	"fmt"
	"io"
)

// SpeechClient converts script text to audio bytes via a remote
// speech-synthesis service.
type SpeechClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// StorageBackend persists rendered audio artifacts under stable keys.
type StorageBackend interface {
	Save(ctx context.Context, data io.Reader, key string) (string, error)
	Delete(ctx context.Context, location string) error
	Exists(ctx context.Context, location string) (bool, error)
}

// Renderer turns a finished script into a durable audio artifact. Rendering
// the same destination key again overwrites the previous artifact.
type Renderer interface {
	Render(ctx context.Context, script, destinationKey string) (string, error)
	ArtifactExists(ctx context.Context, location string) (bool, error)
	DeleteArtifact(ctx context.Context, location string) error
}

// IntroKey is the destination key of a user's intro artifact.
func IntroKey(userID string) string {
	return fmt.Sprintf("%s/intro", userID)
}

// EpisodeKey is the destination key of a user's episode artifact.
func EpisodeKey(userID string, index int) string {
	return fmt.Sprintf("%s/episode_%d", userID, index)
}
