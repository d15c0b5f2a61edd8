package podcasts

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrPodcastNotFound      = errors.New("podcast not found")
	ErrPodcastExists        = errors.New("podcast already exists")
	ErrGenerationInProgress = errors.New("generation already in progress")
)

// SequenceError reports an append whose index does not follow the stored
// current index.
type SequenceError struct {
	Requested int
	Expected  int
}

func (e SequenceError) Error() string {
	return fmt.Sprintf("episode %d requested but episode %d is next", e.Requested, e.Expected)
}

// IsNotFound checks if an error means the user has no stored podcast.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPodcastNotFound)
}
