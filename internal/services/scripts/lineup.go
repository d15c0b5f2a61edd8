package scripts

import (
	"fmt"
	"regexp"
	"strings"
)

var episodeLinePattern = regexp.MustCompile(`(?m)^\s*Episode\s+(\d+)\s*:`)

// ValidateLineup defensively parses a lineup returned by the completion
// service. The remote contract asks for a title line plus exactly
// episodeCount enumerated entries, but the service is not formally
// constrained, so the caller must reject anything that drifts.
func ValidateLineup(lineup string, episodeCount int) error {
	trimmed := strings.TrimSpace(lineup)
	if trimmed == "" {
		return fmt.Errorf("lineup is empty")
	}

	matches := episodeLinePattern.FindAllStringSubmatch(trimmed, -1)
	if len(matches) != episodeCount {
		return fmt.Errorf("lineup has %d episode entries, want %d", len(matches), episodeCount)
	}

	for i, m := range matches {
		want := fmt.Sprintf("%d", i+1)
		if m[1] != want {
			return fmt.Errorf("lineup entry %d is numbered %s, want %s", i+1, m[1], want)
		}
	}

	// The title line precedes the first episode entry.
	firstEntry := episodeLinePattern.FindStringIndex(trimmed)
	if firstEntry == nil || strings.TrimSpace(trimmed[:firstEntry[0]]) == "" {
		return fmt.Errorf("lineup is missing a title line")
	}

	return nil
}

// EpisodeTitle extracts the title of the given episode from a validated
// lineup, or "" if it cannot be found.
func EpisodeTitle(lineup string, index int) string {
	pattern := regexp.MustCompile(fmt.Sprintf(`(?m)^\s*Episode\s+%d\s*:\s*(.+)$`, index))
	m := pattern.FindStringSubmatch(lineup)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
