package models

import (
	"strings"

	"gorm.io/gorm"
)

// PodcastStatus tracks whether a generation run is in flight for a podcast
type PodcastStatus string

const (
	PodcastStatusIdle       PodcastStatus = "idle"
	PodcastStatusGenerating PodcastStatus = "generating"
)

// User represents a chat user. Created on first interaction, immutable
// afterwards except for cascading deletes.
type User struct {
	gorm.Model
	UserID      string    `json:"user_id" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"display_name"`
	Podcasts    []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:UserID;references:UserID"`
}

// Podcast is a user's active podcast: topic, lineup and generation progress.
// At most one per user (unique index on user_id).
type Podcast struct {
	gorm.Model
	UserID   string `json:"user_id" gorm:"uniqueIndex;not null"`
	Topic    string `json:"topic" gorm:"not null"`
	Language string `json:"language"`

	// Lineup is generated once at bootstrap and never regenerated.
	Lineup string `json:"lineup" gorm:"type:text;not null"`

	// CurrentIndex is the highest successfully generated episode index.
	// It advances by exactly 1 per successful generation.
	CurrentIndex int `json:"current_index" gorm:"not null;default:0"`

	Status    PodcastStatus `json:"status" gorm:"default:'idle'"`
	IntroPath string        `json:"intro_path"`

	Segments []EpisodeSegment `json:"segments,omitempty" gorm:"foreignKey:PodcastID"`
}

// EpisodeSegment is one generated episode script plus its rendered audio.
// Segments are append-only and ordered by episode index.
type EpisodeSegment struct {
	gorm.Model
	PodcastID uint   `json:"podcast_id" gorm:"not null;uniqueIndex:idx_segments_podcast_episode"`
	Index     int    `json:"index" gorm:"column:episode_index;not null;uniqueIndex:idx_segments_podcast_episode"`
	Script    string `json:"script" gorm:"type:text;not null"`
	AudioPath string `json:"audio_path" gorm:"not null"`
}

// IsComplete reports whether all episodes have been generated.
func (p *Podcast) IsComplete(episodeCount int) bool {
	return p.CurrentIndex >= episodeCount
}

// Transcript joins the ordered segment scripts into the append-only
// transcript used as prior context for continuation episodes.
func Transcript(segments []EpisodeSegment) string {
	scripts := make([]string, 0, len(segments))
	for _, s := range segments {
		scripts = append(scripts, s.Script)
	}
	return strings.Join(scripts, "\n")
}
