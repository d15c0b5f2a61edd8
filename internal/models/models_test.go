package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	segments := []EpisodeSegment{
		{Index: 1, Script: "Welcome to the show."},
		{Index: 2, Script: "Last time we covered the basics."},
		{Index: 3, Script: "Today we go deeper."},
	}

	transcript := Transcript(segments)
	assert.Equal(t, "Welcome to the show.\nLast time we covered the basics.\nToday we go deeper.", transcript)
}

func TestTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", Transcript(nil))
	assert.Equal(t, "", Transcript([]EpisodeSegment{}))
}

func TestPodcast_IsComplete(t *testing.T) {
	podcast := &Podcast{CurrentIndex: 4}
	assert.False(t, podcast.IsComplete(5))

	podcast.CurrentIndex = 5
	assert.True(t, podcast.IsComplete(5))
}

func TestJob_States(t *testing.T) {
	job := &Job{Status: JobStatusPending}
	assert.True(t, job.CanProcess())
	assert.False(t, job.IsTerminal())

	job.Status = JobStatusProcessing
	assert.False(t, job.CanProcess())
	assert.False(t, job.IsTerminal())

	job.Status = JobStatusCompleted
	assert.True(t, job.IsTerminal())

	job.Status = JobStatusFailed
	assert.True(t, job.IsTerminal())
}
