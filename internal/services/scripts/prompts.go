package scripts

import (
	"fmt"
	"strings"
)

// System prompts share a fixed persona: Lisa, a warm and engaging podcast
// host. Each prompt embeds the language instruction resolved from the
// request's language code.

const lineupSystemPrompt = `You are Lisa, a professional podcast producer.
Given a topic, design a podcast series of exactly %d episodes.
Respond with a single title line for the series, followed by exactly %d lines,
one per episode, each formatted as "Episode N: <episode title>".
Do not add any other text, commentary or formatting.
%s`

const introSystemPrompt = `You are Lisa, a warm and engaging podcast host.
Write the spoken intro for a new podcast series. Welcome the listener,
present the topic and walk through the episode lineup to build anticipation.
Keep it conversational, as spoken audio, without headings or markdown.
%s`

const episodeSystemPrompt = `You are Lisa, a warm and engaging podcast host.
Write the full spoken script for episode %d of the series.
This is the series lineup:
%s

This is everything said in the series so far, in order:
%s

Continue naturally from the previous material without repeating it.
Keep the script under %d characters. Write spoken audio only, without
headings or markdown.
%s`

func buildLineupPrompt(episodeCount int, language string) string {
	return fmt.Sprintf(lineupSystemPrompt, episodeCount, episodeCount, LanguageInstruction(language))
}

func buildIntroPrompt(language string) string {
	return fmt.Sprintf(introSystemPrompt, LanguageInstruction(language))
}

func buildEpisodePrompt(req EpisodeRequest, scriptCharCap int) string {
	prior := strings.Join(req.PriorSegments, "\n\n")
	if prior == "" {
		prior = "(nothing yet)"
	}
	return fmt.Sprintf(episodeSystemPrompt,
		req.EpisodeIndex, req.Lineup, prior, scriptCharCap, LanguageInstruction(req.Language))
}

// User messages mirror the fixed request phrasing the completion service is
// tuned against, including the SSML markup hint for downstream narration.
const ssmlHint = `Use Speech Synthesis Markup Language (SSML) to add pauses and emphasis:
<emphasis level="moderate">...</emphasis> and <prosody rate="slow">...</prosody>.`

func lineupUserMessage(topic string) string {
	return fmt.Sprintf("Create a podcast lineup about: %s", topic)
}

func introUserMessage(topic, lineup string) string {
	return fmt.Sprintf("Create an intro for a podcast about: %s\nThis is the episode lineup: %s\n%s", topic, lineup, ssmlHint)
}

func episodeUserMessage(topic string, index int) string {
	return fmt.Sprintf("Create episode %d about: %s\n%s", index, topic, ssmlHint)
}
