package scripts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLineup = `Ocean Life: Secrets of the Deep
Episode 1: Coral Reefs and Their Inhabitants
Episode 2: Life in the Abyss
Episode 3: Whales and Other Giants
Episode 4: The Microscopic Ocean
Episode 5: Protecting Our Seas`

func TestValidateLineup_Valid(t *testing.T) {
	assert.NoError(t, ValidateLineup(validLineup, 5))
}

func TestValidateLineup_Empty(t *testing.T) {
	assert.Error(t, ValidateLineup("", 5))
	assert.Error(t, ValidateLineup("   \n  ", 5))
}

func TestValidateLineup_WrongCount(t *testing.T) {
	short := `Ocean Life
Episode 1: Coral Reefs
Episode 2: The Abyss`
	err := ValidateLineup(short, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 episode entries")
}

func TestValidateLineup_MisnumberedEntries(t *testing.T) {
	misnumbered := `Ocean Life
Episode 1: Coral Reefs
Episode 3: The Abyss
Episode 4: Whales
Episode 5: Plankton
Episode 6: Conservation`
	assert.Error(t, ValidateLineup(misnumbered, 5))
}

func TestValidateLineup_MissingTitleLine(t *testing.T) {
	noTitle := `Episode 1: Coral Reefs
Episode 2: The Abyss
Episode 3: Whales
Episode 4: Plankton
Episode 5: Conservation`
	err := ValidateLineup(noTitle, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title line")
}

func TestValidateLineup_ExtraSurroundingWhitespace(t *testing.T) {
	assert.NoError(t, ValidateLineup("\n\n"+validLineup+"\n\n", 5))
}

func TestEpisodeTitle(t *testing.T) {
	assert.Equal(t, "Life in the Abyss", EpisodeTitle(validLineup, 2))
	assert.Equal(t, "Protecting Our Seas", EpisodeTitle(validLineup, 5))
	assert.Equal(t, "", EpisodeTitle(validLineup, 9))
}
