package games

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Paper", "Pencils", "Timer"}, splitList("Paper, Pencils ,Timer"))
	assert.Equal(t, []string{"dice"}, splitList(",dice,,"))
	assert.Empty(t, splitList(""))
	assert.Empty(t, splitList(" , ,"))
}

func TestDiffGamesRecordsOnlyChangedFields(t *testing.T) {
	before := models.Game{
		Name:       "Uno",
		Type:       "Card Game",
		Difficulty: models.DifficultyEasy,
		MinPlayers: 2,
		MaxPlayers: 10,
		Materials:  []string{"cards"},
	}

	after := before
	after.Name = "Uno Deluxe"
	after.MaxPlayers = 12
	after.Materials = []string{"cards", "score pad"}

	changes := diffGames(before, after)

	assert.Len(t, changes, 3)
	assert.Equal(t, models.FieldChange{From: "Uno", To: "Uno Deluxe"}, changes["name"])
	assert.Equal(t, models.FieldChange{From: 10, To: 12}, changes["max_players"])
	assert.Equal(t, models.FieldChange{From: []string{"cards"}, To: []string{"cards", "score pad"}}, changes["materials"])
}

func TestDiffGamesIdenticalVersions(t *testing.T) {
	game := models.Game{Name: "Chess", Materials: []string{"board", "pieces"}}
	assert.Empty(t, diffGames(game, game))
}
