package services

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func testGames() []models.Game {
	return []models.Game{
		{
			Name:        "Uno",
			Type:        "Card",
			Difficulty:  models.DifficultyEasy,
			MinPlayers:  2,
			MaxPlayers:  10,
			Explanation: "match colors",
			Materials:   []string{"cards"},
		},
		{
			Name:        "Chess",
			Type:        "Board",
			Difficulty:  models.DifficultyHard,
			MinPlayers:  2,
			MaxPlayers:  2,
			Explanation: "checkmate",
			Materials:   []string{"board", "pieces"},
		},
		{
			Name:          "Kings Cup",
			Type:          "Party Game",
			Difficulty:    models.DifficultyEasy,
			MinPlayers:    3,
			MaxPlayers:    12,
			Explanation:   "draw cards and follow their rules",
			Materials:     []string{"playing cards", "large cup"},
			DrinkingRules: "Whoever draws the fourth king drinks the cup.",
		},
	}
}

func gameNames(games []models.Game) []string {
	names := make([]string, len(games))
	for i, g := range games {
		names[i] = g.Name
	}
	return names
}

func TestFilterGamesEmptyFilterReturnsAll(t *testing.T) {
	games := testGames()
	assert.Equal(t, games, FilterGames(games, GameFilter{}))
}

func TestFilterGamesAllSentinelDisablesDifficulty(t *testing.T) {
	games := testGames()
	assert.Equal(t, games, FilterGames(games, GameFilter{Difficulty: DifficultyAll}))
}

func TestFilterGamesSearch(t *testing.T) {
	games := testGames()

	// Case-insensitive substring on the name
	assert.Equal(t, []string{"Chess"}, gameNames(FilterGames(games, GameFilter{Search: "che"})))

	// Matches inside materials entries too
	assert.Equal(t, []string{"Chess"}, gameNames(FilterGames(games, GameFilter{Search: "PIECES"})))

	// A term occurring nowhere matches nothing
	assert.Empty(t, FilterGames(games, GameFilter{Search: "zzzz"}))
}

func TestFilterGamesDifficulty(t *testing.T) {
	games := testGames()
	assert.Equal(t, []string{"Uno", "Kings Cup"}, gameNames(FilterGames(games, GameFilter{Difficulty: models.DifficultyEasy})))
}

func TestFilterGamesPlayerCount(t *testing.T) {
	games := testGames()

	// 5 players excludes Chess (5 > max_players 2)
	assert.Equal(t, []string{"Uno", "Kings Cup"}, gameNames(FilterGames(games, GameFilter{MinPlayers: intPtr(5)})))

	// 2 players excludes Kings Cup (2 < min_players 3)
	assert.Equal(t, []string{"Uno", "Chess"}, gameNames(FilterGames(games, GameFilter{MinPlayers: intPtr(2), MaxPlayers: intPtr(2)})))
}

func TestFilterGamesDrinkingOnly(t *testing.T) {
	games := testGames()
	assert.Equal(t, []string{"Kings Cup"}, gameNames(FilterGames(games, GameFilter{DrinkingOnly: true})))

	// The explanation mentioning "drink" qualifies even without drinking rules
	games[0].Explanation = "match colors and drink"
	assert.Equal(t, []string{"Uno", "Kings Cup"}, gameNames(FilterGames(games, GameFilter{DrinkingOnly: true})))
}

func TestFilterGamesComposesByIntersection(t *testing.T) {
	games := testGames()
	filter := GameFilter{Search: "cards", Difficulty: models.DifficultyEasy, MinPlayers: intPtr(4), MaxPlayers: intPtr(4)}
	assert.Equal(t, []string{"Uno", "Kings Cup"}, gameNames(FilterGames(games, filter)))
}

func TestFilterGamesIdempotent(t *testing.T) {
	games := testGames()
	filter := GameFilter{Search: "cards", Difficulty: models.DifficultyEasy}

	once := FilterGames(games, filter)
	twice := FilterGames(once, filter)
	assert.Equal(t, once, twice)
}

func TestFilterGamesEmptyInput(t *testing.T) {
	assert.Empty(t, FilterGames(nil, GameFilter{Search: "uno"}))
	assert.Empty(t, FilterGames([]models.Game{}, GameFilter{}))
}
