package games

import "api/models"

// demoGames is the static fallback catalog served when the store is
// unreachable, so browsing keeps working during an outage. Mutations have no
// fallback and fail visibly.
var demoGames = []models.Game{
	{
		ID:          "demo-uno",
		Name:        "Uno",
		Type:        "Card Game",
		Difficulty:  models.DifficultyEasy,
		MinPlayers:  2,
		MaxPlayers:  10,
		MinAge:      6,
		MinDuration: 30,
		Materials:   []string{"UNO cards"},
		Explanation: "Match cards by color or number",
	},
	{
		ID:          "demo-monopoly",
		Name:        "Monopoly",
		Type:        "Board Game",
		Difficulty:  models.DifficultyMedium,
		MinPlayers:  2,
		MaxPlayers:  6,
		MinAge:      8,
		MinDuration: 60,
		Materials:   []string{"Monopoly board", "dice", "cards"},
		Explanation: "Collect properties and bankrupt your opponents",
	},
	{
		ID:          "demo-chess",
		Name:        "Chess",
		Type:        "Board Game",
		Difficulty:  models.DifficultyHard,
		MinPlayers:  2,
		MaxPlayers:  2,
		MinAge:      6,
		MinDuration: 20,
		Materials:   []string{"Chess board", "pieces"},
		Explanation: "Strategic game of checkmate",
	},
}
