package services

import (
	"strings"

	"api/models"
)

// DifficultyAll disables the difficulty criterion
const DifficultyAll = "All"

// GameFilter holds the active catalog criteria. Zero values disable each
// criterion, so the zero filter matches every game.
type GameFilter struct {
	// Search is matched case-insensitively against name, type, explanation
	// and every materials entry
	Search string
	// Difficulty is an exact match; "" and "All" disable the criterion
	Difficulty string
	// MinPlayers matches games whose player range includes the value;
	// MaxPlayers follows the same rule. A single-slider UI passes the same
	// number for both.
	MinPlayers *int
	MaxPlayers *int
	// DrinkingOnly keeps games whose explanation mentions drinking or that
	// carry drinking rules
	DrinkingOnly bool
}

// FilterGames returns the subset of games matching all active criteria.
// It is a pure function over the in-memory record set: no I/O, deterministic,
// and the criteria compose by intersection so their order is irrelevant.
func FilterGames(games []models.Game, f GameFilter) []models.Game {
	filtered := make([]models.Game, 0, len(games))
	for _, game := range games {
		if matchesFilter(game, f) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}

func matchesFilter(game models.Game, f GameFilter) bool {
	if f.Search != "" && !matchesSearch(game, f.Search) {
		return false
	}

	if f.Difficulty != "" && f.Difficulty != DifficultyAll && game.Difficulty != f.Difficulty {
		return false
	}

	if f.MinPlayers != nil && !playerCountInRange(game, *f.MinPlayers) {
		return false
	}
	if f.MaxPlayers != nil && !playerCountInRange(game, *f.MaxPlayers) {
		return false
	}

	if f.DrinkingOnly && !hasDrinkingContent(game) {
		return false
	}

	return true
}

func matchesSearch(game models.Game, term string) bool {
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(game.Name), term) ||
		strings.Contains(strings.ToLower(game.Type), term) ||
		strings.Contains(strings.ToLower(game.Explanation), term) {
		return true
	}

	for _, material := range game.Materials {
		if strings.Contains(strings.ToLower(material), term) {
			return true
		}
	}
	return false
}

func playerCountInRange(game models.Game, count int) bool {
	return game.MinPlayers <= count && count <= game.MaxPlayers
}

func hasDrinkingContent(game models.Game) bool {
	return strings.Contains(strings.ToLower(game.Explanation), "drink") ||
		strings.TrimSpace(game.DrinkingRules) != ""
}
