package games

import "strings"

// Constants for error messages
const (
	ErrGameNotFound        = "Game not found"
	ErrFetchGamesFailed    = "Failed to fetch games"
	ErrDuplicateGameName   = "A game with this name already exists"
	ErrCreateGameFailed    = "Failed to create game"
	ErrUpdateGameFailed    = "Failed to update game"
	ErrDeleteGameFailed    = "Failed to delete game"
	ErrConfirmRequired     = "Deletion must be confirmed with confirm=true"
	ErrInvalidPlayerBounds = "max_players must be greater than or equal to min_players"
)

// GameRequest is the payload for creating and fully overwriting a game.
// Materials and Expansions arrive as comma-separated text, the way the entry
// form collects them, and are split and trimmed at this boundary.
type GameRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Difficulty    string `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	MinPlayers    int    `json:"min_players" binding:"required,min=1"`
	MaxPlayers    int    `json:"max_players" binding:"required,min=1"`
	MinAge        int    `json:"min_age" binding:"min=0"`
	MinDuration   int    `json:"min_duration" binding:"required,min=1"`
	Materials     string `json:"materials" binding:"required"`
	Explanation   string `json:"explanation" binding:"required"`
	Rules         string `json:"rules"`
	ScoreCalc     string `json:"score_calculation"`
	Example       string `json:"example"`
	Expansions    string `json:"expansions"`
	DrinkingRules string `json:"drinking_rules"`
	NeedsUpdate   bool   `json:"needs_update"`
}

// splitList turns comma-separated form input into a trimmed list, dropping
// empty entries
func splitList(input string) []string {
	parts := strings.Split(input, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
