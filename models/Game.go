package models

import (
	"time"

	"gorm.io/datatypes"
)

// Difficulty levels a game can have
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Game represents one entry of the catalog
// Name uniqueness is checked before insert rather than enforced by the schema,
// so a failed check surfaces as a validation error instead of a driver error
type Game struct {
	ID               string                      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name             string                      `gorm:"type:varchar(100);not null" json:"name"`
	Type             string                      `gorm:"type:varchar(50);not null" json:"type"`
	Difficulty       string                      `gorm:"type:varchar(10);not null" json:"difficulty"`
	MinPlayers       int                         `gorm:"not null" json:"min_players"`
	MaxPlayers       int                         `gorm:"not null" json:"max_players"`
	MinAge           int                         `gorm:"not null" json:"min_age"`
	MinDuration      int                         `gorm:"not null" json:"min_duration"`
	Materials        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"materials"`
	Explanation      string                      `gorm:"type:text;not null" json:"explanation"`
	Rules            string                      `gorm:"type:text" json:"rules"`
	ScoreCalculation string                      `gorm:"type:text;column:score_calculation" json:"score_calculation"`
	Example          string                      `gorm:"type:text" json:"example"`
	Expansions       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"expansions"`
	DrinkingRules    string                      `gorm:"type:text;column:drinking_rules" json:"drinking_rules"`
	NeedsUpdate      bool                        `gorm:"not null;default:false" json:"needs_update"`
	CreatedBy        string                      `gorm:"type:varchar(50);column:created_by" json:"created_by"`
	CreatedAt        *time.Time                  `json:"created_at"`
}
