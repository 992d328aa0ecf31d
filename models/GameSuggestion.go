package models

import "time"

// GameSuggestion is a free-text game idea submitted by a visitor.
// Submissions are capped at five per (session, day); the rows themselves are
// not unique per day, only counted.
type GameSuggestion struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;column:session_id;index:idx_game_suggestions_session_day" json:"session_id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_game_suggestions_session_day" json:"date"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Email     string    `gorm:"type:varchar(100)" json:"email"`
	GameName  string    `gorm:"type:varchar(100);column:game_name" json:"game_name"`
	Idea      string    `gorm:"type:text;not null" json:"idea"`
	FollowUp  bool      `gorm:"not null;default:false;column:follow_up" json:"follow_up"`
}
