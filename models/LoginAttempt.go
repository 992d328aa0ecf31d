package models

import "time"

// LoginAttempt aggregates all login attempts of one session on one UTC day
// into a single row: the counter grows, the other fields keep the latest
// attempt. The composite unique index makes the find-or-create upsert safe
// under concurrent requests.
type LoginAttempt struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;column:session_id;uniqueIndex:idx_login_attempts_session_day" json:"session_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_login_attempts_session_day" json:"date"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Username  string    `gorm:"type:varchar(50)" json:"username"`
	Success   bool      `gorm:"not null" json:"success"`
	Tries     int       `gorm:"not null;default:1" json:"tries"`
}
