package models

import "time"

// VisitLog records at most one visit per (session, UTC day). An anonymous
// visit is retroactively attributed to the user who logs in later the same day.
type VisitLog struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;column:session_id;uniqueIndex:idx_visit_logs_session_day" json:"session_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_visit_logs_session_day" json:"date"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Username  string    `gorm:"type:varchar(50)" json:"username"`
	IsAdmin   bool      `gorm:"not null;default:false;column:is_admin" json:"is_admin"`
}
