package models

import "time"

// User is an account that can sign in; usernames are stored lower-cased so
// matching is case-insensitive
type User struct {
	ID            string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Username      string     `gorm:"type:varchar(50);not null" json:"username"`
	PasswordHash  string     `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
	Admin         bool       `gorm:"not null;default:false" json:"admin"`
	LastConnected *time.Time `gorm:"column:last_connected" json:"last_connected"`
}
