package models

import (
	"time"

	"gorm.io/datatypes"
)

// GameRevision is one audit entry written on every game edit. Changes maps a
// field name to its before/after pair; fields that did not change are omitted.
type GameRevision struct {
	ID       string         `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	GameID   string         `gorm:"type:uuid;not null;column:game_id;index" json:"game_id"`
	GameName string         `gorm:"type:varchar(100);column:game_name" json:"game_name"`
	EditedBy string         `gorm:"type:varchar(50);column:edited_by" json:"edited_by"`
	EditedAt time.Time      `gorm:"not null;column:edited_at" json:"edited_at"`
	Changes  datatypes.JSON `gorm:"type:jsonb" json:"changes"`
}

// FieldChange is one entry of GameRevision.Changes before marshalling
type FieldChange struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}
