package services

import (
	"errors"
	"time"

	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// gormActivityStore backs ActivityStore with the shared gorm connection
type gormActivityStore struct {
	db *gorm.DB
}

// NewActivityStore returns the database-backed ActivityStore
func NewActivityStore(db *gorm.DB) ActivityStore {
	return &gormActivityStore{db: db}
}

func (s *gormActivityStore) FindVisit(sessionID, day string) (*models.VisitLog, error) {
	defer metrics.RecordDBOperation("select", "visit_logs", time.Now())

	var visit models.VisitLog
	err := s.db.Where("session_id = ? AND date = ?", sessionID, day).First(&visit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func (s *gormActivityStore) CreateVisit(v *models.VisitLog) error {
	defer metrics.RecordDBOperation("insert", "visit_logs", time.Now())
	return s.db.Create(v).Error
}

func (s *gormActivityStore) UpdateVisit(id string, fields map[string]interface{}) error {
	defer metrics.RecordDBOperation("update", "visit_logs", time.Now())
	return s.db.Model(&models.VisitLog{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormActivityStore) FindLoginAttempt(sessionID, day string) (*models.LoginAttempt, error) {
	defer metrics.RecordDBOperation("select", "login_attempts", time.Now())

	var attempt models.LoginAttempt
	err := s.db.Where("session_id = ? AND date = ?", sessionID, day).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *gormActivityStore) CreateLoginAttempt(a *models.LoginAttempt) error {
	defer metrics.RecordDBOperation("insert", "login_attempts", time.Now())
	return s.db.Create(a).Error
}

func (s *gormActivityStore) UpdateLoginAttempt(id string, fields map[string]interface{}) error {
	defer metrics.RecordDBOperation("update", "login_attempts", time.Now())
	return s.db.Model(&models.LoginAttempt{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormActivityStore) CountSuggestions(sessionID, day string) (int64, error) {
	defer metrics.RecordDBOperation("count", "game_suggestions", time.Now())

	var count int64
	err := s.db.Model(&models.GameSuggestion{}).
		Where("session_id = ? AND date = ?", sessionID, day).
		Count(&count).Error
	return count, err
}

func (s *gormActivityStore) CreateSuggestion(sg *models.GameSuggestion) error {
	defer metrics.RecordDBOperation("insert", "game_suggestions", time.Now())
	return s.db.Create(sg).Error
}
