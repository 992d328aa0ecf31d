package services

import (
	"errors"
	"time"

	"api/config"
	"api/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSuggestionQuotaExceeded is returned once a session has used its five
// suggestion submissions for the current UTC day
var ErrSuggestionQuotaExceeded = errors.New("suggestion quota for today exceeded")

// SuggestionDailyQuota caps submissions per (session, day)
const SuggestionDailyQuota = 5

// ActivityStore is the persistence surface the activity logger needs:
// equality-filtered lookups, inserts and partial updates on the three
// activity collections. Find methods return (nil, nil) when no row matches.
type ActivityStore interface {
	FindVisit(sessionID, day string) (*models.VisitLog, error)
	CreateVisit(v *models.VisitLog) error
	UpdateVisit(id string, fields map[string]interface{}) error

	FindLoginAttempt(sessionID, day string) (*models.LoginAttempt, error)
	CreateLoginAttempt(a *models.LoginAttempt) error
	UpdateLoginAttempt(id string, fields map[string]interface{}) error

	CountSuggestions(sessionID, day string) (int64, error)
	CreateSuggestion(s *models.GameSuggestion) error
}

// ActivityService keeps the per-(session, day) activity rows: one visit row,
// one login-attempt row with a running counter, and the suggestion quota.
type ActivityService struct {
	store    ActivityStore
	throttle config.LoginRateLimitConfig
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store, throttle: config.DefaultLoginRateLimitConfig}
}

// Day buckets a timestamp into its UTC calendar day in ISO form
func Day(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// RecordVisit ensures exactly one visit row for (sessionID, day of now).
// When the row already exists and the caller supplies a genuine identity, the
// row is re-attributed in place. Returns whether a new row was created.
func (s *ActivityService) RecordVisit(sessionID string, now time.Time, username string, isAdmin bool) (bool, error) {
	day := Day(now)

	visit, err := s.store.FindVisit(sessionID, day)
	if err != nil {
		return false, err
	}

	if visit == nil {
		created := &models.VisitLog{
			Timestamp: now,
			SessionID: sessionID,
			Date:      day,
			Username:  username,
			IsAdmin:   isAdmin,
		}
		err := s.store.CreateVisit(created)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, err
		}
		// Lost the insert race against a concurrent request of the same
		// session, fall through to the update path
		if visit, err = s.store.FindVisit(sessionID, day); err != nil || visit == nil {
			return false, err
		}
	}

	if username != "" {
		return false, s.store.UpdateVisit(visit.ID, map[string]interface{}{
			"username": username,
			"is_admin": isAdmin,
		})
	}
	return false, nil
}

// RecordLoginAttempt keeps a single row per (sessionID, day) whose tries
// counter grows monotonically; timestamp, username and success always reflect
// the latest attempt. The returned row carries the updated counter.
func (s *ActivityService) RecordLoginAttempt(sessionID string, now time.Time, username string, success bool) (*models.LoginAttempt, error) {
	day := Day(now)

	attempt, err := s.store.FindLoginAttempt(sessionID, day)
	if err != nil {
		return nil, err
	}

	if attempt == nil {
		created := &models.LoginAttempt{
			Timestamp: now,
			Username:  username,
			Success:   success,
			SessionID: sessionID,
			Date:      day,
			Tries:     1,
		}
		err := s.store.CreateLoginAttempt(created)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if attempt, err = s.store.FindLoginAttempt(sessionID, day); err != nil || attempt == nil {
			return nil, err
		}
	}

	attempt.Tries++
	attempt.Timestamp = now
	attempt.Username = username
	attempt.Success = success

	err = s.store.UpdateLoginAttempt(attempt.ID, map[string]interface{}{
		"tries":     attempt.Tries,
		"timestamp": now,
		"username":  username,
		"success":   success,
	})
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// LoginLocked reports whether further login attempts for this session are in
// a cooldown window, and how long the caller has to wait. A store failure
// degrades to "not locked" so a logging outage never blocks login.
func (s *ActivityService) LoginLocked(sessionID string, now time.Time) (bool, time.Duration) {
	attempt, err := s.store.FindLoginAttempt(sessionID, Day(now))
	if err != nil {
		log.Warnf("login throttle check failed, allowing attempt: %v", err)
		return false, 0
	}
	return Throttled(attempt, s.throttle, now)
}

// Throttled applies the cooldown thresholds to the latest attempt row.
// Only sessions whose most recent attempt failed are throttled.
func Throttled(attempt *models.LoginAttempt, cfg config.LoginRateLimitConfig, now time.Time) (bool, time.Duration) {
	if attempt == nil || attempt.Success {
		return false, 0
	}

	elapsed := now.Sub(attempt.Timestamp)
	switch {
	case attempt.Tries >= cfg.AttemptsThreshold2:
		if remaining := cfg.CooldownDuration2 - elapsed; remaining > 0 {
			return true, remaining
		}
	case attempt.Tries >= cfg.AttemptsThreshold1:
		if remaining := cfg.CooldownDuration1 - elapsed; remaining > 0 {
			return true, remaining
		}
	}
	return false, 0
}

// CanSubmit reports whether the session is still under its daily suggestion
// quota
func (s *ActivityService) CanSubmit(sessionID, day string) (bool, error) {
	count, err := s.store.CountSuggestions(sessionID, day)
	if err != nil {
		return false, err
	}
	return count < SuggestionDailyQuota, nil
}

// SubmitSuggestion stores a suggestion if the quota allows it. The
// count-then-insert is not atomic, matching the courtesy nature of the cap.
func (s *ActivityService) SubmitSuggestion(suggestion *models.GameSuggestion, now time.Time) error {
	suggestion.Timestamp = now
	suggestion.Date = Day(now)

	ok, err := s.CanSubmit(suggestion.SessionID, suggestion.Date)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSuggestionQuotaExceeded
	}
	return s.store.CreateSuggestion(suggestion)
}
