package services

import (
	"errors"
	"testing"
	"time"

	"api/config"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeActivityStore keeps the activity collections in memory, keyed like the
// database unique indexes, so the logger's find-or-create branches can be
// exercised without a database.
type fakeActivityStore struct {
	visits      map[string]*models.VisitLog
	attempts    map[string]*models.LoginAttempt
	suggestions []*models.GameSuggestion

	// failNextCreateVisit simulates losing the insert race: the next
	// CreateVisit returns a duplicate-key error after storing a competing row
	failNextCreateVisit bool

	findErr error
	nextID  int
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{
		visits:   make(map[string]*models.VisitLog),
		attempts: make(map[string]*models.LoginAttempt),
	}
}

func key(sessionID, day string) string { return sessionID + "|" + day }

func (f *fakeActivityStore) id() string {
	f.nextID++
	return string(rune('a' + f.nextID - 1))
}

func (f *fakeActivityStore) FindVisit(sessionID, day string) (*models.VisitLog, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if v, ok := f.visits[key(sessionID, day)]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeActivityStore) CreateVisit(v *models.VisitLog) error {
	k := key(v.SessionID, v.Date)
	if f.failNextCreateVisit {
		f.failNextCreateVisit = false
		competing := *v
		competing.ID = f.id()
		competing.Username = ""
		competing.IsAdmin = false
		f.visits[k] = &competing
		return gorm.ErrDuplicatedKey
	}
	if _, exists := f.visits[k]; exists {
		return gorm.ErrDuplicatedKey
	}
	v.ID = f.id()
	stored := *v
	f.visits[k] = &stored
	return nil
}

func (f *fakeActivityStore) UpdateVisit(id string, fields map[string]interface{}) error {
	for _, v := range f.visits {
		if v.ID == id {
			if u, ok := fields["username"]; ok {
				v.Username = u.(string)
			}
			if a, ok := fields["is_admin"]; ok {
				v.IsAdmin = a.(bool)
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeActivityStore) FindLoginAttempt(sessionID, day string) (*models.LoginAttempt, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if a, ok := f.attempts[key(sessionID, day)]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeActivityStore) CreateLoginAttempt(a *models.LoginAttempt) error {
	k := key(a.SessionID, a.Date)
	if _, exists := f.attempts[k]; exists {
		return gorm.ErrDuplicatedKey
	}
	a.ID = f.id()
	stored := *a
	f.attempts[k] = &stored
	return nil
}

func (f *fakeActivityStore) UpdateLoginAttempt(id string, fields map[string]interface{}) error {
	for _, a := range f.attempts {
		if a.ID == id {
			a.Tries = fields["tries"].(int)
			a.Timestamp = fields["timestamp"].(time.Time)
			a.Username = fields["username"].(string)
			a.Success = fields["success"].(bool)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeActivityStore) CountSuggestions(sessionID, day string) (int64, error) {
	var count int64
	for _, s := range f.suggestions {
		if s.SessionID == sessionID && s.Date == day {
			count++
		}
	}
	return count, nil
}

func (f *fakeActivityStore) CreateSuggestion(s *models.GameSuggestion) error {
	stored := *s
	f.suggestions = append(f.suggestions, &stored)
	return nil
}

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestDayUsesUTCCalendarDate(t *testing.T) {
	assert.Equal(t, "2025-06-15", Day(testNow))

	// 23:30 in UTC-3 is already the next UTC day
	offset := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2025, 6, 15, 23, 30, 0, 0, offset)
	assert.Equal(t, "2025-06-16", Day(late))
}

func TestRecordVisitCreatesOncePerSessionDay(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	created, err := svc.RecordVisit("sess-1", testNow, "", false)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.RecordVisit("sess-1", testNow.Add(2*time.Hour), "", false)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Len(t, store.visits, 1)
}

func TestRecordVisitRetroactiveAttribution(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	_, err := svc.RecordVisit("sess-1", testNow, "", false)
	require.NoError(t, err)

	// The same session authenticates later that day
	_, err = svc.RecordVisit("sess-1", testNow.Add(time.Hour), "alice", true)
	require.NoError(t, err)

	visit := store.visits[key("sess-1", "2025-06-15")]
	assert.Equal(t, "alice", visit.Username)
	assert.True(t, visit.IsAdmin)
}

func TestRecordVisitSeparateDaysAndSessions(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	_, err := svc.RecordVisit("sess-1", testNow, "", false)
	require.NoError(t, err)
	created, err := svc.RecordVisit("sess-1", testNow.Add(24*time.Hour), "", false)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = svc.RecordVisit("sess-2", testNow, "", false)
	require.NoError(t, err)
	assert.True(t, created)

	assert.Len(t, store.visits, 3)
}

func TestRecordVisitSurvivesInsertRace(t *testing.T) {
	store := newFakeActivityStore()
	store.failNextCreateVisit = true
	svc := NewActivityService(store)

	created, err := svc.RecordVisit("sess-1", testNow, "bob", false)
	require.NoError(t, err)
	assert.False(t, created)

	// Still exactly one row, attributed via the update path
	assert.Len(t, store.visits, 1)
	assert.Equal(t, "bob", store.visits[key("sess-1", "2025-06-15")].Username)
}

func TestRecordLoginAttemptIncrementsTries(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	first, err := svc.RecordLoginAttempt("sess-1", testNow, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Tries)

	second, err := svc.RecordLoginAttempt("sess-1", testNow.Add(time.Minute), "alice", true)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Tries)

	assert.Len(t, store.attempts, 1)
	stored := store.attempts[key("sess-1", "2025-06-15")]
	assert.Equal(t, 2, stored.Tries)
	assert.True(t, stored.Success)
	assert.Equal(t, testNow.Add(time.Minute), stored.Timestamp)
}

func TestRecordLoginAttemptSeparateDay(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	_, err := svc.RecordLoginAttempt("sess-1", testNow, "alice", false)
	require.NoError(t, err)
	next, err := svc.RecordLoginAttempt("sess-1", testNow.Add(24*time.Hour), "alice", false)
	require.NoError(t, err)

	assert.Equal(t, 1, next.Tries)
	assert.Len(t, store.attempts, 2)
}

func TestThrottled(t *testing.T) {
	cfg := config.LoginRateLimitConfig{
		AttemptsThreshold1: 3,
		CooldownDuration1:  3 * time.Minute,
		AttemptsThreshold2: 5,
		CooldownDuration2:  5 * time.Minute,
	}

	tests := []struct {
		name    string
		attempt *models.LoginAttempt
		at      time.Time
		locked  bool
	}{
		{"no prior attempts", nil, testNow, false},
		{"last attempt succeeded", &models.LoginAttempt{Tries: 9, Success: true, Timestamp: testNow}, testNow.Add(time.Second), false},
		{"below first threshold", &models.LoginAttempt{Tries: 2, Timestamp: testNow}, testNow.Add(time.Second), false},
		{"first cooldown active", &models.LoginAttempt{Tries: 3, Timestamp: testNow}, testNow.Add(time.Minute), true},
		{"first cooldown elapsed", &models.LoginAttempt{Tries: 3, Timestamp: testNow}, testNow.Add(4 * time.Minute), false},
		{"second cooldown active", &models.LoginAttempt{Tries: 5, Timestamp: testNow}, testNow.Add(4 * time.Minute), true},
		{"second cooldown elapsed", &models.LoginAttempt{Tries: 5, Timestamp: testNow}, testNow.Add(6 * time.Minute), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			locked, wait := Throttled(tc.attempt, cfg, tc.at)
			assert.Equal(t, tc.locked, locked)
			if locked {
				assert.Positive(t, wait)
			}
		})
	}
}

func TestLoginLockedDegradesOnStoreFailure(t *testing.T) {
	store := newFakeActivityStore()
	store.findErr = errors.New("store unavailable")
	svc := NewActivityService(store)

	locked, _ := svc.LoginLocked("sess-1", testNow)
	assert.False(t, locked)
}

func TestSuggestionQuota(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	for i := 0; i < SuggestionDailyQuota; i++ {
		err := svc.SubmitSuggestion(&models.GameSuggestion{SessionID: "sess-1", Idea: "idea"}, testNow)
		require.NoError(t, err)
	}

	// The sixth submission for the same (session, day) is rejected
	err := svc.SubmitSuggestion(&models.GameSuggestion{SessionID: "sess-1", Idea: "one too many"}, testNow)
	assert.ErrorIs(t, err, ErrSuggestionQuotaExceeded)

	// A different day or a different session is unaffected
	err = svc.SubmitSuggestion(&models.GameSuggestion{SessionID: "sess-1", Idea: "tomorrow"}, testNow.Add(24*time.Hour))
	assert.NoError(t, err)
	err = svc.SubmitSuggestion(&models.GameSuggestion{SessionID: "sess-2", Idea: "other session"}, testNow)
	assert.NoError(t, err)
}
