package db

import (
	"database/sql"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/sakinah-tech/minbar/internal/model"
)

// MemStore is an in-memory Store used by tests and local development. It
// keeps the same record semantics as the postgres store, including the
// malformed-record fallback, by round-tripping values through JSON.
type MemStore struct {
	mu      sync.Mutex
	nextID  int
	users   map[int]*model.User
	byEmail map[string]int
	records map[int]map[string]json.RawMessage
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		nextID:  1,
		users:   make(map[int]*model.User),
		byEmail: make(map[string]int),
		records: make(map[int]map[string]json.RawMessage),
	}
}

func (m *MemStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	now := time.Now()
	m.users[id] = &model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.byEmail[email] = id
	return id, nil
}

func (m *MemStore) GetUserByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	u := *m.users[id]
	return &u, nil
}

func (m *MemStore) GetUserByID(id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (m *MemStore) ListUserIDs() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// SeedRawRecord stores an arbitrary raw value under a record key, letting
// tests exercise the malformed-record fallback.
func (m *MemStore) SeedRawRecord(userID int, key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setRaw(userID, key, raw)
}

func (m *MemStore) setRaw(userID int, key string, raw []byte) {
	if m.records[userID] == nil {
		m.records[userID] = make(map[string]json.RawMessage)
	}
	m.records[userID][key] = raw
}

func (m *MemStore) getRaw(userID int, key string) ([]byte, bool) {
	raw, ok := m.records[userID][key]
	return raw, ok
}

func (m *MemStore) set(userID int, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setRaw(userID, key, raw)
	return nil
}

func (m *MemStore) GetProfile(userID int) (model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile := model.UserProfile{}
	if raw, ok := m.getRaw(userID, keyProfile); ok {
		decodeRecord(raw, keyProfile, &profile)
	}
	return profile, nil
}

func (m *MemStore) SetProfile(userID int, p model.UserProfile) error {
	return m.set(userID, keyProfile, p)
}

func (m *MemStore) GetQada(userID int) (model.QadaState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := model.QadaState{}
	if raw, ok := m.getRaw(userID, keyQada); ok {
		decodeRecord(raw, keyQada, &q)
	}
	return q, nil
}

func (m *MemStore) SetQada(userID int, q model.QadaState) error {
	return m.set(userID, keyQada, q)
}

func (m *MemStore) GetDailyPrayers(userID int, dateKey string) (model.PrayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := model.PrayerState{}
	if raw, ok := m.getRaw(userID, keyDailyPrefix+dateKey); ok {
		decodeRecord(raw, keyDailyPrefix+dateKey, &state)
	}
	return state, nil
}

func (m *MemStore) SetDailyPrayers(userID int, dateKey string, state model.PrayerState) error {
	return m.set(userID, keyDailyPrefix+dateKey, state)
}

func (m *MemStore) GetTasbih(userID int) (model.TasbihSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := model.TasbihSession{}
	if raw, ok := m.getRaw(userID, keyTasbih); ok {
		decodeRecord(raw, keyTasbih, &session)
	}
	if session.Label == "" {
		session.Label = "SubhanAllah"
	}
	if session.Goal <= 0 {
		session.Goal = 33
	}
	if session.Count < 0 {
		session.Count = 0
	}
	return session, nil
}

func (m *MemStore) SetTasbih(userID int, session model.TasbihSession) error {
	return m.set(userID, keyTasbih, session)
}

func (m *MemStore) GetTasbihHistory(userID int) ([]model.DhikrEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var history []model.DhikrEntry
	if raw, ok := m.getRaw(userID, keyTasbihHistory); ok {
		decodeRecord(raw, keyTasbihHistory, &history)
	}
	return history, nil
}

func (m *MemStore) SetTasbihHistory(userID int, h []model.DhikrEntry) error {
	return m.set(userID, keyTasbihHistory, h)
}

func (m *MemStore) GetTasbihLogs(userID int) ([]model.TasbihLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var logs []model.TasbihLog
	if raw, ok := m.getRaw(userID, keyTasbihLogs); ok {
		decodeRecord(raw, keyTasbihLogs, &logs)
	}
	return logs, nil
}

func (m *MemStore) SetTasbihLogs(userID int, logs []model.TasbihLog) error {
	return m.set(userID, keyTasbihLogs, logs)
}

func (m *MemStore) GetNotificationSettings(userID int) (model.NotificationSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	settings := model.DefaultNotificationSettings()
	if raw, ok := m.getRaw(userID, keySettings); ok {
		decodeRecord(raw, keySettings, &settings)
	}
	return settings.Normalize(), nil
}

func (m *MemStore) SetNotificationSettings(userID int, settings model.NotificationSettings) error {
	return m.set(userID, keySettings, settings)
}
