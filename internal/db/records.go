package db

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sakinah-tech/minbar/internal/model"
)

// Record keys. Per-day prayer records append the day key.
const (
	keyProfile       = "profile"
	keyQada          = "qada"
	keyDailyPrefix   = "prayer_daily_"
	keyTasbih        = "tasbih"
	keyTasbihHistory = "tasbih_history"
	keyTasbihLogs    = "tasbih_session_logs"
	keySettings      = "notification_settings"
)

// getRecord loads one record's raw JSON. found is false when no row exists.
func (s *pgStore) getRecord(userID int, key string) ([]byte, bool, error) {
	var raw []byte
	err := s.db.Get(&raw, `
		SELECT value
		FROM records
		WHERE user_id = $1 AND record_key = $2
		`, userID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read record")
		return nil, false, err
	}
	return raw, true, nil
}

// setRecord replaces one record wholesale. Writes are whole-record upserts so
// a record can be stale after a crash but never half-written.
func (s *pgStore) setRecord(userID int, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO records (user_id, record_key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, record_key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		`, userID, key, raw)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write record")
	}
	return err
}

// decodeRecord unmarshals a stored record into out. A malformed value is
// recovered locally: out is left at its fallback and the damage is logged,
// never surfaced as an error.
func decodeRecord(raw []byte, key string, out any) {
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed stored record, using defaults")
	}
}

func (s *pgStore) GetProfile(userID int) (model.UserProfile, error) {
	profile := model.UserProfile{}
	raw, found, err := s.getRecord(userID, keyProfile)
	if err != nil {
		return profile, err
	}
	if found {
		decodeRecord(raw, keyProfile, &profile)
	}
	return profile, nil
}

func (s *pgStore) SetProfile(userID int, p model.UserProfile) error {
	return s.setRecord(userID, keyProfile, p)
}

func (s *pgStore) GetQada(userID int) (model.QadaState, error) {
	q := model.QadaState{}
	raw, found, err := s.getRecord(userID, keyQada)
	if err != nil {
		return q, err
	}
	if found {
		decodeRecord(raw, keyQada, &q)
	}
	return q, nil
}

func (s *pgStore) SetQada(userID int, q model.QadaState) error {
	return s.setRecord(userID, keyQada, q)
}

func (s *pgStore) GetDailyPrayers(userID int, dateKey string) (model.PrayerState, error) {
	state := model.PrayerState{}
	raw, found, err := s.getRecord(userID, keyDailyPrefix+dateKey)
	if err != nil {
		return state, err
	}
	if found {
		decodeRecord(raw, keyDailyPrefix+dateKey, &state)
	}
	return state, nil
}

func (s *pgStore) SetDailyPrayers(userID int, dateKey string, state model.PrayerState) error {
	return s.setRecord(userID, keyDailyPrefix+dateKey, state)
}

func (s *pgStore) GetTasbih(userID int) (model.TasbihSession, error) {
	session := model.TasbihSession{}
	raw, found, err := s.getRecord(userID, keyTasbih)
	if err != nil {
		return session, err
	}
	if found {
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

func (s *pgStore) SetTasbih(userID int, session model.TasbihSession) error {
	return s.setRecord(userID, keyTasbih, session)
}

func (s *pgStore) GetTasbihHistory(userID int) ([]model.DhikrEntry, error) {
	var history []model.DhikrEntry
	raw, found, err := s.getRecord(userID, keyTasbihHistory)
	if err != nil {
		return nil, err
	}
	if found {
		decodeRecord(raw, keyTasbihHistory, &history)
	}
	return history, nil
}

func (s *pgStore) SetTasbihHistory(userID int, h []model.DhikrEntry) error {
	return s.setRecord(userID, keyTasbihHistory, h)
}

func (s *pgStore) GetTasbihLogs(userID int) ([]model.TasbihLog, error) {
	var logs []model.TasbihLog
	raw, found, err := s.getRecord(userID, keyTasbihLogs)
	if err != nil {
		return nil, err
	}
	if found {
		decodeRecord(raw, keyTasbihLogs, &logs)
	}
	return logs, nil
}

func (s *pgStore) SetTasbihLogs(userID int, logs []model.TasbihLog) error {
	return s.setRecord(userID, keyTasbihLogs, logs)
}

func (s *pgStore) GetNotificationSettings(userID int) (model.NotificationSettings, error) {
	settings := model.DefaultNotificationSettings()
	raw, found, err := s.getRecord(userID, keySettings)
	if err != nil {
		return settings, err
	}
	if found {
		decodeRecord(raw, keySettings, &settings)
	}
	return settings.Normalize(), nil
}

func (s *pgStore) SetNotificationSettings(userID int, settings model.NotificationSettings) error {
	return s.setRecord(userID, keySettings, settings)
}
