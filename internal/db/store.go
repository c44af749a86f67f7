// exposes a Store interface that is passed to API handlers and the reminder
// checker; the postgres implementation keeps every devotional record as a
// whole-record JSON value.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/sakinah-tech/minbar/internal/model"
)

type Store interface {
	// account functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	ListUserIDs() ([]int, error)

	// record gateway: reads fall back to defaults on missing or malformed
	// rows, writes replace the whole record
	GetProfile(userID int) (model.UserProfile, error)
	SetProfile(userID int, p model.UserProfile) error
	GetQada(userID int) (model.QadaState, error)
	SetQada(userID int, q model.QadaState) error
	GetDailyPrayers(userID int, dateKey string) (model.PrayerState, error)
	SetDailyPrayers(userID int, dateKey string, s model.PrayerState) error
	GetTasbih(userID int) (model.TasbihSession, error)
	SetTasbih(userID int, s model.TasbihSession) error
	GetTasbihHistory(userID int) ([]model.DhikrEntry, error)
	SetTasbihHistory(userID int, h []model.DhikrEntry) error
	GetTasbihLogs(userID int) ([]model.TasbihLog, error)
	SetTasbihLogs(userID int, logs []model.TasbihLog) error
	GetNotificationSettings(userID int) (model.NotificationSettings, error)
	SetNotificationSettings(userID int, s model.NotificationSettings) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
