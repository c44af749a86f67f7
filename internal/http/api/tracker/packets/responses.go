package packets

import (
	"github.com/sakinah-tech/minbar/internal/model"
	"github.com/sakinah-tech/minbar/internal/qada"
)

type ProfileResponse struct {
	BirthDate string `json:"birthDate"`
	HasSetup  bool   `json:"hasSetup"`
}

type TodayResponse struct {
	DateKey        string            `json:"dateKey"`
	Prayers        model.PrayerState `json:"prayers"`
	CompletedCount int               `json:"completedCount"`
}

type StatsResponse struct {
	NotConfigured bool           `json:"notConfigured"`
	Snapshot      *qada.Snapshot `json:"snapshot,omitempty"`
}
