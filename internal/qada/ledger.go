// Package qada computes lifetime prayer-debt statistics: obligation accrued
// since religious majority, recovery counters, and the remaining balance.
package qada

import (
	"math"
	"time"

	"github.com/sakinah-tech/minbar/internal/model"
)

// MajorityYears is the age of religious majority (bulugh) from which prayer
// obligation accrues.
const MajorityYears = 9

// DateKeyLayout keys per-day prayer records.
const DateKeyLayout = "2006-01-02"

// DateKey returns the storage key fragment for t's calendar day.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// TotalOwedDays counts days of prayer obligation accrued between majority
// (birth + 9 years) and now. Unset or unparseable birth dates and
// pre-majority nows all yield 0; display gating is the caller's job via
// HasSetup, not this value.
func TotalOwedDays(birthDate string, now time.Time) int {
	if birthDate == "" {
		return 0
	}
	birth, err := time.Parse(DateKeyLayout, birthDate)
	if err != nil {
		return 0
	}
	majority := birth.AddDate(MajorityYears, 0, 0)
	if now.Before(majority) {
		return 0
	}
	// absolute elapsed time, deliberately not calendar-month counting
	return int(math.Ceil(now.Sub(majority).Hours() / 24))
}

// Snapshot is the derived debt statistic set for one consistent instant.
type Snapshot struct {
	TotalOwedDays         int            `json:"totalOwedDays"`
	CompletedPerPrayer    map[string]int `json:"completedPerPrayer"`
	TotalPrayersOwed      int            `json:"totalPrayersOwed"`
	TotalPrayersCompleted int            `json:"totalPrayersCompleted"`
	RemainingPrayers      int            `json:"remainingPrayers"`
	RemainingDays         int            `json:"remainingDays"`
	RemainingYears        int            `json:"remainingYears"`
	RemainingMonths       int            `json:"remainingMonths"`
	RemainingDaysFinal    int            `json:"remainingDaysFinal"`
}

// ComputeSnapshot combines accrued obligation, the recovery ledger and
// today's completion state. The years/months/days decomposition uses flat
// 365/30 divisors; changing it would shift numbers users already track.
func ComputeSnapshot(owedDays int, q model.QadaState, today model.PrayerState) Snapshot {
	completed := make(map[string]int, len(model.PrayerNames))
	totalCompleted := 0
	for _, p := range model.PrayerNames {
		n := q.Count(p)
		if today.Done(p) {
			n++
		}
		completed[p] = n
		totalCompleted += n
	}

	totalOwed := owedDays * 5
	remaining := totalOwed - totalCompleted
	if remaining < 0 {
		remaining = 0
	}
	remainingDays := (remaining + 4) / 5

	return Snapshot{
		TotalOwedDays:         owedDays,
		CompletedPerPrayer:    completed,
		TotalPrayersOwed:      totalOwed,
		TotalPrayersCompleted: totalCompleted,
		RemainingPrayers:      remaining,
		RemainingDays:         remainingDays,
		RemainingYears:        remainingDays / 365,
		RemainingMonths:       (remainingDays % 365) / 30,
		RemainingDaysFinal:    remainingDays % 30,
	}
}

// ToggleToday flips one prayer's completion flag and stamps the record with
// the day key. Returns false (state unchanged) for unknown prayer names.
func ToggleToday(state model.PrayerState, prayer, dateKey string) (model.PrayerState, bool) {
	if !model.IsPrayerName(prayer) {
		return state, false
	}
	state.SetDone(prayer, !state.Done(prayer))
	state.LastUpdated = dateKey
	return state, true
}

// AdjustQada adds delta to one recovery counter, clamping at zero. Returns
// false for unknown prayer names.
func AdjustQada(q model.QadaState, prayer string, delta int) (model.QadaState, bool) {
	if !model.IsPrayerName(prayer) {
		return q, false
	}
	v := q.Count(prayer) + delta
	if v < 0 {
		v = 0
	}
	q.SetCount(prayer, v)
	return q, true
}

// BulkAdjustQada adds days to every counter uniformly, modelling "I recall
// missing N full days of all five prayers". Counters still clamp at zero.
func BulkAdjustQada(q model.QadaState, days int) model.QadaState {
	for _, p := range model.PrayerNames {
		v := q.Count(p) + days
		if v < 0 {
			v = 0
		}
		q.SetCount(p, v)
	}
	return q
}
