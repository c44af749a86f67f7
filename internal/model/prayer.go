package model

// PrayerNames is the canonical order of the five daily prayers. Every
// per-prayer record and response iterates in this order.
var PrayerNames = []string{"fajr", "dhuhr", "asr", "maghrib", "isha"}

// IsPrayerName reports whether name is one of the five daily prayers.
func IsPrayerName(name string) bool {
	for _, p := range PrayerNames {
		if p == name {
			return true
		}
	}
	return false
}

// PrayerState is one calendar day's completion record. A fresh day always
// starts all-false; records never carry over between days.
type PrayerState struct {
	Fajr        bool   `json:"fajr"`
	Dhuhr       bool   `json:"dhuhr"`
	Asr         bool   `json:"asr"`
	Maghrib     bool   `json:"maghrib"`
	Isha        bool   `json:"isha"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Done returns the completion flag for the named prayer.
func (s PrayerState) Done(name string) bool {
	switch name {
	case "fajr":
		return s.Fajr
	case "dhuhr":
		return s.Dhuhr
	case "asr":
		return s.Asr
	case "maghrib":
		return s.Maghrib
	case "isha":
		return s.Isha
	}
	return false
}

// SetDone sets the completion flag for the named prayer. Unknown names are
// ignored.
func (s *PrayerState) SetDone(name string, v bool) {
	switch name {
	case "fajr":
		s.Fajr = v
	case "dhuhr":
		s.Dhuhr = v
	case "asr":
		s.Asr = v
	case "maghrib":
		s.Maghrib = v
	case "isha":
		s.Isha = v
	}
}

// CompletedCount counts how many of the five prayers are marked done.
func (s PrayerState) CompletedCount() int {
	n := 0
	for _, p := range PrayerNames {
		if s.Done(p) {
			n++
		}
	}
	return n
}

// QadaState holds, per prayer, how many historically-missed prayers of that
// type have been recovered. Counters are never negative.
type QadaState struct {
	Fajr    int `json:"fajr"`
	Dhuhr   int `json:"dhuhr"`
	Asr     int `json:"asr"`
	Maghrib int `json:"maghrib"`
	Isha    int `json:"isha"`
}

// Count returns the recovery counter for the named prayer.
func (q QadaState) Count(name string) int {
	switch name {
	case "fajr":
		return q.Fajr
	case "dhuhr":
		return q.Dhuhr
	case "asr":
		return q.Asr
	case "maghrib":
		return q.Maghrib
	case "isha":
		return q.Isha
	}
	return 0
}

// SetCount sets the recovery counter for the named prayer. Unknown names are
// ignored.
func (q *QadaState) SetCount(name string, v int) {
	switch name {
	case "fajr":
		q.Fajr = v
	case "dhuhr":
		q.Dhuhr = v
	case "asr":
		q.Asr = v
	case "maghrib":
		q.Maghrib = v
	case "isha":
		q.Isha = v
	}
}

// Total sums the five recovery counters.
func (q QadaState) Total() int {
	return q.Fajr + q.Dhuhr + q.Asr + q.Maghrib + q.Isha
}
