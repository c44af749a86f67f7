// Package hijri converts between Gregorian civil dates and Hijri calendar
// positions under a selectable calculation scheme, and builds the month grids
// for both calendar views.
package hijri

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sakinah-tech/minbar/internal/model"
)

// Part selects which Hijri field a Field call derives.
type Part string

const (
	PartDay        Part = "day"
	PartMonth      Part = "month"
	PartMonthIndex Part = "monthIndex"
	PartYear       Part = "year"
	PartFull       Part = "full"
)

// Config carries the per-user conversion settings.
type Config struct {
	// CalendarType is one of the model.Calendar* wire values.
	CalendarType string
	// DayOffset is added to the civil date before conversion, aligning the
	// computed calendar with local moon-sighting announcements. It is applied
	// exactly once per derivation.
	DayOffset int
}

// ConfigFrom extracts the conversion settings from a settings record.
func ConfigFrom(s model.NotificationSettings) Config {
	return Config{CalendarType: s.HijriCalendarType, DayOffset: s.HijriOffset}
}

// Convert returns the Hijri date for a civil date under cfg.
func Convert(t time.Time, cfg Config) (Date, error) {
	adjusted := t.AddDate(0, 0, cfg.DayOffset)
	return SchemeFor(cfg.CalendarType).FromJDN(ToJDN(adjusted))
}

// Field derives one Hijri field of a civil date as a display string. Failures
// and out-of-range inputs yield "" rather than an error; callers treat the
// empty string as "unknown", never as day 0.
func Field(t time.Time, part Part, cfg Config) string {
	hd, err := Convert(t, cfg)
	if err != nil {
		return ""
	}
	switch part {
	case PartDay:
		return strconv.Itoa(hd.Day)
	case PartMonthIndex:
		return strconv.Itoa(hd.Month - 1)
	case PartMonth:
		if hd.Month < 1 || hd.Month > 12 {
			return "Unknown"
		}
		return MonthNames[hd.Month-1]
	case PartYear:
		return strconv.Itoa(hd.Year)
	case PartFull:
		return fmt.Sprintf("%d %s %d", hd.Day, Field(t, PartMonth, cfg), hd.Year)
	}
	return ""
}

// monthStartProbeLimit bounds the backward day-1 search. A Hijri month is at
// most 30 days, so 35 leaves margin; hitting the bound returns the furthest
// date reached instead of looping.
const monthStartProbeLimit = 35

// MonthStart finds the most recent civil date whose Hijri day is 1, walking
// backward day by day from t.
func MonthStart(t time.Time, cfg Config) time.Time {
	current := atNoon(t)
	for i := 0; i < monthStartProbeLimit && Field(current, PartDay, cfg) != "1"; i++ {
		current = current.AddDate(0, 0, -1)
	}
	return current
}

// MonthLength probes the date 29 days past the month start: if that date is
// again a day 1, the month had 29 days, otherwise 30.
func MonthLength(monthStart time.Time, cfg Config) int {
	if Field(monthStart.AddDate(0, 0, 29), PartDay, cfg) == "1" {
		return 29
	}
	return 30
}

// ViewMode selects which calendar system drives grids and navigation.
type ViewMode string

const (
	ViewHijri     ViewMode = "hijri"
	ViewGregorian ViewMode = "gregorian"
)

// AdvanceMonth moves the reference date to the adjacent month of the active
// view. Hijri month lengths are irregular, so the forward step jumps 31 raw
// days (past any possible month length) and re-anchors; the backward step
// anchors, backs over the boundary with margin, and anchors again.
func AdvanceMonth(ref time.Time, view ViewMode, forward bool, cfg Config) time.Time {
	if view == ViewGregorian {
		y, m, _ := ref.Date()
		if forward {
			return time.Date(y, m+1, 1, 12, 0, 0, 0, ref.Location())
		}
		return time.Date(y, m-1, 1, 12, 0, 0, 0, ref.Location())
	}
	if forward {
		return MonthStart(ref.AddDate(0, 0, 31), cfg)
	}
	return MonthStart(MonthStart(ref, cfg).AddDate(0, 0, -5), cfg)
}

func atNoon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}
