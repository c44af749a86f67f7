package model

// Wire values for the Hijri calculation scheme. "islamic-uma-qura" is kept
// as stored for compatibility with existing settings records.
const (
	CalendarCivil     = "islamic-civil"
	CalendarUmmAlQura = "islamic-uma-qura"
)

// NotificationSettings drives the reminder checker and the calendar views.
// HijriOffset is the moon-sighting correction in days, typically in [-2, 2].
type NotificationSettings struct {
	Enabled            bool              `json:"enabled"`
	PrayerReminders    bool              `json:"prayerReminders"`
	DailyVerse         bool              `json:"dailyVerse"`
	LastDailyPrompt    string            `json:"lastDailyPrompt"`
	PrayerTimes        map[string]string `json:"prayerTimes,omitempty"`
	LastNotifiedPrayer string            `json:"lastNotifiedPrayer,omitempty"`
	HijriOffset        int               `json:"hijriOffset"`
	HijriCalendarType  string            `json:"hijriCalendarType"`
}

// DefaultPrayerTimes returns the fallback HH:MM reminder times used until the
// user sets their own.
func DefaultPrayerTimes() map[string]string {
	return map[string]string{
		"fajr":    "05:15",
		"dhuhr":   "12:30",
		"asr":     "15:45",
		"maghrib": "18:20",
		"isha":    "19:45",
	}
}

// DefaultNotificationSettings returns the first-run settings record.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:           false,
		PrayerReminders:   true,
		DailyVerse:        true,
		LastDailyPrompt:   "",
		PrayerTimes:       DefaultPrayerTimes(),
		HijriOffset:       -1,
		HijriCalendarType: CalendarCivil,
	}
}

// Normalize fills gaps left by older or partially-written settings records.
// Applied once at load time rather than scattered inline fallbacks.
func (s NotificationSettings) Normalize() NotificationSettings {
	if len(s.PrayerTimes) == 0 {
		s.PrayerTimes = DefaultPrayerTimes()
	}
	if s.HijriCalendarType != CalendarCivil && s.HijriCalendarType != CalendarUmmAlQura {
		s.HijriCalendarType = CalendarCivil
	}
	if s.HijriOffset < -2 {
		s.HijriOffset = -2
	}
	if s.HijriOffset > 2 {
		s.HijriOffset = 2
	}
	return s
}
