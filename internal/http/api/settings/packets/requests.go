package packets

// UpdateSettingsRequest is a partial update; nil fields keep their stored
// values.
type UpdateSettingsRequest struct {
	Enabled           *bool              `json:"enabled"`
	PrayerReminders   *bool              `json:"prayerReminders"`
	DailyVerse        *bool              `json:"dailyVerse"`
	PrayerTimes       *map[string]string `json:"prayerTimes"`
	HijriOffset       *int               `json:"hijriOffset"`
	HijriCalendarType *string            `json:"hijriCalendarType"`
}
