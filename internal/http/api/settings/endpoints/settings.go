package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/settings/packets"
	"github.com/sakinah-tech/minbar/internal/model"
)

type SettingsController struct {
	store db.Store
}

func NewSettingsController(store db.Store) *SettingsController {
	return &SettingsController{store: store}
}

// SettingsModule mounts the notification/calendar settings endpoints.
func SettingsModule(store db.Store) api.Module {
	ctl := NewSettingsController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings/notifications", ctl.getSettings)
		c.PUT("/settings/notifications", ctl.updateSettings)
	})
}

// GET /api/settings/notifications
func (s *SettingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetNotificationSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return settings, nil
}

// PUT /api/settings/notifications
func (s *SettingsController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings, err := s.store.GetNotificationSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	if request.Enabled != nil {
		settings.Enabled = *request.Enabled
	}
	if request.PrayerReminders != nil {
		settings.PrayerReminders = *request.PrayerReminders
	}
	if request.DailyVerse != nil {
		settings.DailyVerse = *request.DailyVerse
	}
	if request.PrayerTimes != nil {
		times := make(map[string]string, len(model.PrayerNames))
		for name, t := range settings.PrayerTimes {
			times[name] = t
		}
		for name, t := range *request.PrayerTimes {
			if !model.IsPrayerName(name) {
				return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown prayer name"}
			}
			if _, err := time.Parse("15:04", t); err != nil {
				return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid prayer time"}
			}
			times[name] = t
		}
		settings.PrayerTimes = times
	}
	if request.HijriOffset != nil {
		settings.HijriOffset = *request.HijriOffset
	}
	if request.HijriCalendarType != nil {
		if *request.HijriCalendarType != model.CalendarCivil && *request.HijriCalendarType != model.CalendarUmmAlQura {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid calendar type"}
		}
		settings.HijriCalendarType = *request.HijriCalendarType
	}

	settings = settings.Normalize()
	if err := s.store.SetNotificationSettings(user.ID, settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	return settings, nil
}
