package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/tracker/packets"
	"github.com/sakinah-tech/minbar/internal/model"
	"github.com/sakinah-tech/minbar/internal/qada"
)

type TrackerController struct {
	store db.Store
	clock func() time.Time
}

func NewTrackerController(store db.Store) *TrackerController {
	return &TrackerController{store: store, clock: time.Now}
}

// TrackerModule mounts the prayer-debt tracker endpoints.
func TrackerModule(store db.Store) api.Module {
	ctl := NewTrackerController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/tracker/profile", ctl.getProfile)
		c.PUT("/tracker/profile", ctl.updateProfile)
		c.DELETE("/tracker/profile", ctl.resetProfile)

		c.GET("/tracker/today", ctl.getToday)
		c.POST("/tracker/today/toggle", ctl.toggleToday)

		c.GET("/tracker/qada", ctl.getQada)
		c.POST("/tracker/qada/adjust", ctl.adjustQada)
		c.POST("/tracker/qada/bulk", ctl.bulkQada)

		c.GET("/tracker/stats", ctl.getStats)
	})
}

// GET /api/tracker/profile
func (t *TrackerController) getProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	profile, err := t.store.GetProfile(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load profile"}
	}
	return packets.ProfileResponse{BirthDate: profile.BirthDate, HasSetup: profile.HasSetup}, nil
}

// PUT /api/tracker/profile
func (t *TrackerController) updateProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := time.Parse(qada.DateKeyLayout, request.BirthDate); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid birth date"}
	}

	profile := model.UserProfile{BirthDate: request.BirthDate, HasSetup: true}
	if err := t.store.SetProfile(user.ID, profile); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save profile"}
	}
	return packets.ProfileResponse{BirthDate: profile.BirthDate, HasSetup: profile.HasSetup}, nil
}

// DELETE /api/tracker/profile
// Clears the setup record. The qada recovery counters are deliberately kept.
func (t *TrackerController) resetProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := t.store.SetProfile(user.ID, model.UserProfile{}); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reset profile"}
	}
	return packets.ProfileResponse{}, nil
}

// GET /api/tracker/today
func (t *TrackerController) getToday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	dateKey := qada.DateKey(t.clock())
	state, err := t.store.GetDailyPrayers(user.ID, dateKey)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load today's record"}
	}
	return packets.TodayResponse{
		DateKey:        dateKey,
		Prayers:        state,
		CompletedCount: state.CompletedCount(),
	}, nil
}

// POST /api/tracker/today/toggle
func (t *TrackerController) toggleToday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.TogglePrayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	dateKey := qada.DateKey(t.clock())
	state, err := t.store.GetDailyPrayers(user.ID, dateKey)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load today's record"}
	}

	updated, ok := qada.ToggleToday(state, request.Prayer, dateKey)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown prayer name"}
	}
	if err := t.store.SetDailyPrayers(user.ID, dateKey, updated); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save today's record"}
	}
	return packets.TodayResponse{
		DateKey:        dateKey,
		Prayers:        updated,
		CompletedCount: updated.CompletedCount(),
	}, nil
}

// GET /api/tracker/qada
func (t *TrackerController) getQada(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	q, err := t.store.GetQada(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load qada counters"}
	}
	return q, nil
}

// POST /api/tracker/qada/adjust
func (t *TrackerController) adjustQada(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.AdjustQadaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	q, err := t.store.GetQada(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load qada counters"}
	}

	updated, ok := qada.AdjustQada(q, request.Prayer, request.Delta)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown prayer name"}
	}
	if err := t.store.SetQada(user.ID, updated); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save qada counters"}
	}
	return updated, nil
}

// POST /api/tracker/qada/bulk
func (t *TrackerController) bulkQada(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.BulkQadaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	q, err := t.store.GetQada(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load qada counters"}
	}

	updated := qada.BulkAdjustQada(q, request.Days)
	if err := t.store.SetQada(user.ID, updated); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save qada counters"}
	}
	return updated, nil
}

// GET /api/tracker/stats
// One consistent "now" drives both the owed-days computation and today's
// record lookup.
func (t *TrackerController) getStats(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	now := t.clock()

	profile, err := t.store.GetProfile(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load profile"}
	}
	if !profile.HasSetup {
		return packets.StatsResponse{NotConfigured: true}, nil
	}

	q, err := t.store.GetQada(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load qada counters"}
	}
	today, err := t.store.GetDailyPrayers(user.ID, qada.DateKey(now))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load today's record"}
	}

	snapshot := qada.ComputeSnapshot(qada.TotalOwedDays(profile.BirthDate, now), q, today)
	return packets.StatsResponse{Snapshot: &snapshot}, nil
}
