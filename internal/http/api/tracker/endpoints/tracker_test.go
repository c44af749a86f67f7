package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/tracker/packets"
	"github.com/sakinah-tech/minbar/internal/model"
)

var fixedNow = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func setupTracker(t *testing.T) (*gin.Engine, *db.MemStore, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemStore()
	userID, err := store.CreateUser("test@example.com", "hashed", nil)
	assert.NoError(t, err)

	ctl := NewTrackerController(store)
	ctl.clock = func() time.Time { return fixedNow }

	router := gin.New()
	api.MountGroup(router, api.GroupConfig{
		Prefix: "/api",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			user, _ := store.GetUserByID(userID)
			c.Set("currentUser", user)
		}},
	}, api.ModuleFunc(func(c *api.Controller) {
		c.GET("/tracker/profile", ctl.getProfile)
		c.PUT("/tracker/profile", ctl.updateProfile)
		c.DELETE("/tracker/profile", ctl.resetProfile)
		c.GET("/tracker/today", ctl.getToday)
		c.POST("/tracker/today/toggle", ctl.toggleToday)
		c.GET("/tracker/qada", ctl.getQada)
		c.POST("/tracker/qada/adjust", ctl.adjustQada)
		c.POST("/tracker/qada/bulk", ctl.bulkQada)
		c.GET("/tracker/stats", ctl.getStats)
	}))
	return router, store, userID
}

func doJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProfileLifecycle(t *testing.T) {
	router, _, _ := setupTracker(t)

	// fresh accounts have no setup
	w := doJSON(router, http.MethodGet, "/api/tracker/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var profile packets.ProfileResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.False(t, profile.HasSetup)

	w = doJSON(router, http.MethodPut, "/api/tracker/profile", gin.H{"birthDate": "2000-01-01"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.True(t, profile.HasSetup)
	assert.Equal(t, "2000-01-01", profile.BirthDate)

	w = doJSON(router, http.MethodDelete, "/api/tracker/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodGet, "/api/tracker/profile", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.False(t, profile.HasSetup)
	assert.Empty(t, profile.BirthDate)
}

func TestUpdateProfileRejectsBadDates(t *testing.T) {
	router, _, _ := setupTracker(t)

	w := doJSON(router, http.MethodPut, "/api/tracker/profile", gin.H{"birthDate": "01/02/2000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPut, "/api/tracker/profile", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetProfileKeepsQada(t *testing.T) {
	router, store, userID := setupTracker(t)

	store.SetQada(userID, model.QadaState{Fajr: 12})
	store.SetProfile(userID, model.UserProfile{BirthDate: "2000-01-01", HasSetup: true})

	w := doJSON(router, http.MethodDelete, "/api/tracker/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	q, err := store.GetQada(userID)
	assert.NoError(t, err)
	assert.Equal(t, 12, q.Fajr)
}

func TestToggleToday(t *testing.T) {
	router, _, _ := setupTracker(t)

	w := doJSON(router, http.MethodPost, "/api/tracker/today/toggle", gin.H{"prayer": "fajr"})
	assert.Equal(t, http.StatusOK, w.Code)
	var today packets.TodayResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &today))
	assert.Equal(t, "2024-01-01", today.DateKey)
	assert.True(t, today.Prayers.Fajr)
	assert.Equal(t, 1, today.CompletedCount)

	// toggling again clears the flag
	w = doJSON(router, http.MethodPost, "/api/tracker/today/toggle", gin.H{"prayer": "fajr"})
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &today))
	assert.False(t, today.Prayers.Fajr)
	assert.Equal(t, 0, today.CompletedCount)

	w = doJSON(router, http.MethodPost, "/api/tracker/today/toggle", gin.H{"prayer": "brunch"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustQada(t *testing.T) {
	router, _, _ := setupTracker(t)

	w := doJSON(router, http.MethodPost, "/api/tracker/qada/adjust", gin.H{"prayer": "asr", "delta": 3})
	assert.Equal(t, http.StatusOK, w.Code)
	var q model.QadaState
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, 3, q.Asr)

	// decrements clamp at zero
	w = doJSON(router, http.MethodPost, "/api/tracker/qada/adjust", gin.H{"prayer": "asr", "delta": -10})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, 0, q.Asr)

	w = doJSON(router, http.MethodPost, "/api/tracker/qada/adjust", gin.H{"prayer": "nones", "delta": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkQada(t *testing.T) {
	router, _, _ := setupTracker(t)

	w := doJSON(router, http.MethodPost, "/api/tracker/qada/bulk", gin.H{"days": 30})
	assert.Equal(t, http.StatusOK, w.Code)
	var q model.QadaState
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, model.QadaState{Fajr: 30, Dhuhr: 30, Asr: 30, Maghrib: 30, Isha: 30}, q)

	w = doJSON(router, http.MethodPost, "/api/tracker/qada/bulk", gin.H{"days": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/tracker/qada/bulk", gin.H{"days": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsBeforeSetup(t *testing.T) {
	router, _, _ := setupTracker(t)

	w := doJSON(router, http.MethodGet, "/api/tracker/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats packets.StatsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.True(t, stats.NotConfigured)
	assert.Nil(t, stats.Snapshot)
}

func TestStats(t *testing.T) {
	router, store, userID := setupTracker(t)

	store.SetProfile(userID, model.UserProfile{BirthDate: "2000-01-01", HasSetup: true})
	store.SetQada(userID, model.QadaState{Fajr: 10})
	doJSON(router, http.MethodPost, "/api/tracker/today/toggle", gin.H{"prayer": "fajr"})

	w := doJSON(router, http.MethodGet, "/api/tracker/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats packets.StatsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.False(t, stats.NotConfigured)
	assert.NotNil(t, stats.Snapshot)

	// majority at 2009-01-01, measured at the fixed 2024-01-01 clock
	assert.Equal(t, 5478, stats.Snapshot.TotalOwedDays)
	assert.Equal(t, 27390, stats.Snapshot.TotalPrayersOwed)
	// ledger counters plus today's toggled fajr
	assert.Equal(t, 11, stats.Snapshot.CompletedPerPrayer["fajr"])
	assert.Equal(t, 11, stats.Snapshot.TotalPrayersCompleted)
	assert.Equal(t, 27379, stats.Snapshot.RemainingPrayers)
}
