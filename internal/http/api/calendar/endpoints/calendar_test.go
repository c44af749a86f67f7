package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/calendar/packets"
	"github.com/sakinah-tech/minbar/internal/model"
)

// fixedNow is 1 Ramadan 1445 under the civil scheme with a zero offset.
var fixedNow = time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)

func setupCalendar(t *testing.T) (*gin.Engine, *db.MemStore, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemStore()
	userID, err := store.CreateUser("test@example.com", "hashed", nil)
	assert.NoError(t, err)

	// zero out the default -1 sighting offset so assertions stay readable
	s := model.DefaultNotificationSettings()
	s.HijriOffset = 0
	assert.NoError(t, store.SetNotificationSettings(userID, s))

	ctl := NewCalendarController(store)
	ctl.clock = func() time.Time { return fixedNow }

	router := gin.New()
	api.MountGroup(router, api.GroupConfig{
		Prefix: "/api",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			user, _ := store.GetUserByID(userID)
			c.Set("currentUser", user)
		}},
	}, api.ModuleFunc(func(c *api.Controller) {
		c.GET("/calendar/grid", ctl.getGrid)
		c.GET("/calendar/advance", ctl.advance)
		c.GET("/calendar/today", ctl.getToday)
	}))
	return router, store, userID
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGridHijriView(t *testing.T) {
	router, _, _ := setupCalendar(t)

	w := get(router, "/api/calendar/grid")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp packets.GridResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hijri", resp.View)
	assert.Equal(t, "Ramadan 1445", resp.Title)
	assert.Equal(t, "March 2024", resp.Subtitle)
	assert.Len(t, resp.Cells, 42)

	current := 0
	todays := 0
	for _, cell := range resp.Cells {
		if cell.IsCurrentMonth {
			current++
		}
		if cell.IsToday {
			todays++
			assert.Equal(t, "2024-03-11", cell.Date)
			assert.Equal(t, "1", cell.HijriDay)
		}
	}
	assert.Equal(t, 30, current)
	assert.Equal(t, 1, todays)
}

func TestGridGregorianView(t *testing.T) {
	router, _, _ := setupCalendar(t)

	w := get(router, "/api/calendar/grid?view=gregorian&date=2024-03-01")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp packets.GridResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "March 2024", resp.Title)
	assert.Len(t, resp.Cells, 42)

	current := 0
	jummahs := 0
	for _, cell := range resp.Cells {
		if cell.IsCurrentMonth {
			current++
			if cell.IsJummah {
				jummahs++
			}
		}
	}
	assert.Equal(t, 31, current)
	// March 2024 Fridays: 1, 8, 15, 22, 29
	assert.Equal(t, 5, jummahs)
}

func TestGridRejectsBadInput(t *testing.T) {
	router, _, _ := setupCalendar(t)

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/calendar/grid?view=lunar").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/calendar/grid?date=March+11").Code)
}

func TestAdvance(t *testing.T) {
	router, _, _ := setupCalendar(t)

	w := get(router, "/api/calendar/advance?date=2024-03-11&dir=next")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp packets.AdvanceResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 1 Shawwal 1445
	assert.Equal(t, "2024-04-10", resp.ReferenceDate)

	w = get(router, "/api/calendar/advance?date=2024-04-10&dir=prev")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-11", resp.ReferenceDate)

	w = get(router, "/api/calendar/advance?view=gregorian&date=2024-03-11&dir=next")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-04-01", resp.ReferenceDate)

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/calendar/advance?date=2024-03-11").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/calendar/advance?date=2024-03-11&dir=sideways").Code)
}

func TestToday(t *testing.T) {
	router, _, _ := setupCalendar(t)

	w := get(router, "/api/calendar/today")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp packets.TodayResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "March 11, 2024", resp.Gregorian)
	assert.Equal(t, "1 Ramadan 1445", resp.Hijri)
}

func TestOffsetShiftsTheCalendar(t *testing.T) {
	router, store, userID := setupCalendar(t)

	s, _ := store.GetNotificationSettings(userID)
	s.HijriOffset = -1
	assert.NoError(t, store.SetNotificationSettings(userID, s))

	w := get(router, "/api/calendar/today")
	var resp packets.TodayResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// March 11 shifted back a day is the last day of Shabaan
	assert.Equal(t, "29 Shabaan 1445", resp.Hijri)
}
