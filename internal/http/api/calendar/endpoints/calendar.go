package endpoints

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/hijri"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/calendar/packets"
	"github.com/sakinah-tech/minbar/internal/model"
	"github.com/sakinah-tech/minbar/internal/qada"
)

type CalendarController struct {
	store db.Store
	clock func() time.Time
}

func NewCalendarController(store db.Store) *CalendarController {
	return &CalendarController{store: store, clock: time.Now}
}

// CalendarModule mounts the dual-calendar endpoints.
func CalendarModule(store db.Store) api.Module {
	ctl := NewCalendarController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/calendar/grid", ctl.getGrid)
		c.GET("/calendar/advance", ctl.advance)
		c.GET("/calendar/today", ctl.getToday)
	})
}

// config loads the user's conversion settings; a failed read falls back to
// the defaults so the calendar always renders.
func (cc *CalendarController) config(userID int) hijri.Config {
	settings, err := cc.store.GetNotificationSettings(userID)
	if err != nil {
		settings = model.DefaultNotificationSettings()
	}
	return hijri.ConfigFrom(settings)
}

func parseView(raw string) (hijri.ViewMode, bool) {
	switch raw {
	case "", string(hijri.ViewHijri):
		return hijri.ViewHijri, true
	case string(hijri.ViewGregorian):
		return hijri.ViewGregorian, true
	}
	return "", false
}

func (cc *CalendarController) parseRef(raw string) (time.Time, bool) {
	if raw == "" {
		return cc.clock(), true
	}
	t, err := time.Parse(qada.DateKeyLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GET /api/calendar/grid?date=&view=
func (cc *CalendarController) getGrid(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	view, ok := parseView(ctx.Query("view"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid view"}
	}
	ref, ok := cc.parseRef(ctx.Query("date"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}

	cfg := cc.config(user.ID)
	todayKey := qada.DateKey(cc.clock())

	cells := make([]packets.GridCell, 0, hijri.GridCells)
	for _, day := range hijri.BuildMonthGrid(ref, view, cfg) {
		cells = append(cells, packets.GridCell{
			Date:           qada.DateKey(day.Date),
			GregorianDay:   day.Date.Day(),
			HijriDay:       hijri.Field(day.Date, hijri.PartDay, cfg),
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        qada.DateKey(day.Date) == todayKey,
			IsJummah:       day.Date.Weekday() == time.Friday,
		})
	}

	var title, subtitle string
	if view == hijri.ViewHijri {
		title = fmt.Sprintf("%s %s",
			hijri.Field(ref, hijri.PartMonth, cfg),
			hijri.Field(ref, hijri.PartYear, cfg))
		subtitle = ref.Format("January 2006")
	} else {
		title = ref.Format("January 2006")
		subtitle = hijri.Field(ref, hijri.PartFull, cfg)
	}

	return packets.GridResponse{
		View:          string(view),
		ReferenceDate: qada.DateKey(ref),
		Title:         title,
		Subtitle:      subtitle,
		Cells:         cells,
	}, nil
}

// GET /api/calendar/advance?date=&view=&dir=
func (cc *CalendarController) advance(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	view, ok := parseView(ctx.Query("view"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid view"}
	}
	ref, ok := cc.parseRef(ctx.Query("date"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}

	var forward bool
	switch ctx.Query("dir") {
	case "next":
		forward = true
	case "prev":
		forward = false
	default:
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid direction"}
	}

	next := hijri.AdvanceMonth(ref, view, forward, cc.config(user.ID))
	return packets.AdvanceResponse{ReferenceDate: qada.DateKey(next)}, nil
}

// GET /api/calendar/today
func (cc *CalendarController) getToday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	now := cc.clock()
	cfg := cc.config(user.ID)
	return packets.TodayResponse{
		Gregorian: now.Format("January 2, 2006"),
		Hijri:     hijri.Field(now, hijri.PartFull, cfg),
	}, nil
}
