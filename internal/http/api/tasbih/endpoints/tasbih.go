package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/http/api"
	"github.com/sakinah-tech/minbar/internal/http/api/tasbih/packets"
	"github.com/sakinah-tech/minbar/internal/model"
	"github.com/sakinah-tech/minbar/internal/tasbih"
)

type TasbihController struct {
	store db.Store
	clock func() time.Time
}

func NewTasbihController(store db.Store) *TasbihController {
	return &TasbihController{store: store, clock: time.Now}
}

// TasbihModule mounts the dhikr counter endpoints.
func TasbihModule(store db.Store) api.Module {
	ctl := NewTasbihController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/tasbih", ctl.getCounter)
		c.POST("/tasbih/increment", ctl.increment)
		c.POST("/tasbih/save", ctl.save)
		c.POST("/tasbih/reset", ctl.reset)
		c.POST("/tasbih/select", ctl.selectDhikr)
		c.POST("/tasbih/goal", ctl.setCustomGoal)
		c.GET("/tasbih/logs", ctl.getLogs)
		c.DELETE("/tasbih/logs/:id", ctl.deleteLog)
		c.DELETE("/tasbih/history", ctl.clearHistory)
	})
}

// load assembles the counter from its three records.
func (t *TasbihController) load(userID int) (*tasbih.Counter, *api.APIError) {
	session, err := t.store.GetTasbih(userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load counter"}
	}
	history, err := t.store.GetTasbihHistory(userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load history"}
	}
	logs, err := t.store.GetTasbihLogs(userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load session logs"}
	}
	return &tasbih.Counter{Session: session, History: history, Logs: logs}, nil
}

func (t *TasbihController) counterResponse(c *tasbih.Counter) packets.CounterResponse {
	return packets.CounterResponse{
		Session: c.Session,
		State:   string(c.State()),
		History: c.History,
		Presets: tasbih.Presets,
	}
}

// GET /api/tasbih
func (t *TasbihController) getCounter(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	return t.counterResponse(counter), nil
}

// POST /api/tasbih/increment
func (t *TasbihController) increment(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	counter.Increment()
	if err := t.store.SetTasbih(user.ID, counter.Session); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save counter"}
	}
	return t.counterResponse(counter), nil
}

// POST /api/tasbih/save
// A zero count is a no-op: no log entry, no history change.
func (t *TasbihController) save(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}

	entry, saved := counter.Save(t.clock())
	if !saved {
		return t.counterResponse(counter), nil
	}

	if err := t.store.SetTasbihLogs(user.ID, counter.Logs); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save session logs"}
	}
	if err := t.store.SetTasbihHistory(user.ID, counter.History); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save history"}
	}
	if err := t.store.SetTasbih(user.ID, counter.Session); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save counter"}
	}
	return packets.SaveResponse{Log: entry, Session: counter.Session}, nil
}

// POST /api/tasbih/reset
func (t *TasbihController) reset(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	if counter.Reset() {
		if err := t.store.SetTasbih(user.ID, counter.Session); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save counter"}
		}
	}
	return t.counterResponse(counter), nil
}

// POST /api/tasbih/select
func (t *TasbihController) selectDhikr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SelectDhikrRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	counter.Select(request.Label, request.Goal)

	if err := t.store.SetTasbihHistory(user.ID, counter.History); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save history"}
	}
	if err := t.store.SetTasbih(user.ID, counter.Session); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save counter"}
	}
	return t.counterResponse(counter), nil
}

// POST /api/tasbih/goal
// Non-positive goals are rejected without a state change.
func (t *TasbihController) setCustomGoal(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CustomGoalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	if !counter.SetCustomGoal(request.Goal) {
		return t.counterResponse(counter), nil
	}

	if err := t.store.SetTasbihHistory(user.ID, counter.History); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save history"}
	}
	if err := t.store.SetTasbih(user.ID, counter.Session); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save counter"}
	}
	return t.counterResponse(counter), nil
}

// GET /api/tasbih/logs
func (t *TasbihController) getLogs(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	logs, err := t.store.GetTasbihLogs(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load session logs"}
	}
	if logs == nil {
		logs = []model.TasbihLog{}
	}
	return logs, nil
}

// DELETE /api/tasbih/logs/:id
func (t *TasbihController) deleteLog(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	if !counter.DeleteLog(ctx.Param("id")) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "log not found"}
	}
	if err := t.store.SetTasbihLogs(user.ID, counter.Logs); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save session logs"}
	}
	return gin.H{"deleted": true}, nil
}

// DELETE /api/tasbih/history
func (t *TasbihController) clearHistory(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	counter, apiErr := t.load(user.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	counter.ClearHistory()
	if err := t.store.SetTasbihHistory(user.ID, counter.History); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save history"}
	}
	return t.counterResponse(counter), nil
}
