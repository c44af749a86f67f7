// Package tasbih implements the dhikr counter state machine: a bounded-below
// counter with goal tracking, a recently-used list and a capped session log.
package tasbih

import (
	"time"

	"github.com/google/uuid"

	"github.com/sakinah-tech/minbar/internal/model"
)

const (
	// HistoryLimit caps the recently-used dhikr list.
	HistoryLimit = 6
	// LogLimit caps saved session logs; oldest entries are evicted first.
	LogLimit = 50
)

// Presets are the built-in dhikr selections.
var Presets = []model.DhikrEntry{
	{Label: "SubhanAllah", Goal: 33},
	{Label: "Alhamdulillah", Goal: 33},
	{Label: "Allahu Akbar", Goal: 34},
	{Label: "La ilaha illa Allah", Goal: 100},
	{Label: "Astaghfirullah", Goal: 100},
}

// CustomLabel names the selection created by SetCustomGoal.
const CustomLabel = "Custom Dhikr"

// State is the counter's display state. GoalReached is not terminal;
// counting continues past the goal.
type State string

const (
	StateIdle        State = "idle"
	StateCounting    State = "counting"
	StateGoalReached State = "goal_reached"
)

// Counter bundles the live session with its history and logs. Methods mutate
// in place; persistence of the touched records is the caller's concern.
type Counter struct {
	Session model.TasbihSession
	History []model.DhikrEntry
	Logs    []model.TasbihLog
}

// DefaultSession is the first-run live counter.
func DefaultSession() model.TasbihSession {
	return model.TasbihSession{Label: "SubhanAllah", Goal: 33, Count: 0}
}

// State reports the current display state.
func (c *Counter) State() State {
	switch {
	case c.Session.Count == 0:
		return StateIdle
	case c.Session.Goal > 0 && c.Session.Count >= c.Session.Goal:
		return StateGoalReached
	default:
		return StateCounting
	}
}

// Increment advances the count by one. There is no upper bound.
func (c *Counter) Increment() {
	c.Session.Count++
}

// Save emits an immutable log entry for the current count, remembers the
// selection in the recency list, and resets the counter. Saving an idle
// counter is a no-op.
func (c *Counter) Save(now time.Time) (model.TasbihLog, bool) {
	if c.Session.Count == 0 {
		return model.TasbihLog{}, false
	}
	entry := model.TasbihLog{
		ID:        uuid.NewString(),
		Label:     c.Session.Label,
		Count:     c.Session.Count,
		Goal:      c.Session.Goal,
		Timestamp: now.UnixMilli(),
	}
	c.Logs = append([]model.TasbihLog{entry}, c.Logs...)
	if len(c.Logs) > LogLimit {
		c.Logs = c.Logs[:LogLimit]
	}
	c.remember(c.Session.Label, c.Session.Goal)
	c.Session.Count = 0
	return entry, true
}

// Reset zeroes the count without logging. The recency list is untouched.
// Returns false when there was nothing to reset.
func (c *Counter) Reset() bool {
	if c.Session.Count == 0 {
		return false
	}
	c.Session.Count = 0
	return true
}

// Select switches the active dhikr. An in-progress count on a different
// selection is snapshotted into the recency list before switching; the count
// always resets.
func (c *Counter) Select(label string, goal int) {
	if c.Session.Count > 0 && (c.Session.Label != label || c.Session.Goal != goal) {
		c.remember(c.Session.Label, c.Session.Goal)
	}
	c.Session.Label = label
	c.Session.Goal = goal
	c.Session.Count = 0
}

// SetCustomGoal selects a custom dhikr with the given target. Non-positive
// goals are rejected silently.
func (c *Counter) SetCustomGoal(goal int) bool {
	if goal <= 0 {
		return false
	}
	c.Select(CustomLabel, goal)
	return true
}

// DeleteLog removes one saved session by ID.
func (c *Counter) DeleteLog(id string) bool {
	for i, l := range c.Logs {
		if l.ID == id {
			c.Logs = append(c.Logs[:i], c.Logs[i+1:]...)
			return true
		}
	}
	return false
}

// ClearHistory empties the recently-used list.
func (c *Counter) ClearHistory() {
	c.History = nil
}

// remember prepends (label, goal) to the recency list, deduplicated by exact
// match and capped at HistoryLimit.
func (c *Counter) remember(label string, goal int) {
	filtered := make([]model.DhikrEntry, 0, len(c.History)+1)
	filtered = append(filtered, model.DhikrEntry{Label: label, Goal: goal})
	for _, h := range c.History {
		if h.Label != label || h.Goal != goal {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) > HistoryLimit {
		filtered = filtered[:HistoryLimit]
	}
	c.History = filtered
}
