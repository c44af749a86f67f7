package tasbih

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sakinah-tech/minbar/internal/model"
)

func newCounter() *Counter {
	return &Counter{Session: DefaultSession()}
}

func TestStateTransitions(t *testing.T) {
	c := newCounter()
	assert.Equal(t, StateIdle, c.State())

	c.Increment()
	assert.Equal(t, StateCounting, c.State())

	for i := 0; i < 32; i++ {
		c.Increment()
	}
	assert.Equal(t, 33, c.Session.Count)
	assert.Equal(t, StateGoalReached, c.State())

	// counting past the goal is allowed
	c.Increment()
	assert.Equal(t, 34, c.Session.Count)
	assert.Equal(t, StateGoalReached, c.State())
}

func TestSave(t *testing.T) {
	c := newCounter()
	for i := 0; i < 7; i++ {
		c.Increment()
	}

	now := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)
	entry, ok := c.Save(now)
	assert.True(t, ok)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "SubhanAllah", entry.Label)
	assert.Equal(t, 7, entry.Count)
	assert.Equal(t, 33, entry.Goal)
	assert.Equal(t, now.UnixMilli(), entry.Timestamp)

	// counter resets, log prepends, selection is remembered
	assert.Equal(t, 0, c.Session.Count)
	assert.Equal(t, StateIdle, c.State())
	assert.Len(t, c.Logs, 1)
	assert.Equal(t, []model.DhikrEntry{{Label: "SubhanAllah", Goal: 33}}, c.History)
}

func TestSaveIdleIsNoop(t *testing.T) {
	c := newCounter()
	_, ok := c.Save(time.Now())
	assert.False(t, ok)
	assert.Empty(t, c.Logs)
	assert.Empty(t, c.History)
}

func TestLogsNewestFirstAndCapped(t *testing.T) {
	c := newCounter()
	now := time.Now()
	for i := 0; i < LogLimit+5; i++ {
		c.Select(fmt.Sprintf("dhikr-%d", i), 10)
		c.Increment()
		_, ok := c.Save(now)
		assert.True(t, ok)
	}

	assert.Len(t, c.Logs, LogLimit)
	assert.Equal(t, fmt.Sprintf("dhikr-%d", LogLimit+4), c.Logs[0].Label)
	assert.Equal(t, "dhikr-5", c.Logs[LogLimit-1].Label)
}

func TestHistoryDedupAndCap(t *testing.T) {
	c := newCounter()

	for i := 0; i < 10; i++ {
		c.Select(fmt.Sprintf("dhikr-%d", i), 10)
		c.Increment()
		c.Save(time.Now())
	}
	assert.Len(t, c.History, HistoryLimit)
	assert.Equal(t, "dhikr-9", c.History[0].Label)

	// re-saving an existing entry moves it to the front without duplicating
	c.Select("dhikr-7", 10)
	c.Increment()
	c.Save(time.Now())
	assert.Len(t, c.History, HistoryLimit)
	assert.Equal(t, "dhikr-7", c.History[0].Label)
	count := 0
	for _, h := range c.History {
		if h.Label == "dhikr-7" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// same label with a different goal is a distinct entry
	c.Select("dhikr-7", 99)
	c.Increment()
	c.Save(time.Now())
	assert.Equal(t, model.DhikrEntry{Label: "dhikr-7", Goal: 99}, c.History[0])
	assert.Equal(t, model.DhikrEntry{Label: "dhikr-7", Goal: 10}, c.History[1])
}

func TestReset(t *testing.T) {
	c := newCounter()
	assert.False(t, c.Reset())

	c.Increment()
	c.Increment()
	assert.True(t, c.Reset())
	assert.Equal(t, 0, c.Session.Count)
	assert.Empty(t, c.Logs)
	assert.Empty(t, c.History)
}

func TestSelectSnapshotsInProgressCount(t *testing.T) {
	c := newCounter()
	c.Increment()

	// switching away from a live count remembers the old selection
	c.Select("Astaghfirullah", 100)
	assert.Equal(t, 0, c.Session.Count)
	assert.Equal(t, []model.DhikrEntry{{Label: "SubhanAllah", Goal: 33}}, c.History)

	// re-selecting the same dhikr resets the count but records nothing
	c.Increment()
	c.Select("Astaghfirullah", 100)
	assert.Equal(t, 0, c.Session.Count)
	assert.Len(t, c.History, 1)

	// selecting while idle records nothing either
	c.Select("Alhamdulillah", 33)
	assert.Len(t, c.History, 1)
}

func TestSetCustomGoal(t *testing.T) {
	c := newCounter()

	assert.False(t, c.SetCustomGoal(0))
	assert.False(t, c.SetCustomGoal(-5))
	assert.Equal(t, "SubhanAllah", c.Session.Label)

	assert.True(t, c.SetCustomGoal(500))
	assert.Equal(t, CustomLabel, c.Session.Label)
	assert.Equal(t, 500, c.Session.Goal)
	assert.Equal(t, 0, c.Session.Count)
}

func TestDeleteLog(t *testing.T) {
	c := newCounter()
	c.Increment()
	first, _ := c.Save(time.Now())
	c.Increment()
	second, _ := c.Save(time.Now())

	assert.True(t, c.DeleteLog(first.ID))
	assert.Len(t, c.Logs, 1)
	assert.Equal(t, second.ID, c.Logs[0].ID)

	assert.False(t, c.DeleteLog("missing"))
	assert.Len(t, c.Logs, 1)
}

func TestClearHistory(t *testing.T) {
	c := newCounter()
	c.Increment()
	c.Save(time.Now())
	assert.NotEmpty(t, c.History)

	c.ClearHistory()
	assert.Empty(t, c.History)
	// logs survive a history clear
	assert.Len(t, c.Logs, 1)
}
