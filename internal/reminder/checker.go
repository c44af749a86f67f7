// Package reminder implements the periodic notification trigger sweep: a
// daily verse/hadith prompt and exact-minute prayer-time reminders, both
// deduplicated so each fires at most once per day per user.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/model"
	"github.com/sakinah-tech/minbar/internal/qada"
	"github.com/sakinah-tech/minbar/internal/redis"
)

// CheckInterval is the cooperative recheck period. Sweeps are synchronous
// and fast, so ticks never overlap.
const CheckInterval = 30 * time.Second

// dailyPromptHour: the verse/hadith prompt only fires from this hour on.
const dailyPromptHour = 8

type Checker struct {
	store    db.Store
	pub      Publisher
	interval time.Duration
	clock    func() time.Time
}

func NewChecker(store db.Store, pub Publisher) *Checker {
	return &Checker{
		store:    store,
		pub:      pub,
		interval: CheckInterval,
		clock:    time.Now,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (c *Checker) Start(ctx context.Context) {
	log.Info().Dur("interval", c.interval).Msg("reminder checker started")
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder checker stopped")
			return
		case <-ticker.C:
			c.Sweep(ctx)
		}
	}
}

// Sweep checks every user's reminder conditions against a single clock
// reading.
func (c *Checker) Sweep(ctx context.Context) {
	now := c.clock()

	ids, err := c.store.ListUserIDs()
	if err != nil {
		log.Error().Err(err).Msg("reminder sweep could not list users")
		return
	}
	for _, id := range ids {
		c.sweepUser(ctx, id, now)
	}
}

func (c *Checker) sweepUser(ctx context.Context, userID int, now time.Time) {
	settings, err := c.store.GetNotificationSettings(userID)
	if err != nil {
		log.Error().Err(err).Int("user", userID).Msg("reminder sweep could not load settings")
		return
	}
	if !settings.Enabled {
		return
	}

	dateKey := qada.DateKey(now)
	changed := false

	if settings.DailyVerse && settings.LastDailyPrompt != dateKey && now.Hour() >= dailyPromptHour {
		guard := fmt.Sprintf("reminder:%d:daily:%s", userID, dateKey)
		if redis.MarkOnce(ctx, guard, 24*time.Hour) {
			c.publishDaily(userID, now)
		}
		settings.LastDailyPrompt = dateKey
		changed = true
	}

	if settings.PrayerReminders {
		current := now.Format("15:04")
		for _, name := range model.PrayerNames {
			at, ok := settings.PrayerTimes[name]
			if !ok || at != current {
				continue
			}
			uniqueID := name + "_" + dateKey
			if settings.LastNotifiedPrayer == uniqueID {
				continue
			}
			guard := fmt.Sprintf("reminder:%d:prayer:%s", userID, uniqueID)
			if redis.MarkOnce(ctx, guard, 24*time.Hour) {
				title := fmt.Sprintf("Time for %s", name)
				body := fmt.Sprintf("It is now time for %s.", name)
				if err := c.pub.Publish(userID, title, body); err != nil {
					log.Error().Err(err).Int("user", userID).Str("prayer", name).Msg("failed to publish prayer reminder")
				}
			}
			settings.LastNotifiedPrayer = uniqueID
			changed = true
		}
	}

	if changed {
		if err := c.store.SetNotificationSettings(userID, settings); err != nil {
			log.Error().Err(err).Int("user", userID).Msg("failed to persist reminder state")
		}
	}
}

// publishDaily rotates between verses and hadiths by day of month.
func (c *Checker) publishDaily(userID int, now time.Time) {
	day := now.Day()
	var title, body string
	if day%2 == 0 && len(model.SeedVerses) > 0 {
		v := model.SeedVerses[day%len(model.SeedVerses)]
		title = "Divine Guidance"
		body = fmt.Sprintf("%q - %s", v.Text, v.Reference)
	} else if len(model.SeedHadiths) > 0 {
		h := model.SeedHadiths[day%len(model.SeedHadiths)]
		title = "Prophetic Wisdom"
		body = fmt.Sprintf("%q - %s", h.Text, h.Narrator)
	} else {
		return
	}
	if err := c.pub.Publish(userID, title, body); err != nil {
		log.Error().Err(err).Int("user", userID).Msg("failed to publish daily reminder")
	}
}
