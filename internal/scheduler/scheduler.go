// Package scheduler arms one-shot prayer alerts ahead of each prayer time.
// Preferences gate arming, not firing: a timer armed while notifications
// were enabled still fires after they are toggled off. Re-arming the same
// (account, prayer) pair replaces the stale timer instead of stacking a
// duplicate.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/db"
	"github.com/hymuslim/hymuslim-server/internal/model"
	"github.com/hymuslim/hymuslim-server/internal/notify"
	"github.com/hymuslim/hymuslim-server/internal/prayer"
)

type taskKey struct {
	userID int
	prayer string
}

// Task is one armed alert. The handle is kept so a later Arm for the same
// prayer can retract it before it fires.
type Task struct {
	ID     uuid.UUID
	UserID int
	Prayer string
	FireAt time.Time
	timer  *time.Timer
}

// Scheduler owns every armed alert timer in the process.
type Scheduler struct {
	mu       sync.Mutex
	tasks    map[taskKey]*Task
	store    db.Store
	notifier notify.Notifier
	prayers  *prayer.Service
	now      func() time.Time
	refresh  chan struct{}
}

// New builds a Scheduler over the store, the alert channel, and the prayer
// time service.
func New(store db.Store, notifier notify.Notifier, prayers *prayer.Service) *Scheduler {
	return &Scheduler{
		tasks:    make(map[taskKey]*Task),
		store:    store,
		notifier: notifier,
		prayers:  prayers,
		now:      time.Now,
		refresh:  make(chan struct{}, 1),
	}
}

// WithClock replaces the scheduler's notion of now. Test hook.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Arm schedules one alert for the named prayer at prayerTime ("HH:MM",
// today, local clock), minutesBefore minutes ahead. Preconditions are
// evaluated now, once: notifications enabled for the account and for this
// prayer. A target already in the past is a no-op with no next-day rollover;
// the daily re-arm loop covers tomorrow. Reports whether a timer was armed.
func (s *Scheduler) Arm(userID int, prayerName, prayerTime string) (bool, error) {
	prefs, err := s.store.NotificationPreferences(userID)
	if err != nil {
		return false, fmt.Errorf("loading notification preferences: %w", err)
	}
	if !prefs.Enabled || !prefs.Prayers[prayerName] {
		return false, nil
	}

	hours, minutes, err := parseClock(prayerTime)
	if err != nil {
		return false, fmt.Errorf("prayer %s: %w", prayerName, err)
	}

	now := s.now()
	fireAt := time.Date(now.Year(), now.Month(), now.Day(),
		hours, minutes-prefs.MinutesBefore, 0, 0, now.Location())
	if fireAt.Before(now) {
		return false, nil
	}

	task := &Task{
		ID:     uuid.New(),
		UserID: userID,
		Prayer: prayerName,
		FireAt: fireAt,
	}
	alert := notify.PrayerAlert(prayerName, prefs.MinutesBefore)

	s.mu.Lock()
	key := taskKey{userID: userID, prayer: prayerName}
	if stale, ok := s.tasks[key]; ok {
		stale.timer.Stop()
		log.Debug().Str("prayer", prayerName).Int("user", userID).
			Str("task", stale.ID.String()).Msg("replaced stale alert timer")
	}
	task.timer = time.AfterFunc(fireAt.Sub(now), func() { s.fire(key, task, alert) })
	s.tasks[key] = task
	s.mu.Unlock()

	log.Info().Str("prayer", prayerName).Int("user", userID).
		Time("fire_at", fireAt).Msg("alert armed")
	return true, nil
}

// Cancel retracts the armed alert for one prayer, if any.
func (s *Scheduler) Cancel(userID int, prayerName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := taskKey{userID: userID, prayer: prayerName}
	task, ok := s.tasks[key]
	if !ok {
		return false
	}
	task.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Armed returns the pending task for one prayer, or nil.
func (s *Scheduler) Armed(userID int, prayerName string) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks[taskKey{userID: userID, prayer: prayerName}]
}

func (s *Scheduler) fire(key taskKey, task *Task, alert notify.Alert) {
	s.mu.Lock()
	if s.tasks[key] == task {
		delete(s.tasks, key)
	}
	s.mu.Unlock()

	if err := s.notifier.Publish(task.UserID, alert); err != nil {
		log.Error().Err(err).Str("prayer", task.Prayer).Int("user", task.UserID).
			Msg("failed to publish prayer alert")
		return
	}
	log.Info().Str("prayer", task.Prayer).Int("user", task.UserID).Msg("prayer alert fired")
}

// ArmDay arms every opted-in prayer of today's schedule for the account's
// selected city. Returns the number of timers armed. No selected city is not
// an error: there is simply nothing to arm yet.
func (s *Scheduler) ArmDay(ctx context.Context, userID int) (int, error) {
	city, err := s.store.SelectedCity(userID)
	if err != nil {
		return 0, fmt.Errorf("loading selected city: %w", err)
	}
	if city == nil {
		return 0, nil
	}

	schedule := s.prayers.Times(ctx, city.ID)
	armed := 0
	for _, name := range model.PrayerNames {
		prayerTime, ok := schedule[name]
		if !ok {
			continue
		}
		ok, err := s.Arm(userID, name, prayerTime)
		if err != nil {
			log.Warn().Err(err).Str("prayer", name).Int("user", userID).Msg("failed to arm alert")
			continue
		}
		if ok {
			armed++
		}
	}
	return armed, nil
}

// Refresh signals the daily loop to re-arm immediately, e.g. after a
// preference change.
func (s *Scheduler) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Run re-arms alerts for every account now and again just after each local
// midnight, when the date-scoped schedule cache rolls over. A Refresh signal
// forces an immediate pass.
func (s *Scheduler) Run(ctx context.Context) {
	log.Info().Msg("alert scheduler started")

	for {
		s.armAll(ctx)

		now := s.now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, 1).Add(time.Minute)
		timer := time.NewTimer(midnight.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info().Msg("alert scheduler stopped")
			return
		case <-s.refresh:
			timer.Stop()
			log.Info().Msg("alert scheduler refresh requested")
		case <-timer.C:
		}
	}
}

func (s *Scheduler) armAll(ctx context.Context) {
	ids, err := s.store.ListUserIDs()
	if err != nil {
		log.Error().Err(err).Msg("failed to list accounts for alert re-arm")
		return
	}
	for _, id := range ids {
		armed, err := s.ArmDay(ctx, id)
		if err != nil {
			log.Warn().Err(err).Int("user", id).Msg("failed to re-arm alerts")
			continue
		}
		if armed > 0 {
			log.Info().Int("user", id).Int("armed", armed).Msg("alerts re-armed")
		}
	}
}

func parseClock(value string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", value)
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(parts[0], "%d", &hours); err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", value, err)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minutes); err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", value, err)
	}
	return hours, minutes, nil
}
