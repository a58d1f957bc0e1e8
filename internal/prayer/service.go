// Package prayer resolves daily prayer schedules, the next upcoming prayer,
// and today's Hijri date, degrading to cached or fixed values whenever an
// upstream is unreachable.
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/cache"
	"github.com/hymuslim/hymuslim-server/internal/client"
	"github.com/hymuslim/hymuslim-server/internal/hijri"
	"github.com/hymuslim/hymuslim-server/internal/model"
)

const (
	citiesCacheKey = "citiesList"
	hijriCacheKey  = "hijriToday"
)

// Service answers prayer-time and calendar queries cache-first.
type Service struct {
	client *client.MyQuran
	cache  *cache.Layer
	now    func() time.Time
}

// NewService builds a Service. The clock is the real one; tests swap it via
// WithClock.
func NewService(mq *client.MyQuran, layer *cache.Layer) *Service {
	return &Service{client: mq, cache: layer, now: time.Now}
}

// WithClock replaces the service's notion of now. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// scheduleKey scopes a cached schedule by city and local date, so a new day
// naturally produces a cache miss without any expiry bookkeeping.
func scheduleKey(cityID string, day time.Time) string {
	return fmt.Sprintf("prayerTimes_%s_%s", cityID, day.Format("2006/01/02"))
}

// Times returns today's schedule for the city. Cache hit → no network. Miss →
// single upstream attempt, cached on success. Any failure → the fixed
// fallback schedule. Never returns an error: readers always get five times.
func (s *Service) Times(ctx context.Context, cityID string) model.Schedule {
	key := scheduleKey(cityID, s.now())

	if raw, ok := s.cache.Lookup(ctx, key); ok {
		var cached model.Schedule
		if err := json.Unmarshal(raw, &cached); err == nil && len(cached) == len(model.PrayerNames) {
			return cached
		}
		log.Warn().Str("key", key).Msg("malformed cached schedule, refetching")
	}

	schedule, err := s.client.DailySchedule(ctx, cityID, s.now())
	if err != nil {
		log.Error().Err(err).Str("city", cityID).Msg("schedule fetch failed, serving fallback times")
		return fallbackCopy()
	}

	if raw, err := json.Marshal(schedule); err == nil {
		s.cache.Store(ctx, key, raw)
	}
	return schedule
}

// NextPrayer resolves today's schedule and picks the soonest upcoming prayer.
func (s *Service) NextPrayer(ctx context.Context, cityID string) model.PrayerEntry {
	now := s.now()
	return Next(s.Times(ctx, cityID), now.Hour()*60+now.Minute())
}

// Cities returns the city catalogue, cached indefinitely. Failures degrade to
// the cached copy, then to an empty list.
func (s *Service) Cities(ctx context.Context) []model.City {
	if raw, ok := s.cache.Lookup(ctx, citiesCacheKey); ok {
		var cached []model.City
		if err := json.Unmarshal(raw, &cached); err == nil && len(cached) > 0 {
			return cached
		}
		log.Warn().Msg("malformed cached city list, refetching")
	}

	cities, err := s.client.Cities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("city list fetch failed")
		return []model.City{}
	}

	if raw, err := json.Marshal(cities); err == nil {
		s.cache.Store(ctx, citiesCacheKey, raw)
	}
	return cities
}

// HijriToday formats today's Hijri date as "<date> <month> <year> H".
// Authority order: remote calendar service, then the cached value, then the
// local tabular conversion.
func (s *Service) HijriToday(ctx context.Context) string {
	today, err := s.client.HijriToday(ctx)
	if err == nil && today.Date != "" && today.Month != "" && today.Year != "" {
		formatted := fmt.Sprintf("%s %s %s H", today.Date, today.Month, today.Year)
		s.cache.Store(ctx, hijriCacheKey, []byte(formatted))
		return formatted
	}
	if err != nil {
		log.Warn().Err(err).Msg("hijri fetch failed, falling back")
	}

	if cached, ok := s.cache.Lookup(ctx, hijriCacheKey); ok && len(cached) > 0 {
		return string(cached)
	}

	d := hijri.ToHijri(s.now())
	return fmt.Sprintf("%d %s %d H", d.Day, d.Month, d.Year)
}

func fallbackCopy() model.Schedule {
	out := make(model.Schedule, len(model.FallbackSchedule))
	for name, value := range model.FallbackSchedule {
		out[name] = value
	}
	return out
}
