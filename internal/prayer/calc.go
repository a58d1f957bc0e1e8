package prayer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

// minutesSinceMidnight parses "HH:MM" into minutes since midnight.
func minutesSinceMidnight(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(parts[0], "%d", &hours); err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", value, err)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minutes); err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// Next returns the soonest upcoming prayer relative to now. The comparison
// is strict: a prayer whose time equals the current minute counts as already
// passed. When every prayer has passed, the earliest of the day is returned
// (the implicit "tomorrow" wraparound; callers compare against the wall
// clock to compute days ahead).
func Next(schedule model.Schedule, nowMinutes int) model.PrayerEntry {
	type timed struct {
		model.PrayerEntry
		minutes int
	}

	entries := make([]timed, 0, len(schedule))
	for name, value := range schedule {
		minutes, err := minutesSinceMidnight(value)
		if err != nil {
			log.Warn().Err(err).Str("prayer", name).Msg("skipping unparseable prayer time")
			continue
		}
		entries = append(entries, timed{model.PrayerEntry{Name: name, Time: value}, minutes})
	}
	if len(entries) == 0 {
		return model.PrayerEntry{}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].minutes < entries[j].minutes })

	for _, e := range entries {
		if e.minutes > nowMinutes {
			return e.PrayerEntry
		}
	}
	return entries[0].PrayerEntry
}
