package hijri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHijriKnownDate(t *testing.T) {
	d := ToHijri(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 26, d.Day)
	assert.Equal(t, "Ramadhan", d.Month)
	assert.Equal(t, 1420, d.Year)
}

func TestToHijriDayAndMonthInRange(t *testing.T) {
	valid := make(map[string]bool, len(Months))
	for _, m := range Months {
		valid[m] = true
	}

	day := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3*365; i++ {
		d := ToHijri(day)
		require.True(t, d.Day >= 1 && d.Day <= 30, "day %d out of range on %s", d.Day, day.Format("2006-01-02"))
		require.True(t, valid[d.Month], "unknown month %q on %s", d.Month, day.Format("2006-01-02"))
		require.True(t, d.Year > 1400 && d.Year < 1500, "implausible year %d on %s", d.Year, day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}
}

func TestToHijriAdvancesOneDayAtATime(t *testing.T) {
	day := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	prev := ToHijri(day)
	for i := 0; i < 400; i++ {
		day = day.AddDate(0, 0, 1)
		cur := ToHijri(day)
		if cur.Month == prev.Month && cur.Year == prev.Year {
			require.Equal(t, prev.Day+1, cur.Day, "gap within month on %s", day.Format("2006-01-02"))
		} else {
			require.Equal(t, 1, cur.Day, "month rollover must start at day 1 on %s", day.Format("2006-01-02"))
			require.True(t, prev.Day == 29 || prev.Day == 30, "month ended on day %d", prev.Day)
		}
		prev = cur
	}
}

func TestToHijriYearLength(t *testing.T) {
	// Walk until a Hijri year boundary, then measure the next year's span.
	day := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	year := ToHijri(day).Year
	for ToHijri(day).Year == year {
		day = day.AddDate(0, 0, 1)
	}
	start := day
	year = ToHijri(day).Year
	for ToHijri(day).Year == year {
		day = day.AddDate(0, 0, 1)
	}
	span := int(day.Sub(start).Hours() / 24)
	assert.True(t, span == 354 || span == 355, "hijri year spanned %d days", span)
}
