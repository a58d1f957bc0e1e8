package packets

import "github.com/hymuslim/hymuslim-server/internal/model"

// TimesResponse carries one day's schedule plus the soonest upcoming prayer.
type TimesResponse struct {
	City  string            `json:"city"`
	Date  string            `json:"date"`
	Times model.Schedule    `json:"times"`
	Next  model.PrayerEntry `json:"next"`
}

// NextResponse carries just the soonest upcoming prayer.
type NextResponse struct {
	City string            `json:"city"`
	Next model.PrayerEntry `json:"next"`
}

// HijriResponse carries today's formatted Hijri date.
type HijriResponse struct {
	Hijri string `json:"hijri"`
}

// CitiesResponse carries the city catalogue.
type CitiesResponse struct {
	Cities []model.City `json:"cities"`
}

// SurahListResponse carries the chapter catalogue.
type SurahListResponse struct {
	Surahs []model.SurahSummary `json:"surahs"`
}
