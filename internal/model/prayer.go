package model

// PrayerNames lists the five daily prayers in chronological order. Every
// Schedule carries exactly these keys.
var PrayerNames = []string{"Subuh", "Dzuhur", "Ashar", "Maghrib", "Isya"}

// Schedule maps prayer name to its time of day as "HH:MM" (24h, local clock).
type Schedule map[string]string

// FallbackSchedule is served when the upstream schedule service is
// unreachable or returns garbage. Deliberate degrade-gracefully policy:
// callers always get a usable schedule, never an error.
var FallbackSchedule = Schedule{
	"Subuh":   "04:30",
	"Dzuhur":  "12:00",
	"Ashar":   "15:30",
	"Maghrib": "18:00",
	"Isya":    "19:30",
}

// PrayerEntry is one named prayer time, as returned by the next-prayer
// calculator.
type PrayerEntry struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// City is an entry from the schedule service's city catalogue.
type City struct {
	ID       string `json:"id"`
	Name     string `json:"nama"`
	Location string `json:"lokasi"`
}

// SelectedCity is the account's chosen city for prayer time lookups.
type SelectedCity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HijriToday is the calendar service's view of today's Hijri date. All fields
// are display strings as delivered by the upstream.
type HijriToday struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Month string `json:"month"`
	Year  string `json:"year"`
}
