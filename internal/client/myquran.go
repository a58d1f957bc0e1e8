// Package client holds the HTTP clients for the three upstream services the
// app is built on. Each client exposes its BaseURL for httptest overrides and
// makes a single attempt per call: callers own the degrade-to-cache policy,
// so no retries happen here.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

const defaultMyQuranBaseURL = "https://api.myquran.com"

// MyQuran talks to the myquran.com API: city catalogue, daily prayer
// schedules and the Hijri calendar.
type MyQuran struct {
	httpClient *http.Client
	BaseURL    string
}

// NewMyQuran creates a client against the public myquran API.
func NewMyQuran() *MyQuran {
	return &MyQuran{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultMyQuranBaseURL,
	}
}

// Cities fetches the full city catalogue. Entries with missing fields are
// kept with empty strings, matching what the upstream occasionally emits.
func (c *MyQuran) Cities(ctx context.Context) ([]model.City, error) {
	var payload struct {
		Status bool         `json:"status"`
		Data   []model.City `json:"data"`
	}
	url := fmt.Sprintf("%s/v2/sholat/kota/semua", c.BaseURL)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("city list response carried no data")
	}
	return payload.Data, nil
}

// DailySchedule fetches the five prayer times for a city on the given date.
func (c *MyQuran) DailySchedule(ctx context.Context, cityID string, date time.Time) (model.Schedule, error) {
	var payload struct {
		Status bool `json:"status"`
		Data   struct {
			Jadwal struct {
				Subuh   string `json:"subuh"`
				Dzuhur  string `json:"dzuhur"`
				Ashar   string `json:"ashar"`
				Maghrib string `json:"maghrib"`
				Isya    string `json:"isya"`
			} `json:"jadwal"`
		} `json:"data"`
	}
	url := fmt.Sprintf("%s/v2/sholat/jadwal/%s/%s", c.BaseURL, cityID, date.Format("2006/01/02"))
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	j := payload.Data.Jadwal
	if j.Subuh == "" || j.Dzuhur == "" || j.Ashar == "" || j.Maghrib == "" || j.Isya == "" {
		return nil, fmt.Errorf("schedule for city %s is incomplete", cityID)
	}
	return model.Schedule{
		"Subuh":   j.Subuh,
		"Dzuhur":  j.Dzuhur,
		"Ashar":   j.Ashar,
		"Maghrib": j.Maghrib,
		"Isya":    j.Isya,
	}, nil
}

// HijriToday fetches today's Hijri date. The adj=-1 query matches the
// adjustment the Indonesian calendar authorities apply.
func (c *MyQuran) HijriToday(ctx context.Context) (*model.HijriToday, error) {
	var payload struct {
		Status bool              `json:"status"`
		Data   *model.HijriToday `json:"data"`
	}
	url := fmt.Sprintf("%s/v2/cal/hijr/?adj=-1", c.BaseURL)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil || payload.Data.Date == "" {
		return nil, fmt.Errorf("hijri response carried no data")
	}
	return payload.Data, nil
}

func (c *MyQuran) getJSON(ctx context.Context, url string, out any) error {
	return getJSON(ctx, c.httpClient, url, out)
}
