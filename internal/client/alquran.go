package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hymuslim/hymuslim-server/internal/model"
)

const defaultAlQuranBaseURL = "https://api.alquran.cloud"

// AlQuran talks to the alquran.cloud API for the chapter catalogue, Arabic
// text, and the Indonesian translation used as fallback.
type AlQuran struct {
	httpClient *http.Client
	BaseURL    string
}

// NewAlQuran creates a client against the public alquran.cloud API.
func NewAlQuran() *AlQuran {
	return &AlQuran{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    defaultAlQuranBaseURL,
	}
}

type Ayah struct {
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
}

type Chapter struct {
	Number                 int           `json:"number"`
	Name                   string        `json:"name"`
	EnglishName            string        `json:"englishName"`
	EnglishNameTranslation string        `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
	Ayahs                  []Ayah `json:"ayahs"`
}

// Surahs fetches the catalogue of all 114 chapters.
func (c *AlQuran) Surahs(ctx context.Context) ([]model.SurahSummary, error) {
	var payload struct {
		Code int       `json:"code"`
		Data []Chapter `json:"data"`
	}
	url := fmt.Sprintf("%s/v1/surah", c.BaseURL)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if payload.Code != 200 || len(payload.Data) == 0 {
		return nil, fmt.Errorf("surah catalogue response code %d with %d entries", payload.Code, len(payload.Data))
	}

	out := make([]model.SurahSummary, 0, len(payload.Data))
	for _, s := range payload.Data {
		out = append(out, model.SurahSummary{
			Number:                 s.Number,
			Name:                   s.Name,
			EnglishName:            s.EnglishName,
			EnglishNameTranslation: s.EnglishNameTranslation,
			NumberOfAyahs:          s.NumberOfAyahs,
			RevelationType:         s.RevelationType,
		})
	}
	return out, nil
}

// Surah fetches the Arabic text of a single chapter.
func (c *AlQuran) Surah(ctx context.Context, number int) (*Chapter, error) {
	return c.fetchSurah(ctx, fmt.Sprintf("%s/v1/surah/%d", c.BaseURL, number))
}

// SurahTranslation fetches the Indonesian edition of a single chapter. Used
// as the fallback when the primary translation service is down.
func (c *AlQuran) SurahTranslation(ctx context.Context, number int) (*Chapter, error) {
	return c.fetchSurah(ctx, fmt.Sprintf("%s/v1/surah/%d/id.indonesian", c.BaseURL, number))
}

func (c *AlQuran) fetchSurah(ctx context.Context, url string) (*Chapter, error) {
	var payload struct {
		Code int      `json:"code"`
		Data *Chapter `json:"data"`
	}
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if payload.Code != 200 || payload.Data == nil {
		return nil, fmt.Errorf("surah response code %d without data", payload.Code)
	}
	return payload.Data, nil
}

func (c *AlQuran) getJSON(ctx context.Context, url string, out any) error {
	return getJSON(ctx, c.httpClient, url, out)
}

// Texts returns the ayah texts in verse order.
func (s *Chapter) Texts() []string {
	out := make([]string, 0, len(s.Ayahs))
	for _, a := range s.Ayahs {
		out = append(out, a.Text)
	}
	return out
}
