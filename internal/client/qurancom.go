package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultQuranComBaseURL = "https://api.quran.com"

// indonesianTranslationID is quran.com's resource id for the Indonesian
// ministry translation the app ships with.
const indonesianTranslationID = 33

// QuranCom talks to the quran.com v4 API, the primary source for Indonesian
// translations.
type QuranCom struct {
	httpClient *http.Client
	BaseURL    string
}

// NewQuranCom creates a client against the public quran.com API.
func NewQuranCom() *QuranCom {
	return &QuranCom{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    defaultQuranComBaseURL,
	}
}

// ChapterTranslations fetches the translation texts for one chapter, in
// verse order. Texts may carry footnote markup; callers clean them.
func (c *QuranCom) ChapterTranslations(ctx context.Context, chapter int) ([]string, error) {
	var payload struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	url := fmt.Sprintf("%s/api/v4/quran/translations/%d?chapter_number=%d",
		c.BaseURL, indonesianTranslationID, chapter)
	if err := getJSON(ctx, c.httpClient, url, &payload); err != nil {
		return nil, err
	}
	if len(payload.Translations) == 0 {
		return nil, fmt.Errorf("no translations returned for chapter %d", chapter)
	}

	out := make([]string, 0, len(payload.Translations))
	for _, t := range payload.Translations {
		out = append(out, t.Text)
	}
	return out, nil
}
