package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyQuranDailySchedule(t *testing.T) {
	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(`{"status":true,"data":{"jadwal":{
			"subuh":"04:40","dzuhur":"11:55","ashar":"15:15","maghrib":"17:50","isya":"19:05"}}}`))
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	schedule, err := c.DailySchedule(context.Background(), "1301", date)
	require.NoError(t, err)
	assert.Equal(t, "/v2/sholat/jadwal/1301/2025/03/10", requestedPath)
	assert.Equal(t, "04:40", schedule["Subuh"])
	assert.Equal(t, "19:05", schedule["Isya"])
	assert.Len(t, schedule, 5)
}

func TestMyQuranDailyScheduleRejectsIncomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{"jadwal":{"subuh":"04:40","dzuhur":"11:55"}}}`))
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	_, err := c.DailySchedule(context.Background(), "1301", time.Now())
	assert.Error(t, err)
}

func TestMyQuranCities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/sholat/kota/semua", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":[{"id":"1301","nama":"KOTA JAKARTA","lokasi":"KOTA JAKARTA"}]}`))
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	cities, err := c.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "1301", cities[0].ID)
	assert.Equal(t, "KOTA JAKARTA", cities[0].Name)
}

func TestMyQuranHijriToday(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-1", r.URL.Query().Get("adj"))
		w.Write([]byte(`{"status":true,"data":{"day":"Senin","date":"21","month":"Ramadhan","year":"1446"}}`))
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	today, err := c.HijriToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "21", today.Date)
	assert.Equal(t, "Ramadhan", today.Month)
	assert.Equal(t, "1446", today.Year)
}

func TestMyQuranHijriTodayEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false}`))
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	_, err := c.HijriToday(context.Background())
	assert.Error(t, err)
}

func TestAlQuranSurah(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/surah/1", r.URL.Path)
		w.Write([]byte(`{"code":200,"data":{"number":1,"name":"سورة الفاتحة","englishName":"Al-Faatiha",
			"numberOfAyahs":7,"ayahs":[{"numberInSurah":1,"text":"بسم الله"}]}}`))
	}))
	defer srv.Close()

	c := NewAlQuran()
	c.BaseURL = srv.URL

	surah, err := c.Surah(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, surah.Number)
	assert.Equal(t, "Al-Faatiha", surah.EnglishName)
	require.Len(t, surah.Ayahs, 1)
	assert.Equal(t, []string{"بسم الله"}, surah.Texts())
}

func TestAlQuranSurahTranslationPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/surah/112/id.indonesian", r.URL.Path)
		w.Write([]byte(`{"code":200,"data":{"number":112,"ayahs":[]}}`))
	}))
	defer srv.Close()

	c := NewAlQuran()
	c.BaseURL = srv.URL

	_, err := c.SurahTranslation(context.Background(), 112)
	require.NoError(t, err)
}

func TestAlQuranRejectsNonOKCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":404,"data":null}`))
	}))
	defer srv.Close()

	c := NewAlQuran()
	c.BaseURL = srv.URL

	_, err := c.Surah(context.Background(), 1)
	assert.Error(t, err)
}

func TestQuranComChapterTranslations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/quran/translations/33", r.URL.Path)
		assert.Equal(t, "112", r.URL.Query().Get("chapter_number"))
		w.Write([]byte(`{"translations":[{"text":"satu"},{"text":"dua"}]}`))
	}))
	defer srv.Close()

	c := NewQuranCom()
	c.BaseURL = srv.URL

	texts, err := c.ChapterTranslations(context.Background(), 112)
	require.NoError(t, err)
	assert.Equal(t, []string{"satu", "dua"}, texts)
}

func TestQuranComEmptyTranslations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translations":[]}`))
	}))
	defer srv.Close()

	c := NewQuranCom()
	c.BaseURL = srv.URL

	_, err := c.ChapterTranslations(context.Background(), 112)
	assert.Error(t, err)
}

func TestGetJSONRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	_, err := c.Cities(context.Background())
	assert.Error(t, err)
}

func TestGetJSONRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewMyQuran()
	c.BaseURL = srv.URL

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Cities(ctx)
	assert.Error(t, err)
}
