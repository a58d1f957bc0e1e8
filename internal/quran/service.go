// Package quran serves the chapter catalogue and chapter text, merging the
// Arabic source with the Indonesian translation and caching whole chapters.
package quran

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/cache"
	"github.com/hymuslim/hymuslim-server/internal/client"
	"github.com/hymuslim/hymuslim-server/internal/model"
)

const surahListCacheKey = "quranSurahs"

// SurahCount is the number of chapters in the Quran.
const SurahCount = 114

// Service reads chapters cache-first from the two upstream Quran APIs.
type Service struct {
	alquran  *client.AlQuran
	quranCom *client.QuranCom
	cache    *cache.Layer
}

// NewService builds a Service over the given clients and cache layer.
func NewService(alquran *client.AlQuran, quranCom *client.QuranCom, layer *cache.Layer) *Service {
	return &Service{alquran: alquran, quranCom: quranCom, cache: layer}
}

// Surahs returns the catalogue of all chapters, cached indefinitely.
// Failures degrade to the cached copy, then to an empty list.
func (s *Service) Surahs(ctx context.Context) []model.SurahSummary {
	if raw, ok := s.cache.Lookup(ctx, surahListCacheKey); ok {
		var cached []model.SurahSummary
		if err := json.Unmarshal(raw, &cached); err == nil && len(cached) > 0 {
			return cached
		}
		log.Warn().Msg("malformed cached surah list, refetching")
	}

	surahs, err := s.alquran.Surahs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("surah catalogue fetch failed")
		return []model.SurahSummary{}
	}

	if raw, err := json.Marshal(surahs); err == nil {
		s.cache.Store(ctx, surahListCacheKey, raw)
	}
	return surahs
}

func surahCacheKey(number int) string {
	return fmt.Sprintf("surah_%d", number)
}

// Surah returns one chapter with Arabic text and cleaned Indonesian
// translation. Cached whole; a miss fetches the Arabic source, then the
// primary translation service with the secondary as fallback. Missing
// translations degrade to empty strings rather than failing the chapter.
func (s *Service) Surah(ctx context.Context, number int) (*model.Surah, error) {
	if number < 1 || number > SurahCount {
		return nil, fmt.Errorf("surah number %d out of range [1,%d]", number, SurahCount)
	}

	key := surahCacheKey(number)
	if raw, ok := s.cache.Lookup(ctx, key); ok {
		var cached model.Surah
		if err := json.Unmarshal(raw, &cached); err == nil && len(cached.Verses) > 0 {
			return &cached, nil
		}
		log.Warn().Str("key", key).Msg("malformed cached surah, refetching")
	}

	arabic, err := s.alquran.Surah(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("fetching surah %d: %w", number, err)
	}

	translations := s.translations(ctx, number, len(arabic.Ayahs))

	surah := &model.Surah{
		Number:        arabic.Number,
		Name:          arabic.Name,
		EnglishName:   arabic.EnglishName,
		NumberOfAyahs: arabic.NumberOfAyahs,
		Verses:        make([]model.Verse, 0, len(arabic.Ayahs)),
	}
	for i, ayah := range arabic.Ayahs {
		verse := model.Verse{
			Number: ayah.NumberInSurah,
			Arabic: ayah.Text,
		}
		if i < len(translations) {
			verse.Translation = CleanText(translations[i])
		}
		surah.Verses = append(surah.Verses, verse)
	}

	if raw, err := json.Marshal(surah); err == nil {
		s.cache.Store(ctx, key, raw)
	}
	return surah, nil
}

// translations fetches the Indonesian texts for one chapter: quran.com
// first, then the alquran.cloud edition, then none.
func (s *Service) translations(ctx context.Context, number, verseCount int) []string {
	texts, err := s.quranCom.ChapterTranslations(ctx, number)
	if err == nil && len(texts) >= verseCount {
		return texts
	}
	if err != nil {
		log.Warn().Err(err).Int("surah", number).Msg("primary translation fetch failed, trying fallback")
	}

	fallback, err := s.alquran.SurahTranslation(ctx, number)
	if err != nil {
		log.Error().Err(err).Int("surah", number).Msg("fallback translation fetch failed")
		return nil
	}
	return fallback.Texts()
}
