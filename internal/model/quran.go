package model

// SurahSummary is one row of the chapter catalogue.
type SurahSummary struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Verse is a single ayah: Arabic text plus its Indonesian translation,
// already cleaned of footnote markup.
type Verse struct {
	Number      int    `json:"number"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// Surah is a full chapter as served to readers.
type Surah struct {
	Number        int     `json:"number"`
	Name          string  `json:"name"`
	EnglishName   string  `json:"englishName"`
	NumberOfAyahs int     `json:"numberOfAyahs"`
	Verses        []Verse `json:"verses"`
}
