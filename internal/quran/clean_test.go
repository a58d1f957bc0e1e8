package quran

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Segala puji bagi Allah", "Segala puji bagi Allah"},
		{"footnote markup", "Some<sup foot_note=123>1</sup> text (1) [2]", "Some text"},
		{"sup with attributes", "awal<sup foot_note=76373>1</sup> akhir", "awal akhir"},
		{"paired tag with content", "a <i>b</i> c", "a c"},
		{"self closed tag", "a <br/> b", "a b"},
		{"unmatched open tag", "kata <b>tebal", "kata tebal"},
		{"bracket reference", "ayat [3] berikut", "ayat berikut"},
		{"paren reference", "ayat (12) berikut", "ayat berikut"},
		{"stray foot_note attribute", "teks foot_note=99 lanjut", "teks lanjut"},
		{"whitespace collapsed", "satu\n\n  dua\tta", "satu dua ta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "pendek", Truncate("pendek", 10))
	assert.Equal(t, "pendek", Truncate("pendek", 6))
	assert.Equal(t, "pen...", Truncate("pendek", 3))

	// Rune-safe: Arabic text must not be cut mid-codepoint.
	assert.Equal(t, "بسم...", Truncate("بسم الله الرحمن الرحيم", 3))
}
