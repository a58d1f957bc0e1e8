package quran

import (
	"regexp"
	"strings"
)

// Translation payloads arrive with embedded footnote markup that must not
// reach readers. The patterns are applied in order; later ones mop up what
// earlier ones leave behind.
var (
	reSupTag        = regexp.MustCompile(`<sup[^>]*>.*?</sup>`)
	reSelfClosedSup = regexp.MustCompile(`<sup[^>]*/>`)
	rePairedTag     = regexp.MustCompile(`<[^>]*>.*?</[^>]*>`)
	reSelfClosedTag = regexp.MustCompile(`<[^>]*/>`)
	reAnyTag        = regexp.MustCompile(`<[^>]*>`)
	reBracketNote   = regexp.MustCompile(`\[\d+\]`)
	reParenNote     = regexp.MustCompile(`\(\d+\)`)
	reFootNoteAttr  = regexp.MustCompile(`foot_note=\d+`)
	reWhitespace    = regexp.MustCompile(`\s+`)
)

// CleanText strips HTML tags, footnote references, and stray footnote
// attributes from a translation string, collapsing runs of whitespace.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	out := reSupTag.ReplaceAllString(text, "")
	out = reSelfClosedSup.ReplaceAllString(out, "")
	out = rePairedTag.ReplaceAllString(out, "")
	out = reSelfClosedTag.ReplaceAllString(out, "")
	out = reAnyTag.ReplaceAllString(out, "")
	out = reBracketNote.ReplaceAllString(out, "")
	out = reParenNote.ReplaceAllString(out, "")
	out = reFootNoteAttr.ReplaceAllString(out, "")
	out = reWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Truncate shortens text to at most maxLen runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
