// Package hijri converts Gregorian dates to the Islamic calendar using the
// civil (Kuwaiti) tabular algorithm. Approximate: up to one day off near month
// boundaries, so callers should prefer the remote calendar service and fall
// back to this.
package hijri

import "time"

// Months holds the twelve Hijri month names in Indonesian, indexed 0-11.
var Months = [12]string{
	"Muharram", "Safar", "Rabiul Awal", "Rabiul Akhir",
	"Jumadil Awal", "Jumadil Akhir", "Rajab", "Syaban",
	"Ramadhan", "Syawal", "Dzulkaidah", "Dzulhijjah",
}

// Date is a single day in the Hijri calendar.
type Date struct {
	Day   int    `json:"date"`
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// ToHijri converts the given Gregorian date to its Hijri equivalent.
// Pure arithmetic, no I/O, never fails.
func ToHijri(t time.Time) Date {
	day := t.Day()
	month := int(t.Month())
	year := t.Year()

	// Proleptic Gregorian date -> Julian Day Number. The (month-14)/12 term is
	// negative for every month, so it needs floor division rather than Go's
	// truncated division.
	a := floorDiv(month-14, 12)
	jd := (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075

	// JDN -> tabular Islamic calendar.
	l := jd - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	hm := (24 * l) / 709
	hd := l - (709*hm)/24
	hy := 30*n + j - 30

	return Date{Day: hd, Month: Months[hm-1], Year: hy}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
