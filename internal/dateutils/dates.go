// Package dateutils carries the date presentation helpers shared by the
// record views and the printable document.
package dateutils

import (
	"time"
)

// inputLayouts are the formats stored dates may arrive in. Forms write
// yyyy-MM-dd; older hand-typed records used the others.
var inputLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006-01-02T15:04",
}

// displayLayout is dd/MM/yyyy.
const displayLayout = "02/01/2006"

// FormatDate renders a stored date as dd/MM/yyyy. Empty input stays empty and
// an unparseable value is echoed back unchanged rather than dropped.
func FormatDate(fecha string) string {
	if fecha == "" {
		return ""
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, fecha); err == nil {
			return t.Format(displayLayout)
		}
	}
	return fecha
}

// DaysOfLife computes the whole days elapsed from the birth date and time to
// now. The result feeds the record's ddv field, which is caller-maintained:
// the store never derives it. Returns false when the birth date is absent or
// unparseable.
func DaysOfLife(fechaNacimiento, horaNacimiento string, now time.Time) (int, bool) {
	if fechaNacimiento == "" {
		return 0, false
	}
	if horaNacimiento == "" {
		horaNacimiento = "00:00"
	}
	nacimiento, err := time.ParseInLocation("2006-01-02T15:04", fechaNacimiento+"T"+horaNacimiento, now.Location())
	if err != nil {
		return 0, false
	}
	return int(now.Sub(nacimiento).Hours() / 24), true
}
