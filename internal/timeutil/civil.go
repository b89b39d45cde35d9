package timeutil

import (
	"fmt"
	"time"
)

// WIB is the fixed civil timezone used for display and date filtering
// (UTC+7, no daylight saving). A FixedZone avoids depending on tzdata being
// present in the deployment image.
var WIB = time.FixedZone("WIB", 7*60*60)

const civilLayout = "2006-01-02 15:04:05"

// Civil formats an instant as a civil date-time string in WIB.
func Civil(t time.Time) string {
	return t.In(WIB).Format(civilLayout)
}

// StartOfDay returns the instant at which t's civil day began in WIB.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(WIB).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, WIB)
}

// StartOfToday returns the start of the current civil day in WIB.
func StartOfToday() time.Time {
	return StartOfDay(time.Now())
}

// StartOfTomorrow returns the exclusive upper bound of the current civil day.
func StartOfTomorrow() time.Time {
	return StartOfToday().AddDate(0, 0, 1)
}

// SameCivilDay reports whether two instants fall on the same WIB calendar date.
func SameCivilDay(a, b time.Time) bool {
	ay, am, ad := a.In(WIB).Date()
	by, bm, bd := b.In(WIB).Date()
	return ay == by && am == bm && ad == bd
}

var parseLayouts = []string{
	civilLayout,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseCivil parses a borrow date sent by a client. Layouts without an
// explicit offset are interpreted in WIB.
func ParseCivil(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, WIB); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
