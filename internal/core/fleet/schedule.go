package fleet

import (
	"strings"
	"time"
)

// dateLayouts are the calendar-date encodings accepted from roster data.
// Dates carry no time of day.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"Jan 2, 2006",
}

// ParseDate parses a calendar date cell. Returns false for blank or
// unparseable values; callers treat those as "no usable date" rather than
// failing the record.
func ParseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Overlaps reports whether two inclusive date ranges intersect:
// startA <= endB && startB <= endA. Ranges with unparseable endpoints
// never overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, ok := ParseDate(aStart)
	if !ok {
		return false
	}
	ae, ok := ParseDate(aEnd)
	if !ok {
		return false
	}
	bs, ok := ParseDate(bStart)
	if !ok {
		return false
	}
	be, ok := ParseDate(bEnd)
	if !ok {
		return false
	}
	return !as.After(be) && !bs.After(ae)
}

// MissionsOverlap reports whether two missions' date ranges intersect.
func MissionsOverlap(a, b Mission) bool {
	return Overlaps(a.StartDate, a.EndDate, b.StartDate, b.EndDate)
}
