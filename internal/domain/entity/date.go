package entity

import "time"

// dateLayouts lists the accepted external date formats, in priority order.
// The ISO form came first historically; DD-MM-YYYY is the later display
// convention. Timestamp variants appear in rows written by older builds.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04:05",
	"2006/01/02",
	"02/01/2006",
}

// ParseDate normalizes a free-text date to a calendar date. It is total:
// input matching none of the accepted formats yields the zero time, which
// sorts before every real date. Callers that require a valid date must check
// IsZero and reject with ErrInvalidDate at their boundary.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t)
		}
	}
	return time.Time{}
}

// DateOnly truncates a timestamp to its calendar date at midnight UTC
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey returns the canonical sortable key for a date. The zero time maps
// to the empty (lowest) key.
func DateKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatDate renders a date in the DD-MM-YYYY display convention
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02-01-2006")
}
