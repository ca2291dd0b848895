package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	expected := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Accepted formats", func(t *testing.T) {
		for _, input := range []string{
			"2026-03-15",
			"15-03-2026",
			"2026-03-15 10:30:00",
			"15-03-2026 10:30:00",
			"2026/03/15",
			"15/03/2026",
		} {
			assert.Equal(t, expected, ParseDate(input), "input %q", input)
		}
	})

	t.Run("Unparseable input yields the zero time", func(t *testing.T) {
		for _, input := range []string{"", "not a date", "2026-13-45", "15.03.2026"} {
			assert.True(t, ParseDate(input).IsZero(), "input %q", input)
		}
	})

	t.Run("Time of day is truncated", func(t *testing.T) {
		parsed := ParseDate("2026-03-15 23:59:59")
		assert.Equal(t, expected, parsed)
	})
}

func TestDateOnly(t *testing.T) {
	stamp := time.Date(2026, 3, 15, 18, 45, 12, 999, time.FixedZone("X", 3600))
	got := DateOnly(stamp)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)

	assert.True(t, DateOnly(time.Time{}).IsZero())
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-15", DateKey(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))

	// The zero time must sort below every real date
	assert.Equal(t, "", DateKey(time.Time{}))
	assert.Less(t, DateKey(time.Time{}), DateKey(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15-03-2026", FormatDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}
