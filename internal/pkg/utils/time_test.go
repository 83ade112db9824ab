package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warsaw(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	return loc
}

func TestParseLocalDateTime(t *testing.T) {
	loc := warsaw(t)

	winter, err := ParseLocalDateTime("2025-01-15", "10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC), winter)

	summer, err := ParseLocalDateTime("2025-07-15", "10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC), summer)

	tests := []struct {
		name  string
		date  string
		clock string
	}{
		{"unpadded month", "2025-3-01", "10:00"},
		{"unpadded hour", "2025-03-01", "9:00"},
		{"february 30", "2025-02-30", "10:00"},
		{"hour 24", "2025-03-01", "24:00"},
		{"spring forward gap", "2025-03-30", "02:30"},
		{"garbage", "tomorrow", "noon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLocalDateTime(tc.date, tc.clock, loc)
			assert.Error(t, err)
		})
	}
}

func TestParseLocalDate(t *testing.T) {
	loc := warsaw(t)

	midnight, err := ParseLocalDate("2025-03-01", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC), midnight)

	_, err = ParseLocalDate("2025-13-01", loc)
	assert.Error(t, err)
}

func TestAddLocalDaysAcrossDST(t *testing.T) {
	loc := warsaw(t)
	start, err := ParseLocalDate("2025-03-29", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 29, 23, 0, 0, 0, time.UTC), AddLocalDays(start, 1, loc))
	assert.Equal(t, time.Date(2025, 3, 30, 22, 0, 0, 0, time.UTC), AddLocalDays(start, 2, loc))
	assert.Equal(t, "2025-03-31", FormatLocalDate(AddLocalDays(start, 2, loc), loc))
}

func TestStartOfLocalDayAndFormat(t *testing.T) {
	loc := warsaw(t)
	instant := time.Date(2025, 7, 14, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 7, 14, 22, 0, 0, 0, time.UTC), StartOfLocalDay(instant, loc))
	assert.Equal(t, "2025-07-15", FormatLocalDate(instant, loc))
	assert.Equal(t, "00:30", FormatLocalClock(instant, loc))
}
