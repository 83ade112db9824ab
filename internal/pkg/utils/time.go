package utils

import (
	"errors"
	"fmt"
	"time"
	"valivio-service/internal/pkg/constvars"
)

var ErrNonexistentLocalTime = errors.New("local time does not exist in the configured timezone")

// ParseLocalDateTime interprets date ("YYYY-MM-DD") and clock ("HH:mm") as a
// wall-clock time in loc and returns the matching UTC instant. Wall times that
// do not survive a round trip (unpadded input, DST gaps) are rejected.
func ParseLocalDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	layout := constvars.DateLayout + " " + constvars.ClockLayout
	value := date + " " + clock

	parsed, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.Format(layout) != value {
		return time.Time{}, fmt.Errorf("%w: %s %s", ErrNonexistentLocalTime, value, loc.String())
	}
	return parsed.UTC(), nil
}

// ParseLocalDate returns local midnight of date in loc, expressed in UTC.
func ParseLocalDate(date string, loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(constvars.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.Format(constvars.DateLayout) != date {
		return time.Time{}, fmt.Errorf("%w: %s %s", ErrNonexistentLocalTime, date, loc.String())
	}
	return parsed.UTC(), nil
}

// AddLocalDays moves a local midnight forward by n calendar days, so days
// with a DST change still start at 00:00 local.
func AddLocalDays(t time.Time, days int, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+days, 0, 0, 0, 0, loc).UTC()
}

func StartOfLocalDay(t time.Time, loc *time.Location) time.Time {
	return AddLocalDays(t, 0, loc)
}

func FormatLocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constvars.DateLayout)
}

func FormatLocalClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constvars.ClockLayout)
}
