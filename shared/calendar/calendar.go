// Package calendar handles date-only values. A calendar date is represented as a
// time.Time at 00:00 UTC so it compares with == and maps onto a Postgres DATE column.
package calendar

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"venuebook/shared/constant"
	"venuebook/shared/timezone"
)

var ErrInvalidDate = errors.New("invalid date")

var layouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Parse reads "2006-01-02" or an ISO-8601 date-time and keeps the calendar date as written.
// "2026-12-05T00:00:00.000Z" and "2026-12-05T23:00:00-05:00" both yield 2026-12-05.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return Normalize(parsed), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseAll parses every value, failing on the first invalid one.
func ParseAll(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))

	for _, value := range values {
		date, err := Parse(value)
		if err != nil {
			return nil, err
		}

		dates = append(dates, date)
	}

	return dates, nil
}

// Normalize drops the time of day, keeping the date as seen in t's own location.
func Normalize(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar date in the application timezone.
func Today() time.Time {
	return Normalize(timezone.Now())
}

// IsPast reports whether date is strictly before today.
func IsPast(date time.Time) bool {
	return Normalize(date).Before(Today())
}

func Format(date time.Time) string {
	return Normalize(date).Format(constant.CalendarFormat)
}

func FormatAll(dates []time.Time) []string {
	res := make([]string, len(dates))
	for i, date := range dates {
		res[i] = Format(date)
	}

	return res
}

// Unique returns the normalized dates sorted ascending without duplicates.
func Unique(dates []time.Time) []time.Time {
	res := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		res = append(res, Normalize(date))
	}

	slices.SortFunc(res, func(a, b time.Time) int { return a.Compare(b) })

	return slices.CompactFunc(res, func(a, b time.Time) bool { return a.Equal(b) })
}

// Intersect returns the dates present in both sets, sorted ascending.
func Intersect(a, b []time.Time) []time.Time {
	res := []time.Time{}

	for _, date := range Unique(a) {
		if Contains(b, date) {
			res = append(res, date)
		}
	}

	return res
}

func Contains(dates []time.Time, date time.Time) bool {
	date = Normalize(date)

	return slices.ContainsFunc(dates, func(d time.Time) bool { return Normalize(d).Equal(date) })
}
