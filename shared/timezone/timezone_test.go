package timezone_test

import (
	"testing"
	"time"

	"venuebook/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNow_UsesAppLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)

	original := timezone.GetLocation()
	timezone.SetLocation(loc)
	t.Cleanup(func() { timezone.SetLocation(original) })

	assert.Equal(t, loc, timezone.Now().Location())
	assert.Equal(t, loc, timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestGetLocation_FallsBackToUTC(t *testing.T) {
	original := timezone.GetLocation()
	timezone.SetLocation(nil)
	t.Cleanup(func() { timezone.SetLocation(original) })

	assert.Equal(t, time.UTC, timezone.GetLocation())
	assert.False(t, timezone.Now().IsZero())
}

func TestFormat(t *testing.T) {
	original := timezone.GetLocation()
	timezone.SetLocation(time.UTC)
	t.Cleanup(func() { timezone.SetLocation(original) })

	moment := time.Date(2026, 11, 2, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60))

	assert.Equal(t, "2026-11-03 01:30", timezone.Format(moment, "2006-01-02 15:04"))
}
