package progress_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittracker/internal/progress"
)

// Wednesday, 14 Oct 2026, mid-afternoon
var testNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func newTestCalculator(t *testing.T, now time.Time) *progress.StreakCalculator {
	t.Helper()
	mockClock := clock.NewMock()
	mockClock.Set(now)
	return progress.NewStreakCalculator(mockClock, time.UTC)
}

func day(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func workoutOn(t *testing.T, date string) progress.Record {
	t.Helper()
	return progress.Record{
		Date:     day(t, date),
		Type:     "running",
		Duration: 30,
	}
}

func workoutsOn(t *testing.T, dates ...string) []progress.Record {
	t.Helper()
	records := make([]progress.Record, 0, len(dates))
	for _, d := range dates {
		records = append(records, workoutOn(t, d))
	}
	return records
}

func intPtr(i int) *int {
	return &i
}
