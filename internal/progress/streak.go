package progress

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/benbjohnson/clock"
)

const DefaultHistoryDays = 30

type StreakResult struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// DayActivity is one day of the streak history.
type DayActivity struct {
	Date       civil.Date `json:"date"`
	HasWorkout bool       `json:"hasWorkout"`
}

// StreakCalculator computes consecutive-day workout streaks.
// It holds no state besides the clock and the location that defines "today",
// so a single instance can be shared between requests.
type StreakCalculator struct {
	clock    clock.Clock
	location *time.Location
}

func NewStreakCalculator(clk clock.Clock, location *time.Location) *StreakCalculator {
	if location == nil {
		location = time.Local
	}
	return &StreakCalculator{
		clock:    clk,
		location: location,
	}
}

// Today returns the current calendar date in the calculator's location.
func (c *StreakCalculator) Today() civil.Date {
	return civil.DateOf(c.clock.Now().In(c.location))
}

func (c *StreakCalculator) CurrentStreak(records []Record) int {
	return currentStreakOn(records, c.Today())
}

func (c *StreakCalculator) LongestStreak(records []Record) int {
	return longestStreak(records)
}

func (c *StreakCalculator) Streaks(records []Record) StreakResult {
	return StreakResult{
		CurrentStreak: currentStreakOn(records, c.Today()),
		LongestStreak: longestStreak(records),
	}
}

// History returns the last `days` calendar days ending today, oldest first.
func (c *StreakCalculator) History(records []Record, days int) []DayActivity {
	if days <= 0 {
		return []DayActivity{}
	}

	today := c.Today()
	dates := distinctDates(records)
	history := make([]DayActivity, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		_, ok := dates[day]
		history = append(history, DayActivity{
			Date:       day,
			HasWorkout: ok,
		})
	}
	return history
}

func distinctDates(records []Record) map[civil.Date]struct{} {
	dates := make(map[civil.Date]struct{}, len(records))
	for _, r := range records {
		dates[r.Date] = struct{}{}
	}
	return dates
}

func currentStreakOn(records []Record, today civil.Date) int {
	dates := distinctDates(records)
	if len(dates) == 0 {
		return 0
	}

	var latest civil.Date
	first := true
	for d := range dates {
		if first || d.After(latest) {
			latest = d
			first = false
		}
	}

	// most recent workout older than yesterday: streak is broken
	if latest.Before(today.AddDays(-1)) {
		return 0
	}

	streak := 0
	for day := latest; ; day = day.AddDays(-1) {
		if _, ok := dates[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

func longestStreak(records []Record) int {
	dates := distinctDates(records)
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]civil.Date, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	slices.SortFunc(sorted, compareDates)

	longest, current := 0, 0
	for i, d := range sorted {
		if i > 0 && d.DaysSince(sorted[i-1]) == 1 {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
	}
	return longest
}
