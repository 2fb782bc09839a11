package progress

import (
	"fmt"
	"math"

	"cloud.google.com/go/civil"
)

const summaryWeeks = 6

type WeekStats struct {
	Label    string     `json:"label"`
	Start    civil.Date `json:"start"`
	End      civil.Date `json:"end"`
	Workouts int        `json:"workouts"`
	Minutes  int        `json:"minutes"`
	Calories int        `json:"calories"`
}

type Summary struct {
	TotalWorkouts   int         `json:"totalWorkouts"`
	TotalMinutes    int         `json:"totalMinutes"`
	TotalCalories   int         `json:"totalCalories"`
	AverageDuration int         `json:"averageDuration"`
	CurrentStreak   int         `json:"currentStreak"`
	LongestStreak   int         `json:"longestStreak"`
	Weeks           []WeekStats `json:"weeks"`
}

// Summarize builds the overall statistics, including the last six
// Monday-to-Sunday weeks (oldest first) used by the activity chart.
func (c *StreakCalculator) Summarize(records []Record) Summary {
	today := c.Today()
	t := aggregate(records)

	summary := Summary{
		TotalWorkouts: t.workouts,
		TotalMinutes:  t.minutes,
		TotalCalories: t.calories,
		CurrentStreak: currentStreakOn(records, today),
		LongestStreak: longestStreak(records),
		Weeks:         make([]WeekStats, 0, summaryWeeks),
	}
	if t.workouts > 0 {
		summary.AverageDuration = int(math.Round(float64(t.minutes) / float64(t.workouts)))
	}

	thisMonday := today.AddDays(-((int(weekday(today)) + 6) % 7))
	for i := summaryWeeks - 1; i >= 0; i-- {
		start := thisMonday.AddDays(-7 * i)
		week := WeekStats{
			Label: fmt.Sprintf("%d/%d", int(start.Month), start.Day),
			Start: start,
			End:   start.AddDays(6),
		}
		for _, r := range records {
			if !inRange(r.Date, week.Start, week.End) {
				continue
			}
			week.Workouts++
			week.Minutes += r.Duration
			week.Calories += r.caloriesOrZero()
		}
		summary.Weeks = append(summary.Weeks, week)
	}

	return summary
}
