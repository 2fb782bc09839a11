package progress

import (
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// GoalType can be one of:
//   - weekly_workouts
//   - weekly_minutes
//   - weekly_calories
//   - monthly_workouts
//   - workout_streak
type GoalType string

const (
	GoalWeeklyWorkouts  GoalType = "weekly_workouts"
	GoalWeeklyMinutes   GoalType = "weekly_minutes"
	GoalWeeklyCalories  GoalType = "weekly_calories"
	GoalMonthlyWorkouts GoalType = "monthly_workouts"
	GoalWorkoutStreak   GoalType = "workout_streak"
)

func (gt GoalType) String() string {
	return string(gt)
}

func (gt GoalType) IsValid() bool {
	switch gt {
	case GoalWeeklyWorkouts,
		GoalWeeklyMinutes,
		GoalWeeklyCalories,
		GoalMonthlyWorkouts,
		GoalWorkoutStreak:
		return true
	default:
		return false
	}
}

type GoalDefinition struct {
	Type   GoalType
	Target int
}

type GoalProgress struct {
	Current    int     `json:"current"`
	Percentage float64 `json:"percentage"`
}

// GoalEvaluator measures goal progress against the current week/month window.
// Weeks start on Sunday, months on their first calendar day.
type GoalEvaluator struct {
	streaks *StreakCalculator
}

func NewGoalEvaluator(streaks *StreakCalculator) *GoalEvaluator {
	return &GoalEvaluator{
		streaks: streaks,
	}
}

func (e *GoalEvaluator) Evaluate(goal GoalDefinition, records []Record) GoalProgress {
	today := e.streaks.Today()

	current := 0
	switch goal.Type {
	case GoalWeeklyWorkouts:
		from := WeekStart(today)
		for _, r := range records {
			if inRange(r.Date, from, today) {
				current++
			}
		}
	case GoalWeeklyMinutes:
		from := WeekStart(today)
		for _, r := range records {
			if inRange(r.Date, from, today) {
				current += r.Duration
			}
		}
	case GoalWeeklyCalories:
		from := WeekStart(today)
		for _, r := range records {
			if inRange(r.Date, from, today) {
				current += r.caloriesOrZero()
			}
		}
	case GoalMonthlyWorkouts:
		from := MonthStart(today)
		for _, r := range records {
			if !r.Date.Before(from) {
				current++
			}
		}
	case GoalWorkoutStreak:
		current = currentStreakOn(records, today)
	}

	return GoalProgress{
		Current:    current,
		Percentage: Percentage(current, goal.Target),
	}
}

// Percentage is current/target as a percentage capped at 100.
// A non-positive target yields 0.
func Percentage(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(target)*100, 100)
}

// WeekStart returns the Sunday on or before d.
func WeekStart(d civil.Date) civil.Date {
	return d.AddDays(-int(weekday(d)))
}

// MonthStart returns the first day of d's month.
func MonthStart(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

func weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}
