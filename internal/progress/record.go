package progress

import (
	"cloud.google.com/go/civil"
)

// Record is a read-only snapshot of a single workout, as seen by the calculators.
// Optional fields are nil when the workout was logged without them.
type Record struct {
	Date      civil.Date
	Type      string
	Duration  int // minutes
	Calories  *int
	StartTime *civil.Time
}

func (r Record) caloriesOrZero() int {
	if r.Calories == nil {
		return 0
	}
	return *r.Calories
}

// totals are the whole-history aggregates used by badges and the summary.
type totals struct {
	workouts  int
	minutes   int
	calories  int
	types     int
	startedAt []civil.Time
}

func aggregate(records []Record) totals {
	t := totals{workouts: len(records)}
	types := make(map[string]struct{})
	for _, r := range records {
		t.minutes += r.Duration
		t.calories += r.caloriesOrZero()
		types[r.Type] = struct{}{}
		if r.StartTime != nil {
			t.startedAt = append(t.startedAt, *r.StartTime)
		}
	}
	t.types = len(types)
	return t
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// inRange reports whether from <= d <= to.
func inRange(d, from, to civil.Date) bool {
	return !d.Before(from) && !d.After(to)
}
