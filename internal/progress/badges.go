package progress

import (
	"slices"
)

// CriteriaType can be one of:
//   - workout_count
//   - streak
//   - total_calories
//   - total_minutes
//   - early_workout
//   - workout_variety
type CriteriaType string

const (
	CriteriaWorkoutCount   CriteriaType = "workout_count"
	CriteriaStreak         CriteriaType = "streak"
	CriteriaTotalCalories  CriteriaType = "total_calories"
	CriteriaTotalMinutes   CriteriaType = "total_minutes"
	CriteriaEarlyWorkout   CriteriaType = "early_workout"
	CriteriaWorkoutVariety CriteriaType = "workout_variety"
)

type Criteria struct {
	Type  CriteriaType `json:"type"`
	Value int          `json:"value"`
}

type BadgeDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Rarity      string   `json:"rarity"`
	Criteria    Criteria `json:"criteria"`
}

type BadgeProgress struct {
	BadgeID    string  `json:"badgeId"`
	Current    int     `json:"current"`
	Target     int     `json:"target"`
	Percentage float64 `json:"percentage"`
}

// BadgeEvaluator checks badge criteria against a workout history.
// Earned state is owned by the caller: badges already earned are passed in and
// never re-evaluated, so evaluating unchanged inputs always yields the same result.
type BadgeEvaluator struct {
	catalog []BadgeDefinition
}

func NewBadgeEvaluator(catalog []BadgeDefinition) *BadgeEvaluator {
	return &BadgeEvaluator{
		catalog: slices.Clone(catalog),
	}
}

func (e *BadgeEvaluator) Catalog() []BadgeDefinition {
	return slices.Clone(e.catalog)
}

func (e *BadgeEvaluator) Badge(id string) (BadgeDefinition, bool) {
	for _, b := range e.catalog {
		if b.ID == id {
			return b, true
		}
	}
	return BadgeDefinition{}, false
}

// FindNewlyEarned returns, in catalog order, the badges not in alreadyEarnedIDs
// whose criteria are satisfied by records and the given current streak.
func (e *BadgeEvaluator) FindNewlyEarned(records []Record, alreadyEarnedIDs []string, streak int) []BadgeDefinition {
	earned := make(map[string]struct{}, len(alreadyEarnedIDs))
	for _, id := range alreadyEarnedIDs {
		earned[id] = struct{}{}
	}

	t := aggregate(records)
	newlyEarned := make([]BadgeDefinition, 0)
	for _, badge := range e.catalog {
		if _, ok := earned[badge.ID]; ok {
			continue
		}
		if satisfied(badge.Criteria, t, streak) {
			newlyEarned = append(newlyEarned, badge)
		}
	}
	return newlyEarned
}

// Progress reports how far records are from earning the badge with the given id.
func (e *BadgeEvaluator) Progress(badgeID string, records []Record, streak int) (*BadgeProgress, bool) {
	badge, ok := e.Badge(badgeID)
	if !ok {
		return nil, false
	}

	t := aggregate(records)
	var current int
	switch badge.Criteria.Type {
	case CriteriaWorkoutCount:
		current = t.workouts
	case CriteriaStreak:
		current = streak
	case CriteriaTotalCalories:
		current = t.calories
	case CriteriaTotalMinutes:
		current = t.minutes
	case CriteriaWorkoutVariety:
		current = t.types
	case CriteriaEarlyWorkout:
		// binary criterion: either some workout started early enough or none did
		target := 1
		if satisfied(badge.Criteria, t, streak) {
			current = 1
		}
		return &BadgeProgress{
			BadgeID:    badge.ID,
			Current:    current,
			Target:     target,
			Percentage: Percentage(current, target),
		}, true
	}

	return &BadgeProgress{
		BadgeID:    badge.ID,
		Current:    current,
		Target:     badge.Criteria.Value,
		Percentage: Percentage(current, badge.Criteria.Value),
	}, true
}

func satisfied(c Criteria, t totals, streak int) bool {
	switch c.Type {
	case CriteriaWorkoutCount:
		return t.workouts >= c.Value
	case CriteriaStreak:
		return streak >= c.Value
	case CriteriaTotalCalories:
		return t.calories >= c.Value
	case CriteriaTotalMinutes:
		return t.minutes >= c.Value
	case CriteriaWorkoutVariety:
		return t.types >= c.Value
	case CriteriaEarlyWorkout:
		for _, startedAt := range t.startedAt {
			if startedAt.Hour < c.Value {
				return true
			}
		}
		return false
	default:
		return false
	}
}
