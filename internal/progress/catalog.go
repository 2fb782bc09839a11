package progress

import "slices"

var defaultCatalog = []BadgeDefinition{
	{
		ID: "first_workout", Name: "Getting Started", Description: "Complete your first workout",
		Icon: "🎯", Rarity: "common", Criteria: Criteria{Type: CriteriaWorkoutCount, Value: 1},
	},
	{
		ID: "workout_5", Name: "Consistent", Description: "Complete 5 workouts",
		Icon: "💪", Rarity: "common", Criteria: Criteria{Type: CriteriaWorkoutCount, Value: 5},
	},
	{
		ID: "workout_10", Name: "Dedicated", Description: "Complete 10 workouts",
		Icon: "🏃‍♂️", Rarity: "rare", Criteria: Criteria{Type: CriteriaWorkoutCount, Value: 10},
	},
	{
		ID: "workout_25", Name: "Committed", Description: "Complete 25 workouts",
		Icon: "🏋️‍♂️", Rarity: "rare", Criteria: Criteria{Type: CriteriaWorkoutCount, Value: 25},
	},
	{
		ID: "workout_50", Name: "Fitness Enthusiast", Description: "Complete 50 workouts",
		Icon: "🔥", Rarity: "epic", Criteria: Criteria{Type: CriteriaWorkoutCount, Value: 50},
	},
	{
		ID: "streak_3", Name: "On Fire", Description: "Maintain a 3-day workout streak",
		Icon: "🔥", Rarity: "common", Criteria: Criteria{Type: CriteriaStreak, Value: 3},
	},
	{
		ID: "streak_7", Name: "Week Warrior", Description: "Maintain a 7-day workout streak",
		Icon: "⚡", Rarity: "rare", Criteria: Criteria{Type: CriteriaStreak, Value: 7},
	},
	{
		ID: "streak_14", Name: "Unstoppable", Description: "Maintain a 14-day workout streak",
		Icon: "🚀", Rarity: "epic", Criteria: Criteria{Type: CriteriaStreak, Value: 14},
	},
	{
		ID: "streak_30", Name: "Legend", Description: "Maintain a 30-day workout streak",
		Icon: "👑", Rarity: "legendary", Criteria: Criteria{Type: CriteriaStreak, Value: 30},
	},
	{
		ID: "calories_1000", Name: "Calorie Crusher", Description: "Burn 1,000 total calories",
		Icon: "🔥", Rarity: "common", Criteria: Criteria{Type: CriteriaTotalCalories, Value: 1000},
	},
	{
		ID: "calories_5000", Name: "Inferno", Description: "Burn 5,000 total calories",
		Icon: "🌋", Rarity: "rare", Criteria: Criteria{Type: CriteriaTotalCalories, Value: 5000},
	},
	{
		ID: "calories_10000", Name: "Furnace", Description: "Burn 10,000 total calories",
		Icon: "🔥", Rarity: "epic", Criteria: Criteria{Type: CriteriaTotalCalories, Value: 10000},
	},
	{
		ID: "minutes_60", Name: "Hour Power", Description: "Complete 60 total minutes of exercise",
		Icon: "⏰", Rarity: "common", Criteria: Criteria{Type: CriteriaTotalMinutes, Value: 60},
	},
	{
		ID: "minutes_300", Name: "Time Master", Description: "Complete 300 total minutes of exercise",
		Icon: "⏱️", Rarity: "rare", Criteria: Criteria{Type: CriteriaTotalMinutes, Value: 300},
	},
	{
		ID: "minutes_1000", Name: "Endurance King", Description: "Complete 1,000 total minutes of exercise",
		Icon: "👑", Rarity: "epic", Criteria: Criteria{Type: CriteriaTotalMinutes, Value: 1000},
	},
	{
		ID: "early_bird", Name: "Early Bird", Description: "Complete a workout before 8 AM",
		Icon: "🌅", Rarity: "rare", Criteria: Criteria{Type: CriteriaEarlyWorkout, Value: 8},
	},
	{
		ID: "variety_seeker", Name: "Variety Seeker", Description: "Try 3 different workout types",
		Icon: "🎨", Rarity: "rare", Criteria: Criteria{Type: CriteriaWorkoutVariety, Value: 3},
	},
}

// DefaultCatalog returns the badges every user can earn, in display order.
func DefaultCatalog() []BadgeDefinition {
	return slices.Clone(defaultCatalog)
}
