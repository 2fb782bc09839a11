//go:build integration_test

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittracker/internal/badges"
	"github.com/2beens/fittracker/internal/progress"
)

type idResponse struct {
	ID int `json:"id"`
}

func (s *IntegrationTestSuite) addWorkout(ctx context.Context, token string, date civil.Date, workoutType, startTime string) int {
	calories := 400
	status, body := s.do(ctx, http.MethodPost, "/api/workouts", token, map[string]any{
		"date":      date.String(),
		"type":      workoutType,
		"duration":  30,
		"calories":  calories,
		"startTime": startTime,
	})
	s.Require().Equal(http.StatusCreated, status, string(body))

	var added idResponse
	s.Require().NoError(json.Unmarshal(body, &added))
	s.Require().Positive(added.ID)
	return added.ID
}

func (s *IntegrationTestSuite) TestStreaksGoalsAndBadges() {
	t := s.T()
	ctx := context.Background()
	token, _ := s.newUser(ctx)

	today := civil.DateOf(time.Now().UTC())
	s.addWorkout(ctx, token, today, "Running", "07:15")
	s.addWorkout(ctx, token, today.AddDays(-1), "cycling", "")
	s.addWorkout(ctx, token, today.AddDays(-2), "yoga", "18:30")

	status, body := s.do(ctx, http.MethodGet, "/api/stats/streaks", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"currentStreak":3,"longestStreak":3}`, string(body))

	status, body = s.do(ctx, http.MethodGet, "/api/stats/summary", token, nil)
	require.Equal(t, http.StatusOK, status)
	var summary progress.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 3, summary.TotalWorkouts)
	assert.Equal(t, 90, summary.TotalMinutes)
	assert.Equal(t, 1200, summary.TotalCalories)

	status, body = s.do(ctx, http.MethodGet, "/api/stats/streaks/history?days=3", token, nil)
	require.Equal(t, http.StatusOK, status)
	var history []progress.DayActivity
	require.NoError(t, json.Unmarshal(body, &history))
	require.Len(t, history, 3)
	for _, day := range history {
		assert.True(t, day.HasWorkout, day.Date.String())
	}

	status, body = s.do(ctx, http.MethodPost, "/api/goals", token, map[string]any{
		"title":  "Keep it going",
		"type":   "workout_streak",
		"target": 6,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var goal idResponse
	require.NoError(t, json.Unmarshal(body, &goal))

	status, body = s.do(ctx, http.MethodGet, fmt.Sprintf("/api/goals/%d/progress", goal.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"current":3,"percentage":50}`, string(body))

	status, body = s.do(ctx, http.MethodPost, "/api/goals", token, map[string]any{
		"title":  "Unknown",
		"type":   "daily_pushups",
		"target": 6,
	})
	assert.Equal(t, http.StatusBadRequest, status, string(body))

	status, body = s.do(ctx, http.MethodPost, "/api/badges/check", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var checked badges.CheckResponse
	require.NoError(t, json.Unmarshal(body, &checked))
	newIDs := make([]string, 0, len(checked.NewBadges))
	for _, b := range checked.NewBadges {
		newIDs = append(newIDs, b.ID)
	}
	assert.ElementsMatch(t, []string{
		"first_workout", "streak_3", "calories_1000", "minutes_60", "early_bird", "variety_seeker",
	}, newIDs)

	// nothing new the second time
	status, body = s.do(ctx, http.MethodPost, "/api/badges/check", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"newBadges":[]}`, string(body))

	status, body = s.do(ctx, http.MethodGet, "/api/badges", token, nil)
	require.Equal(t, http.StatusOK, status)
	var earned []badges.EarnedBadge
	require.NoError(t, json.Unmarshal(body, &earned))
	assert.Len(t, earned, len(newIDs))

	status, _ = s.do(ctx, http.MethodPost, "/api/badges", token, map[string]string{"badgeId": "first_workout"})
	assert.Equal(t, http.StatusConflict, status)

	status, body = s.do(ctx, http.MethodGet, "/api/badges/workout_5/progress", token, nil)
	require.Equal(t, http.StatusOK, status)
	var badgeProgress progress.BadgeProgress
	require.NoError(t, json.Unmarshal(body, &badgeProgress))
	assert.Equal(t, 3, badgeProgress.Current)
	assert.Equal(t, 5, badgeProgress.Target)
}

func (s *IntegrationTestSuite) TestWorkoutsOwnership() {
	t := s.T()
	ctx := context.Background()
	ownerToken, _ := s.newUser(ctx)
	otherToken, _ := s.newUser(ctx)

	workoutID := s.addWorkout(ctx, ownerToken, civil.DateOf(time.Now().UTC()), "swimming", "")
	workoutPath := fmt.Sprintf("/api/workouts/%d", workoutID)

	status, _ := s.do(ctx, http.MethodGet, workoutPath, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(ctx, http.MethodDelete, workoutPath, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := s.do(ctx, http.MethodPut, workoutPath, ownerToken, map[string]any{
		"date":     civil.DateOf(time.Now().UTC()).String(),
		"type":     "swimming",
		"duration": 45,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"duration":45`)

	status, _ = s.do(ctx, http.MethodDelete, workoutPath, ownerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(ctx, http.MethodGet, workoutPath, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestReminders() {
	t := s.T()
	ctx := context.Background()
	token, user := s.newUser(ctx)

	tomorrow := civil.DateOf(time.Now().UTC()).AddDays(1)
	status, body := s.do(ctx, http.MethodPost, "/api/reminders", token, map[string]any{
		"title":       "Leg day",
		"workoutType": "strength",
		"date":        tomorrow.String(),
		"time":        "10:00",
		"email":       user.Email,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var reminder idResponse
	require.NoError(t, json.Unmarshal(body, &reminder))

	status, body = s.do(ctx, http.MethodGet, "/api/reminders", token, nil)
	require.Equal(t, http.StatusOK, status)
	var listed []idResponse
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, reminder.ID, listed[0].ID)

	status, _ = s.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reminders/%d", reminder.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = s.do(ctx, http.MethodGet, "/api/reminders", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Empty(t, listed)
}

func (s *IntegrationTestSuite) TestLogout() {
	t := s.T()
	ctx := context.Background()
	token, _ := s.newUser(ctx)

	status, _ := s.do(ctx, http.MethodGet, "/api/workouts", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodGet, "/api/workouts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(ctx, http.MethodGet, "/api/workouts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
