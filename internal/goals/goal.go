package goals

import (
	"errors"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/progress"
)

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrUnknownGoalType = errors.New("unknown goal type")
)

const defaultTimeframe = "week"

type Goal struct {
	ID        int               `json:"id"`
	UserID    int               `json:"userId"`
	Title     string            `json:"title"`
	Type      progress.GoalType `json:"type"`
	Target    int               `json:"target"`
	Timeframe string            `json:"timeframe"`
	IsActive  bool              `json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
}

func (g Goal) Definition() progress.GoalDefinition {
	return progress.GoalDefinition{
		Type:   g.Type,
		Target: g.Target,
	}
}

// GoalWithProgress is a goal decorated with its progress, as returned by the API.
type GoalWithProgress struct {
	Goal
	Progress progress.GoalProgress `json:"progress"`
}

type GoalRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Type      string `json:"type" validate:"required"`
	Target    int    `json:"target" validate:"required,gt=0"`
	Timeframe string `json:"timeframe" validate:"omitempty,oneof=week month"`
	IsActive  *bool  `json:"isActive"`
}

func (r GoalRequest) ToGoal(userID int) (Goal, error) {
	goalType := progress.GoalType(strings.TrimSpace(r.Type))
	if !goalType.IsValid() {
		return Goal{}, ErrUnknownGoalType
	}

	g := Goal{
		UserID:    userID,
		Title:     strings.TrimSpace(r.Title),
		Type:      goalType,
		Target:    r.Target,
		Timeframe: r.Timeframe,
		IsActive:  true,
	}
	if g.Timeframe == "" {
		g.Timeframe = defaultTimeframe
	}
	if r.IsActive != nil {
		g.IsActive = *r.IsActive
	}
	return g, nil
}
