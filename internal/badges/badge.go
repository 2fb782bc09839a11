package badges

import (
	"errors"
	"time"

	"github.com/2beens/fittracker/internal/progress"
)

var (
	ErrBadgeNotFound      = errors.New("badge not found")
	ErrBadgeAlreadyEarned = errors.New("badge already earned")
)

// EarnedBadge records that a user earned a catalog badge. Unlike streaks or goal
// progress it is stored: a badge stays earned even if the history changes later.
type EarnedBadge struct {
	ID       int                       `json:"id"`
	UserID   int                       `json:"userId"`
	BadgeID  string                    `json:"badgeId"`
	EarnedAt time.Time                 `json:"earnedAt"`
	Badge    *progress.BadgeDefinition `json:"badge,omitempty"`
}

type AwardRequest struct {
	BadgeID string `json:"badgeId" validate:"required,max=64"`
}

type CheckResponse struct {
	NewBadges []progress.BadgeDefinition `json:"newBadges"`
}
