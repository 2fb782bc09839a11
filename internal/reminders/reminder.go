package reminders

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/2beens/fittracker/pkg"
)

var ErrReminderNotFound = errors.New("reminder not found")

// Reminder is a scheduled workout with an email address to notify
// 5 and 2 minutes before it starts.
type Reminder struct {
	ID          int
	UserID      int
	Title       string
	WorkoutType string
	Date        civil.Date
	Time        civil.Time
	Email       string
	Notes       string
	IsActive    bool
	CreatedAt   time.Time
}

// WorkoutAt is the workout start as an instant in the given location.
func (r Reminder) WorkoutAt(loc *time.Location) time.Time {
	return civil.DateTime{Date: r.Date, Time: r.Time}.In(loc)
}

type reminderJSON struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	WorkoutType string    `json:"workoutType"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Email       string    `json:"email"`
	Notes       string    `json:"notes"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r Reminder) MarshalJSON() ([]byte, error) {
	return json.Marshal(reminderJSON{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		WorkoutType: r.WorkoutType,
		Date:        r.Date.String(),
		Time:        pkg.FormatHourMinute(r.Time),
		Email:       r.Email,
		Notes:       r.Notes,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	})
}

type ReminderRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	WorkoutType string `json:"workoutType" validate:"required,max=64"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Notes       string `json:"notes" validate:"max=1000"`
	IsActive    *bool  `json:"isActive"`
}

func (r ReminderRequest) ToReminder(userID int) (Reminder, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return Reminder{}, err
	}
	tm, err := pkg.ParseHourMinute(r.Time)
	if err != nil {
		return Reminder{}, err
	}

	reminder := Reminder{
		UserID:      userID,
		Title:       strings.TrimSpace(r.Title),
		WorkoutType: strings.TrimSpace(r.WorkoutType),
		Date:        date,
		Time:        tm,
		Email:       strings.TrimSpace(r.Email),
		Notes:       strings.TrimSpace(r.Notes),
		IsActive:    true,
	}
	if r.IsActive != nil {
		reminder.IsActive = *r.IsActive
	}
	return reminder, nil
}
