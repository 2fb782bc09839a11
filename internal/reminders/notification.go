package reminders

import (
	"time"
)

const noNotes = "No additional notes"

// Notification is the message published for one reminder lead time.
type Notification struct {
	ReminderID    int       `json:"reminderId"`
	UserID        int       `json:"userId"`
	Email         string    `json:"email"`
	Title         string    `json:"title"`
	WorkoutType   string    `json:"workoutType"`
	WorkoutDate   string    `json:"workoutDate"`
	WorkoutTime   string    `json:"workoutTime"`
	MinutesBefore int       `json:"minutesBefore"`
	Notes         string    `json:"notes"`
	SentAt        time.Time `json:"sentAt"`
}

func NewNotification(r Reminder, minutesBefore int, loc *time.Location, now time.Time) Notification {
	workoutAt := r.WorkoutAt(loc)
	notes := r.Notes
	if notes == "" {
		notes = noNotes
	}
	return Notification{
		ReminderID:    r.ID,
		UserID:        r.UserID,
		Email:         r.Email,
		Title:         r.Title,
		WorkoutType:   r.WorkoutType,
		WorkoutDate:   workoutAt.Format("Monday, January 2, 2006"),
		WorkoutTime:   workoutAt.Format("3:04 PM"),
		MinutesBefore: minutesBefore,
		Notes:         notes,
		SentAt:        now,
	}
}
