package workouts

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/pkg"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Workout struct {
	ID        int
	UserID    int
	Date      civil.Date
	Type      string
	Duration  int // minutes
	Calories  *int
	StartTime *civil.Time
	Notes     string
	CreatedAt time.Time
}

type workoutJSON struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Duration  int       `json:"duration"`
	Calories  *int      `json:"calories,omitempty"`
	StartTime string    `json:"startTime,omitempty"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w Workout) MarshalJSON() ([]byte, error) {
	out := workoutJSON{
		ID:        w.ID,
		UserID:    w.UserID,
		Date:      w.Date.String(),
		Type:      w.Type,
		Duration:  w.Duration,
		Calories:  w.Calories,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
	if w.StartTime != nil {
		out.StartTime = pkg.FormatHourMinute(*w.StartTime)
	}
	return json.Marshal(out)
}

// Record returns the calculator snapshot of the workout.
func (w Workout) Record() progress.Record {
	return progress.Record{
		Date:      w.Date,
		Type:      w.Type,
		Duration:  w.Duration,
		Calories:  w.Calories,
		StartTime: w.StartTime,
	}
}

func Records(workouts []Workout) []progress.Record {
	records := make([]progress.Record, 0, len(workouts))
	for _, w := range workouts {
		records = append(records, w.Record())
	}
	return records
}

// WorkoutRequest is the create/update request body.
type WorkoutRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Type      string `json:"type" validate:"required,max=64"`
	Duration  int    `json:"duration" validate:"required,gt=0,lte=1440"`
	Calories  *int   `json:"calories" validate:"omitempty,gte=0"`
	StartTime string `json:"startTime" validate:"omitempty,datetime=15:04"`
	Notes     string `json:"notes" validate:"max=1000"`
}

// ToWorkout converts an already validated request.
func (r WorkoutRequest) ToWorkout(userID int) (Workout, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return Workout{}, err
	}

	w := Workout{
		UserID:   userID,
		Date:     date,
		Type:     strings.TrimSpace(r.Type),
		Duration: r.Duration,
		Calories: r.Calories,
		Notes:    strings.TrimSpace(r.Notes),
	}
	if r.StartTime != "" {
		startTime, err := pkg.ParseHourMinute(r.StartTime)
		if err != nil {
			return Workout{}, err
		}
		w.StartTime = &startTime
	}

	return w, nil
}
