package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

const workoutColumns = `id, user_id, date, type, duration, calories, start_time, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", w.UserID))

	row := r.db.QueryRow(ctx, `
		INSERT INTO workouts (user_id, date, type, duration, calories, start_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+workoutColumns,
		w.UserID,
		pkg.DateToPg(w.Date),
		w.Type,
		w.Duration,
		w.Calories,
		pkg.TimeToPg(w.StartTime),
		w.Notes,
	)
	added, err := scanWorkout(row)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	return added, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", id))

	row := r.db.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanWorkout(row)
}

// List returns all workouts of the user, newest date first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

// ListRecords returns the calculator snapshot of all user workouts.
func (r *Repo) ListRecords(ctx context.Context, userID int) ([]progress.Record, error) {
	workouts, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Records(workouts), nil
}

func (r *Repo) Update(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", w.UserID), attribute.Int("workout.id", w.ID))

	row := r.db.QueryRow(ctx, `
		UPDATE workouts
		SET date = $1, type = $2, duration = $3, calories = $4, start_time = $5, notes = $6
		WHERE id = $7 AND user_id = $8
		RETURNING `+workoutColumns,
		pkg.DateToPg(w.Date),
		w.Type,
		w.Duration,
		w.Calories,
		pkg.TimeToPg(w.StartTime),
		w.Notes,
		w.ID,
		w.UserID,
	)
	return scanWorkout(row)
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var (
		w         Workout
		date      pgtype.Date
		startTime pgtype.Time
	)
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&date,
		&w.Type,
		&w.Duration,
		&w.Calories,
		&startTime,
		&w.Notes,
		&w.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	w.Date = pkg.DateFromPg(date)
	w.StartTime = pkg.TimeFromPg(startTime)
	return &w, nil
}
