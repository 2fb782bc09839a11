package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

const reminderColumns = `id, user_id, title, workout_type, date, time, email, notes, is_active, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, rem Reminder) (_ *Reminder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", rem.UserID))

	added, err := scanReminder(r.db.QueryRow(ctx, `
		INSERT INTO reminders (user_id, title, workout_type, date, time, email, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+reminderColumns,
		rem.UserID,
		rem.Title,
		rem.WorkoutType,
		pkg.DateToPg(rem.Date),
		pkg.TimeToPg(&rem.Time),
		rem.Email,
		rem.Notes,
		rem.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	return added, nil
}

// List returns the user reminders, latest workout first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Reminder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders
		WHERE user_id = $1
		ORDER BY date DESC, time DESC
	`, userID)
}

// ListActive returns active reminders of all users.
func (r *Repo) ListActive(ctx context.Context) (_ []Reminder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.listActive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.query(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders
		WHERE is_active
		ORDER BY date, time
	`)
}

func (r *Repo) Update(ctx context.Context, rem Reminder) (_ *Reminder, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", rem.UserID), attribute.Int("reminder.id", rem.ID))

	return scanReminder(r.db.QueryRow(ctx, `
		UPDATE reminders
		SET title = $1, workout_type = $2, date = $3, time = $4, email = $5, notes = $6, is_active = $7
		WHERE id = $8 AND user_id = $9
		RETURNING `+reminderColumns,
		rem.Title,
		rem.WorkoutType,
		pkg.DateToPg(rem.Date),
		pkg.TimeToPg(&rem.Time),
		rem.Email,
		rem.Notes,
		rem.IsActive,
		rem.ID,
		rem.UserID,
	))
}

// DeactivateOverdue deactivates the reminder only while it is still active and its
// workout started before now, read as wall clock in the reminders timezone. It
// reports whether the reminder was deactivated.
func (r *Repo) DeactivateOverdue(ctx context.Context, id int, now time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.deactivateOverdue")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("reminder.id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE reminders
		SET is_active = FALSE
		WHERE id = $1 AND is_active AND (date + time) < $2
	`, id, pkg.WallClockToPg(now))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reminders.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("reminder.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReminderNotFound
	}
	return nil
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]Reminder, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *rem)
	}
	return reminders, rows.Err()
}

func scanReminder(row pgx.Row) (*Reminder, error) {
	var (
		rem  Reminder
		date pgtype.Date
		tm   pgtype.Time
	)
	if err := row.Scan(
		&rem.ID,
		&rem.UserID,
		&rem.Title,
		&rem.WorkoutType,
		&date,
		&tm,
		&rem.Email,
		&rem.Notes,
		&rem.IsActive,
		&rem.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	rem.Date = pkg.DateFromPg(date)
	if t := pkg.TimeFromPg(tm); t != nil {
		rem.Time = *t
	}
	return &rem, nil
}
