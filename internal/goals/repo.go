package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
)

const goalColumns = `id, user_id, title, type, target, timeframe, is_active, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", g.UserID), attribute.String("goal.type", g.Type.String()))

	added, err := scanGoal(r.db.QueryRow(ctx, `
		INSERT INTO goals (user_id, title, type, target, timeframe, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+goalColumns,
		g.UserID, g.Title, g.Type, g.Target, g.Timeframe, g.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return added, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("goal.id", id))

	return scanGoal(r.db.QueryRow(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE id = $1 AND user_id = $2
	`, id, userID))
}

// List returns the user goals, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (r *Repo) Update(ctx context.Context, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", g.UserID), attribute.Int("goal.id", g.ID))

	return scanGoal(r.db.QueryRow(ctx, `
		UPDATE goals
		SET title = $1, type = $2, target = $3, timeframe = $4, is_active = $5
		WHERE id = $6 AND user_id = $7
		RETURNING `+goalColumns,
		g.Title, g.Type, g.Target, g.Timeframe, g.IsActive, g.ID, g.UserID,
	))
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("goal.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	if err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Type, &g.Target, &g.Timeframe, &g.IsActive, &g.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}
