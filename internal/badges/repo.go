package badges

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int, badgeID string) (_ *EarnedBadge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.badges.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("badge.id", badgeID))

	earned := EarnedBadge{
		UserID:  userID,
		BadgeID: badgeID,
	}
	if err := r.db.QueryRow(ctx, `
		INSERT INTO earned_badges (user_id, badge_id)
		VALUES ($1, $2)
		RETURNING id, earned_at
	`, userID, badgeID).Scan(&earned.ID, &earned.EarnedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrBadgeAlreadyEarned
		}
		return nil, fmt.Errorf("insert earned badge: %w", err)
	}
	return &earned, nil
}

// AddMany stores all given badges in one transaction. Badges the user already has
// are skipped and not returned.
func (r *Repo) AddMany(ctx context.Context, userID int, badgeIDs []string) (_ []EarnedBadge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.badges.addMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.StringSlice("badge.ids", badgeIDs))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	added := make([]EarnedBadge, 0, len(badgeIDs))
	for _, badgeID := range badgeIDs {
		earned := EarnedBadge{
			UserID:  userID,
			BadgeID: badgeID,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO earned_badges (user_id, badge_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, badge_id) DO NOTHING
			RETURNING id, earned_at
		`, userID, badgeID).Scan(&earned.ID, &earned.EarnedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("insert earned badge %s: %w", badgeID, err)
		}
		added = append(added, earned)
	}

	return added, nil
}

// List returns the user's earned badges, most recently earned first.
func (r *Repo) List(ctx context.Context, userID int) (_ []EarnedBadge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.badges.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, badge_id, earned_at
		FROM earned_badges
		WHERE user_id = $1
		ORDER BY earned_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earned := make([]EarnedBadge, 0)
	for rows.Next() {
		var b EarnedBadge
		if err := rows.Scan(&b.ID, &b.UserID, &b.BadgeID, &b.EarnedAt); err != nil {
			return nil, err
		}
		earned = append(earned, b)
	}
	return earned, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.badges.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("earned_badge.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM earned_badges WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBadgeNotFound
	}
	return nil
}
