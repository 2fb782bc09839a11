package badges

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=badges

type earnedBadgesRepo interface {
	Add(ctx context.Context, userID int, badgeID string) (*EarnedBadge, error)
	AddMany(ctx context.Context, userID int, badgeIDs []string) ([]EarnedBadge, error)
	List(ctx context.Context, userID int) ([]EarnedBadge, error)
	Delete(ctx context.Context, userID, id int) error
}

type recordsSource interface {
	ListRecords(ctx context.Context, userID int) ([]progress.Record, error)
}

type Service struct {
	repo           earnedBadgesRepo
	records        recordsSource
	evaluator      *progress.BadgeEvaluator
	streaks        *progress.StreakCalculator
	metricsManager *metrics.Manager
}

func NewService(
	repo earnedBadgesRepo,
	records recordsSource,
	evaluator *progress.BadgeEvaluator,
	streaks *progress.StreakCalculator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		records:        records,
		evaluator:      evaluator,
		streaks:        streaks,
		metricsManager: metricsManager,
	}
}

func (s *Service) Catalog() []progress.BadgeDefinition {
	return s.evaluator.Catalog()
}

// List returns the earned badges decorated with their catalog definitions.
func (s *Service) List(ctx context.Context, userID int) (_ []EarnedBadge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.badges.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	earned, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range earned {
		if def, ok := s.evaluator.Badge(earned[i].BadgeID); ok {
			earned[i].Badge = &def
		}
	}
	return earned, nil
}

// Award stores a catalog badge for the user without checking its criteria.
func (s *Service) Award(ctx context.Context, userID int, badgeID string) (_ *EarnedBadge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.badges.award")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("badge.id", badgeID))

	def, ok := s.evaluator.Badge(badgeID)
	if !ok {
		return nil, ErrBadgeNotFound
	}

	earned, err := s.repo.Add(ctx, userID, badgeID)
	if err != nil {
		return nil, err
	}
	earned.Badge = &def
	s.metricsManager.CounterBadgesAwarded.With(prometheus.Labels{"badge": badgeID}).Inc()

	return earned, nil
}

// CheckAndAward evaluates the whole catalog against the user's history and
// stores the badges that became earned. Only badges stored by this call are
// returned, so a repeated check with unchanged history returns none.
func (s *Service) CheckAndAward(ctx context.Context, userID int) (_ []progress.BadgeDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.badges.checkAndAward")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.records.ListRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	earned, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get earned badges: %w", err)
	}

	earnedIDs := make([]string, 0, len(earned))
	for _, e := range earned {
		earnedIDs = append(earnedIDs, e.BadgeID)
	}

	candidates := s.evaluator.FindNewlyEarned(records, earnedIDs, s.streaks.CurrentStreak(records))
	if len(candidates) == 0 {
		return []progress.BadgeDefinition{}, nil
	}

	candidateIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		candidateIDs = append(candidateIDs, c.ID)
	}
	added, err := s.repo.AddMany(ctx, userID, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("store earned badges: %w", err)
	}

	addedIDs := make(map[string]bool, len(added))
	for _, a := range added {
		addedIDs[a.BadgeID] = true
	}

	newBadges := make([]progress.BadgeDefinition, 0, len(added))
	for _, c := range candidates {
		if !addedIDs[c.ID] {
			// stored concurrently by another request
			continue
		}
		newBadges = append(newBadges, c)
		s.metricsManager.CounterBadgesAwarded.With(prometheus.Labels{"badge": c.ID}).Inc()
	}

	if len(newBadges) > 0 {
		log.Infof("user %d earned %d new badge(s)", userID, len(newBadges))
	}
	span.SetAttributes(attribute.Int("badges.new", len(newBadges)))

	return newBadges, nil
}

func (s *Service) Progress(ctx context.Context, userID int, badgeID string) (_ *progress.BadgeProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.badges.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("badge.id", badgeID))

	if _, ok := s.evaluator.Badge(badgeID); !ok {
		return nil, ErrBadgeNotFound
	}

	records, err := s.records.ListRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}

	badgeProgress, ok := s.evaluator.Progress(badgeID, records, s.streaks.CurrentStreak(records))
	if !ok {
		return nil, ErrBadgeNotFound
	}
	return badgeProgress, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.badges.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Delete(ctx, userID, id)
}
