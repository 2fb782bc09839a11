package stats

import (
	"context"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

const maxHistoryDays = 365

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats

type recordsSource interface {
	ListRecords(ctx context.Context, userID int) ([]progress.Record, error)
}

// Handler serves statistics derived from the workout history on every request.
type Handler struct {
	records recordsSource
	streaks *progress.StreakCalculator
}

func NewHandler(records recordsSource, streaks *progress.StreakCalculator) *Handler {
	return &Handler{
		records: records,
		streaks: streaks,
	}
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()

	records, ok := h.userRecords(ctx, w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, h.streaks.Summarize(records), http.StatusOK)
}

func (h *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streaks")
	defer span.End()

	records, ok := h.userRecords(ctx, w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, h.streaks.Streaks(records), http.StatusOK)
}

func (h *Handler) HandleStreakHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streakHistory")
	defer span.End()

	days := progress.DefaultHistoryDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		days, err = strconv.Atoi(daysParam)
		if err != nil || days < 1 {
			http.Error(w, "parameter <days> must be a positive number", http.StatusBadRequest)
			return
		}
		days = min(days, maxHistoryDays)
	}
	span.SetAttributes(attribute.Int("days", days))

	records, ok := h.userRecords(ctx, w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, h.streaks.History(records, days), http.StatusOK)
}

func (h *Handler) userRecords(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]progress.Record, bool) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return nil, false
	}

	records, err := h.records.ListRecords(ctx, userID)
	if err != nil {
		log.Errorf("stats, get workouts for user %d: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return nil, false
	}
	return records, true
}
