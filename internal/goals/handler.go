package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals

type goalsRepo interface {
	Add(ctx context.Context, g Goal) (*Goal, error)
	Get(ctx context.Context, userID, id int) (*Goal, error)
	List(ctx context.Context, userID int) ([]Goal, error)
	Update(ctx context.Context, g Goal) (*Goal, error)
	Delete(ctx context.Context, userID, id int) error
}

type recordsSource interface {
	ListRecords(ctx context.Context, userID int) ([]progress.Record, error)
}

type Handler struct {
	repo           goalsRepo
	records        recordsSource
	evaluator      *progress.GoalEvaluator
	validate       *validator.Validate
	metricsManager *metrics.Manager
}

func NewHandler(
	repo goalsRepo,
	records recordsSource,
	evaluator *progress.GoalEvaluator,
	validate *validator.Validate,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		records:        records,
		evaluator:      evaluator,
		validate:       validate,
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	goals, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list goals for user %d: %s", userID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	records, err := h.records.ListRecords(ctx, userID)
	if err != nil {
		log.Errorf("list goals, get workouts for user %d: %s", userID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	resp := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, GoalWithProgress{
			Goal:     g,
			Progress: h.evaluator.Evaluate(g.Definition(), records),
		})
	}
	span.SetAttributes(attribute.Int("goals.count", len(resp)))

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	goal, ok := h.decodeGoal(w, r, userID)
	if !ok {
		return
	}

	added, err := h.repo.Add(ctx, goal)
	if err != nil {
		log.Errorf("add goal for user %d: %s", userID, err)
		http.Error(w, "failed to add goal", http.StatusInternalServerError)
		return
	}
	h.metricsManager.CounterGoals.Inc()

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.progress")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := goalIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("goal.id", id))

	goal, err := h.repo.Get(ctx, userID, id)
	if err != nil {
		writeRepoError(w, "get", id, err)
		return
	}

	records, err := h.records.ListRecords(ctx, userID)
	if err != nil {
		log.Errorf("goal %d progress, get workouts: %s", id, err)
		http.Error(w, "failed to get goal progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, h.evaluator.Evaluate(goal.Definition(), records), http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := goalIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("goal.id", id))

	goal, ok := h.decodeGoal(w, r, userID)
	if !ok {
		return
	}
	goal.ID = id

	updated, err := h.repo.Update(ctx, goal)
	if err != nil {
		writeRepoError(w, "update", id, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := goalIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("goal.id", id))

	if err := h.repo.Delete(ctx, userID, id); err != nil {
		writeRepoError(w, "delete", id, err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "goal deleted"}, http.StatusOK)
}

func (h *Handler) decodeGoal(w http.ResponseWriter, r *http.Request, userID int) (Goal, bool) {
	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("decode goal request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return Goal{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid goal: "+err.Error(), http.StatusBadRequest)
		return Goal{}, false
	}

	goal, err := req.ToGoal(userID)
	if err != nil {
		http.Error(w, "invalid goal: "+err.Error(), http.StatusBadRequest)
		return Goal{}, false
	}
	return goal, true
}

func writeRepoError(w http.ResponseWriter, op string, id int, err error) {
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s goal %d: %s", op, id, err)
	http.Error(w, "failed to "+op+" goal", http.StatusInternalServerError)
}

func goalIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
