package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts

type workoutsRepo interface {
	Add(ctx context.Context, w Workout) (*Workout, error)
	Get(ctx context.Context, userID, id int) (*Workout, error)
	List(ctx context.Context, userID int) ([]Workout, error)
	Update(ctx context.Context, w Workout) (*Workout, error)
	Delete(ctx context.Context, userID, id int) error
}

type Handler struct {
	repo           workoutsRepo
	validate       *validator.Validate
	metricsManager *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	validate *validator.Validate,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		validate:       validate,
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	workouts, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	workout, ok := h.decodeWorkout(w, r, userID)
	if !ok {
		return
	}

	added, err := h.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("add workout for user %d: %s", userID, err)
		http.Error(w, "failed to add workout", http.StatusInternalServerError)
		return
	}

	h.metricsManager.CounterWorkouts.With(prometheus.Labels{"type": strings.ToLower(added.Type)}).Inc()
	log.Debugf("user %d logged workout %d [%s]", userID, added.ID, added.Type)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := workoutIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("workout.id", id))

	workout, err := h.repo.Get(ctx, userID, id)
	if err != nil {
		h.writeRepoError(w, "get", id, err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := workoutIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("workout.id", id))

	workout, ok := h.decodeWorkout(w, r, userID)
	if !ok {
		return
	}
	workout.ID = id

	updated, err := h.repo.Update(ctx, workout)
	if err != nil {
		h.writeRepoError(w, "update", id, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := workoutIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("workout.id", id))

	if err := h.repo.Delete(ctx, userID, id); err != nil {
		h.writeRepoError(w, "delete", id, err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "workout deleted"}, http.StatusOK)
}

func (h *Handler) decodeWorkout(w http.ResponseWriter, r *http.Request, userID int) (Workout, bool) {
	var req WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("decode workout request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return Workout{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		log.Tracef("validate workout request: %s", err)
		http.Error(w, "invalid workout: "+err.Error(), http.StatusBadRequest)
		return Workout{}, false
	}

	workout, err := req.ToWorkout(userID)
	if err != nil {
		http.Error(w, "invalid workout: "+err.Error(), http.StatusBadRequest)
		return Workout{}, false
	}
	return workout, true
}

func (h *Handler) writeRepoError(w http.ResponseWriter, op string, id int, err error) {
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s workout %d: %s", op, id, err)
	http.Error(w, "failed to "+op+" workout", http.StatusInternalServerError)
}

func workoutIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
