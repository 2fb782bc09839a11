package reminders

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
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reminders

type remindersRepo interface {
	Add(ctx context.Context, rem Reminder) (*Reminder, error)
	List(ctx context.Context, userID int) ([]Reminder, error)
	Update(ctx context.Context, rem Reminder) (*Reminder, error)
	Delete(ctx context.Context, userID, id int) error
}

type reminderScheduler interface {
	Schedule(r Reminder) int
	Cancel(id int) bool
}

type Handler struct {
	repo      remindersRepo
	scheduler reminderScheduler
	validate  *validator.Validate
}

func NewHandler(repo remindersRepo, scheduler reminderScheduler, validate *validator.Validate) *Handler {
	return &Handler{
		repo:      repo,
		scheduler: scheduler,
		validate:  validate,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	reminders, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list reminders for user %d: %s", userID, err)
		http.Error(w, "failed to get reminders", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	reminder, ok := h.decodeReminder(w, r, userID)
	if !ok {
		return
	}

	added, err := h.repo.Add(ctx, reminder)
	if err != nil {
		log.Errorf("add reminder for user %d: %s", userID, err)
		http.Error(w, "failed to add reminder", http.StatusInternalServerError)
		return
	}

	scheduled := h.scheduler.Schedule(*added)
	span.SetAttributes(attribute.Int("reminder.id", added.ID), attribute.Int("reminder.scheduled", scheduled))
	log.Debugf("reminder %d added, %d notifications scheduled", added.ID, scheduled)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := reminderIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("reminder.id", id))

	reminder, ok := h.decodeReminder(w, r, userID)
	if !ok {
		return
	}
	reminder.ID = id

	updated, err := h.repo.Update(ctx, reminder)
	if err != nil {
		writeRepoError(w, "update", id, err)
		return
	}

	// an inactive reminder only gets its pending notifications cancelled
	h.scheduler.Schedule(*updated)

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := reminderIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("reminder.id", id))

	if err := h.repo.Delete(ctx, userID, id); err != nil {
		writeRepoError(w, "delete", id, err)
		return
	}
	h.scheduler.Cancel(id)

	pkg.WriteJSON(w, map[string]string{"message": "reminder deleted"}, http.StatusOK)
}

func (h *Handler) decodeReminder(w http.ResponseWriter, r *http.Request, userID int) (Reminder, bool) {
	var req ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return Reminder{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid reminder: "+err.Error(), http.StatusBadRequest)
		return Reminder{}, false
	}

	reminder, err := req.ToReminder(userID)
	if err != nil {
		http.Error(w, "invalid reminder: "+err.Error(), http.StatusBadRequest)
		return Reminder{}, false
	}
	return reminder, true
}

func writeRepoError(w http.ResponseWriter, op string, id int, err error) {
	if errors.Is(err, ErrReminderNotFound) {
		http.Error(w, "reminder not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s reminder %d: %s", op, id, err)
	http.Error(w, "failed to "+op+" reminder", http.StatusInternalServerError)
}

func reminderIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
