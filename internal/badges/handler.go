package badges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/progress"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=badges

type badgesService interface {
	Catalog() []progress.BadgeDefinition
	List(ctx context.Context, userID int) ([]EarnedBadge, error)
	Award(ctx context.Context, userID int, badgeID string) (*EarnedBadge, error)
	CheckAndAward(ctx context.Context, userID int) ([]progress.BadgeDefinition, error)
	Progress(ctx context.Context, userID int, badgeID string) (*progress.BadgeProgress, error)
	Delete(ctx context.Context, userID, id int) error
}

type Handler struct {
	service  badgesService
	validate *validator.Validate
}

func NewHandler(service badgesService, validate *validator.Validate) *Handler {
	return &Handler{
		service:  service,
		validate: validate,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	earned, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list badges for user %d: %s", userID, err)
		http.Error(w, "failed to get badges", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, earned, http.StatusOK)
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.catalog")
	defer span.End()

	pkg.WriteJSON(w, h.service.Catalog(), http.StatusOK)
}

func (h *Handler) HandleAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.award")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid badge request: "+err.Error(), http.StatusBadRequest)
		return
	}

	earned, err := h.service.Award(ctx, userID, req.BadgeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadgeNotFound):
			http.Error(w, "unknown badge", http.StatusBadRequest)
		case errors.Is(err, ErrBadgeAlreadyEarned):
			http.Error(w, "badge already earned", http.StatusConflict)
		default:
			log.Errorf("award badge %s to user %d: %s", req.BadgeID, userID, err)
			http.Error(w, "failed to award badge", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, earned, http.StatusCreated)
}

func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.check")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	newBadges, err := h.service.CheckAndAward(ctx, userID)
	if err != nil {
		log.Errorf("check badges for user %d: %s", userID, err)
		http.Error(w, "failed to check badges", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, CheckResponse{NewBadges: newBadges}, http.StatusOK)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.progress")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	badgeID := mux.Vars(r)["badgeId"]
	badgeProgress, err := h.service.Progress(ctx, userID, badgeID)
	if err != nil {
		if errors.Is(err, ErrBadgeNotFound) {
			http.Error(w, "badge not found", http.StatusNotFound)
			return
		}
		log.Errorf("badge %s progress for user %d: %s", badgeID, userID, err)
		http.Error(w, "failed to get badge progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, badgeProgress, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrBadgeNotFound) {
			http.Error(w, "badge not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete earned badge %d: %s", id, err)
		http.Error(w, "failed to delete badge", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "badge removed"}, http.StatusOK)
}
