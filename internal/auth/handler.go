package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth

type authService interface {
	Register(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials) (string, *User, error)
	Logout(ctx context.Context, token string) error
	UpdateEmail(ctx context.Context, userID int, email string) (*User, error)
}

type Handler struct {
	service  authService
	validate *validator.Validate
}

func NewHandler(service authService, validate *validator.Validate) *Handler {
	return &Handler{
		service:  service,
		validate: validate,
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.service.Register(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		log.Errorf("register user: %s", err)
		http.Error(w, "failed to register", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	token, user, err := h.service.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Tracef("failed login attempt for [%s]", creds.Email)
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login: %s", err)
		http.Error(w, "failed to login", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, LoginResponse{Token: token, User: user}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token, ok := TokenFromRequest(r)
	if !ok {
		http.Error(w, "no token", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(ctx, token); err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidToken) {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "failed to logout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "logged out"}, http.StatusOK)
}

func (h *Handler) HandleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.updateEmail")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateEmail(ctx, userID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			http.Error(w, "email already in use", http.StatusConflict)
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.Errorf("update email for user %d: %s", userID, err)
			http.Error(w, "failed to update email", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Tracef("decode credentials: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return creds, false
	}
	if err := h.validate.Struct(creds); err != nil {
		http.Error(w, "valid email and password (min 6 characters) required", http.StatusBadRequest)
		return creds, false
	}
	return creds, true
}
