package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type usersRepo interface {
	Add(ctx context.Context, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateEmail(ctx context.Context, id int, email string) (*User, error)
}

type Service struct {
	repo        usersRepo
	tokens      *TokenManager
	checker     *LoginChecker
	redisClient *redis.Client

	// injectable for tests
	NewSessionID     func() string
	HashPasswordFunc func(password string) (string, error)
}

func NewService(
	repo usersRepo,
	tokens *TokenManager,
	checker *LoginChecker,
	redisClient *redis.Client,
) *Service {
	return &Service{
		repo:             repo,
		tokens:           tokens,
		checker:          checker,
		redisClient:      redisClient,
		NewSessionID:     uuid.NewString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (s *Service) Register(ctx context.Context, creds Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	passwordHash, err := s.HashPasswordFunc(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Add(ctx, normalizeEmail(creds.Email), passwordHash)
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	log.Debugf("new user registered: %d", user.ID)
	return user, nil
}

// Login verifies the credentials and opens a new session, returning its bearer token.
func (s *Service) Login(ctx context.Context, creds Credentials) (_ string, _ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	sessionID := s.NewSessionID()
	token, err := s.tokens.Generate(user.ID, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKey(sessionID), strconv.Itoa(user.ID), s.tokens.TTL()).Err(); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	s.checker.Forget(claims.ID)
	deleted, err := s.redisClient.Del(ctx, sessionKey(claims.ID)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (s *Service) UpdateEmail(ctx context.Context, userID int, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.updateEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.UpdateEmail(ctx, userID, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("update email: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
