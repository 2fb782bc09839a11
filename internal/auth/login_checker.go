package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
)

const (
	// 1 MB is plenty for session ids
	loginCacheSize       = 1024 * 1024
	loginCacheTTLSeconds = 60
)

// LoginChecker resolves a bearer token to its user id. Live sessions are kept
// in redis, with a small in-process cache in front of it.
type LoginChecker struct {
	tokens      *TokenManager
	redisClient *redis.Client
	cache       *freecache.Cache
}

func NewLoginChecker(tokens *TokenManager, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		tokens:      tokens,
		redisClient: redisClient,
		cache:       freecache.NewCache(loginCacheSize),
	}
}

// Check returns the id of the user owning the token's session,
// or ErrInvalidToken / ErrSessionNotFound.
func (c *LoginChecker) Check(ctx context.Context, token string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.loginChecker.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := c.tokens.Parse(token)
	if err != nil {
		return 0, err
	}

	if cached, err := c.cache.Get([]byte(claims.ID)); err == nil {
		if userID, err := strconv.Atoi(string(cached)); err == nil && userID == claims.UserID {
			return userID, nil
		}
	}

	val, err := c.redisClient.Get(ctx, sessionKey(claims.ID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("parse session user id: %w", err)
	}
	if userID != claims.UserID {
		log.Warnf("session %s belongs to user %d, token claims user %d", claims.ID, userID, claims.UserID)
		return 0, ErrInvalidToken
	}

	if err := c.cache.Set([]byte(claims.ID), []byte(val), loginCacheTTLSeconds); err != nil {
		log.Debugf("login checker, cache session %s: %s", claims.ID, err)
	}

	return userID, nil
}

// Forget drops the cached session so a logout takes effect immediately.
func (c *LoginChecker) Forget(sessionID string) {
	c.cache.Del([]byte(sessionID))
}
