package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionChecker resolves session tokens to user ids.
type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

// UserID returns the id of the user the token belongs to, ErrSessionNotFound or ErrSessionExpired.
func (c *SessionChecker) UserID(ctx context.Context, token string) (int, error) {
	value, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}

	session, err := decodeSession(token, value)
	if err != nil {
		return 0, err
	}
	if session.expired(c.ttl, c.nowFunc()) {
		return 0, ErrSessionExpired
	}

	return session.UserID, nil
}
