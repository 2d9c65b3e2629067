package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "freqtracker-session||"
	tokensSetKey     = "freqtracker-sessions"
	tokenLength      = 35
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Session struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

func (s Session) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}

// session values are stored as "<user id>|<created at unix>"
func encodeSession(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", userID, createdAt.Unix())
}

func decodeSession(token, value string) (Session, error) {
	userIDStr, createdAtStr, found := strings.Cut(value, "|")
	if !found {
		return Session{}, fmt.Errorf("malformed session value [%s]", value)
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return Session{}, fmt.Errorf("session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("session created at: %w", err)
	}
	return Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

type userIDCtxKey struct{}

// ContextWithUserID stores the authenticated user id, set by the auth middleware.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

// UserIDFromContext returns 0 if no user is authenticated.
func UserIDFromContext(ctx context.Context) int {
	userID, _ := ctx.Value(userIDCtxKey{}).(int)
	return userID
}

const (
	TokenHeader   = "X-FT-TOKEN"
	SessionCookie = "ft_session"
)

// TokenFromRequest reads the session token from the header, or from the cookie for browsers.
func TokenFromRequest(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
