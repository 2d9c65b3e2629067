package strava

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/freqtracker/internal/auth"
	"github.com/2beens/freqtracker/internal/telemetry/tracing"
	"github.com/2beens/freqtracker/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	oauthStateKeyPrefix = "freqtracker-strava-state||"
	oauthStateTTL       = 10 * time.Minute
)

type oauthFlow interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

type tokenSaver interface {
	Save(ctx context.Context, userID int, token *oauth2.Token) error
	Delete(ctx context.Context, userID int) error
}

// Handler implements the strava account connect flow.
type Handler struct {
	oauth       oauthFlow
	tokens      tokenSaver
	redisClient *redis.Client
	// where the browser lands after a successful connect
	doneRedirectURL string
	randStringFunc  func(s int) (string, error)
}

func NewHandler(oauth oauthFlow, tokens tokenSaver, redisClient *redis.Client, doneRedirectURL string) *Handler {
	return &Handler{
		oauth:           oauth,
		tokens:          tokens,
		redisClient:     redisClient,
		doneRedirectURL: doneRedirectURL,
		randStringFunc:  pkg.GenerateRandomString,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/strava/connect", h.HandleConnect).Methods("GET", "OPTIONS").Name("strava-connect")
	r.HandleFunc("/strava/callback", h.HandleCallback).Methods("GET", "OPTIONS").Name("strava-callback")
	r.HandleFunc("/strava", h.HandleDisconnect).Methods("DELETE", "OPTIONS").Name("strava-disconnect")
}

func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.connect")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	if userID <= 0 {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	state, err := h.randStringFunc(24)
	if err != nil {
		log.Errorf("strava connect, generate state: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.redisClient.Set(ctx, oauthStateKeyPrefix+state, userID, oauthStateTTL).Err(); err != nil {
		log.Errorf("strava connect, store state: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.callback")
	defer span.End()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		log.Warnf("strava callback, user denied access: %s", errParam)
		http.Error(w, "strava access denied", http.StatusBadRequest)
		return
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		http.Error(w, "missing state or code", http.StatusBadRequest)
		return
	}

	userID, err := h.popState(ctx, state)
	if err != nil {
		log.Warnf("strava callback, state check: %s", err)
		http.Error(w, "invalid or expired state", http.StatusBadRequest)
		return
	}
	if sessionUserID := auth.UserIDFromContext(ctx); sessionUserID != userID {
		log.Warnf("strava callback, state user %d does not match session user %d", userID, sessionUserID)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		log.Errorf("strava callback, exchange: %s", err)
		http.Error(w, "failed to connect strava", http.StatusBadGateway)
		return
	}

	if err := h.tokens.Save(ctx, userID, token); err != nil {
		log.Errorf("strava callback, save token for user %d: %s", userID, err)
		http.Error(w, "failed to connect strava", http.StatusInternalServerError)
		return
	}

	log.Infof("strava connected for user %d", userID)
	if h.doneRedirectURL != "" {
		http.Redirect(w, r, h.doneRedirectURL, http.StatusFound)
		return
	}
	pkg.WriteTextResponseOK(w, "strava connected")
}

func (h *Handler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strava.disconnect")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	if userID <= 0 {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.tokens.Delete(ctx, userID); err != nil {
		log.Errorf("strava disconnect, user %d: %s", userID, err)
		http.Error(w, "failed to disconnect strava", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "strava disconnected")
}

// popState returns the user id the state was issued for, and removes it.
func (h *Handler) popState(ctx context.Context, state string) (int, error) {
	key := oauthStateKeyPrefix + state
	val, err := h.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, errors.New("state not found")
	}
	if err != nil {
		return 0, fmt.Errorf("get state: %w", err)
	}
	if err := h.redisClient.Del(ctx, key).Err(); err != nil {
		log.Warnf("strava callback, delete used state: %s", err)
	}

	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("state value: %w", err)
	}
	return userID, nil
}
