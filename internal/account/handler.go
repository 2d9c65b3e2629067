package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/freqtracker/internal/auth"
	"github.com/2beens/freqtracker/internal/middleware"
	"github.com/2beens/freqtracker/internal/telemetry/metrics"
	"github.com/2beens/freqtracker/internal/telemetry/tracing"
	"github.com/2beens/freqtracker/internal/tracker"
	"github.com/2beens/freqtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	minPasswordLength = 8
	defaultTimezone   = "UTC"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=account_test

type userRepo interface {
	Create(ctx context.Context, user User) (int, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, userID int) error
}

type sessionManager interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
	LogoutUser(ctx context.Context, userID int) (int, error)
}

type timezoneResolver interface {
	RequestTimezone(ctx context.Context, r *http.Request) string
}

type activityTypesSeeder interface {
	SeedDefaultActivityTypes(ctx context.Context, uc tracker.UserContext) error
}

type HandlerParams struct {
	Users      userRepo
	Sessions   sessionManager
	Timezones  timezoneResolver
	Seeder     activityTypesSeeder
	SessionTTL time.Duration
	// bcrypt cost, pkg.DefaultPasswordHashCost if 0
	PasswordHashCost int
	SecureCookies    bool
}

type Handler struct {
	users            userRepo
	sessions         sessionManager
	timezones        timezoneResolver
	seeder           activityTypesSeeder
	sessionTTL       time.Duration
	passwordHashCost int
	secureCookies    bool
}

func NewHandler(params HandlerParams) *Handler {
	cost := params.PasswordHashCost
	if cost == 0 {
		cost = pkg.DefaultPasswordHashCost
	}
	ttl := params.SessionTTL
	if ttl <= 0 {
		ttl = auth.DefaultTTL
	}

	return &Handler{
		users:            params.Users,
		sessions:         params.Sessions,
		timezones:        params.Timezones,
		seeder:           params.Seeder,
		sessionTTL:       ttl,
		passwordHashCost: cost,
		secureCookies:    params.SecureCookies,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	accountRouter := mainRouter.PathPrefix("/a").Subrouter()
	accountRouter.HandleFunc("/signup", h.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	accountRouter.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	accountRouter.HandleFunc("/logout", h.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	accountRouter.HandleFunc("/account", h.HandleDeleteAccount).Methods("DELETE", "OPTIONS").Name("delete-account")

	// rate limit the account endpoints to make password guessing slow
	accountRouter.Use(middleware.RateLimit(rateLimiter, "account", allowedPerMin, metricsManager))
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Timezone string `json:"timezone"`
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.signup")
	defer span.End()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("signup, unmarshal json params: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}
	if len(req.Password) < minPasswordLength {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	timezone := strings.TrimSpace(req.Timezone)
	if timezone != "" {
		if err := tracker.ValidateTimezone(timezone); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		timezone = h.guessTimezone(ctx, r)
	}

	passwordHash, err := pkg.HashPasswordWithCost(req.Password, h.passwordHashCost)
	if err != nil {
		log.Errorf("signup, hash password: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	userID, err := h.users.Create(ctx, User{
		Email:        email,
		Name:         name,
		Timezone:     timezone,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, ErrEmailTaken) {
		http.Error(w, "error, email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("signup, create user: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	// the account is usable without the defaults, a failed seed is not a failed signup
	if err := h.seeder.SeedDefaultActivityTypes(ctx, tracker.UserContext{UserID: userID}); err != nil {
		log.Errorf("signup, seed activity types for user %d: %s", userID, err)
	}

	log.Infof("new user %d signed up, timezone %s", userID, timezone)
	pkg.WriteJSON(w, map[string]any{
		"id":       userID,
		"email":    email,
		"name":     name,
		"timezone": timezone,
	}, http.StatusCreated)
}

func (h *Handler) guessTimezone(ctx context.Context, r *http.Request) string {
	if h.timezones == nil {
		return defaultTimezone
	}
	if tz := h.timezones.RequestTimezone(ctx, r); tz != "" {
		return tz
	}
	return defaultTimezone
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	if addr.Address != email {
		return "", errors.New("unexpected display name in email")
	}
	return email, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Debugf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Debugf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusBadRequest)
			return
		}
		loginReq = loginRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := h.authenticate(ctx, loginReq.Email, loginReq.Password)
	if errors.Is(err, ErrWrongCredentials) {
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorf("login, get user: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, create session: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	log.Tracef("login success for user %d", user.ID)
	pkg.WriteJSON(w, map[string]string{"token": token}, http.StatusOK)
}

// authenticate returns ErrWrongCredentials for unknown emails and wrong passwords alike.
func (h *Handler) authenticate(ctx context.Context, email, password string) (*User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrWrongCredentials
	}

	user, err := h.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		log.Tracef("[email] failed login attempt for: %s", email)
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %d", user.ID)
		return nil, ErrWrongCredentials
	}
	return user, nil
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := auth.TokenFromRequest(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	clearSessionCookie(w)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.delete")
	defer span.End()

	userID := auth.UserIDFromContext(ctx)
	if userID <= 0 {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete account %d: %s", userID, err)
		http.Error(w, "delete account failed", http.StatusInternalServerError)
		return
	}

	// sessions of a deleted user resolve to nothing, removing them is housekeeping only
	if removed, err := h.sessions.LogoutUser(ctx, userID); err != nil {
		log.Errorf("delete account %d, remove sessions: %s", userID, err)
	} else {
		log.Debugf("delete account %d, removed %d sessions", userID, removed)
	}

	clearSessionCookie(w)
	log.Infof("user %d deleted the account", userID)
	w.WriteHeader(http.StatusNoContent)
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
