package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/freqtracker/internal/auth"
	"github.com/2beens/freqtracker/internal/strava"
	"github.com/2beens/freqtracker/internal/telemetry/tracing"
	"github.com/2beens/freqtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type trackerService interface {
	AddActivity(ctx context.Context, uc UserContext, typeName string, occurredAt time.Time) (bool, error)
	DeleteActivity(ctx context.Context, uc UserContext, typeName string, occurredAt time.Time) (int64, error)
	ActivityTable(ctx context.Context, uc UserContext) ([]ActivityRow, error)
	AddActivityType(ctx context.Context, uc UserContext, name string, cadences Cadences) (*ActivityType, error)
	DeleteActivityType(ctx context.Context, uc UserContext, name string) error
	GoalFrequencies(ctx context.Context, uc UserContext) ([]GoalFrequency, error)
	Frequencies(ctx context.Context, uc UserContext) ([]FrequencyReport, error)
	Recommendations(ctx context.Context, uc UserContext) (Recommendations, error)
	Timezone(ctx context.Context, uc UserContext) (string, error)
	UpdateTimezone(ctx context.Context, uc UserContext, timezone string) error
	Sync(ctx context.Context, uc UserContext, since time.Time) (SyncResult, error)
}

type Handler struct {
	service trackerService
	nowFunc func() time.Time
}

func NewHandler(service trackerService) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/activities", h.HandleAddActivity).Methods("POST", "OPTIONS").Name("add-activity")
	r.HandleFunc("/activities", h.HandleDeleteActivity).Methods("DELETE", "OPTIONS").Name("delete-activity")
	r.HandleFunc("/activities", h.HandleActivityTable).Methods("GET", "OPTIONS").Name("activity-table")
	r.HandleFunc("/activity-types", h.HandleAddActivityType).Methods("POST", "OPTIONS").Name("add-activity-type")
	r.HandleFunc("/activity-types/{name}", h.HandleDeleteActivityType).Methods("DELETE", "OPTIONS").Name("delete-activity-type")
	r.HandleFunc("/activity-types", h.HandleGoalFrequencies).Methods("GET", "OPTIONS").Name("goal-frequencies")
	r.HandleFunc("/frequencies", h.HandleFrequencies).Methods("GET", "OPTIONS").Name("frequencies")
	r.HandleFunc("/recommendations", h.HandleRecommendations).Methods("GET", "OPTIONS").Name("recommendations")
	r.HandleFunc("/timezone", h.HandleGetTimezone).Methods("GET", "OPTIONS").Name("get-timezone")
	r.HandleFunc("/timezone", h.HandleUpdateTimezone).Methods("PUT", "OPTIONS").Name("update-timezone")
	r.HandleFunc("/sync", h.HandleSync).Methods("POST", "OPTIONS").Name("sync")
}

func userContext(r *http.Request) UserContext {
	return UserContext{UserID: auth.UserIDFromContext(r.Context())}
}

// writeError maps service errors to status codes, unknown ones are logged and hidden.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, "no can do", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidActivityType),
		errors.Is(err, ErrInvalidCadence),
		errors.Is(err, ErrInvalidTimezone):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrActivityTypeNotFound), errors.Is(err, ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrActivityTypeExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, strava.ErrReauthRequired), errors.Is(err, strava.ErrNotConnected):
		http.Error(w, strava.ErrReauthRequired.Error(), http.StatusConflict)
	case errors.Is(err, ErrSyncNotConfigured):
		http.Error(w, err.Error(), http.StatusNotImplemented)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}

type activityRequest struct {
	Type string     `json:"type"`
	Time *time.Time `json:"time"`
}

func (h *Handler) HandleAddActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activities.add")
	defer span.End()

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("add activity, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		http.Error(w, "error, activity type is required", http.StatusBadRequest)
		return
	}
	occurredAt := h.nowFunc()
	if req.Time != nil {
		occurredAt = *req.Time
	}

	added, err := h.service.AddActivity(ctx, userContext(r), req.Type, occurredAt)
	if err != nil {
		writeError(w, "add activity", err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	pkg.WriteJSON(w, map[string]bool{"added": added}, status)
}

func (h *Handler) HandleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activities.delete")
	defer span.End()

	typeName := r.URL.Query().Get("type")
	timeParam := r.URL.Query().Get("time")
	if typeName == "" || timeParam == "" {
		http.Error(w, "error, type and time are required", http.StatusBadRequest)
		return
	}
	occurredAt, err := time.Parse(time.RFC3339, timeParam)
	if err != nil {
		http.Error(w, "error, time must be RFC3339", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteActivity(ctx, userContext(r), typeName, occurredAt)
	if err != nil {
		writeError(w, "delete activity", err)
		return
	}
	pkg.WriteJSON(w, map[string]int64{"deleted": deleted}, http.StatusOK)
}

func (h *Handler) HandleActivityTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activities.list")
	defer span.End()

	rows, err := h.service.ActivityTable(ctx, userContext(r))
	if err != nil {
		writeError(w, "list activities", err)
		return
	}
	pkg.WriteJSON(w, rows, http.StatusOK)
}

type activityTypeRequest struct {
	Type string `json:"type"`
	Cadences
}

func (h *Handler) HandleAddActivityType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activity_types.add")
	defer span.End()

	var req activityTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("add activity type, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	activityType, err := h.service.AddActivityType(ctx, userContext(r), req.Type, req.Cadences)
	if err != nil {
		writeError(w, "add activity type", err)
		return
	}

	log.Debugf("new activity type added: %s", activityType.Name)
	pkg.WriteJSON(w, GoalFrequency{Name: activityType.Name, Cadences: activityType.Cadences}, http.StatusCreated)
}

func (h *Handler) HandleDeleteActivityType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activity_types.delete")
	defer span.End()

	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteActivityType(ctx, userContext(r), name); err != nil {
		writeError(w, "delete activity type", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleGoalFrequencies(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.activity_types.list")
	defer span.End()

	goals, err := h.service.GoalFrequencies(ctx, userContext(r))
	if err != nil {
		writeError(w, "get goal frequencies", err)
		return
	}
	pkg.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) HandleFrequencies(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.frequencies")
	defer span.End()

	reports, err := h.service.Frequencies(ctx, userContext(r))
	if err != nil {
		writeError(w, "get frequencies", err)
		return
	}
	pkg.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.recommendations")
	defer span.End()

	recs, err := h.service.Recommendations(ctx, userContext(r))
	if err != nil {
		writeError(w, "get recommendations", err)
		return
	}
	pkg.WriteJSON(w, recs, http.StatusOK)
}

type timezoneBody struct {
	Timezone string `json:"timezone"`
}

func (h *Handler) HandleGetTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.timezone.get")
	defer span.End()

	timezone, err := h.service.Timezone(ctx, userContext(r))
	if err != nil {
		writeError(w, "get timezone", err)
		return
	}
	pkg.WriteJSON(w, timezoneBody{Timezone: timezone}, http.StatusOK)
}

func (h *Handler) HandleUpdateTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.timezone.update")
	defer span.End()

	var req timezoneBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateTimezone(ctx, userContext(r), req.Timezone); err != nil {
		writeError(w, "update timezone", err)
		return
	}
	pkg.WriteJSON(w, req, http.StatusOK)
}

func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.sync")
	defer span.End()

	var since time.Time
	if sinceParam := r.URL.Query().Get("since"); sinceParam != "" {
		var err error
		since, err = time.Parse(time.RFC3339, sinceParam)
		if err != nil {
			http.Error(w, "error, since must be RFC3339", http.StatusBadRequest)
			return
		}
	}

	result, err := h.service.Sync(ctx, userContext(r), since)
	if err != nil {
		writeError(w, "sync activities", err)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}
