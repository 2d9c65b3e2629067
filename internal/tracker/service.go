package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/freqtracker/internal/calendar"
	"github.com/2beens/freqtracker/internal/frequency"
	"github.com/2beens/freqtracker/internal/recommend"
	"github.com/2beens/freqtracker/internal/strava"
	"github.com/2beens/freqtracker/internal/telemetry/metrics"
	"github.com/2beens/freqtracker/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type trackerRepo interface {
	GetUser(ctx context.Context, userID int) (*User, error)
	UpdateTimezone(ctx context.Context, userID int, timezone string) error
	ListActivityTypes(ctx context.Context, userID int) ([]ActivityType, error)
	GetActivityTypeByName(ctx context.Context, userID int, name string) (*ActivityType, error)
	AddActivityType(ctx context.Context, activityType ActivityType) (*ActivityType, error)
	DeleteActivityType(ctx context.Context, userID int, name string) error
	AddActivity(ctx context.Context, activity Activity) (bool, error)
	DeleteActivity(ctx context.Context, activity Activity) (int64, error)
	ActivityHistory(ctx context.Context, userID, typeID int) ([]time.Time, error)
	ListActivities(ctx context.Context, userID int) ([]ActivityRow, error)
	ListCalculations(ctx context.Context, userID int) ([]Calculation, error)
	StoreCalculation(ctx context.Context, calc Calculation) (bool, error)
	SeedActivityTypes(ctx context.Context, userID int, types map[string]Cadences) error
}

type activitySyncer interface {
	FetchActivities(ctx context.Context, userID int, since time.Time) ([]strava.SyncedActivity, error)
}

// Service answers "how often do I do things" for one user at a time.
// Cached calculations are recomputed on read when stale, never in the background.
type Service struct {
	repo           trackerRepo
	syncer         activitySyncer
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

// NewService creates the tracker service. syncer may be nil, Sync then fails with ErrSyncNotConfigured.
func NewService(repo trackerRepo, syncer activitySyncer, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		syncer:         syncer,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// SetClock replaces the time source used as "now".
func (s *Service) SetClock(nowFunc func() time.Time) {
	s.nowFunc = nowFunc
}

func (s *Service) userLocation(ctx context.Context, uc UserContext) (*time.Location, error) {
	user, err := s.repo.GetUser(ctx, uc.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user.Location()
}

// AddActivity records one occurrence. Unknown types and duplicates are not errors, added is false then.
func (s *Service) AddActivity(ctx context.Context, uc UserContext, typeName string, occurredAt time.Time) (added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.addActivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return false, ErrUnauthenticated
	}
	typeName = strings.TrimSpace(typeName)
	span.SetAttributes(attribute.Int("user.id", uc.UserID), attribute.String("activity.type", typeName))

	activityType, err := s.repo.GetActivityTypeByName(ctx, uc.UserID, typeName)
	if errors.Is(err, ErrActivityTypeNotFound) {
		log.Warnf("add activity: user %d has no activity type [%s], ignoring", uc.UserID, typeName)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get activity type: %w", err)
	}

	added, err = s.repo.AddActivity(ctx, Activity{
		UserID:     uc.UserID,
		TypeID:     activityType.ID,
		TypeName:   activityType.Name,
		OccurredAt: occurredAt.Truncate(time.Second),
	})
	if err != nil {
		return false, fmt.Errorf("add activity: %w", err)
	}

	s.metricsManager.CounterInvalidations.Inc()
	if added {
		s.metricsManager.CounterActivitiesAdded.Inc()
	}
	return added, nil
}

// DeleteActivity removes the occurrence of the given type at exactly occurredAt.
func (s *Service) DeleteActivity(ctx context.Context, uc UserContext, typeName string, occurredAt time.Time) (deleted int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.deleteActivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return 0, ErrUnauthenticated
	}
	typeName = strings.TrimSpace(typeName)

	activityType, err := s.repo.GetActivityTypeByName(ctx, uc.UserID, typeName)
	if errors.Is(err, ErrActivityTypeNotFound) {
		log.Warnf("delete activity: user %d has no activity type [%s], ignoring", uc.UserID, typeName)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get activity type: %w", err)
	}

	deleted, err = s.repo.DeleteActivity(ctx, Activity{
		UserID:     uc.UserID,
		TypeID:     activityType.ID,
		TypeName:   activityType.Name,
		OccurredAt: occurredAt.Truncate(time.Second),
	})
	if err != nil {
		return 0, fmt.Errorf("delete activity: %w", err)
	}

	s.metricsManager.CounterInvalidations.Inc()
	return deleted, nil
}

// Frequencies returns one report per activity type, sorted by name.
func (s *Service) Frequencies(ctx context.Context, uc UserContext) (_ []FrequencyReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.frequencies")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return nil, ErrUnauthenticated
	}

	loc, err := s.userLocation(ctx, uc)
	if err != nil {
		return nil, err
	}
	now := s.nowFunc()

	activityTypes, err := s.repo.ListActivityTypes(ctx, uc.UserID)
	if err != nil {
		return nil, fmt.Errorf("list activity types: %w", err)
	}
	calcs, err := s.repo.ListCalculations(ctx, uc.UserID)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	calcByType := make(map[int]Calculation, len(calcs))
	for _, c := range calcs {
		calcByType[c.TypeID] = c
	}

	season := calendar.SeasonOf(now.In(loc))
	reports := make([]FrequencyReport, 0, len(activityTypes))
	recomputed := 0
	for _, activityType := range activityTypes {
		calc, ok := calcByType[activityType.ID]
		if !ok {
			calc = Calculation{UserID: uc.UserID, TypeID: activityType.ID}
		}
		if calc.Stale(loc, now) {
			calc, err = s.recompute(ctx, calc, loc, now)
			if err != nil {
				return nil, fmt.Errorf("recompute %s: %w", activityType.Name, err)
			}
			recomputed++
		}
		reports = append(reports, buildReport(activityType, calc, season, loc, now))
	}
	span.SetAttributes(attribute.Int("recomputed", recomputed))

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Name < reports[j].Name
	})
	return reports, nil
}

// recompute rebuilds the calculation from the full history. The write only lands if
// no invalidation happened since calc was read; otherwise the fresh numbers are
// returned but the row stays invalid for the next read.
func (s *Service) recompute(ctx context.Context, calc Calculation, loc *time.Location, now time.Time) (Calculation, error) {
	timer := prometheus.NewTimer(s.metricsManager.HistRecomputeDuration)
	defer timer.ObserveDuration()

	history, err := s.repo.ActivityHistory(ctx, calc.UserID, calc.TypeID)
	if err != nil {
		return Calculation{}, fmt.Errorf("activity history: %w", err)
	}

	averages := frequency.Compute(history, loc, now)
	computedAt := now
	fresh := Calculation{
		UserID:         calc.UserID,
		TypeID:         calc.TypeID,
		Lifetime:       averages.Lifetime,
		ThirtyDay:      averages.ThirtyDay,
		Seasonal:       averages.Seasonal,
		LastActivityAt: averages.LastActivity,
		Valid:          true,
		Version:        calc.Version,
		ComputedAt:     &computedAt,
	}

	stored, err := s.repo.StoreCalculation(ctx, fresh)
	if err != nil {
		return Calculation{}, fmt.Errorf("store calculation: %w", err)
	}
	s.metricsManager.CounterRecomputes.Inc()
	if !stored {
		log.Debugf("calculation user %d type %d changed during recompute, left invalid", calc.UserID, calc.TypeID)
		s.metricsManager.CounterRecomputeConflicts.Inc()
		fresh.Valid = false
	}

	return fresh, nil
}

func buildReport(activityType ActivityType, calc Calculation, season calendar.Season, loc *time.Location, now time.Time) FrequencyReport {
	gap := frequency.Undefined
	if calc.LastActivityAt != nil {
		gap = calendar.DaysAgo(*calc.LastActivityAt, loc, now)
	}
	expected := activityType.For(season)

	return FrequencyReport{
		Name:                     activityType.Name,
		CurrentFrequency:         gap,
		ExpectedFrequency:        expected,
		ExpectedAverageFrequency: activityType.Mean(),
		ThirtyDayAverage:         calc.ThirtyDay,
		SeasonAverage:            calc.Seasonal,
		RunningAverage:           calc.Lifetime,
		Due:                      recommend.Classify(gap, expected),
	}
}

// Recommendations splits the frequency reports into what is due today and tomorrow.
func (s *Service) Recommendations(ctx context.Context, uc UserContext) (_ Recommendations, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.recommendations")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	reports, err := s.Frequencies(ctx, uc)
	if err != nil {
		return Recommendations{}, err
	}

	recs := Recommendations{
		Today:    []FrequencyReport{},
		Tomorrow: []FrequencyReport{},
	}
	for _, report := range reports {
		switch report.Due {
		case recommend.DueToday:
			recs.Today = append(recs.Today, report)
		case recommend.DueTomorrow:
			recs.Tomorrow = append(recs.Tomorrow, report)
		}
	}
	return recs, nil
}

func (s *Service) AddActivityType(ctx context.Context, uc UserContext, name string, cadences Cadences) (_ *ActivityType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.addActivityType")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return nil, ErrUnauthenticated
	}
	name, err = normalizeTypeName(name)
	if err != nil {
		return nil, err
	}
	if err := cadences.Validate(); err != nil {
		return nil, err
	}

	return s.repo.AddActivityType(ctx, ActivityType{
		UserID:    uc.UserID,
		Name:      name,
		Cadences:  cadences,
		CreatedAt: s.nowFunc(),
	})
}

// DeleteActivityType removes the type together with its activities and calculation.
func (s *Service) DeleteActivityType(ctx context.Context, uc UserContext, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.deleteActivityType")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return ErrUnauthenticated
	}
	name, err = normalizeTypeName(name)
	if err != nil {
		return err
	}
	return s.repo.DeleteActivityType(ctx, uc.UserID, name)
}

func (s *Service) GoalFrequencies(ctx context.Context, uc UserContext) (_ []GoalFrequency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.goalFrequencies")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return nil, ErrUnauthenticated
	}

	activityTypes, err := s.repo.ListActivityTypes(ctx, uc.UserID)
	if err != nil {
		return nil, fmt.Errorf("list activity types: %w", err)
	}

	goals := make([]GoalFrequency, 0, len(activityTypes))
	for _, activityType := range activityTypes {
		goals = append(goals, GoalFrequency{
			Name:     activityType.Name,
			Cadences: activityType.Cadences,
		})
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Name < goals[j].Name
	})
	return goals, nil
}

// ActivityTable lists all activities newest first, times in the user's timezone.
func (s *Service) ActivityTable(ctx context.Context, uc UserContext) (_ []ActivityRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.activityTable")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return nil, ErrUnauthenticated
	}

	loc, err := s.userLocation(ctx, uc)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListActivities(ctx, uc.UserID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	for i := range rows {
		rows[i].Time = rows[i].Time.In(loc)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time.After(rows[j].Time)
	})
	return rows, nil
}

func (s *Service) Timezone(ctx context.Context, uc UserContext) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.timezone")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return "", ErrUnauthenticated
	}
	user, err := s.repo.GetUser(ctx, uc.UserID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	return user.Timezone, nil
}

// UpdateTimezone changes the user's timezone. Local days shift with it, so all of the
// user's calculations are invalidated by the repo in the same transaction.
func (s *Service) UpdateTimezone(ctx context.Context, uc UserContext, timezone string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.updateTimezone")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return ErrUnauthenticated
	}
	if err := ValidateTimezone(timezone); err != nil {
		return err
	}

	if err := s.repo.UpdateTimezone(ctx, uc.UserID, timezone); err != nil {
		return fmt.Errorf("update timezone: %w", err)
	}
	s.metricsManager.CounterInvalidations.Inc()
	return nil
}

// ValidateTimezone accepts IANA names only, the empty name is rejected.
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTimezone)
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimezone, timezone)
	}
	return nil
}

// Sync imports activities from the sync provider. Activities of types the user does
// not track are skipped, as are ones already stored.
func (s *Service) Sync(ctx context.Context, uc UserContext, since time.Time) (_ SyncResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.sync")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return SyncResult{}, ErrUnauthenticated
	}
	if s.syncer == nil {
		return SyncResult{}, ErrSyncNotConfigured
	}

	synced, err := s.syncer.FetchActivities(ctx, uc.UserID, since)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch activities: %w", err)
	}

	activityTypes, err := s.repo.ListActivityTypes(ctx, uc.UserID)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list activity types: %w", err)
	}
	typesByName := make(map[string]ActivityType, len(activityTypes))
	for _, activityType := range activityTypes {
		typesByName[activityType.Name] = activityType
	}

	result := SyncResult{Fetched: len(synced)}
	for _, item := range synced {
		activityType, ok := typesByName[item.Type]
		if !ok {
			result.Skipped++
			s.metricsManager.CounterSyncedActivities.With(prometheus.Labels{"outcome": "unknown_type"}).Inc()
			continue
		}

		added, err := s.repo.AddActivity(ctx, Activity{
			UserID:     uc.UserID,
			TypeID:     activityType.ID,
			TypeName:   activityType.Name,
			OccurredAt: item.StartedAt.Truncate(time.Second),
		})
		if err != nil {
			return result, fmt.Errorf("add synced %s activity: %w", item.Type, err)
		}
		s.metricsManager.CounterInvalidations.Inc()
		if !added {
			result.Skipped++
			s.metricsManager.CounterSyncedActivities.With(prometheus.Labels{"outcome": "duplicate"}).Inc()
			continue
		}
		result.Added++
		s.metricsManager.CounterActivitiesAdded.Inc()
		s.metricsManager.CounterSyncedActivities.With(prometheus.Labels{"outcome": "added"}).Inc()
	}

	log.Infof("sync user %d: fetched %d, added %d, skipped %d", uc.UserID, result.Fetched, result.Added, result.Skipped)
	return result, nil
}

// SeedDefaultActivityTypes gives a new account the default activity types.
// Types the user already has are left as they are.
func (s *Service) SeedDefaultActivityTypes(ctx context.Context, uc UserContext) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.seedDefaultActivityTypes")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !uc.authenticated() {
		return ErrUnauthenticated
	}
	return s.repo.SeedActivityTypes(ctx, uc.UserID, DefaultActivityTypes)
}
