package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/freqtracker/internal/calendar"
	"github.com/2beens/freqtracker/internal/frequency"
	"github.com/2beens/freqtracker/internal/recommend"
)

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrUserNotFound         = errors.New("user not found")
	ErrActivityTypeNotFound = errors.New("activity type not found")
	ErrActivityTypeExists   = errors.New("activity type already exists")
	ErrInvalidActivityType  = errors.New("invalid activity type name")
	ErrInvalidCadence       = errors.New("cadence must be at least one day")
	ErrInvalidTimezone      = errors.New("invalid timezone")
	ErrSyncNotConfigured    = errors.New("activity sync not configured")
)

// UserContext identifies the authenticated user an operation runs for.
type UserContext struct {
	UserID int
}

func (uc UserContext) authenticated() bool {
	return uc.UserID > 0
}

type User struct {
	ID        int
	Email     string
	Name      string
	Timezone  string
	CreatedAt time.Time
}

func (u *User) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, u.Timezone)
	}
	return loc, nil
}

// Cadences are the expected days between two occurrences, per season.
type Cadences struct {
	Winter int `json:"winter"`
	Spring int `json:"spring"`
	Summer int `json:"summer"`
	Fall   int `json:"fall"`
}

func (c Cadences) For(season calendar.Season) int {
	switch season {
	case calendar.Winter:
		return c.Winter
	case calendar.Spring:
		return c.Spring
	case calendar.Summer:
		return c.Summer
	default:
		return c.Fall
	}
}

func (c Cadences) Mean() float64 {
	return frequency.Round2(float64(c.Winter+c.Spring+c.Summer+c.Fall) / 4)
}

func (c Cadences) Validate() error {
	for _, season := range calendar.AllSeasons {
		if c.For(season) < 1 {
			return fmt.Errorf("%w: %s", ErrInvalidCadence, season)
		}
	}
	return nil
}

type ActivityType struct {
	ID     int
	UserID int
	Name   string
	Cadences
	CreatedAt time.Time
}

func normalizeTypeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 64 {
		return "", ErrInvalidActivityType
	}
	return name, nil
}

type Activity struct {
	ID         int64
	UserID     int
	TypeID     int
	TypeName   string
	OccurredAt time.Time
}

// Calculation is the cached result of a full recompute for one (user, activity type).
// Version grows with every invalidation, a recompute only lands if the version it read is still current.
type Calculation struct {
	UserID         int
	TypeID         int
	Lifetime       float64
	ThirtyDay      float64
	Seasonal       float64
	LastActivityAt *time.Time
	Valid          bool
	Version        int64
	ComputedAt     *time.Time
}

// Stale reports whether the cached numbers must be recomputed before use.
// The 30 day window and the season average move with the local day, so a row computed
// on an earlier local day is stale even if still flagged valid.
func (c Calculation) Stale(loc *time.Location, now time.Time) bool {
	if !c.Valid || c.ComputedAt == nil {
		return true
	}
	return !calendar.SameLocalDay(*c.ComputedAt, now, loc)
}

// FrequencyReport is the per activity type view returned to clients.
type FrequencyReport struct {
	Name                     string            `json:"name"`
	CurrentFrequency         int               `json:"current_frequency"`
	ExpectedFrequency        int               `json:"expected_frequency"`
	ExpectedAverageFrequency float64           `json:"expected_average_frequency"`
	ThirtyDayAverage         float64           `json:"thirty_day_average"`
	SeasonAverage            float64           `json:"season_average"`
	RunningAverage           float64           `json:"running_average"`
	Due                      recommend.Verdict `json:"due"`
}

type Recommendations struct {
	Today    []FrequencyReport `json:"today"`
	Tomorrow []FrequencyReport `json:"tomorrow"`
}

type GoalFrequency struct {
	Name string `json:"type"`
	Cadences
}

type ActivityRow struct {
	Type string    `json:"type"`
	Time time.Time `json:"time"`
}

type SyncResult struct {
	Fetched int `json:"fetched"`
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// DefaultActivityTypes are seeded for new accounts, they match the sync provider's activity type names.
var DefaultActivityTypes = map[string]Cadences{
	"Swim":           {Winter: 4, Spring: 4, Summer: 4, Fall: 4},
	"Ride":           {Winter: 4, Spring: 4, Summer: 4, Fall: 4},
	"Run":            {Winter: 4, Spring: 4, Summer: 4, Fall: 4},
	"WeightTraining": {Winter: 3, Spring: 3, Summer: 3, Fall: 3},
	"Pilates":        {Winter: 5, Spring: 5, Summer: 5, Fall: 5},
	"Yoga":           {Winter: 4, Spring: 4, Summer: 4, Fall: 4},
	"Reading":        {Winter: 7, Spring: 7, Summer: 7, Fall: 7},
	"Woodworking":    {Winter: 7, Spring: 7, Summer: 7, Fall: 7},
	"Chess":          {Winter: 6, Spring: 6, Summer: 6, Fall: 6},
	"Piano":          {Winter: 3, Spring: 3, Summer: 3, Fall: 3},
}
