package frequency

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/freqtracker/internal/calendar"
)

// Undefined marks an average that has no data behind it. It is never a real average.
const Undefined = -1

// ThirtyDayWindow is the length, in local calendar days, of the trailing window.
const ThirtyDayWindow = 30

type Averages struct {
	Lifetime  float64
	ThirtyDay float64
	Seasonal  float64
	// LastActivity is the most recent timestamp of the history, nil for an empty history.
	LastActivity *time.Time
}

func UndefinedAverages() Averages {
	return Averages{
		Lifetime:  Undefined,
		ThirtyDay: Undefined,
		Seasonal:  Undefined,
	}
}

// Compute does a full recompute of the averages from the whole activity history of one
// activity type. history is expected in ascending order; it is never modified.
func Compute(history []time.Time, loc *time.Location, now time.Time) Averages {
	if len(history) == 0 {
		return UndefinedAverages()
	}

	if !sort.SliceIsSorted(history, func(i, j int) bool { return history[i].Before(history[j]) }) {
		sorted := make([]time.Time, len(history))
		copy(sorted, history)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
		history = sorted
	}

	earliest := history[0]
	latest := history[len(history)-1]
	count := len(history)

	thirtyCutoff := calendar.DaysBefore(loc, now, ThirtyDayWindow)
	seasonStart := calendar.SeasonStart(loc, now)

	thirtyCount, seasonCount := 0, 0
	for _, ts := range history {
		if ts.After(thirtyCutoff) {
			thirtyCount++
		}
		if ts.After(seasonStart) {
			seasonCount++
		}
	}

	averages := Averages{
		Lifetime:     Round2(float64(calendar.DaysAgo(earliest, loc, now)) / float64(count)),
		ThirtyDay:    Undefined,
		Seasonal:     Undefined,
		LastActivity: &latest,
	}
	if thirtyCount > 0 {
		averages.ThirtyDay = Round2(float64(ThirtyDayWindow) / float64(thirtyCount))
	}
	if seasonCount > 0 {
		averages.Seasonal = Round2(float64(calendar.DaysAgo(seasonStart, loc, now)) / float64(seasonCount))
	}

	return averages
}

// Round2 rounds x to two decimals, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
