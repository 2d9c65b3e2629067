package recommend

import (
	"encoding/json"
	"fmt"
)

type Verdict int

const (
	None Verdict = iota
	DueToday
	DueTomorrow
)

var verdictNames = map[Verdict]string{
	None:        "none",
	DueToday:    "today",
	DueTomorrow: "tomorrow",
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Classify decides if an activity is due, given the days since it was last done and the
// expected cadence in days. A negative gap means the activity was never logged, and is always due.
func Classify(currentGapDays, expectedCadenceDays int) Verdict {
	switch {
	case currentGapDays < 0, currentGapDays >= expectedCadenceDays:
		return DueToday
	case currentGapDays == expectedCadenceDays-1:
		return DueTomorrow
	default:
		return None
	}
}
