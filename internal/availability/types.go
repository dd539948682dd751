package availability

import "time"

// TimePreference gates which anchor buckets are considered.
type TimePreference string

const (
	PreferenceMorning   TimePreference = "morning"
	PreferenceAfternoon TimePreference = "afternoon"
	PreferenceEvening   TimePreference = "evening"
	PreferenceAny       TimePreference = "any"
)

// Valid reports whether p is a known preference.
func (p TimePreference) Valid() bool {
	switch p {
	case PreferenceMorning, PreferenceAfternoon, PreferenceEvening, PreferenceAny:
		return true
	}
	return false
}

// --- UseCase Inputs ---

// SuggestInput is a scheduling request. PreferredDate nil means today;
// dates strictly in the past roll forward to tomorrow.
type SuggestInput struct {
	DurationMinutes int
	PreferredDate   *time.Time
	TimePreference  TimePreference
}

// --- UseCase Outputs ---

// Slot is a ranked conflict-free candidate. Score is within [0, 1].
type Slot struct {
	Start  time.Time
	End    time.Time
	Score  float64
	Bucket TimePreference
}
