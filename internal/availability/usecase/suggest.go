package usecase

import (
	"context"
	"sort"
	"time"

	"calendar-connect/internal/availability"
	"calendar-connect/internal/model"
)

const (
	maxSuggestions     = 5
	maxDurationMinutes = 24 * 60

	// Score components in tenths. Accumulating integers keeps emitted
	// scores exact decimals (0.8, not 0.7999...).
	baseScoreTenths   = 7
	bucketMatchTenths = 2
	morningTenths     = 1
	maxScoreTenths    = 10
)

// anchorHours lists the fixed candidate start hours per bucket. "any"
// concatenates all buckets in this order.
var anchorHours = []struct {
	bucket availability.TimePreference
	hours  []int
}{
	{availability.PreferenceMorning, []int{9, 10, 11}},
	{availability.PreferenceAfternoon, []int{13, 14, 15, 16}},
	{availability.PreferenceEvening, []int{17, 18, 19}},
}

// Suggest computes ranked, conflict-free meeting slot candidates for the
// resolved target day.
func (uc *implUseCase) Suggest(ctx context.Context, userID string, input availability.SuggestInput) ([]availability.Slot, error) {
	// Validation happens before any provider traffic.
	if input.DurationMinutes <= 0 || input.DurationMinutes > maxDurationMinutes {
		return nil, availability.ErrInvalidDuration
	}
	pref := input.TimePreference
	if pref == "" {
		pref = availability.PreferenceAny
	}
	if !pref.Valid() {
		return nil, availability.ErrInvalidPreference
	}

	day := uc.resolveTargetDate(input.PreferredDate)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	// An empty aggregated set is maximal availability; only total
	// aggregation failure propagates.
	events, err := uc.aggregator.FetchEvents(ctx, userID, dayStart, dayEnd)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggest FetchEvents: %v", err)
		return nil, err
	}

	duration := time.Duration(input.DurationMinutes) * time.Minute
	var slots []availability.Slot
	for _, bucket := range anchorHours {
		if pref != availability.PreferenceAny && pref != bucket.bucket {
			continue
		}
		for _, hour := range bucket.hours {
			start := dayStart.Add(time.Duration(hour) * time.Hour)
			end := start.Add(duration)
			if conflicts(events, start, end) {
				continue
			}
			slots = append(slots, availability.Slot{
				Start:  start,
				End:    end,
				Score:  score(bucket.bucket, pref, start),
				Bucket: bucket.bucket,
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Score == slots[j].Score {
			return slots[i].Start.Before(slots[j].Start)
		}
		return slots[i].Score > slots[j].Score
	})

	if len(slots) > maxSuggestions {
		slots = slots[:maxSuggestions]
	}
	return slots, nil
}

// resolveTargetDate picks the day anchors are generated on. A preferred
// date strictly in the past rolls forward to tomorrow.
func (uc *implUseCase) resolveTargetDate(preferred *time.Time) time.Time {
	today := uc.now().UTC().Truncate(24 * time.Hour)
	if preferred == nil {
		return today
	}
	p := preferred.UTC().Truncate(24 * time.Hour)
	if p.Before(today) {
		return today.Add(24 * time.Hour)
	}
	return p
}

// conflicts applies the half-open interval test against every event.
func conflicts(events []model.NormalizedEvent, start, end time.Time) bool {
	for _, e := range events {
		if start.Before(e.End) && end.After(e.Start) {
			return true
		}
	}
	return false
}

func score(bucket, pref availability.TimePreference, start time.Time) float64 {
	s := baseScoreTenths
	if pref != availability.PreferenceAny && bucket == pref {
		s += bucketMatchTenths
	}
	if start.Hour() < 12 {
		s += morningTenths
	}
	if s > maxScoreTenths {
		s = maxScoreTenths
	}
	return float64(s) / 10
}
