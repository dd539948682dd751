package http

import (
	"time"

	"calendar-connect/internal/availability"
)

// --- Request DTOs ---

type suggestReq struct {
	DurationMinutes int    `json:"duration"        binding:"required"`
	PreferredDate   string `json:"preferred_date"  binding:"omitempty,datetime=2006-01-02"`
	TimePreference  string `json:"time_preference" binding:"omitempty"`
}

func (r suggestReq) toInput() (availability.SuggestInput, error) {
	input := availability.SuggestInput{
		DurationMinutes: r.DurationMinutes,
		TimePreference:  availability.TimePreference(r.TimePreference),
	}
	if r.PreferredDate != "" {
		t, err := time.Parse("2006-01-02", r.PreferredDate)
		if err != nil {
			return input, err
		}
		input.PreferredDate = &t
	}
	return input, nil
}

// --- Response DTOs ---

type slotResp struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Score  float64   `json:"score"`
	Bucket string    `json:"bucket"`
}

type suggestResp struct {
	Slots []slotResp `json:"slots"`
	Count int        `json:"count"`
}

func newSuggestResp(slots []availability.Slot) suggestResp {
	out := suggestResp{Slots: make([]slotResp, len(slots)), Count: len(slots)}
	for i, s := range slots {
		out.Slots[i] = slotResp{
			Start:  s.Start,
			End:    s.End,
			Score:  s.Score,
			Bucket: string(s.Bucket),
		}
	}
	return out
}
