package http

import (
	"time"

	"calendar-connect/internal/integration"
	"calendar-connect/internal/model"
)

// --- Request DTOs ---

type updateCalendarsReq struct {
	CalendarIDs []string `json:"calendar_ids" binding:"required,min=1"`
}

func (r updateCalendarsReq) toInput() integration.UpdateCalendarsInput {
	return integration.UpdateCalendarsInput{CalendarIDs: r.CalendarIDs}
}

// --- Response DTOs ---

type detailResp struct {
	Connected           bool       `json:"connected"`
	LastSyncAt          *time.Time `json:"last_sync_at,omitempty"`
	SelectedCalendarIDs []string   `json:"selected_calendar_ids"`
}

func newDetailResp(out integration.DetailOutput) detailResp {
	ids := out.SelectedCalendarIDs
	if ids == nil {
		ids = []string{}
	}
	return detailResp{
		Connected:           out.Connected,
		LastSyncAt:          out.LastSyncAt,
		SelectedCalendarIDs: ids,
	}
}

type connectResp struct {
	AuthURL string `json:"auth_url"`
}

type calendarResp struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AccessRole  string `json:"access_role"`
	IsPrimary   bool   `json:"is_primary"`
}

type listCalendarsResp struct {
	Calendars []calendarResp `json:"calendars"`
}

func newListCalendarsResp(refs []model.CalendarRef) listCalendarsResp {
	out := listCalendarsResp{Calendars: make([]calendarResp, len(refs))}
	for i, ref := range refs {
		out.Calendars[i] = calendarResp{
			ID:          ref.ID,
			DisplayName: ref.DisplayName,
			AccessRole:  ref.AccessRole,
			IsPrimary:   ref.IsPrimary,
		}
	}
	return out
}
