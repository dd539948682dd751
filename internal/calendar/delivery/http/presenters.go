package http

import (
	"time"

	"calendar-connect/internal/calendar"
	"calendar-connect/internal/model"
)

// --- Request DTOs ---

type createEventReq struct {
	CalendarID  string    `json:"calendar_id"`
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=4000"`
	Location    string    `json:"location"    binding:"max=1000"`
	Start       time.Time `json:"start"       binding:"required"`
	End         time.Time `json:"end"         binding:"required"`
	Attendees   []string  `json:"attendees"   binding:"dive,email"`
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		CalendarID:  r.CalendarID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
		Attendees:   r.Attendees,
	}
}

type updateEventReq struct {
	EventID     string    `json:"-"` // populated from URI param
	CalendarID  string    `json:"calendar_id"`
	Title       string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string    `json:"description" binding:"max=4000"`
	Location    string    `json:"location"    binding:"max=1000"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

func (r updateEventReq) toInput() calendar.UpdateEventInput {
	return calendar.UpdateEventInput{
		CalendarID:  r.CalendarID,
		EventID:     r.EventID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
	}
}

// --- Response DTOs ---

type attendeeResp struct {
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	Optional       bool   `json:"optional,omitempty"`
	ResponseStatus string `json:"response_status,omitempty"`
}

type eventResp struct {
	ID          string         `json:"id"`
	CalendarID  string         `json:"calendar_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location,omitempty"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	AllDay      bool           `json:"all_day"`
	Attendees   []attendeeResp `json:"attendees,omitempty"`
}

func newEventResp(ev model.NormalizedEvent) eventResp {
	resp := eventResp{
		ID:          ev.ID,
		CalendarID:  ev.CalendarID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       ev.Start,
		End:         ev.End,
		AllDay:      ev.AllDay,
	}
	for _, a := range ev.Attendees {
		resp.Attendees = append(resp.Attendees, attendeeResp{
			Email:          a.Email,
			Name:           a.Name,
			Optional:       a.Optional,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return resp
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func newListEventsResp(events []model.NormalizedEvent) listEventsResp {
	out := listEventsResp{Events: make([]eventResp, len(events)), Count: len(events)}
	for i, ev := range events {
		out.Events[i] = newEventResp(ev)
	}
	return out
}
