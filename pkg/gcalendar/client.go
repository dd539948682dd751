package gcalendar

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"calendar-connect/internal/model"
)

const defaultMaxResults = 250

// Config holds client-level settings.
type Config struct {
	// Cache is the injected read-path cache. Nil disables caching.
	Cache Cache
	// CacheEvents also caches ListEvents responses. Off by default so
	// availability always sees fresh busy data.
	CacheEvents bool
}

// Client is an authenticated facade over the Google Calendar API. It holds
// no credentials: every call receives a valid access token from the caller.
// The client only translates errors and shapes requests; no business logic.
type Client struct {
	cfg     Config
	apiOpts []option.ClientOption
}

// New creates a Client. Extra API options are for tests (endpoint or HTTP
// client overrides).
func New(cfg Config, apiOpts ...option.ClientOption) *Client {
	return &Client{cfg: cfg, apiOpts: apiOpts}
}

func (c *Client) service(ctx context.Context, token string) (*calendar.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	opts := append([]option.ClientOption{option.WithTokenSource(src)}, c.apiOpts...)
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// ListCalendars returns the calendars visible to the token's account.
func (c *Client) ListCalendars(ctx context.Context, token string) ([]model.CalendarRef, error) {
	key := cacheKey(token, "calendars")
	if c.cfg.Cache != nil {
		if v, ok := c.cfg.Cache.Get(key); ok {
			return v.([]model.CalendarRef), nil
		}
	}

	svc, err := c.service(ctx, token)
	if err != nil {
		return nil, err
	}

	var refs []model.CalendarRef
	pageToken := ""
	for {
		call := svc.CalendarList.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := call.Do()
		if err != nil {
			return nil, mapError(err)
		}
		for _, entry := range list.Items {
			name := entry.Summary
			if entry.SummaryOverride != "" {
				name = entry.SummaryOverride
			}
			refs = append(refs, model.CalendarRef{
				ID:          entry.Id,
				DisplayName: name,
				AccessRole:  entry.AccessRole,
				IsPrimary:   entry.Primary,
			})
		}
		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	if c.cfg.Cache != nil {
		c.cfg.Cache.Add(key, refs)
	}
	return refs, nil
}

// ListEvents returns normalized single events in [TimeMin, TimeMax) for one
// calendar, expanded from recurrences and ordered by start time.
func (c *Client) ListEvents(ctx context.Context, token string, req ListEventsRequest) ([]model.NormalizedEvent, error) {
	key := cacheKey(token, fmt.Sprintf("events:%s:%d:%d",
		req.CalendarID, req.TimeMin.Unix(), req.TimeMax.Unix()))
	if c.cfg.Cache != nil && c.cfg.CacheEvents {
		if v, ok := c.cfg.Cache.Get(key); ok {
			return v.([]model.NormalizedEvent), nil
		}
	}

	svc, err := c.service(ctx, token)
	if err != nil {
		return nil, err
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	var events []model.NormalizedEvent
	pageToken := ""
	for {
		call := svc.Events.List(req.CalendarID).
			SingleEvents(true).
			OrderBy("startTime").
			TimeMin(req.TimeMin.Format(time.RFC3339)).
			TimeMax(req.TimeMax.Format(time.RFC3339)).
			MaxResults(maxResults).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := call.Do()
		if err != nil {
			return nil, mapError(err)
		}
		for _, item := range list.Items {
			if ev, ok := normalizeEvent(req.CalendarID, item); ok {
				events = append(events, ev)
			}
		}
		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	if c.cfg.Cache != nil && c.cfg.CacheEvents {
		c.cfg.Cache.Add(key, events)
	}
	return events, nil
}

// CreateEvent inserts a new event on the given calendar.
func (c *Client) CreateEvent(ctx context.Context, token string, req CreateEventRequest) (model.NormalizedEvent, error) {
	svc, err := c.service(ctx, token)
	if err != nil {
		return model.NormalizedEvent{}, err
	}

	event := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Location:    req.Location,
		Start:       &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339)},
	}
	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := svc.Events.Insert(req.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return model.NormalizedEvent{}, mapError(err)
	}
	ev, _ := normalizeEvent(req.CalendarID, created)
	return ev, nil
}

// UpdateEvent patches an existing event; empty fields are left untouched.
func (c *Client) UpdateEvent(ctx context.Context, token string, req UpdateEventRequest) (model.NormalizedEvent, error) {
	svc, err := c.service(ctx, token)
	if err != nil {
		return model.NormalizedEvent{}, err
	}

	patch := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() {
		patch.Start = &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339)}
		patch.End = &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339)}
	}

	updated, err := svc.Events.Patch(req.CalendarID, req.EventID, patch).Context(ctx).Do()
	if err != nil {
		return model.NormalizedEvent{}, mapError(err)
	}
	ev, _ := normalizeEvent(req.CalendarID, updated)
	return ev, nil
}

// DeleteEvent removes an event from the given calendar.
func (c *Client) DeleteEvent(ctx context.Context, token, calendarID, eventID string) error {
	svc, err := c.service(ctx, token)
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return mapError(err)
	}
	return nil
}

// normalizeEvent converts a provider event into the normalized shape.
// Events violating start < end (zero-length or malformed) are dropped.
func normalizeEvent(calendarID string, item *calendar.Event) (model.NormalizedEvent, bool) {
	if item == nil || item.Start == nil || item.End == nil {
		return model.NormalizedEvent{}, false
	}

	start, allDay, okStart := parseEventTime(item.Start)
	end, _, okEnd := parseEventTime(item.End)
	if !okStart || !okEnd || !start.Before(end) {
		return model.NormalizedEvent{}, false
	}

	ev := model.NormalizedEvent{
		ID:          item.Id,
		CalendarID:  calendarID,
		Title:       item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Start:       start.UTC(),
		End:         end.UTC(),
		AllDay:      allDay,
	}
	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, model.Attendee{
			Email:          a.Email,
			Name:           a.DisplayName,
			Optional:       a.Optional,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return ev, true
}

func parseEventTime(edt *calendar.EventDateTime) (time.Time, bool, bool) {
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, false, err == nil
	}
	if edt.Date != "" {
		t, err := time.Parse("2006-01-02", edt.Date)
		return t, true, err == nil
	}
	return time.Time{}, false, false
}

// cacheKey is the request signature: a token fingerprint scopes the entry to
// one account, never the raw token itself.
func cacheKey(token, suffix string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8]) + ":" + suffix
}
