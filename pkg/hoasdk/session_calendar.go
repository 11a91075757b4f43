package hoasdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListEvents returns events in date order. month is YYYY-MM or empty for
// all events.
func (s *Session) ListEvents(ctx context.Context, communityID, month string) ([]CalendarEvent, error) {
	path := communityPath(communityID, "events")
	if month != "" {
		path += "?" + url.Values{"month": {month}}.Encode()
	}

	var out []CalendarEvent
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateEvent(ctx context.Context, communityID string, req CalendarEventRequest) (*CalendarEvent, error) {
	var out CalendarEvent
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "events"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetEvent(ctx context.Context, communityID, eventID string) (*CalendarEvent, error) {
	var out CalendarEvent
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "events", eventID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateEvent(ctx context.Context, communityID, eventID string, req CalendarEventRequest) (*CalendarEvent, error) {
	var out CalendarEvent
	if err := s.call(ctx, http.MethodPut, communityPath(communityID, "events", eventID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteEvent(ctx context.Context, communityID, eventID string) error {
	return s.call(ctx, http.MethodDelete, communityPath(communityID, "events", eventID), nil, nil, http.StatusNoContent)
}
