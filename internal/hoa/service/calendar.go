package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
)

type CalendarService struct {
	Store store.Store
	Now   func() time.Time
}

type CalendarEventInput struct {
	Title       string
	Description string
	EventDate   string
	StartTime   string
	EndTime     string
	Location    string
	Type        domain.CalendarEventType
}

func (s *CalendarService) CreateEvent(ctx context.Context, authz AuthorizationContext, in CalendarEventInput) (domain.CalendarEvent, error) {
	if err := authz.Require(domain.OpCreateCalendarEvent); err != nil {
		return domain.CalendarEvent{}, err
	}

	now := clock(s.Now)
	e := domain.CalendarEvent{
		ID:          idx.New().String(),
		CommunityID: authz.CommunityID,
		CreatedBy:   authz.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := applyCalendarInput(&e, in); err != nil {
		return domain.CalendarEvent{}, err
	}
	if err := s.Store.CalendarEvents().CreateEvent(ctx, e); err != nil {
		return domain.CalendarEvent{}, err
	}
	return s.get(ctx, authz.CommunityID, e.ID)
}

// ListEvents returns events ordered by date. month, when set, is YYYY-MM and
// limits the result to that calendar month.
func (s *CalendarService) ListEvents(ctx context.Context, authz AuthorizationContext, month string) ([]domain.CalendarEvent, error) {
	if err := authz.Require(domain.OpViewCalendar); err != nil {
		return nil, err
	}

	var from, to string
	if month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, validationf("month must be YYYY-MM")
		}
		from = start.Format(dateLayout)
		to = start.AddDate(0, 1, -1).Format(dateLayout)
	}
	return s.Store.CalendarEvents().ListEvents(ctx, authz.CommunityID, from, to)
}

func (s *CalendarService) GetEvent(ctx context.Context, authz AuthorizationContext, id string) (domain.CalendarEvent, error) {
	if err := authz.Require(domain.OpViewCalendar); err != nil {
		return domain.CalendarEvent{}, err
	}
	return s.get(ctx, authz.CommunityID, id)
}

func (s *CalendarService) UpdateEvent(ctx context.Context, authz AuthorizationContext, id string, in CalendarEventInput) (domain.CalendarEvent, error) {
	if err := authz.Require(domain.OpUpdateCalendarEvent); err != nil {
		return domain.CalendarEvent{}, err
	}

	e, err := s.get(ctx, authz.CommunityID, id)
	if err != nil {
		return domain.CalendarEvent{}, err
	}
	if err := applyCalendarInput(&e, in); err != nil {
		return domain.CalendarEvent{}, err
	}
	e.UpdatedAt = clock(s.Now)

	if err := s.Store.CalendarEvents().UpdateEvent(ctx, e); err != nil {
		return domain.CalendarEvent{}, err
	}
	return e, nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, authz AuthorizationContext, id string) error {
	if err := authz.Require(domain.OpDeleteCalendarEvent); err != nil {
		return err
	}
	if err := s.Store.CalendarEvents().DeleteEvent(ctx, authz.CommunityID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func (s *CalendarService) get(ctx context.Context, communityID, id string) (domain.CalendarEvent, error) {
	e, err := s.Store.CalendarEvents().GetEvent(ctx, communityID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CalendarEvent{}, ErrEventNotFound
		}
		return domain.CalendarEvent{}, err
	}
	return e, nil
}

func applyCalendarInput(e *domain.CalendarEvent, in CalendarEventInput) error {
	title, err := required("title", in.Title)
	if err != nil {
		return err
	}
	date, err := required("event_date", in.EventDate)
	if err != nil {
		return err
	}
	if err := validDate("event_date", date); err != nil {
		return err
	}
	if err := validClock("start_time", in.StartTime); err != nil {
		return err
	}
	if err := validClock("end_time", in.EndTime); err != nil {
		return err
	}
	// HH:MM compares correctly as a string.
	if in.StartTime != "" && in.EndTime != "" && in.EndTime < in.StartTime {
		return validationf("end_time cannot be before start_time")
	}

	if in.Type == "" {
		in.Type = domain.EventMeeting
	}
	if !in.Type.Valid() {
		return validationf("unknown event_type %q", in.Type)
	}

	e.Title = title
	e.Description = strings.TrimSpace(in.Description)
	e.EventDate = date
	e.StartTime = in.StartTime
	e.EndTime = in.EndTime
	e.Location = strings.TrimSpace(in.Location)
	e.Type = in.Type
	return nil
}
