package domain

import "time"

type CalendarEventType string

const (
	EventMeeting     CalendarEventType = "meeting"
	EventSocial      CalendarEventType = "social"
	EventMaintenance CalendarEventType = "maintenance"
	EventDeadline    CalendarEventType = "deadline"
	EventOther       CalendarEventType = "other"
)

func (t CalendarEventType) Valid() bool {
	switch t {
	case EventMeeting, EventSocial, EventMaintenance, EventDeadline, EventOther:
		return true
	}
	return false
}

type CalendarEvent struct {
	ID          string
	CommunityID string
	Title       string
	Description string
	EventDate   string // YYYY-MM-DD
	StartTime   string // HH:MM, optional
	EndTime     string // HH:MM, optional
	Location    string
	Type        CalendarEventType
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Creator Person
}
