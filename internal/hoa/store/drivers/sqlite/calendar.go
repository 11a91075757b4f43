package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type calendarRepo struct {
	db dbtx
}

const calendarSelect = `
	SELECT e.id, e.community_id, e.title, e.description, e.event_date, e.start_time, e.end_time,
		e.location, e.event_type, e.created_by, e.created_at, e.updated_at, u.name, u.avatar_url
	FROM calendar_events e
	JOIN users u ON u.id = e.created_by`

func scanCalendarEvent(row interface{ Scan(...any) error }) (domain.CalendarEvent, error) {
	var (
		e                domain.CalendarEvent
		eventType        string
		created, updated string
	)
	err := row.Scan(&e.ID, &e.CommunityID, &e.Title, &e.Description, &e.EventDate, &e.StartTime, &e.EndTime,
		&e.Location, &eventType, &e.CreatedBy, &created, &updated, &e.Creator.Name, &e.Creator.AvatarURL)
	if err != nil {
		return domain.CalendarEvent{}, mapNotFound(err)
	}
	e.Type = domain.CalendarEventType(eventType)
	e.Creator.ID = e.CreatedBy
	if e.CreatedAt, e.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.CalendarEvent{}, err
	}
	return e, nil
}

func (r *calendarRepo) CreateEvent(ctx context.Context, e domain.CalendarEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (id, community_id, title, description, event_date, start_time, end_time,
			location, event_type, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CommunityID, e.Title, e.Description, e.EventDate, e.StartTime, e.EndTime,
		e.Location, string(e.Type), e.CreatedBy, formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *calendarRepo) GetEvent(ctx context.Context, communityID, id string) (domain.CalendarEvent, error) {
	return scanCalendarEvent(r.db.QueryRowContext(ctx,
		calendarSelect+` WHERE e.id = ? AND e.community_id = ?`, id, communityID))
}

func (r *calendarRepo) ListEvents(ctx context.Context, communityID, from, to string) ([]domain.CalendarEvent, error) {
	var (
		where = []string{"e.community_id = ?"}
		args  = []any{communityID}
	)
	if from != "" {
		where = append(where, "e.event_date >= ?")
		args = append(args, from)
	}
	if to != "" {
		where = append(where, "e.event_date <= ?")
		args = append(args, to)
	}

	rows, err := r.db.QueryContext(ctx, calendarSelect+`
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY e.event_date, e.start_time, e.created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CalendarEvent{}
	for rows.Next() {
		e, err := scanCalendarEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *calendarRepo) UpdateEvent(ctx context.Context, e domain.CalendarEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calendar_events SET title = ?, description = ?, event_date = ?, start_time = ?, end_time = ?,
			location = ?, event_type = ?, updated_at = ?
		WHERE id = ? AND community_id = ?`,
		e.Title, e.Description, e.EventDate, e.StartTime, e.EndTime,
		e.Location, string(e.Type), formatTime(e.UpdatedAt), e.ID, e.CommunityID,
	)
	return requireAffected(res, err)
}

func (r *calendarRepo) DeleteEvent(ctx context.Context, communityID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM calendar_events WHERE id = ? AND community_id = ?`, id, communityID)
	return requireAffected(res, err)
}
