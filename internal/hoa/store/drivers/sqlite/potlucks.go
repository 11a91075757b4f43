package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type potlucksRepo struct {
	db dbtx
}

const potluckColumns = `e.id, e.community_id, e.title, e.theme, e.description, e.event_date, e.event_time, e.location,
	e.max_appetizers, e.max_sides, e.max_mains, e.max_desserts, e.max_drinks, e.max_other,
	e.created_by, e.created_at, e.updated_at`

// limitsToColumns returns the max_* arguments in domain.DishCategories
// order, which is also their column order.
func limitsToColumns(l domain.CategoryLimits) []any {
	out := make([]any, len(domain.DishCategories))
	for i, c := range domain.DishCategories {
		if v, ok := l[c]; ok {
			out[i] = sql.NullInt64{Int64: int64(v), Valid: true}
		} else {
			out[i] = sql.NullInt64{}
		}
	}
	return out
}

func scanPotluck(row interface{ Scan(...any) error }, extra ...any) (domain.PotluckEvent, error) {
	var (
		e                domain.PotluckEvent
		limits           = make([]sql.NullInt64, len(domain.DishCategories))
		created, updated string
	)
	dest := []any{&e.ID, &e.CommunityID, &e.Title, &e.Theme, &e.Description, &e.EventDate, &e.EventTime, &e.Location}
	for i := range limits {
		dest = append(dest, &limits[i])
	}
	dest = append(dest, &e.CreatedBy, &created, &updated)
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return domain.PotluckEvent{}, mapNotFound(err)
	}

	e.Limits = domain.CategoryLimits{}
	for i, c := range domain.DishCategories {
		if limits[i].Valid {
			e.Limits[c] = int(limits[i].Int64)
		}
	}

	var err error
	if e.CreatedAt, e.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.PotluckEvent{}, err
	}
	return e, nil
}

func (r *potlucksRepo) CreatePotluck(ctx context.Context, e domain.PotluckEvent) error {
	args := []any{e.ID, e.CommunityID, e.Title, e.Theme, e.Description, e.EventDate, e.EventTime, e.Location}
	args = append(args, limitsToColumns(e.Limits)...)
	args = append(args, e.CreatedBy, formatTime(e.CreatedAt), formatTime(e.UpdatedAt))

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO potluck_events (id, community_id, title, theme, description, event_date, event_time, location,
			max_appetizers, max_sides, max_mains, max_desserts, max_drinks, max_other,
			created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return mapConstraint(err)
}

func (r *potlucksRepo) GetPotluck(ctx context.Context, communityID, eventID string) (domain.PotluckEvent, error) {
	return scanPotluck(r.db.QueryRowContext(ctx,
		`SELECT `+potluckColumns+` FROM potluck_events e WHERE e.id = ? AND e.community_id = ?`,
		eventID, communityID))
}

func (r *potlucksRepo) ListPotlucks(ctx context.Context, communityID string) ([]domain.PotluckSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+potluckColumns+`,
			(SELECT COUNT(*) FROM potluck_signups s WHERE s.event_id = e.id)
		FROM potluck_events e
		WHERE e.community_id = ?
		ORDER BY e.event_date DESC, e.created_at DESC`, communityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PotluckSummary{}
	for rows.Next() {
		var s domain.PotluckSummary
		e, err := scanPotluck(rows, &s.SignupCount)
		if err != nil {
			return nil, err
		}
		s.PotluckEvent = e
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *potlucksRepo) UpdatePotluck(ctx context.Context, e domain.PotluckEvent) error {
	args := []any{e.Title, e.Theme, e.Description, e.EventDate, e.EventTime, e.Location}
	args = append(args, limitsToColumns(e.Limits)...)
	args = append(args, formatTime(e.UpdatedAt), e.ID, e.CommunityID)

	res, err := r.db.ExecContext(ctx, `
		UPDATE potluck_events SET title = ?, theme = ?, description = ?, event_date = ?, event_time = ?, location = ?,
			max_appetizers = ?, max_sides = ?, max_mains = ?, max_desserts = ?, max_drinks = ?, max_other = ?,
			updated_at = ?
		WHERE id = ? AND community_id = ?`, args...)
	return requireAffected(res, err)
}

func (r *potlucksRepo) DeletePotluck(ctx context.Context, communityID, eventID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM potluck_events WHERE id = ? AND community_id = ?`, eventID, communityID)
	return requireAffected(res, err)
}

const signupSelect = `
	SELECT s.id, s.event_id, s.user_id, s.dish_name, s.category, s.notes, s.created_at, s.updated_at,
		u.name, u.avatar_url
	FROM potluck_signups s
	JOIN users u ON u.id = s.user_id`

func scanSignup(row interface{ Scan(...any) error }) (domain.PotluckSignup, error) {
	var (
		s                domain.PotluckSignup
		category         string
		created, updated string
	)
	err := row.Scan(&s.ID, &s.EventID, &s.UserID, &s.DishName, &category, &s.Notes, &created, &updated,
		&s.User.Name, &s.User.AvatarURL)
	if err != nil {
		return domain.PotluckSignup{}, mapNotFound(err)
	}
	s.Category = domain.DishCategory(category)
	s.User.ID = s.UserID
	if s.CreatedAt, s.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.PotluckSignup{}, err
	}
	return s, nil
}

func (r *potlucksRepo) CreateSignup(ctx context.Context, s domain.PotluckSignup) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO potluck_signups (id, event_id, user_id, dish_name, category, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.EventID, s.UserID, s.DishName, string(s.Category), s.Notes,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *potlucksRepo) GetSignup(ctx context.Context, eventID, signupID string) (domain.PotluckSignup, error) {
	return scanSignup(r.db.QueryRowContext(ctx,
		signupSelect+` WHERE s.id = ? AND s.event_id = ?`, signupID, eventID))
}

func (r *potlucksRepo) ListSignups(ctx context.Context, eventID string) ([]domain.PotluckSignup, error) {
	rows, err := r.db.QueryContext(ctx, signupSelect+`
		WHERE s.event_id = ?
		ORDER BY CASE s.category
			WHEN 'appetizer' THEN 0 WHEN 'side' THEN 1 WHEN 'main' THEN 2
			WHEN 'dessert' THEN 3 WHEN 'drink' THEN 4 ELSE 5 END,
			s.created_at, s.id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PotluckSignup{}
	for rows.Next() {
		s, err := scanSignup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *potlucksRepo) UpdateSignup(ctx context.Context, s domain.PotluckSignup) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE potluck_signups SET dish_name = ?, category = ?, notes = ?, updated_at = ?
		WHERE id = ? AND event_id = ?`,
		s.DishName, string(s.Category), s.Notes, formatTime(s.UpdatedAt), s.ID, s.EventID,
	)
	return requireAffected(res, err)
}

func (r *potlucksRepo) DeleteSignup(ctx context.Context, eventID, signupID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM potluck_signups WHERE id = ? AND event_id = ?`, signupID, eventID)
	return requireAffected(res, err)
}

func (r *potlucksRepo) CountSignupsInCategory(ctx context.Context, eventID string, c domain.DishCategory) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM potluck_signups WHERE event_id = ? AND category = ?`,
		eventID, string(c),
	).Scan(&n)
	return n, err
}
