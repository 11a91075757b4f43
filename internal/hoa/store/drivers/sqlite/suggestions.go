package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type suggestionsRepo struct {
	db dbtx
}

const suggestionColumns = `s.id, s.community_id, s.user_id, s.title, s.description, s.status,
	s.status_updated_by, s.created_at, s.updated_at`

func scanSuggestion(row interface{ Scan(...any) error }, extra ...any) (domain.Suggestion, error) {
	var (
		s                domain.Suggestion
		status           string
		updatedBy        sql.NullString
		created, updated string
	)
	dest := append([]any{&s.ID, &s.CommunityID, &s.UserID, &s.Title, &s.Description, &status,
		&updatedBy, &created, &updated}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Suggestion{}, mapNotFound(err)
	}
	s.Status = domain.SuggestionStatus(status)
	s.StatusUpdatedBy = mapNullString(updatedBy)

	var err error
	if s.CreatedAt, s.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.Suggestion{}, err
	}
	return s, nil
}

func (r *suggestionsRepo) CreateSuggestion(ctx context.Context, s domain.Suggestion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meeting_suggestions (id, community_id, user_id, title, description, status,
			status_updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.CommunityID, s.UserID, s.Title, s.Description, string(s.Status),
		mapStringNull(s.StatusUpdatedBy), formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *suggestionsRepo) GetSuggestion(ctx context.Context, communityID, id string) (domain.Suggestion, error) {
	return scanSuggestion(r.db.QueryRowContext(ctx,
		`SELECT `+suggestionColumns+` FROM meeting_suggestions s WHERE s.id = ? AND s.community_id = ?`,
		id, communityID))
}

const suggestionViewSelect = `
	SELECT ` + suggestionColumns + `, u.name, u.avatar_url,
		(SELECT COUNT(*) FROM suggestion_upvotes v WHERE v.suggestion_id = s.id) AS upvotes,
		EXISTS (SELECT 1 FROM suggestion_upvotes v WHERE v.suggestion_id = s.id AND v.user_id = ?)
	FROM meeting_suggestions s
	JOIN users u ON u.id = s.user_id`

func scanSuggestionView(row interface{ Scan(...any) error }) (domain.SuggestionView, error) {
	var v domain.SuggestionView
	s, err := scanSuggestion(row, &v.Author.Name, &v.Author.AvatarURL, &v.UpvoteCount, &v.Upvoted)
	if err != nil {
		return domain.SuggestionView{}, err
	}
	v.Suggestion = s
	v.Author.ID = s.UserID
	return v, nil
}

func (r *suggestionsRepo) GetSuggestionView(ctx context.Context, communityID, id, viewerID string) (domain.SuggestionView, error) {
	return scanSuggestionView(r.db.QueryRowContext(ctx,
		suggestionViewSelect+` WHERE s.id = ? AND s.community_id = ?`,
		viewerID, id, communityID))
}

func (r *suggestionsRepo) ListSuggestions(ctx context.Context, communityID, viewerID string) ([]domain.SuggestionView, error) {
	rows, err := r.db.QueryContext(ctx, suggestionViewSelect+`
		WHERE s.community_id = ?
		ORDER BY upvotes DESC, s.created_at DESC, s.id DESC`,
		viewerID, communityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SuggestionView{}
	for rows.Next() {
		v, err := scanSuggestionView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *suggestionsRepo) UpdateSuggestion(ctx context.Context, s domain.Suggestion) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE meeting_suggestions SET title = ?, description = ?, updated_at = ?
		WHERE id = ? AND community_id = ?`,
		s.Title, s.Description, formatTime(s.UpdatedAt), s.ID, s.CommunityID,
	)
	return requireAffected(res, err)
}

func (r *suggestionsRepo) UpdateSuggestionStatus(
	ctx context.Context,
	id string,
	status domain.SuggestionStatus,
	by string,
	at time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE meeting_suggestions SET status = ?, status_updated_by = ?, updated_at = ?
		WHERE id = ?`,
		string(status), mapStringNull(by), formatTime(at), id,
	)
	return requireAffected(res, err)
}

func (r *suggestionsRepo) DeleteSuggestion(ctx context.Context, communityID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM meeting_suggestions WHERE id = ? AND community_id = ?`, id, communityID)
	return requireAffected(res, err)
}

func (r *suggestionsRepo) HasUpvote(ctx context.Context, suggestionID, userID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM suggestion_upvotes WHERE suggestion_id = ? AND user_id = ?)`,
		suggestionID, userID,
	).Scan(&ok)
	return ok, err
}

func (r *suggestionsRepo) AddUpvote(ctx context.Context, suggestionID, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO suggestion_upvotes (suggestion_id, user_id, created_at) VALUES (?, ?, ?)`,
		suggestionID, userID, formatTime(at),
	)
	return mapConstraint(err)
}

func (r *suggestionsRepo) RemoveUpvote(ctx context.Context, suggestionID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM suggestion_upvotes WHERE suggestion_id = ? AND user_id = ?`,
		suggestionID, userID,
	)
	return err
}

func (r *suggestionsRepo) CountUpvotes(ctx context.Context, suggestionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM suggestion_upvotes WHERE suggestion_id = ?`, suggestionID,
	).Scan(&n)
	return n, err
}
