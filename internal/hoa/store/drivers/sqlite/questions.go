package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type questionsRepo struct {
	db dbtx
}

const questionSelect = `
	SELECT q.id, q.community_id, q.user_id, q.title, q.message, q.is_public, q.status,
		q.created_at, q.updated_at, u.name, u.avatar_url,
		(SELECT COUNT(*) FROM board_question_responses r WHERE r.question_id = q.id)
	FROM board_questions q
	JOIN users u ON u.id = q.user_id`

func scanQuestion(row interface{ Scan(...any) error }) (domain.BoardQuestion, error) {
	var (
		q                domain.BoardQuestion
		status           string
		created, updated string
	)
	err := row.Scan(&q.ID, &q.CommunityID, &q.UserID, &q.Title, &q.Message, &q.IsPublic, &status,
		&created, &updated, &q.Author.Name, &q.Author.AvatarURL, &q.ResponseCount)
	if err != nil {
		return domain.BoardQuestion{}, mapNotFound(err)
	}
	q.Status = domain.QuestionStatus(status)
	q.Author.ID = q.UserID
	if q.CreatedAt, q.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.BoardQuestion{}, err
	}
	return q, nil
}

func (r *questionsRepo) CreateQuestion(ctx context.Context, q domain.BoardQuestion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO board_questions (id, community_id, user_id, title, message, is_public, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.CommunityID, q.UserID, q.Title, q.Message, q.IsPublic, string(q.Status),
		formatTime(q.CreatedAt), formatTime(q.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *questionsRepo) GetQuestion(ctx context.Context, communityID, id string) (domain.BoardQuestion, error) {
	return scanQuestion(r.db.QueryRowContext(ctx,
		questionSelect+` WHERE q.id = ? AND q.community_id = ?`, id, communityID))
}

func (r *questionsRepo) ListQuestions(ctx context.Context, communityID, viewerID string, all bool) ([]domain.BoardQuestion, error) {
	rows, err := r.db.QueryContext(ctx, questionSelect+`
		WHERE q.community_id = ? AND (? OR q.user_id = ? OR q.is_public = 1)
		ORDER BY q.created_at DESC, q.id DESC`,
		communityID, all, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BoardQuestion{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *questionsRepo) SetQuestionVisibility(ctx context.Context, id string, isPublic bool, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE board_questions SET is_public = ?, updated_at = ? WHERE id = ?`,
		isPublic, formatTime(at), id,
	)
	return requireAffected(res, err)
}

func (r *questionsRepo) SetQuestionStatus(ctx context.Context, id string, status domain.QuestionStatus, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE board_questions SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(at), id,
	)
	return requireAffected(res, err)
}

func (r *questionsRepo) CreateResponse(ctx context.Context, resp domain.QuestionResponse) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO board_question_responses (id, question_id, user_id, message, is_public, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		resp.ID, resp.QuestionID, resp.UserID, resp.Message, resp.IsPublic, formatTime(resp.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *questionsRepo) ListResponses(ctx context.Context, questionID string) ([]domain.QuestionResponse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.question_id, r.user_id, r.message, r.is_public, r.created_at, u.name, u.avatar_url
		FROM board_question_responses r
		JOIN users u ON u.id = r.user_id
		WHERE r.question_id = ?
		ORDER BY r.created_at, r.id`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.QuestionResponse{}
	for rows.Next() {
		var (
			resp    domain.QuestionResponse
			created string
		)
		if err := rows.Scan(&resp.ID, &resp.QuestionID, &resp.UserID, &resp.Message, &resp.IsPublic, &created,
			&resp.Responder.Name, &resp.Responder.AvatarURL); err != nil {
			return nil, err
		}
		resp.Responder.ID = resp.UserID
		if resp.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}
