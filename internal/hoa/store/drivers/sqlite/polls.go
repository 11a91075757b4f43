package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type pollsRepo struct {
	db dbtx
}

const pollColumns = `p.id, p.community_id, p.question, p.description, p.poll_type, p.is_anonymous,
	p.results_visible, p.opens_at, p.closes_at, p.created_by, p.created_at, p.updated_at`

func scanPoll(row interface{ Scan(...any) error }, extra ...any) (domain.Poll, error) {
	var (
		p                       domain.Poll
		pollType, visible       string
		opens, created, updated string
		closes                  sql.NullString
	)
	dest := append([]any{
		&p.ID, &p.CommunityID, &p.Question, &p.Description, &pollType, &p.IsAnonymous,
		&visible, &opens, &closes, &p.CreatedBy, &created, &updated,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Poll{}, mapNotFound(err)
	}

	p.Type = domain.PollType(pollType)
	p.ResultsVisible = domain.ResultsVisibility(visible)

	var err error
	if p.OpensAt, err = parseTime(opens); err != nil {
		return domain.Poll{}, err
	}
	if p.ClosesAt, err = parseOptionalTime(closes); err != nil {
		return domain.Poll{}, err
	}
	if p.CreatedAt, p.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.Poll{}, err
	}
	return p, nil
}

func (r *pollsRepo) CreatePoll(ctx context.Context, p domain.Poll) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO polls (id, community_id, question, description, poll_type, is_anonymous,
			results_visible, opens_at, closes_at, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CommunityID, p.Question, p.Description, string(p.Type), p.IsAnonymous,
		string(p.ResultsVisible), formatTime(p.OpensAt), formatOptionalTime(p.ClosesAt),
		p.CreatedBy, formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return mapConstraint(err)
	}

	for _, o := range p.Options {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO poll_options (id, poll_id, text, position) VALUES (?, ?, ?, ?)`,
			o.ID, p.ID, o.Text, o.Position,
		)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *pollsRepo) GetPoll(ctx context.Context, communityID, pollID string) (domain.Poll, error) {
	p, err := scanPoll(r.db.QueryRowContext(ctx,
		`SELECT `+pollColumns+` FROM polls p WHERE p.id = ? AND p.community_id = ?`,
		pollID, communityID))
	if err != nil {
		return domain.Poll{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, poll_id, text, position FROM poll_options WHERE poll_id = ? ORDER BY position`,
		pollID)
	if err != nil {
		return domain.Poll{}, err
	}
	defer rows.Close()

	p.Options = []domain.PollOption{}
	for rows.Next() {
		var o domain.PollOption
		if err := rows.Scan(&o.ID, &o.PollID, &o.Text, &o.Position); err != nil {
			return domain.Poll{}, err
		}
		p.Options = append(p.Options, o)
	}
	return p, rows.Err()
}

func (r *pollsRepo) ListPolls(ctx context.Context, communityID string) ([]domain.PollSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+pollColumns+`, u.name,
			(SELECT COUNT(DISTINCT v.user_id) FROM poll_votes v WHERE v.poll_id = p.id)
		FROM polls p
		JOIN users u ON u.id = p.created_by
		WHERE p.community_id = ?
		ORDER BY p.created_at DESC, p.id DESC`, communityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PollSummary{}
	for rows.Next() {
		var s domain.PollSummary
		p, err := scanPoll(rows, &s.CreatorName, &s.VoterCount)
		if err != nil {
			return nil, err
		}
		s.Poll = p
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *pollsRepo) UpdatePoll(ctx context.Context, p domain.Poll) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE polls SET question = ?, description = ?, poll_type = ?, is_anonymous = ?,
			results_visible = ?, opens_at = ?, closes_at = ?, updated_at = ?
		WHERE id = ? AND community_id = ?`,
		p.Question, p.Description, string(p.Type), p.IsAnonymous,
		string(p.ResultsVisible), formatTime(p.OpensAt), formatOptionalTime(p.ClosesAt),
		formatTime(p.UpdatedAt), p.ID, p.CommunityID,
	)
	return requireAffected(res, err)
}

func (r *pollsRepo) DeletePoll(ctx context.Context, communityID, pollID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM polls WHERE id = ? AND community_id = ?`, pollID, communityID)
	return requireAffected(res, err)
}

func (r *pollsRepo) DeleteUserVotes(ctx context.Context, pollID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM poll_votes WHERE poll_id = ? AND user_id = ?`, pollID, userID)
	return err
}

func (r *pollsRepo) CreateVote(ctx context.Context, pollID, optionID, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO poll_votes (poll_id, option_id, user_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (poll_id, option_id, user_id) DO NOTHING`,
		pollID, optionID, userID, formatTime(at),
	)
	return err
}

func (r *pollsRepo) ListVotes(ctx context.Context, pollID string) ([]domain.VoteRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.option_id, u.id, u.name, u.avatar_url
		FROM poll_votes v
		JOIN users u ON u.id = v.user_id
		WHERE v.poll_id = ?
		ORDER BY v.created_at, u.name`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.VoteRecord{}
	for rows.Next() {
		var (
			v                domain.VoteRecord
			id, name, avatar string
		)
		if err := rows.Scan(&v.OptionID, &id, &name, &avatar); err != nil {
			return nil, err
		}
		v.Voter = person(id, name, avatar)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *pollsRepo) ListUserOptionIDs(ctx context.Context, pollID, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.option_id
		FROM poll_votes v
		JOIN poll_options o ON o.id = v.option_id
		WHERE v.poll_id = ? AND v.user_id = ?
		ORDER BY o.position`, pollID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *pollsRepo) CountVoters(ctx context.Context, pollID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM poll_votes WHERE poll_id = ?`, pollID,
	).Scan(&n)
	return n, err
}
