package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type communitiesRepo struct {
	db dbtx
}

const communityColumns = `c.id, c.name, c.description, c.address, c.invite_code, c.created_by, c.created_at, c.updated_at`

func scanCommunity(row interface{ Scan(...any) error }, extra ...any) (domain.Community, error) {
	var (
		c                domain.Community
		created, updated string
	)
	dest := append([]any{&c.ID, &c.Name, &c.Description, &c.Address, &c.InviteCode, &c.CreatedBy, &created, &updated}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Community{}, mapNotFound(err)
	}
	var err error
	if c.CreatedAt, c.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.Community{}, err
	}
	return c, nil
}

func (r *communitiesRepo) CreateCommunity(ctx context.Context, c domain.Community) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO communities (id, name, description, address, invite_code, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.Address, c.InviteCode, c.CreatedBy,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *communitiesRepo) GetCommunityByID(ctx context.Context, id string) (domain.Community, error) {
	return scanCommunity(r.db.QueryRowContext(ctx,
		`SELECT `+communityColumns+` FROM communities c WHERE c.id = ?`, id))
}

func (r *communitiesRepo) GetCommunityByInviteCode(ctx context.Context, code string) (domain.Community, error) {
	return scanCommunity(r.db.QueryRowContext(ctx,
		`SELECT `+communityColumns+` FROM communities c WHERE c.invite_code = ?`, code))
}

func (r *communitiesRepo) UpdateCommunity(ctx context.Context, c domain.Community) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE communities SET name = ?, description = ?, address = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Description, c.Address, formatTime(c.UpdatedAt), c.ID,
	)
	return requireAffected(res, err)
}

func (r *communitiesRepo) UpdateInviteCode(ctx context.Context, communityID, code string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE communities SET invite_code = ?, updated_at = ? WHERE id = ?`,
		code, formatTime(at), communityID,
	)
	return requireAffected(res, mapConstraint(err))
}

func (r *communitiesRepo) DeleteCommunity(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM communities WHERE id = ?`, id)
	return requireAffected(res, err)
}

func (r *communitiesRepo) ListCommunitiesForUser(ctx context.Context, userID string) ([]domain.CommunityMembership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+communityColumns+`, m.role, m.joined_at
		FROM communities c
		JOIN community_members m ON m.community_id = c.id
		WHERE m.user_id = ? AND m.status = 'accepted'
		ORDER BY c.name, c.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CommunityMembership{}
	for rows.Next() {
		var (
			role   string
			joined sql.NullString
		)
		c, err := scanCommunity(rows, &role, &joined)
		if err != nil {
			return nil, err
		}
		joinedAt, err := parseOptionalTime(joined)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.CommunityMembership{Community: c, Role: domain.Role(role), JoinedAt: joinedAt})
	}
	return out, rows.Err()
}
