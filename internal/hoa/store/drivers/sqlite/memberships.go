package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type membershipsRepo struct {
	db dbtx
}

func (r *membershipsRepo) GetMembership(ctx context.Context, communityID, userID string) (domain.Membership, error) {
	var (
		m            domain.Membership
		role, status string
		requested    string
		joined       sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT community_id, user_id, role, status, requested_at, joined_at
		FROM community_members WHERE community_id = ? AND user_id = ?`,
		communityID, userID,
	).Scan(&m.CommunityID, &m.UserID, &role, &status, &requested, &joined)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.Role = domain.Role(role)
	m.Status = domain.MembershipStatus(status)
	if m.RequestedAt, err = parseTime(requested); err != nil {
		return domain.Membership{}, err
	}
	if m.JoinedAt, err = parseOptionalTime(joined); err != nil {
		return domain.Membership{}, err
	}
	return m, nil
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO community_members (community_id, user_id, role, status, requested_at, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.CommunityID, m.UserID, string(m.Role), string(m.Status),
		formatTime(m.RequestedAt), formatOptionalTime(m.JoinedAt),
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) AcceptMembership(ctx context.Context, communityID, userID string, joinedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE community_members SET status = 'accepted', joined_at = ?
		WHERE community_id = ? AND user_id = ? AND status = 'pending'`,
		formatTime(joinedAt), communityID, userID,
	)
	return requireAffected(res, err)
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, communityID, userID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE community_members SET role = ?
		WHERE community_id = ? AND user_id = ?`,
		string(role), communityID, userID,
	)
	return requireAffected(res, err)
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, communityID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM community_members WHERE community_id = ? AND user_id = ?`,
		communityID, userID,
	)
	return requireAffected(res, err)
}

func (r *membershipsRepo) CountAcceptedAdmins(ctx context.Context, communityID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM community_members
		WHERE community_id = ? AND role = 'admin' AND status = 'accepted'`,
		communityID,
	).Scan(&n)
	return n, err
}

func (r *membershipsRepo) ListMembers(ctx context.Context, communityID string) ([]domain.Member, error) {
	return r.listMembers(ctx, `
		SELECT u.id, u.name, u.email, u.avatar_url, m.role, m.status, m.requested_at, m.joined_at
		FROM community_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.community_id = ? AND m.status = 'accepted'
		ORDER BY CASE m.role WHEN 'admin' THEN 0 WHEN 'board_member' THEN 1 ELSE 2 END, u.name, u.id`,
		communityID)
}

func (r *membershipsRepo) ListPendingMembers(ctx context.Context, communityID string) ([]domain.Member, error) {
	return r.listMembers(ctx, `
		SELECT u.id, u.name, u.email, u.avatar_url, m.role, m.status, m.requested_at, m.joined_at
		FROM community_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.community_id = ? AND m.status = 'pending'
		ORDER BY m.requested_at, u.id`,
		communityID)
}

func (r *membershipsRepo) listMembers(ctx context.Context, query string, args ...any) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Member{}
	for rows.Next() {
		var (
			m            domain.Member
			role, status string
			requested    string
			joined       sql.NullString
		)
		if err := rows.Scan(&m.UserID, &m.Name, &m.Email, &m.AvatarURL, &role, &status, &requested, &joined); err != nil {
			return nil, err
		}
		m.Role = domain.Role(role)
		m.Status = domain.MembershipStatus(status)
		if m.RequestedAt, err = parseTime(requested); err != nil {
			return nil, err
		}
		if m.JoinedAt, err = parseOptionalTime(joined); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
