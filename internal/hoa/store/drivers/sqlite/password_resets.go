package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type passwordResetsRepo struct {
	db dbtx
}

func (r *passwordResetsRepo) CreateResetToken(ctx context.Context, t domain.PasswordResetToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, formatTime(t.ExpiresAt), formatTime(t.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetResetTokenByHash(ctx context.Context, hash string) (domain.PasswordResetToken, error) {
	var (
		t                domain.PasswordResetToken
		expires, created string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM password_reset_tokens WHERE token_hash = ?`, hash,
	).Scan(&t.ID, &t.UserID, &t.TokenHash, &expires, &created)
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err)
	}
	if t.ExpiresAt, t.CreatedAt, err = timestamps(expires, created); err != nil {
		return domain.PasswordResetToken{}, err
	}
	return t, nil
}

func (r *passwordResetsRepo) DeleteUserResetTokens(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE user_id = ?`, userID)
	return err
}

func (r *passwordResetsRepo) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at < ?`, formatTime(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
