package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, password_hash, phone, avatar_url, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                domain.User
		created, updated string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Phone, &u.AvatarURL, &created, &updated); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	var err error
	if u.CreatedAt, u.UpdatedAt, err = timestamps(created, updated); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, phone, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Phone, u.AvatarURL,
		formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET name = ?, email = ?, phone = ?, updated_at = ?
		WHERE id = ?`,
		u.Name, u.Email, u.Phone, formatTime(u.UpdatedAt), u.ID,
	)
	return requireAffected(res, mapConstraint(err))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, formatTime(at), userID,
	)
	return requireAffected(res, err)
}
