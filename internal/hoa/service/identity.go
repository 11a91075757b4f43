package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/cryptox"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

// DefaultResetTokenTTL is how long a password reset link stays usable.
const DefaultResetTokenTTL = time.Hour

// IdentityService owns accounts: registration, login, profile and password
// recovery.
type IdentityService struct {
	Store     store.Store
	Keys      *jwtx.KeyManager
	Issuer    string
	TokenTTL  time.Duration
	ResetTTL  time.Duration
	PublicURL string
	Mailer    Mailer
	Now       func() time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type ProfileInput struct {
	Name  string
	Email string
	Phone string
}

// Session is a signed in user and their access token.
type Session struct {
	User        domain.User
	AccessToken string
	ExpiresAt   time.Time
}

// Me is the signed in user with every community they belong to.
type Me struct {
	User        domain.User
	Communities []domain.CommunityMembership
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	log := slogx.FromContext(ctx)

	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return Session{}, validationf("email, password and name are required")
	}
	if err := checkPasswordPolicy(in.Password); err != nil {
		return Session{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	now := clock(s.Now)
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         truncate(name, maxNameLength),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with existing email")
			return Session{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user registered", slog.String("user_id", u.ID))
	return s.issue(u)
}

// Login fails with the same ErrInvalidCredentials for an unknown email and a
// wrong password.
func (s *IdentityService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, validationf("email and password are required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login for unknown email")
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login with wrong password", slog.String("user_id", u.ID))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return Session{}, err
	}

	return s.issue(u)
}

func (s *IdentityService) Me(ctx context.Context, userID string) (Me, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return Me{}, err
	}
	communities, err := s.Store.Communities().ListCommunitiesForUser(ctx, userID)
	if err != nil {
		return Me{}, err
	}
	return Me{User: u, Communities: communities}, nil
}

func (s *IdentityService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *IdentityService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (domain.User, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return domain.User{}, err
	}
	email := normalizeEmail(in.Email)
	if email == "" {
		return domain.User{}, validationf("email is required")
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	u.Name = truncate(name, maxNameLength)
	u.Email = email
	u.Phone = strings.TrimSpace(in.Phone)
	u.UpdatedAt = clock(s.Now)

	if err := s.Store.Users().UpdateProfile(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *IdentityService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return validationf("current and new password are required")
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(current, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrIncorrectPassword
		}
		return err
	}
	if err := checkPasswordPolicy(next); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash, clock(s.Now)); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

// RequestPasswordReset never reports whether the email exists. When it does,
// older tokens are dropped and a fresh link is mailed.
func (s *IdentityService) RequestPasswordReset(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return validationf("email is required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("password reset for unknown email")
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	now := clock(s.Now)
	ttl := s.ResetTTL
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.PasswordResets().DeleteUserResetTokens(ctx, u.ID); err != nil {
			return err
		}
		return tx.PasswordResets().CreateResetToken(ctx, domain.PasswordResetToken{
			ID:        idx.New().String(),
			UserID:    u.ID,
			TokenHash: cryptox.FingerprintToken(token),
			ExpiresAt: now.Add(ttl),
			CreatedAt: now,
		})
	})
	if err != nil {
		log.Error("failed to store reset token", slog.Any("error", err))
		return err
	}

	link := strings.TrimRight(s.PublicURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
	if s.Mailer != nil {
		if err := s.Mailer.SendPasswordReset(ctx, u, link); err != nil {
			log.Error("failed to send password reset email", slog.String("user_id", u.ID), slog.Any("error", err))
		}
	}
	return nil
}

// ResetPassword redeems a reset token. The new hash and the removal of every
// outstanding token for the user commit together.
func (s *IdentityService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return validationf("token and password are required")
	}
	if err := checkPasswordPolicy(password); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	now := clock(s.Now)
	var userID string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.PasswordResets().GetResetTokenByHash(ctx, cryptox.FingerprintToken(token))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidResetToken
			}
			return err
		}
		if !now.Before(t.ExpiresAt) {
			return ErrInvalidResetToken
		}
		userID = t.UserID

		if err := tx.Users().UpdatePasswordHash(ctx, t.UserID, hash, now); err != nil {
			return err
		}
		return tx.PasswordResets().DeleteUserResetTokens(ctx, t.UserID)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			slogx.FromContext(ctx).Warn("invalid password reset token")
		}
		return err
	}

	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", userID))
	return nil
}

func (s *IdentityService) issue(u domain.User) (Session, error) {
	signer := s.Keys.GetSigner()
	if signer == nil {
		return Session{}, errors.New("no signing key available")
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(u.ID, u.Email, u.Name, s.Issuer, ttl, clock(s.Now))

	token, err := signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign access token: %w", err)
	}
	return Session{User: u, AccessToken: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}
