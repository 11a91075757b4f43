package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

// AuthorizationContext is the resolved caller for one community scoped call.
// Only Gate.Authorize produces one, and every community operation takes it as
// an explicit argument.
type AuthorizationContext struct {
	UserID      string
	CommunityID string
	Role        domain.Role
}

// Can reports whether the caller holds the capability op requires.
func (a AuthorizationContext) Can(op domain.Operation) bool {
	return domain.RequiredCapability(op).Allows(a.Role)
}

// Require fails with ErrForbidden unless the caller may perform op.
func (a AuthorizationContext) Require(op domain.Operation) error {
	if a.Can(op) {
		return nil
	}
	return withMsg(ErrForbidden, "%s requires %s", op, domain.RequiredCapability(op))
}

// RequireOwned is Require for operations on member authored entities. The
// author passes with the base capability, everyone else needs the
// operation's non owner capability.
func (a AuthorizationContext) RequireOwned(op domain.Operation, ownerID string) error {
	if err := a.Require(op); err != nil {
		return err
	}
	if ownerID == a.UserID {
		return nil
	}
	c, ok := domain.NonOwnerCapability(op)
	if !ok || c.Allows(a.Role) {
		return nil
	}
	return withMsg(ErrForbidden, "%s on another member's entry requires %s", op, c)
}

// Gate resolves callers into AuthorizationContexts.
type Gate struct {
	Store store.Store
}

// RoleOf returns the caller's role in the community. Pending memberships are
// treated as absent.
func (g *Gate) RoleOf(ctx context.Context, userID, communityID string) (domain.Role, bool, error) {
	m, err := g.Store.Memberships().GetMembership(ctx, communityID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	if !m.Accepted() {
		return "", false, nil
	}
	return m.Role, true, nil
}

// Authorize fails with ErrNotMember unless userID is an accepted member.
func (g *Gate) Authorize(ctx context.Context, userID, communityID string) (AuthorizationContext, error) {
	role, ok, err := g.RoleOf(ctx, userID, communityID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to resolve community role",
			slog.String("community_id", communityID),
			slog.Any("error", err),
		)
		return AuthorizationContext{}, err
	}
	if !ok {
		slogx.FromContext(ctx).Warn("community access denied",
			slog.String("community_id", communityID),
			slog.String("user_id", userID),
		)
		return AuthorizationContext{}, ErrNotMember
	}
	return AuthorizationContext{UserID: userID, CommunityID: communityID, Role: role}, nil
}
