package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/cryptox"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

// inviteCodeAttempts bounds retries on the (improbable) invite code collision.
const inviteCodeAttempts = 5

// CommunityService is the membership state machine plus community CRUD.
type CommunityService struct {
	Store store.Store
	Now   func() time.Time
}

type CommunityInput struct {
	Name        string
	Description string
	Address     string
}

type CommunityDetail struct {
	Community domain.Community
	Members   []domain.Member
}

// CreateCommunity persists a community with a fresh invite code and makes the
// creator its first accepted admin.
func (s *CommunityService) CreateCommunity(ctx context.Context, creatorID string, in CommunityInput) (domain.Community, error) {
	log := slogx.FromContext(ctx)

	name, err := required("name", in.Name)
	if err != nil {
		return domain.Community{}, err
	}

	now := clock(s.Now)
	c := domain.Community{
		ID:          idx.New().String(),
		Name:        truncate(name, maxNameLength),
		Description: in.Description,
		Address:     in.Address,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for attempt := 1; ; attempt++ {
		if c.InviteCode, err = cryptox.GenerateInviteCode(); err != nil {
			return domain.Community{}, err
		}

		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Communities().CreateCommunity(ctx, c); err != nil {
				return err
			}
			return tx.Memberships().CreateMembership(ctx, domain.Membership{
				CommunityID: c.ID,
				UserID:      creatorID,
				Role:        domain.RoleAdmin,
				Status:      domain.StatusAccepted,
				RequestedAt: now,
				JoinedAt:    &now,
			})
		})
		if errors.Is(err, store.ErrAlreadyExists) && attempt < inviteCodeAttempts {
			log.Debug("invite code collision, retrying", slog.Int("attempt", attempt))
			continue
		}
		break
	}
	if err != nil {
		log.Error("failed to create community", slog.Any("error", err))
		return domain.Community{}, err
	}

	log.Info("community created",
		slog.String("community_id", c.ID),
		slog.String("created_by", creatorID),
	)
	return c, nil
}

// JoinByInviteCode files a pending join request. Codes compare case
// insensitively.
func (s *CommunityService) JoinByInviteCode(ctx context.Context, userID, code string) (domain.Community, domain.Membership, error) {
	log := slogx.FromContext(ctx)

	code = cryptox.NormalizeInviteCode(code)
	if code == "" {
		return domain.Community{}, domain.Membership{}, validationf("invite code is required")
	}

	var (
		c domain.Community
		m domain.Membership
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		c, err = tx.Communities().GetCommunityByInviteCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteCodeNotFound
			}
			return err
		}

		existing, err := tx.Memberships().GetMembership(ctx, c.ID, userID)
		switch {
		case err == nil && existing.Accepted():
			return ErrAlreadyMember
		case err == nil:
			return ErrAlreadyRequested
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		m = domain.Membership{
			CommunityID: c.ID,
			UserID:      userID,
			Role:        domain.RoleResident,
			Status:      domain.StatusPending,
			RequestedAt: clock(s.Now),
		}
		if err := tx.Memberships().CreateMembership(ctx, m); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyRequested
			}
			return err
		}
		return nil
	})
	if err != nil {
		if KindOf(err) != KindInternal {
			log.Warn("join request rejected", slog.String("user_id", userID), slog.Any("reason", err))
		} else {
			log.Error("failed to join community", slog.Any("error", err))
		}
		return domain.Community{}, domain.Membership{}, err
	}

	log.Info("join requested",
		slog.String("community_id", c.ID),
		slog.String("user_id", userID),
	)
	return c, m, nil
}

// AcceptMember moves a pending request to accepted.
func (s *CommunityService) AcceptMember(ctx context.Context, authz AuthorizationContext, targetUserID string) (domain.Membership, error) {
	if err := authz.Require(domain.OpAcceptMember); err != nil {
		return domain.Membership{}, err
	}

	var m domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		m, err = tx.Memberships().GetMembership(ctx, authz.CommunityID, targetUserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		if m.Accepted() {
			return ErrAlreadyAccepted
		}

		joined := clock(s.Now)
		if err := tx.Memberships().AcceptMembership(ctx, authz.CommunityID, targetUserID, joined); err != nil {
			return err
		}
		m.Status = domain.StatusAccepted
		m.JoinedAt = &joined
		return nil
	})
	if err != nil {
		return domain.Membership{}, err
	}

	slogx.FromContext(ctx).Info("member accepted",
		slog.String("community_id", authz.CommunityID),
		slog.String("member_id", targetUserID),
		slog.String("accepted_by", authz.UserID),
	)
	return m, nil
}

// RejectMember deletes a pending request.
func (s *CommunityService) RejectMember(ctx context.Context, authz AuthorizationContext, targetUserID string) error {
	if err := authz.Require(domain.OpRejectMember); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := tx.Memberships().GetMembership(ctx, authz.CommunityID, targetUserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		if m.Accepted() {
			return ErrMembershipNotFound
		}
		return tx.Memberships().DeleteMembership(ctx, authz.CommunityID, targetUserID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("member rejected",
		slog.String("community_id", authz.CommunityID),
		slog.String("member_id", targetUserID),
	)
	return nil
}

// ChangeRole sets an accepted member's role. Admins cannot demote
// themselves, and the last accepted admin cannot be demoted by anyone.
func (s *CommunityService) ChangeRole(
	ctx context.Context,
	authz AuthorizationContext,
	targetUserID string,
	role domain.Role,
) (domain.Membership, error) {
	if err := authz.Require(domain.OpChangeRole); err != nil {
		return domain.Membership{}, err
	}
	if !role.Valid() {
		return domain.Membership{}, validationf("role must be one of admin, board_member, resident")
	}
	if targetUserID == authz.UserID && role != domain.RoleAdmin {
		return domain.Membership{}, ErrSelfDemotion
	}

	var m domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		m, err = tx.Memberships().GetMembership(ctx, authz.CommunityID, targetUserID)
		if err != nil || !m.Accepted() {
			if err == nil || errors.Is(err, store.ErrNotFound) {
				return withMsg(ErrMembershipNotFound, "member not found")
			}
			return err
		}

		if m.Role == domain.RoleAdmin && role != domain.RoleAdmin {
			admins, err := tx.Memberships().CountAcceptedAdmins(ctx, authz.CommunityID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return ErrSoleAdmin
			}
		}

		if err := tx.Memberships().UpdateMembershipRole(ctx, authz.CommunityID, targetUserID, role); err != nil {
			return err
		}
		m.Role = role
		return nil
	})
	if err != nil {
		return domain.Membership{}, err
	}

	slogx.FromContext(ctx).Info("member role changed",
		slog.String("community_id", authz.CommunityID),
		slog.String("member_id", targetUserID),
		slog.String("role", string(role)),
	)
	return m, nil
}

// RemoveMember deletes another member's row. Callers use Leave for themselves.
func (s *CommunityService) RemoveMember(ctx context.Context, authz AuthorizationContext, targetUserID string) error {
	if err := authz.Require(domain.OpRemoveMember); err != nil {
		return err
	}
	if targetUserID == authz.UserID {
		return ErrSelfRemoval
	}

	err := s.Store.Memberships().DeleteMembership(ctx, authz.CommunityID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return withMsg(ErrMembershipNotFound, "member not found")
		}
		return err
	}

	slogx.FromContext(ctx).Info("member removed",
		slog.String("community_id", authz.CommunityID),
		slog.String("member_id", targetUserID),
		slog.String("removed_by", authz.UserID),
	)
	return nil
}

// Leave deletes the caller's own membership unless that would leave the
// community without an accepted admin.
func (s *CommunityService) Leave(ctx context.Context, authz AuthorizationContext) error {
	if err := authz.Require(domain.OpLeaveCommunity); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := tx.Memberships().GetMembership(ctx, authz.CommunityID, authz.UserID)
		if err != nil || !m.Accepted() {
			if err == nil || errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		if m.Role == domain.RoleAdmin {
			admins, err := tx.Memberships().CountAcceptedAdmins(ctx, authz.CommunityID)
			if err != nil {
				return err
			}
			if admins-1 < 1 {
				return ErrSoleAdmin
			}
		}
		return tx.Memberships().DeleteMembership(ctx, authz.CommunityID, authz.UserID)
	})
	if err != nil {
		if errors.Is(err, ErrSoleAdmin) {
			slogx.FromContext(ctx).Warn("sole admin attempted to leave",
				slog.String("community_id", authz.CommunityID),
			)
		}
		return err
	}

	slogx.FromContext(ctx).Info("member left", slog.String("community_id", authz.CommunityID))
	return nil
}

// RegenerateInviteCode replaces the invite code. The old code stops working
// immediately.
func (s *CommunityService) RegenerateInviteCode(ctx context.Context, authz AuthorizationContext) (string, error) {
	if err := authz.Require(domain.OpRegenerateInviteCode); err != nil {
		return "", err
	}

	for attempt := 1; ; attempt++ {
		code, err := cryptox.GenerateInviteCode()
		if err != nil {
			return "", err
		}

		err = s.Store.Communities().UpdateInviteCode(ctx, authz.CommunityID, code, clock(s.Now))
		switch {
		case err == nil:
			slogx.FromContext(ctx).Info("invite code regenerated", slog.String("community_id", authz.CommunityID))
			return code, nil
		case errors.Is(err, store.ErrAlreadyExists) && attempt < inviteCodeAttempts:
			continue
		case errors.Is(err, store.ErrNotFound):
			return "", ErrCommunityNotFound
		default:
			return "", err
		}
	}
}

// ListMyCommunities returns the communities userID is an accepted member of.
func (s *CommunityService) ListMyCommunities(ctx context.Context, userID string) ([]domain.CommunityMembership, error) {
	return s.Store.Communities().ListCommunitiesForUser(ctx, userID)
}

func (s *CommunityService) GetCommunity(ctx context.Context, authz AuthorizationContext) (CommunityDetail, error) {
	if err := authz.Require(domain.OpViewCommunity); err != nil {
		return CommunityDetail{}, err
	}

	c, err := s.getCommunity(ctx, authz.CommunityID)
	if err != nil {
		return CommunityDetail{}, err
	}
	members, err := s.Store.Memberships().ListMembers(ctx, authz.CommunityID)
	if err != nil {
		return CommunityDetail{}, err
	}
	return CommunityDetail{Community: c, Members: members}, nil
}

func (s *CommunityService) UpdateCommunity(ctx context.Context, authz AuthorizationContext, in CommunityInput) (domain.Community, error) {
	if err := authz.Require(domain.OpUpdateCommunity); err != nil {
		return domain.Community{}, err
	}
	name, err := required("name", in.Name)
	if err != nil {
		return domain.Community{}, err
	}

	c, err := s.getCommunity(ctx, authz.CommunityID)
	if err != nil {
		return domain.Community{}, err
	}
	c.Name = truncate(name, maxNameLength)
	c.Description = in.Description
	c.Address = in.Address
	c.UpdatedAt = clock(s.Now)

	if err := s.Store.Communities().UpdateCommunity(ctx, c); err != nil {
		return domain.Community{}, err
	}
	return c, nil
}

// DeleteCommunity removes the community and everything it owns.
func (s *CommunityService) DeleteCommunity(ctx context.Context, authz AuthorizationContext) error {
	if err := authz.Require(domain.OpDeleteCommunity); err != nil {
		return err
	}
	if err := s.Store.Communities().DeleteCommunity(ctx, authz.CommunityID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCommunityNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("community deleted",
		slog.String("community_id", authz.CommunityID),
		slog.String("deleted_by", authz.UserID),
	)
	return nil
}

func (s *CommunityService) ListPendingMembers(ctx context.Context, authz AuthorizationContext) ([]domain.Member, error) {
	if err := authz.Require(domain.OpListPendingMembers); err != nil {
		return nil, err
	}
	return s.Store.Memberships().ListPendingMembers(ctx, authz.CommunityID)
}

func (s *CommunityService) getCommunity(ctx context.Context, id string) (domain.Community, error) {
	c, err := s.Store.Communities().GetCommunityByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Community{}, ErrCommunityNotFound
		}
		return domain.Community{}, fmt.Errorf("get community: %w", err)
	}
	return c, nil
}
