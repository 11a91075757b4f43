package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateCommunity(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.user(t, "alice")

	t.Run("creator becomes accepted admin", func(t *testing.T) {
		c := e.community(t, alice)
		require.NotEmpty(t, c.InviteCode)

		role, ok, err := e.gate.RoleOf(ctx, alice.ID, c.ID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := e.communities.CreateCommunity(ctx, alice.ID, CommunityInput{Name: "   "})
		require.ErrorIs(t, err, ErrValidation)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("invite codes differ per community", func(t *testing.T) {
		a := e.community(t, alice)
		b := e.community(t, alice)
		require.NotEqual(t, a.InviteCode, b.InviteCode)
	})
}

// Scenario: A creates a community, B joins with the lower cased code, A
// accepts and B resolves as a resident.
func TestMembershipLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.user(t, "a")
	b := e.user(t, "b")

	c := e.community(t, a)

	_, m, err := e.communities.JoinByInviteCode(ctx, b.ID, strings.ToLower(c.InviteCode))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, m.Status)
	require.Equal(t, domain.RoleResident, m.Role)

	_, ok, err := e.gate.RoleOf(ctx, b.ID, c.ID)
	require.NoError(t, err)
	require.False(t, ok, "pending members have no role")

	_, err = e.gate.Authorize(ctx, b.ID, c.ID)
	require.ErrorIs(t, err, ErrNotMember)

	accepted, err := e.communities.AcceptMember(ctx, e.authz(t, a.ID, c.ID), b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.JoinedAt)

	role, ok, err := e.gate.RoleOf(ctx, b.ID, c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.RoleResident, role)
}

func TestJoinByInviteCode(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)

	t.Run("second request is rejected without a duplicate row", func(t *testing.T) {
		bob := e.user(t, "bob")
		_, _, err := e.communities.JoinByInviteCode(ctx, bob.ID, c.InviteCode)
		require.NoError(t, err)

		_, _, err = e.communities.JoinByInviteCode(ctx, bob.ID, c.InviteCode)
		require.ErrorIs(t, err, ErrAlreadyRequested)
		require.Equal(t, KindConflict, KindOf(err))

		pending, err := e.communities.ListPendingMembers(ctx, e.authz(t, admin.ID, c.ID))
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("accepted members cannot rejoin", func(t *testing.T) {
		_, _, err := e.communities.JoinByInviteCode(ctx, admin.ID, c.InviteCode)
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("unknown code", func(t *testing.T) {
		carol := e.user(t, "carol")
		_, _, err := e.communities.JoinByInviteCode(ctx, carol.ID, "NOPE")
		require.ErrorIs(t, err, ErrInviteCodeNotFound)
		require.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("blank code", func(t *testing.T) {
		carol := e.user(t, "carol2")
		_, _, err := e.communities.JoinByInviteCode(ctx, carol.ID, "  ")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestAcceptAndReject(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	adminAuthz := e.authz(t, admin.ID, c.ID)

	t.Run("accept twice", func(t *testing.T) {
		u := e.member(t, c, admin, "dave", domain.RoleResident)
		_, err := e.communities.AcceptMember(ctx, adminAuthz, u.ID)
		require.ErrorIs(t, err, ErrAlreadyAccepted)
	})

	t.Run("accept without request", func(t *testing.T) {
		u := e.user(t, "erin")
		_, err := e.communities.AcceptMember(ctx, adminAuthz, u.ID)
		require.ErrorIs(t, err, ErrMembershipNotFound)
	})

	t.Run("reject deletes the request", func(t *testing.T) {
		u := e.user(t, "frank")
		_, _, err := e.communities.JoinByInviteCode(ctx, u.ID, c.InviteCode)
		require.NoError(t, err)

		require.NoError(t, e.communities.RejectMember(ctx, adminAuthz, u.ID))
		require.ErrorIs(t, e.communities.RejectMember(ctx, adminAuthz, u.ID), ErrMembershipNotFound)

		// Absent again, so a fresh request is allowed.
		_, _, err = e.communities.JoinByInviteCode(ctx, u.ID, c.InviteCode)
		require.NoError(t, err)
	})

	t.Run("reject leaves accepted members alone", func(t *testing.T) {
		u := e.member(t, c, admin, "gina", domain.RoleResident)
		require.ErrorIs(t, e.communities.RejectMember(ctx, adminAuthz, u.ID), ErrMembershipNotFound)
	})

	t.Run("board members cannot accept", func(t *testing.T) {
		board := e.member(t, c, admin, "hank", domain.RoleBoardMember)
		u := e.user(t, "ivy")
		_, _, err := e.communities.JoinByInviteCode(ctx, u.ID, c.InviteCode)
		require.NoError(t, err)

		_, err = e.communities.AcceptMember(ctx, e.authz(t, board.ID, c.ID), u.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	adminAuthz := e.authz(t, admin.ID, c.ID)

	t.Run("promote resident", func(t *testing.T) {
		u := e.member(t, c, admin, "jo", domain.RoleResident)
		m, err := e.communities.ChangeRole(ctx, adminAuthz, u.ID, domain.RoleBoardMember)
		require.NoError(t, err)
		require.Equal(t, domain.RoleBoardMember, m.Role)
		require.Equal(t, domain.RoleBoardMember, e.authz(t, u.ID, c.ID).Role)
	})

	t.Run("self demotion", func(t *testing.T) {
		_, err := e.communities.ChangeRole(ctx, adminAuthz, admin.ID, domain.RoleResident)
		require.ErrorIs(t, err, ErrSelfDemotion)
	})

	t.Run("unknown role", func(t *testing.T) {
		u := e.member(t, c, admin, "kim", domain.RoleResident)
		_, err := e.communities.ChangeRole(ctx, adminAuthz, u.ID, domain.Role("owner"))
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("pending members have no role to change", func(t *testing.T) {
		u := e.user(t, "lee")
		_, _, err := e.communities.JoinByInviteCode(ctx, u.ID, c.InviteCode)
		require.NoError(t, err)
		_, err = e.communities.ChangeRole(ctx, adminAuthz, u.ID, domain.RoleBoardMember)
		require.ErrorIs(t, err, ErrMembershipNotFound)
	})

	t.Run("one of two admins can be demoted", func(t *testing.T) {
		other := e.member(t, c, admin, "max", domain.RoleAdmin)
		m, err := e.communities.ChangeRole(ctx, adminAuthz, other.ID, domain.RoleResident)
		require.NoError(t, err)
		require.Equal(t, domain.RoleResident, m.Role)

		n, err := e.store.Memberships().CountAcceptedAdmins(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
}

func TestChangeRoleKeepsAnAdmin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	second := e.member(t, c, admin, "second", domain.RoleAdmin)

	// Remove the first admin so second is the only one, then have a
	// forged context try to demote them.
	require.NoError(t, e.communities.Leave(ctx, e.authz(t, admin.ID, c.ID)))
	forged := AuthorizationContext{UserID: admin.ID, CommunityID: c.ID, Role: domain.RoleAdmin}

	_, err := e.communities.ChangeRole(ctx, forged, second.ID, domain.RoleResident)
	require.ErrorIs(t, err, ErrSoleAdmin)
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	adminAuthz := e.authz(t, admin.ID, c.ID)

	u := e.member(t, c, admin, "ned", domain.RoleResident)
	require.NoError(t, e.communities.RemoveMember(ctx, adminAuthz, u.ID))

	_, err := e.gate.Authorize(ctx, u.ID, c.ID)
	require.ErrorIs(t, err, ErrNotMember)

	require.ErrorIs(t, e.communities.RemoveMember(ctx, adminAuthz, u.ID), ErrMembershipNotFound)
	require.ErrorIs(t, e.communities.RemoveMember(ctx, adminAuthz, admin.ID), ErrSelfRemoval)
}

func TestLeave(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)

	t.Run("sole admin cannot leave", func(t *testing.T) {
		err := e.communities.Leave(ctx, e.authz(t, admin.ID, c.ID))
		require.ErrorIs(t, err, ErrSoleAdmin)
		require.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("resident leaves", func(t *testing.T) {
		u := e.member(t, c, admin, "olga", domain.RoleResident)
		authz := e.authz(t, u.ID, c.ID)
		require.NoError(t, e.communities.Leave(ctx, authz))
		require.ErrorIs(t, e.communities.Leave(ctx, authz), ErrNotMember)
	})

	t.Run("admin leaves when another admin remains", func(t *testing.T) {
		other := e.member(t, c, admin, "pat", domain.RoleAdmin)
		require.NoError(t, e.communities.Leave(ctx, e.authz(t, other.ID, c.ID)))

		n, err := e.store.Memberships().CountAcceptedAdmins(ctx, c.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
	})
}

func TestRegenerateInviteCode(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)

	code, err := e.communities.RegenerateInviteCode(ctx, e.authz(t, admin.ID, c.ID))
	require.NoError(t, err)
	require.NotEqual(t, c.InviteCode, code)

	u := e.user(t, "quinn")
	_, _, err = e.communities.JoinByInviteCode(ctx, u.ID, c.InviteCode)
	require.ErrorIs(t, err, ErrInviteCodeNotFound, "old code stops working immediately")

	_, _, err = e.communities.JoinByInviteCode(ctx, u.ID, code)
	require.NoError(t, err)
}

func TestCommunityReadModels(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	resident := e.member(t, c, admin, "rita", domain.RoleResident)

	mine, err := e.communities.ListMyCommunities(ctx, resident.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, domain.RoleResident, mine[0].Role)

	d, err := e.communities.GetCommunity(ctx, e.authz(t, resident.ID, c.ID))
	require.NoError(t, err)
	require.Equal(t, c.Name, d.Community.Name)
	require.Len(t, d.Members, 2)
	require.Equal(t, admin.ID, d.Members[0].UserID, "admins sort first")

	_, err = e.communities.UpdateCommunity(ctx, e.authz(t, resident.ID, c.ID), CommunityInput{Name: "Mine now"})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := e.communities.UpdateCommunity(ctx, e.authz(t, admin.ID, c.ID), CommunityInput{
		Name:    "Oak Street Homeowners",
		Address: "1 Oak Street",
	})
	require.NoError(t, err)
	require.Equal(t, "Oak Street Homeowners", updated.Name)

	require.NoError(t, e.communities.DeleteCommunity(ctx, e.authz(t, admin.ID, c.ID)))
	_, err = e.gate.Authorize(ctx, admin.ID, c.ID)
	require.ErrorIs(t, err, ErrNotMember)
}
