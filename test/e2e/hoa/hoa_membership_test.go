package hoa_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/stretchr/testify/require"
)

// TestJoinAndAccept walks a resident from registration to accepted member,
// joining with a lower cased invite code.
func TestJoinAndAccept(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := hoasdk.NewSDKClient(baseURL)
	ctx := t.Context()

	a, c := createCommunity(t, client)
	b := register(t, client, "b")

	joined, err := b.JoinCommunity(ctx, strings.ToLower(c.InviteCode))
	require.NoError(t, err)
	require.Equal(t, "pending", joined.Membership.Status)

	_, err = b.ListPolls(ctx, c.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeNotMember)

	_, err = a.AcceptMember(ctx, c.ID, b.User().ID)
	require.NoError(t, err)

	d, err := b.GetCommunity(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "resident", d.MyRole)

	me, err := b.Me(ctx)
	require.NoError(t, err)
	require.Len(t, me.Communities, 1)
	require.Equal(t, c.ID, me.Communities[0].Community.ID)
}

func TestAdminSafeguards(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := hoasdk.NewSDKClient(baseURL)
	ctx := t.Context()

	admin, c := createCommunity(t, client)

	err := admin.LeaveCommunity(ctx, c.ID)
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeSoleAdmin)

	_, err = admin.ChangeRole(ctx, c.ID, admin.User().ID, "resident")
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeSelfDemotion)

	second := addMember(t, client, admin, c, "second", "admin")
	require.NoError(t, admin.LeaveCommunity(ctx, c.ID))

	_, err = admin.GetCommunity(ctx, c.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeNotMember)

	d, err := second.GetCommunity(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", d.MyRole)
	require.Len(t, d.Members, 1)
}

func TestPasswordResetIsSilent(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := hoasdk.NewSDKClient(baseURL)
	ctx := t.Context()
	register(t, client, "dana")

	known, err := client.ForgotPassword(ctx, "dana@example.com")
	require.NoError(t, err)
	unknown, err := client.ForgotPassword(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Equal(t, known.Message, unknown.Message)

	_, err = client.ResetPassword(ctx, "not-a-token", "N3wSecret1")
	requireAPIError(t, err, http.StatusBadRequest, "invalid_reset_token")
}
