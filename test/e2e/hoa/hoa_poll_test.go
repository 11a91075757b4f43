package hoa_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/stretchr/testify/require"
)

// TestPollVoting runs a short poll in real time: residents vote, results stay
// hidden until close, then every member sees the tally.
func TestPollVoting(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := hoasdk.NewSDKClient(baseURL)
	ctx := t.Context()

	admin, c := createCommunity(t, client)
	board := addMember(t, client, admin, c, "board", "board_member")
	resident := addMember(t, client, admin, c, "resident", "resident")

	closes := time.Now().Add(3 * time.Second)
	p, err := board.CreatePoll(ctx, c.ID, hoasdk.PollRequest{
		Question: "Install speed bumps?",
		ClosesAt: &closes,
		Options:  []string{"Yes", "No"},
	})
	require.NoError(t, err)
	yes, no := p.Options[0], p.Options[1]

	_, err = resident.Vote(ctx, c.ID, p.ID, no.ID)
	require.NoError(t, err)
	d, err := resident.Vote(ctx, c.ID, p.ID, yes.ID)
	require.NoError(t, err, "re-voting replaces the ballot")
	require.Equal(t, []string{yes.ID}, d.MyOptionIDs)
	require.False(t, d.CanSeeResults)

	boardView, err := board.GetPoll(ctx, c.ID, p.ID)
	require.NoError(t, err)
	require.True(t, boardView.CanSeeResults, "the board sees results while open")
	require.Equal(t, 1, boardView.Participation)

	require.Eventually(t, func() bool {
		d, err := resident.GetPoll(ctx, c.ID, p.ID)
		return err == nil && d.State == "closed"
	}, 10*time.Second, 250*time.Millisecond)

	d, err = resident.GetPoll(ctx, c.ID, p.ID)
	require.NoError(t, err)
	require.True(t, d.CanSeeResults)
	require.Equal(t, 1, d.Results[0].Votes)
	require.Equal(t, 100, d.Results[0].Percentage)
	require.Equal(t, 0, d.Results[1].Votes)
	require.Equal(t, 0, d.Results[1].Percentage)

	_, err = resident.Vote(ctx, c.ID, p.ID, no.ID)
	requireAPIError(t, err, http.StatusBadRequest, hoasdk.ErrorCodePollClosed)
}
