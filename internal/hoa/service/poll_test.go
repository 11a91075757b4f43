package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

type pollFixture struct {
	*env
	c        domain.Community
	admin    domain.User
	board    domain.User
	resident domain.User
}

func newPollFixture(t *testing.T) pollFixture {
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	return pollFixture{
		env:      e,
		c:        c,
		admin:    admin,
		board:    e.member(t, c, admin, "board", domain.RoleBoardMember),
		resident: e.member(t, c, admin, "resident", domain.RoleResident),
	}
}

func (f pollFixture) createPoll(t *testing.T, in PollInput) domain.Poll {
	t.Helper()
	if in.Question == "" {
		in.Question = "Repave the driveway?"
	}
	if in.Options == nil {
		in.Options = []string{"Yes", "No"}
	}
	p, err := f.polls.CreatePoll(context.Background(), f.authz(t, f.board.ID, f.c.ID), in)
	require.NoError(t, err)
	return p
}

func TestCreatePoll(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)

	t.Run("defaults", func(t *testing.T) {
		p := f.createPoll(t, PollInput{Options: []string{"Yes", " ", "No"}})
		require.Equal(t, domain.PollSingle, p.Type)
		require.Equal(t, domain.ResultsAfterClose, p.ResultsVisible)
		require.Equal(t, f.clock.Now(), p.OpensAt)
		require.Nil(t, p.ClosesAt)
		require.Len(t, p.Options, 2, "blank options are dropped")
		require.Equal(t, 0, p.Options[0].Position)
		require.Equal(t, 1, p.Options[1].Position)
	})

	t.Run("residents cannot create", func(t *testing.T) {
		_, err := f.polls.CreatePoll(ctx, f.authz(t, f.resident.ID, f.c.ID), PollInput{
			Question: "Mine?",
			Options:  []string{"a", "b"},
		})
		require.ErrorIs(t, err, ErrForbidden)
	})

	tests := []struct {
		name string
		in   PollInput
	}{
		{"one option", PollInput{Question: "q", Options: []string{"only"}}},
		{"no question", PollInput{Question: " ", Options: []string{"a", "b"}}},
		{"bad type", PollInput{Question: "q", Type: "ranked", Options: []string{"a", "b"}}},
		{"bad visibility", PollInput{Question: "q", ResultsVisible: "never", Options: []string{"a", "b"}}},
		{"closes before opens", PollInput{
			Question: "q",
			Options:  []string{"a", "b"},
			OpensAt:  ptr(f.clock.Now().Add(time.Hour)),
			ClosesAt: ptr(f.clock.Now()),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.polls.CreatePoll(ctx, f.authz(t, f.board.ID, f.c.ID), tt.in)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCastVoteStates(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	authz := f.authz(t, f.resident.ID, f.c.ID)

	t.Run("not open yet", func(t *testing.T) {
		p := f.createPoll(t, PollInput{OpensAt: ptr(f.clock.Now().Add(time.Hour))})
		_, err := f.polls.CastVote(ctx, authz, p.ID, []string{p.Options[0].ID})
		require.ErrorIs(t, err, ErrPollNotOpenYet)
	})

	t.Run("closed", func(t *testing.T) {
		p := f.createPoll(t, PollInput{
			OpensAt:  ptr(f.clock.Now().Add(-2 * time.Hour)),
			ClosesAt: ptr(f.clock.Now().Add(-time.Hour)),
		})
		_, err := f.polls.CastVote(ctx, authz, p.ID, []string{p.Options[0].ID})
		require.ErrorIs(t, err, ErrPollClosed)
	})

	t.Run("unknown poll", func(t *testing.T) {
		_, err := f.polls.CastVote(ctx, authz, "missing", []string{"x"})
		require.ErrorIs(t, err, ErrPollNotFound)
	})
}

func TestCastVoteSelection(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	authz := f.authz(t, f.resident.ID, f.c.ID)

	single := f.createPoll(t, PollInput{})
	multi := f.createPoll(t, PollInput{Type: domain.PollMultiple, Options: []string{"Pool", "Gym", "Garden"}})
	other := f.createPoll(t, PollInput{})

	t.Run("empty selection", func(t *testing.T) {
		_, err := f.polls.CastVote(ctx, authz, single.ID, nil)
		require.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("single choice takes exactly one", func(t *testing.T) {
		_, err := f.polls.CastVote(ctx, authz, single.ID, []string{single.Options[0].ID, single.Options[1].ID})
		require.ErrorIs(t, err, ErrInvalidSelectionCount)
	})

	t.Run("option from another poll", func(t *testing.T) {
		_, err := f.polls.CastVote(ctx, authz, single.ID, []string{other.Options[0].ID})
		require.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("multiple choice", func(t *testing.T) {
		d, err := f.polls.CastVote(ctx, authz, multi.ID, []string{multi.Options[0].ID, multi.Options[2].ID})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{multi.Options[0].ID, multi.Options[2].ID}, d.MyOptionIDs)
		require.Equal(t, 1, d.Participation)
	})

	t.Run("duplicate ids count once", func(t *testing.T) {
		d, err := f.polls.CastVote(ctx, authz, multi.ID, []string{multi.Options[1].ID, multi.Options[1].ID})
		require.NoError(t, err)
		require.Equal(t, []string{multi.Options[1].ID}, d.MyOptionIDs)
	})

	t.Run("failed vote keeps the previous ballot", func(t *testing.T) {
		_, err := f.polls.CastVote(ctx, authz, multi.ID, []string{multi.Options[0].ID, "bogus"})
		require.ErrorIs(t, err, ErrInvalidOption)

		d, err := f.polls.GetPoll(ctx, authz, multi.ID)
		require.NoError(t, err)
		require.Equal(t, []string{multi.Options[1].ID}, d.MyOptionIDs)
	})
}

func TestCastVoteReplaces(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	authz := f.authz(t, f.resident.ID, f.c.ID)
	p := f.createPoll(t, PollInput{ResultsVisible: domain.ResultsAlways})

	_, err := f.polls.CastVote(ctx, authz, p.ID, []string{p.Options[0].ID})
	require.NoError(t, err)

	d, err := f.polls.CastVote(ctx, authz, p.ID, []string{p.Options[1].ID})
	require.NoError(t, err)
	require.Equal(t, []string{p.Options[1].ID}, d.MyOptionIDs)
	require.Equal(t, 1, d.Participation)
	require.Equal(t, 0, d.Results[0].Votes)
	require.Equal(t, 1, d.Results[1].Votes)
}

func TestPollResultsVisibility(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	resident := f.authz(t, f.resident.ID, f.c.ID)
	board := f.authz(t, f.board.ID, f.c.ID)

	t.Run("after vote", func(t *testing.T) {
		p := f.createPoll(t, PollInput{ResultsVisible: domain.ResultsAfterVote})

		d, err := f.polls.GetPoll(ctx, resident, p.ID)
		require.NoError(t, err)
		require.False(t, d.CanSeeResults)
		require.Nil(t, d.Results)

		d, err = f.polls.CastVote(ctx, resident, p.ID, []string{p.Options[0].ID})
		require.NoError(t, err)
		require.True(t, d.CanSeeResults)
		require.True(t, d.HasVoted())
	})

	t.Run("board always sees results", func(t *testing.T) {
		p := f.createPoll(t, PollInput{})
		d, err := f.polls.GetPoll(ctx, board, p.ID)
		require.NoError(t, err)
		require.True(t, d.CanSeeResults)
		require.Len(t, d.Results, 2)
	})

	t.Run("anonymous polls hide voters", func(t *testing.T) {
		p := f.createPoll(t, PollInput{IsAnonymous: true, ResultsVisible: domain.ResultsAlways})
		d, err := f.polls.CastVote(ctx, resident, p.ID, []string{p.Options[0].ID})
		require.NoError(t, err)
		require.Equal(t, 1, d.Results[0].Votes)
		require.Nil(t, d.Results[0].Voters)
	})

	t.Run("named polls list voters", func(t *testing.T) {
		p := f.createPoll(t, PollInput{ResultsVisible: domain.ResultsAlways})
		d, err := f.polls.CastVote(ctx, resident, p.ID, []string{p.Options[0].ID})
		require.NoError(t, err)
		require.Len(t, d.Results[0].Voters, 1)
		require.Equal(t, "resident", d.Results[0].Voters[0].Name)
	})
}

// Scenario: a board member opens a one hour single choice poll, a resident
// votes Yes and cannot see results until the poll closes.
func TestPollLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	resident := f.authz(t, f.resident.ID, f.c.ID)

	p := f.createPoll(t, PollInput{
		Question: "Install speed bumps?",
		ClosesAt: ptr(f.clock.Now().Add(time.Hour)),
	})
	yes, no := p.Options[0], p.Options[1]

	d, err := f.polls.CastVote(ctx, resident, p.ID, []string{yes.ID})
	require.NoError(t, err)
	require.Equal(t, domain.PollOpen, d.State)
	require.False(t, d.CanSeeResults)
	require.NotNil(t, d.Remaining)
	require.Equal(t, time.Hour, *d.Remaining)

	f.clock.Advance(time.Hour + time.Minute)

	d, err = f.polls.GetPoll(ctx, resident, p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PollClosed, d.State)
	require.True(t, d.CanSeeResults)
	require.Equal(t, time.Duration(0), *d.Remaining)
	require.Equal(t, 1, d.Participation)

	require.Len(t, d.Results, 2)
	require.Equal(t, yes.ID, d.Results[0].OptionID)
	require.Equal(t, 1, d.Results[0].Votes)
	require.Equal(t, 100, d.Results[0].Percentage)
	require.Equal(t, no.ID, d.Results[1].OptionID)
	require.Equal(t, 0, d.Results[1].Votes)
	require.Equal(t, 0, d.Results[1].Percentage)

	_, err = f.polls.CastVote(ctx, resident, p.ID, []string{no.ID})
	require.ErrorIs(t, err, ErrPollClosed)

	list, err := f.polls.ListPolls(ctx, resident)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.PollClosed, list[0].State)
	require.Equal(t, 1, list[0].VoterCount)
	require.Equal(t, "board", list[0].CreatorName)
}

func TestUpdateAndDeletePoll(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	board := f.authz(t, f.board.ID, f.c.ID)
	p := f.createPoll(t, PollInput{})

	updated, err := f.polls.UpdatePoll(ctx, board, p.ID, PollInput{
		Question:       "Repave the driveway in June?",
		ResultsVisible: domain.ResultsAlways,
	})
	require.NoError(t, err)
	require.Equal(t, "Repave the driveway in June?", updated.Question)
	require.Equal(t, p.OpensAt, updated.OpensAt, "opens_at is kept when omitted")
	require.Len(t, updated.Options, 2)

	_, err = f.polls.UpdatePoll(ctx, f.authz(t, f.resident.ID, f.c.ID), p.ID, PollInput{Question: "x"})
	require.ErrorIs(t, err, ErrForbidden)

	t.Run("multiple choice with ballots stays multiple", func(t *testing.T) {
		resident := f.authz(t, f.resident.ID, f.c.ID)
		multi := f.createPoll(t, PollInput{
			Type:           domain.PollMultiple,
			ResultsVisible: domain.ResultsAlways,
			Options:        []string{"Pool", "Gym", "Garden"},
		})

		kept, err := f.polls.UpdatePoll(ctx, board, multi.ID, PollInput{Question: "Which amenities?"})
		require.NoError(t, err)
		require.Equal(t, domain.PollMultiple, kept.Type, "omitted type keeps the current one")
		require.Equal(t, domain.ResultsAlways, kept.ResultsVisible)

		_, err = f.polls.CastVote(ctx, resident, multi.ID, []string{multi.Options[0].ID, multi.Options[1].ID})
		require.NoError(t, err)

		_, err = f.polls.UpdatePoll(ctx, board, multi.ID, PollInput{Question: "Which amenity?", Type: domain.PollSingle})
		require.ErrorIs(t, err, ErrPollTypeLocked)
		require.Equal(t, KindValidation, KindOf(err))

		d, err := f.polls.GetPoll(ctx, resident, multi.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PollMultiple, d.Poll.Type)
		require.Equal(t, "Which amenities?", d.Poll.Question, "rejected edit changes nothing")
		require.Len(t, d.MyOptionIDs, 2)
	})

	t.Run("multiple choice without ballots can become single", func(t *testing.T) {
		multi := f.createPoll(t, PollInput{Type: domain.PollMultiple})
		single, err := f.polls.UpdatePoll(ctx, board, multi.ID, PollInput{Question: "Pick one", Type: domain.PollSingle})
		require.NoError(t, err)
		require.Equal(t, domain.PollSingle, single.Type)
	})

	require.NoError(t, f.polls.DeletePoll(ctx, board, p.ID))
	require.ErrorIs(t, f.polls.DeletePoll(ctx, board, p.ID), ErrPollNotFound)
	_, err = f.polls.GetPoll(ctx, board, p.ID)
	require.ErrorIs(t, err, ErrPollNotFound)
}

func TestPollsAreCommunityScoped(t *testing.T) {
	ctx := context.Background()
	f := newPollFixture(t)
	p := f.createPoll(t, PollInput{})

	outsider := f.user(t, "outsider")
	oc := f.community(t, outsider)

	_, err := f.polls.GetPoll(ctx, f.authz(t, outsider.ID, oc.ID), p.ID)
	require.ErrorIs(t, err, ErrPollNotFound)
}
