package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store/drivers/sqlite"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, name string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        name + "@example.com",
		Name:         name,
		PasswordHash: "argon2:dummy",
		CreatedAt:    epoch,
		UpdatedAt:    epoch,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedCommunity(t *testing.T, s store.Store, owner domain.User) domain.Community {
	t.Helper()
	ctx := context.Background()

	c := domain.Community{
		ID:         idx.New().String(),
		Name:       "Oak Street HOA",
		InviteCode: idx.New().String(),
		CreatedBy:  owner.ID,
		CreatedAt:  epoch,
		UpdatedAt:  epoch,
	}
	require.NoError(t, s.Communities().CreateCommunity(ctx, c))

	joined := epoch
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		CommunityID: c.ID,
		UserID:      owner.ID,
		Role:        domain.RoleAdmin,
		Status:      domain.StatusAccepted,
		RequestedAt: epoch,
		JoinedAt:    &joined,
	}))
	return c
}

func TestApplyMigrationsIsRepeatable(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	alice := seedUser(t, s, "alice")

	got, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.True(t, got.CreatedAt.Equal(epoch))

	dup := alice
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	bob := seedUser(t, s, "bob")
	bob.Email = alice.Email
	require.ErrorIs(t, s.Users().UpdateProfile(ctx, bob), store.ErrAlreadyExists)

	require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, "missing", "x", epoch), store.ErrNotFound)
}

func TestPasswordResetsPurge(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "alice")

	for i, exp := range []time.Time{epoch.Add(-time.Minute), epoch.Add(time.Hour)} {
		require.NoError(t, s.PasswordResets().CreateResetToken(ctx, domain.PasswordResetToken{
			ID:        idx.New().String(),
			UserID:    u.ID,
			TokenHash: []string{"old", "new"}[i],
			ExpiresAt: exp,
			CreatedAt: epoch,
		}))
	}

	n, err := s.PasswordResets().DeleteExpiredResetTokens(ctx, epoch)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.PasswordResets().GetResetTokenByHash(ctx, "old")
	require.ErrorIs(t, err, store.ErrNotFound)

	tok, err := s.PasswordResets().GetResetTokenByHash(ctx, "new")
	require.NoError(t, err)
	require.True(t, tok.ExpiresAt.Equal(epoch.Add(time.Hour)))
}

func TestMemberships(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	c := seedCommunity(t, s, admin)

	pending := domain.Membership{
		CommunityID: c.ID,
		UserID:      bob.ID,
		Role:        domain.RoleResident,
		Status:      domain.StatusPending,
		RequestedAt: epoch,
	}
	require.NoError(t, s.Memberships().CreateMembership(ctx, pending))
	require.ErrorIs(t, s.Memberships().CreateMembership(ctx, pending), store.ErrAlreadyExists)

	members, err := s.Memberships().ListMembers(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)

	waiting, err := s.Memberships().ListPendingMembers(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	require.Equal(t, bob.ID, waiting[0].UserID)
	require.Nil(t, waiting[0].JoinedAt)

	require.NoError(t, s.Memberships().AcceptMembership(ctx, c.ID, bob.ID, epoch.Add(time.Hour)))
	// Accepting twice matches no pending row.
	require.ErrorIs(t, s.Memberships().AcceptMembership(ctx, c.ID, bob.ID, epoch), store.ErrNotFound)

	m, err := s.Memberships().GetMembership(ctx, c.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, m.Accepted())
	require.True(t, m.JoinedAt.Equal(epoch.Add(time.Hour)))

	require.NoError(t, s.Memberships().UpdateMembershipRole(ctx, c.ID, bob.ID, domain.RoleAdmin))
	n, err := s.Memberships().CountAcceptedAdmins(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	mine, err := s.Communities().ListCommunitiesForUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, domain.RoleAdmin, mine[0].Role)

	require.NoError(t, s.Memberships().DeleteMembership(ctx, c.ID, bob.ID))
	require.ErrorIs(t, s.Memberships().DeleteMembership(ctx, c.ID, bob.ID), store.ErrNotFound)
}

func TestMembersOrderedByRoleThenName(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	zed := seedUser(t, s, "zed")
	c := seedCommunity(t, s, zed)

	for _, tc := range []struct {
		name string
		role domain.Role
	}{{"carol", domain.RoleResident}, {"bob", domain.RoleBoardMember}, {"amy", domain.RoleResident}} {
		u := seedUser(t, s, tc.name)
		joined := epoch
		require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
			CommunityID: c.ID, UserID: u.ID, Role: tc.role,
			Status: domain.StatusAccepted, RequestedAt: epoch, JoinedAt: &joined,
		}))
	}

	members, err := s.Memberships().ListMembers(ctx, c.ID)
	require.NoError(t, err)

	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{"zed", "bob", "amy", "carol"}, names)
}

func TestDeleteCommunityCascades(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	c := seedCommunity(t, s, admin)

	poll := domain.Poll{
		ID: idx.New().String(), CommunityID: c.ID, Question: "Q?", Type: domain.PollSingle,
		ResultsVisible: domain.ResultsAlways, OpensAt: epoch, CreatedBy: admin.ID,
		CreatedAt: epoch, UpdatedAt: epoch,
		Options: []domain.PollOption{{ID: idx.New().String(), Text: "a"}, {ID: idx.New().String(), Text: "b", Position: 1}},
	}
	require.NoError(t, s.Polls().CreatePoll(ctx, poll))

	require.NoError(t, s.Communities().DeleteCommunity(ctx, c.ID))

	_, err := s.Memberships().GetMembership(ctx, c.ID, admin.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Polls().GetPoll(ctx, c.ID, poll.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestVotes(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	c := seedCommunity(t, s, admin)

	closes := epoch.Add(time.Hour)
	poll := domain.Poll{
		ID: idx.New().String(), CommunityID: c.ID, Question: "Repaint fence?",
		Type: domain.PollMultiple, ResultsVisible: domain.ResultsAfterClose,
		OpensAt: epoch, ClosesAt: &closes, CreatedBy: admin.ID, CreatedAt: epoch, UpdatedAt: epoch,
		Options: []domain.PollOption{
			{ID: "opt-yes", Text: "Yes", Position: 0},
			{ID: "opt-no", Text: "No", Position: 1},
		},
	}
	require.NoError(t, s.Polls().CreatePoll(ctx, poll))

	got, err := s.Polls().GetPoll(ctx, c.ID, poll.ID)
	require.NoError(t, err)
	require.Len(t, got.Options, 2)
	require.Equal(t, "Yes", got.Options[0].Text)
	require.True(t, got.ClosesAt.Equal(closes))

	_, err = s.Polls().GetPoll(ctx, "other-community", poll.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Duplicate triples collapse.
	require.NoError(t, s.Polls().CreateVote(ctx, poll.ID, "opt-yes", bob.ID, epoch))
	require.NoError(t, s.Polls().CreateVote(ctx, poll.ID, "opt-yes", bob.ID, epoch))
	require.NoError(t, s.Polls().CreateVote(ctx, poll.ID, "opt-no", bob.ID, epoch))
	require.NoError(t, s.Polls().CreateVote(ctx, poll.ID, "opt-no", admin.ID, epoch))

	ids, err := s.Polls().ListUserOptionIDs(ctx, poll.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"opt-yes", "opt-no"}, ids)

	voters, err := s.Polls().CountVoters(ctx, poll.ID)
	require.NoError(t, err)
	require.Equal(t, 2, voters)

	votes, err := s.Polls().ListVotes(ctx, poll.ID)
	require.NoError(t, err)
	require.Len(t, votes, 3)

	require.NoError(t, s.Polls().DeleteUserVotes(ctx, poll.ID, bob.ID))
	ids, err = s.Polls().ListUserOptionIDs(ctx, poll.ID, bob.ID)
	require.NoError(t, err)
	require.Empty(t, ids)

	summaries, err := s.Polls().ListPolls(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "alice", summaries[0].CreatorName)
	require.Equal(t, 1, summaries[0].VoterCount)
}

func TestPotluckLimitsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	c := seedCommunity(t, s, admin)

	ev := domain.PotluckEvent{
		ID: idx.New().String(), CommunityID: c.ID, Title: "Summer BBQ", EventDate: "2026-07-04",
		Limits:    domain.CategoryLimits{domain.DishAppetizer: 2, domain.DishDrink: 0},
		CreatedBy: admin.ID, CreatedAt: epoch, UpdatedAt: epoch,
	}
	require.NoError(t, s.Potlucks().CreatePotluck(ctx, ev))

	got, err := s.Potlucks().GetPotluck(ctx, c.ID, ev.ID)
	require.NoError(t, err)
	require.Equal(t, ev.Limits, got.Limits)

	for _, cat := range []domain.DishCategory{domain.DishMain, domain.DishAppetizer} {
		require.NoError(t, s.Potlucks().CreateSignup(ctx, domain.PotluckSignup{
			ID: idx.New().String(), EventID: ev.ID, UserID: admin.ID, DishName: string(cat),
			Category: cat, CreatedAt: epoch, UpdatedAt: epoch,
		}))
	}

	n, err := s.Potlucks().CountSignupsInCategory(ctx, ev.ID, domain.DishAppetizer)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	signups, err := s.Potlucks().ListSignups(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, signups, 2)
	require.Equal(t, domain.DishAppetizer, signups[0].Category)
	require.Equal(t, "alice", signups[0].User.Name)

	list, err := s.Potlucks().ListPotlucks(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].SignupCount)
}

func TestSuggestionsOrderedByUpvotes(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	c := seedCommunity(t, s, admin)

	older := domain.Suggestion{ID: idx.New().String(), CommunityID: c.ID, UserID: bob.ID, Title: "Speed bumps",
		Status: domain.SuggestionSubmitted, CreatedAt: epoch, UpdatedAt: epoch}
	newer := domain.Suggestion{ID: idx.New().String(), CommunityID: c.ID, UserID: bob.ID, Title: "Pool hours",
		Status: domain.SuggestionSubmitted, CreatedAt: epoch.Add(time.Hour), UpdatedAt: epoch.Add(time.Hour)}
	require.NoError(t, s.Suggestions().CreateSuggestion(ctx, older))
	require.NoError(t, s.Suggestions().CreateSuggestion(ctx, newer))

	list, err := s.Suggestions().ListSuggestions(ctx, c.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, newer.ID, list[0].ID)

	require.NoError(t, s.Suggestions().AddUpvote(ctx, older.ID, admin.ID, epoch))
	require.ErrorIs(t, s.Suggestions().AddUpvote(ctx, older.ID, admin.ID, epoch), store.ErrAlreadyExists)

	list, err = s.Suggestions().ListSuggestions(ctx, c.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, older.ID, list[0].ID)
	require.Equal(t, 1, list[0].UpvoteCount)
	require.True(t, list[0].Upvoted)
	require.False(t, list[1].Upvoted)
	require.Equal(t, "bob", list[0].Author.Name)

	require.NoError(t, s.Suggestions().UpdateSuggestionStatus(ctx, older.ID, domain.SuggestionReviewed, admin.ID, epoch))
	got, err := s.Suggestions().GetSuggestion(ctx, c.ID, older.ID)
	require.NoError(t, err)
	require.Equal(t, domain.SuggestionReviewed, got.Status)
	require.Equal(t, admin.ID, got.StatusUpdatedBy)
}

func TestQuestionsListingScope(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	carol := seedUser(t, s, "carol")
	c := seedCommunity(t, s, admin)

	private := domain.BoardQuestion{ID: idx.New().String(), CommunityID: c.ID, UserID: bob.ID,
		Title: "Fees", Message: "Why?", Status: domain.QuestionPending, CreatedAt: epoch, UpdatedAt: epoch}
	public := domain.BoardQuestion{ID: idx.New().String(), CommunityID: c.ID, UserID: carol.ID,
		Title: "Trash", Message: "When?", IsPublic: true, Status: domain.QuestionPending, CreatedAt: epoch, UpdatedAt: epoch}
	require.NoError(t, s.Questions().CreateQuestion(ctx, private))
	require.NoError(t, s.Questions().CreateQuestion(ctx, public))

	all, err := s.Questions().ListQuestions(ctx, c.ID, admin.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 2)

	forCarol, err := s.Questions().ListQuestions(ctx, c.ID, carol.ID, false)
	require.NoError(t, err)
	require.Len(t, forCarol, 1)
	require.Equal(t, public.ID, forCarol[0].ID)

	forBob, err := s.Questions().ListQuestions(ctx, c.ID, bob.ID, false)
	require.NoError(t, err)
	require.Len(t, forBob, 2)

	require.NoError(t, s.Questions().CreateResponse(ctx, domain.QuestionResponse{
		ID: idx.New().String(), QuestionID: private.ID, UserID: admin.ID, Message: "Budget.", CreatedAt: epoch,
	}))
	got, err := s.Questions().GetQuestion(ctx, c.ID, private.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.ResponseCount)

	responses, err := s.Questions().ListResponses(ctx, private.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.Equal(t, "alice", responses[0].Responder.Name)
}

func TestCalendarRange(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin := seedUser(t, s, "alice")
	c := seedCommunity(t, s, admin)

	for _, d := range []string{"2026-02-28", "2026-03-01", "2026-03-31", "2026-04-01"} {
		require.NoError(t, s.CalendarEvents().CreateEvent(ctx, domain.CalendarEvent{
			ID: idx.New().String(), CommunityID: c.ID, Title: d, EventDate: d,
			Type: domain.EventMeeting, CreatedBy: admin.ID, CreatedAt: epoch, UpdatedAt: epoch,
		}))
	}

	march, err := s.CalendarEvents().ListEvents(ctx, c.ID, "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, march, 2)
	require.Equal(t, "2026-03-01", march[0].EventDate)

	all, err := s.CalendarEvents().ListEvents(ctx, c.ID, "", "")
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		seedUser(t, tx, "ghost")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		seedUser(t, tx, "kept")
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		return nil
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByEmail(ctx, "kept@example.com")
	require.NoError(t, err)
}
