package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func pollWithWindow(opens time.Time, closes *time.Time) domain.Poll {
	return domain.Poll{
		ID:             "p",
		Type:           domain.PollSingle,
		ResultsVisible: domain.ResultsAfterClose,
		OpensAt:        opens,
		ClosesAt:       closes,
		Options: []domain.PollOption{
			{ID: "yes", Text: "Yes", Position: 0},
			{ID: "no", Text: "No", Position: 1},
		},
	}
}

func TestPollStateAt(t *testing.T) {
	closes := t0.Add(time.Hour)
	p := pollWithWindow(t0, &closes)

	require.Equal(t, domain.PollNotYetOpen, p.StateAt(t0.Add(-time.Second)))
	require.Equal(t, domain.PollOpen, p.StateAt(t0))
	require.Equal(t, domain.PollOpen, p.StateAt(closes))
	require.Equal(t, domain.PollClosed, p.StateAt(closes.Add(time.Second)))

	open := pollWithWindow(t0, nil)
	require.Equal(t, domain.PollOpen, open.StateAt(t0.Add(24*365*time.Hour)))
}

func TestPollRemainingAt(t *testing.T) {
	closes := t0.Add(90 * time.Minute)
	p := pollWithWindow(t0, &closes)

	require.Equal(t, 90*time.Minute, *p.RemainingAt(t0))
	require.Equal(t, time.Duration(0), *p.RemainingAt(closes.Add(time.Hour)))
	require.Nil(t, pollWithWindow(t0, nil).RemainingAt(t0))
}

func TestCanSeeResults(t *testing.T) {
	closes := t0.Add(time.Hour)
	during := t0.Add(time.Minute)
	after := closes.Add(time.Minute)

	tests := []struct {
		name       string
		visibility domain.ResultsVisibility
		role       domain.Role
		voted      bool
		now        time.Time
		want       bool
	}{
		{"always resident", domain.ResultsAlways, domain.RoleResident, false, during, true},
		{"after_vote resident not voted", domain.ResultsAfterVote, domain.RoleResident, false, during, false},
		{"after_vote resident voted", domain.ResultsAfterVote, domain.RoleResident, true, during, true},
		{"after_vote board not voted", domain.ResultsAfterVote, domain.RoleBoardMember, false, during, true},
		{"after_vote closed not voted", domain.ResultsAfterVote, domain.RoleResident, false, after, true},
		{"after_close resident voted while open", domain.ResultsAfterClose, domain.RoleResident, true, during, false},
		{"after_close admin while open", domain.ResultsAfterClose, domain.RoleAdmin, false, during, true},
		{"after_close resident closed", domain.ResultsAfterClose, domain.RoleResident, false, after, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pollWithWindow(t0, &closes)
			p.ResultsVisible = tt.visibility
			require.Equal(t, tt.want, domain.CanSeeResults(p, tt.role, tt.voted, tt.now))
		})
	}
}

func TestTallyResults(t *testing.T) {
	p := pollWithWindow(t0, nil)
	alice := domain.Person{ID: "a", Name: "Alice"}
	bob := domain.Person{ID: "b", Name: "Bob"}
	carol := domain.Person{ID: "c", Name: "Carol"}

	votes := []domain.VoteRecord{
		{OptionID: "yes", Voter: alice},
		{OptionID: "yes", Voter: bob},
		{OptionID: "no", Voter: carol},
		{OptionID: "stray", Voter: carol},
	}

	results := domain.TallyResults(p, votes)
	require.Len(t, results, 2)
	require.Equal(t, "yes", results[0].OptionID)
	require.Equal(t, 2, results[0].Votes)
	require.Equal(t, 67, results[0].Percentage)
	require.Equal(t, []domain.Person{alice, bob}, results[0].Voters)
	require.Equal(t, 33, results[1].Percentage)

	p.IsAnonymous = true
	for _, r := range domain.TallyResults(p, votes) {
		require.Nil(t, r.Voters)
	}
}

func TestTallyResultsNoVotes(t *testing.T) {
	results := domain.TallyResults(pollWithWindow(t0, nil), nil)
	for _, r := range results {
		require.Zero(t, r.Votes)
		require.Zero(t, r.Percentage)
		require.NotNil(t, r.Voters)
	}
}

func TestFormatRemaining(t *testing.T) {
	require.Equal(t, "2d 3h", domain.FormatRemaining(51*time.Hour+10*time.Minute))
	require.Equal(t, "5h 10m", domain.FormatRemaining(5*time.Hour+10*time.Minute))
	require.Equal(t, "42m", domain.FormatRemaining(42*time.Minute+30*time.Second))
	require.Equal(t, "0m", domain.FormatRemaining(-time.Minute))
}
