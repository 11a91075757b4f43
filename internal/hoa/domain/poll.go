package domain

import (
	"fmt"
	"math"
	"time"
)

type PollType string

const (
	PollSingle   PollType = "single"
	PollMultiple PollType = "multiple"
)

func (t PollType) Valid() bool { return t == PollSingle || t == PollMultiple }

type ResultsVisibility string

const (
	ResultsAlways     ResultsVisibility = "always"
	ResultsAfterVote  ResultsVisibility = "after_vote"
	ResultsAfterClose ResultsVisibility = "after_close"
)

func (v ResultsVisibility) Valid() bool {
	switch v {
	case ResultsAlways, ResultsAfterVote, ResultsAfterClose:
		return true
	}
	return false
}

type PollState string

const (
	PollNotYetOpen PollState = "not_yet_open"
	PollOpen       PollState = "open"
	PollClosed     PollState = "closed"
)

type Poll struct {
	ID             string
	CommunityID    string
	Question       string
	Description    string
	Type           PollType
	IsAnonymous    bool
	ResultsVisible ResultsVisibility
	OpensAt        time.Time
	ClosesAt       *time.Time // nil means open forever
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Options []PollOption
}

type PollOption struct {
	ID       string
	PollID   string
	Text     string
	Position int
}

// StateAt derives the poll state from the clock. Polls are never closed by
// hand, only by closes_at passing.
func (p Poll) StateAt(now time.Time) PollState {
	switch {
	case now.Before(p.OpensAt):
		return PollNotYetOpen
	case p.ClosesAt != nil && now.After(*p.ClosesAt):
		return PollClosed
	default:
		return PollOpen
	}
}

// RemainingAt is the time left before closing: nil when the poll has no
// close time and zero once it has closed.
func (p Poll) RemainingAt(now time.Time) *time.Duration {
	if p.ClosesAt == nil {
		return nil
	}
	d := max(p.ClosesAt.Sub(now), 0)
	return &d
}

// HasOption reports whether optionID belongs to this poll.
func (p Poll) HasOption(optionID string) bool {
	for _, o := range p.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// CanSeeResults applies the results visibility policy. Board members always
// see results, and so does everyone once the poll has closed.
func CanSeeResults(p Poll, role Role, hasVoted bool, now time.Time) bool {
	if role.IsBoard() || p.StateAt(now) == PollClosed {
		return true
	}
	switch p.ResultsVisible {
	case ResultsAlways:
		return true
	case ResultsAfterVote:
		return hasVoted
	default:
		return false
	}
}

// PollSummary is a list row.
type PollSummary struct {
	Poll
	CreatorName string
	VoterCount  int
}

// VoteRecord is a stored vote joined with the voter.
type VoteRecord struct {
	OptionID string
	Voter    Person
}

type OptionResult struct {
	OptionID   string
	Text       string
	Position   int
	Votes      int
	Percentage int
	Voters     []Person // always nil for anonymous polls
}

// TallyResults counts votes per option in option order. Voter identities are
// only attached when the poll is not anonymous.
func TallyResults(p Poll, votes []VoteRecord) []OptionResult {
	counts := make(map[string]int, len(p.Options))
	voters := make(map[string][]Person, len(p.Options))
	total := 0
	for _, v := range votes {
		if !p.HasOption(v.OptionID) {
			continue
		}
		counts[v.OptionID]++
		total++
		if !p.IsAnonymous {
			voters[v.OptionID] = append(voters[v.OptionID], v.Voter)
		}
	}

	out := make([]OptionResult, 0, len(p.Options))
	for _, o := range p.Options {
		r := OptionResult{
			OptionID:   o.ID,
			Text:       o.Text,
			Position:   o.Position,
			Votes:      counts[o.ID],
			Percentage: Percentage(counts[o.ID], total),
		}
		if !p.IsAnonymous {
			r.Voters = voters[o.ID]
			if r.Voters == nil {
				r.Voters = []Person{}
			}
		}
		out = append(out, r)
	}
	return out
}

// Percentage of part in total rounded half away from zero, 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// FormatRemaining renders a countdown the way the board shows it:
// "2d 3h", "5h 10m" or "42m".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d%(24*time.Hour)) / int(time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
