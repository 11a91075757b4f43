package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

// PollService is the poll voting engine.
type PollService struct {
	Store store.Store
	Now   func() time.Time
}

// PollInput is shared by create and update. Options are only read on create.
// Zero values pick the defaults: single choice, results after close, opening
// now.
type PollInput struct {
	Question       string
	Description    string
	Type           domain.PollType
	IsAnonymous    bool
	ResultsVisible domain.ResultsVisibility
	OpensAt        *time.Time
	ClosesAt       *time.Time
	Options        []string
}

type PollListItem struct {
	domain.PollSummary
	State domain.PollState
}

// PollDetail is a poll as seen by one member at one instant.
type PollDetail struct {
	Poll          domain.Poll
	State         domain.PollState
	Participation int
	MyOptionIDs   []string
	Remaining     *time.Duration
	CanSeeResults bool
	Results       []domain.OptionResult // nil unless CanSeeResults
}

func (d PollDetail) HasVoted() bool { return len(d.MyOptionIDs) > 0 }

func (s *PollService) CreatePoll(ctx context.Context, authz AuthorizationContext, in PollInput) (domain.Poll, error) {
	if err := authz.Require(domain.OpCreatePoll); err != nil {
		return domain.Poll{}, err
	}

	now := clock(s.Now)
	p := domain.Poll{
		ID:          idx.New().String(),
		CommunityID: authz.CommunityID,
		CreatedBy:   authz.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := applyPollInput(&p, in, now); err != nil {
		return domain.Poll{}, err
	}

	for _, text := range in.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		p.Options = append(p.Options, domain.PollOption{
			ID:       idx.New().String(),
			PollID:   p.ID,
			Text:     text,
			Position: len(p.Options),
		})
	}
	if len(p.Options) < 2 {
		return domain.Poll{}, validationf("at least 2 options are required")
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Polls().CreatePoll(ctx, p)
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create poll", slog.Any("error", err))
		return domain.Poll{}, err
	}

	slogx.FromContext(ctx).Info("poll created",
		slog.String("community_id", p.CommunityID),
		slog.String("poll_id", p.ID),
	)
	return p, nil
}

// UpdatePoll edits everything except the options. Omitted type, visibility
// and opens_at keep their current values. A multiple choice poll that already
// has ballots cannot become single choice.
func (s *PollService) UpdatePoll(ctx context.Context, authz AuthorizationContext, pollID string, in PollInput) (domain.Poll, error) {
	if err := authz.Require(domain.OpUpdatePoll); err != nil {
		return domain.Poll{}, err
	}

	var p domain.Poll
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		p, err = s.getPoll(ctx, tx, authz.CommunityID, pollID)
		if err != nil {
			return err
		}

		if in.OpensAt == nil {
			in.OpensAt = &p.OpensAt
		}
		if in.Type == "" {
			in.Type = p.Type
		}
		if in.ResultsVisible == "" {
			in.ResultsVisible = p.ResultsVisible
		}

		if p.Type == domain.PollMultiple && in.Type == domain.PollSingle {
			voters, err := tx.Polls().CountVoters(ctx, p.ID)
			if err != nil {
				return err
			}
			if voters > 0 {
				return ErrPollTypeLocked
			}
		}

		now := clock(s.Now)
		if err := applyPollInput(&p, in, now); err != nil {
			return err
		}
		p.UpdatedAt = now
		return tx.Polls().UpdatePoll(ctx, p)
	})
	if err != nil {
		return domain.Poll{}, err
	}
	return p, nil
}

func (s *PollService) DeletePoll(ctx context.Context, authz AuthorizationContext, pollID string) error {
	if err := authz.Require(domain.OpDeletePoll); err != nil {
		return err
	}
	if err := s.Store.Polls().DeletePoll(ctx, authz.CommunityID, pollID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPollNotFound
		}
		return err
	}
	return nil
}

// ListPolls returns the community's polls newest first with their state at
// the current instant.
func (s *PollService) ListPolls(ctx context.Context, authz AuthorizationContext) ([]PollListItem, error) {
	if err := authz.Require(domain.OpViewPolls); err != nil {
		return nil, err
	}

	summaries, err := s.Store.Polls().ListPolls(ctx, authz.CommunityID)
	if err != nil {
		return nil, err
	}

	now := clock(s.Now)
	out := make([]PollListItem, 0, len(summaries))
	for _, ps := range summaries {
		out = append(out, PollListItem{PollSummary: ps, State: ps.StateAt(now)})
	}
	return out, nil
}

func (s *PollService) GetPoll(ctx context.Context, authz AuthorizationContext, pollID string) (PollDetail, error) {
	if err := authz.Require(domain.OpViewPolls); err != nil {
		return PollDetail{}, err
	}
	return s.detail(ctx, s.Store, authz, pollID)
}

// CastVote replaces the caller's votes on the poll with optionIDs.
// Duplicate ids collapse into one vote.
func (s *PollService) CastVote(ctx context.Context, authz AuthorizationContext, pollID string, optionIDs []string) (PollDetail, error) {
	log := slogx.FromContext(ctx)

	if err := authz.Require(domain.OpCastVote); err != nil {
		return PollDetail{}, err
	}

	var detail PollDetail
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := s.getPoll(ctx, tx, authz.CommunityID, pollID)
		if err != nil {
			return err
		}

		now := clock(s.Now)
		switch p.StateAt(now) {
		case domain.PollNotYetOpen:
			return ErrPollNotOpenYet
		case domain.PollClosed:
			return ErrPollClosed
		}

		if len(optionIDs) == 0 {
			return ErrEmptySelection
		}
		if p.Type == domain.PollSingle && len(optionIDs) != 1 {
			return ErrInvalidSelectionCount
		}
		for _, id := range optionIDs {
			if !p.HasOption(id) {
				return ErrInvalidOption
			}
		}

		// 1. Drop the previous ballot so a re-vote replaces it.
		if err := tx.Polls().DeleteUserVotes(ctx, p.ID, authz.UserID); err != nil {
			return err
		}

		// 2. Record the new one. Repeated ids are absorbed by the store.
		for _, id := range optionIDs {
			if err := tx.Polls().CreateVote(ctx, p.ID, id, authz.UserID, now); err != nil {
				return err
			}
		}

		detail, err = s.detail(ctx, tx, authz, pollID)
		return err
	})
	if err != nil {
		if KindOf(err) == KindInternal {
			log.Error("failed to cast vote", slog.String("poll_id", pollID), slog.Any("error", err))
		} else {
			log.Warn("vote rejected", slog.String("poll_id", pollID), slog.Any("reason", err))
		}
		return PollDetail{}, err
	}

	log.Info("vote cast",
		slog.String("poll_id", pollID),
		slog.Int("options", len(detail.MyOptionIDs)),
	)
	return detail, nil
}

func (s *PollService) detail(ctx context.Context, st store.Store, authz AuthorizationContext, pollID string) (PollDetail, error) {
	p, err := s.getPoll(ctx, st, authz.CommunityID, pollID)
	if err != nil {
		return PollDetail{}, err
	}

	mine, err := st.Polls().ListUserOptionIDs(ctx, p.ID, authz.UserID)
	if err != nil {
		return PollDetail{}, err
	}
	voters, err := st.Polls().CountVoters(ctx, p.ID)
	if err != nil {
		return PollDetail{}, err
	}

	now := clock(s.Now)
	d := PollDetail{
		Poll:          p,
		State:         p.StateAt(now),
		Participation: voters,
		MyOptionIDs:   mine,
		Remaining:     p.RemainingAt(now),
	}
	d.CanSeeResults = domain.CanSeeResults(p, authz.Role, d.HasVoted(), now)

	if d.CanSeeResults {
		votes, err := st.Polls().ListVotes(ctx, p.ID)
		if err != nil {
			return PollDetail{}, err
		}
		d.Results = domain.TallyResults(p, votes)
	}
	return d, nil
}

func (s *PollService) getPoll(ctx context.Context, st store.Store, communityID, pollID string) (domain.Poll, error) {
	p, err := st.Polls().GetPoll(ctx, communityID, pollID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Poll{}, ErrPollNotFound
		}
		return domain.Poll{}, err
	}
	return p, nil
}

// applyPollInput validates in and copies it onto p, filling defaults.
func applyPollInput(p *domain.Poll, in PollInput, now time.Time) error {
	question, err := required("question", in.Question)
	if err != nil {
		return err
	}

	if in.Type == "" {
		in.Type = domain.PollSingle
	}
	if !in.Type.Valid() {
		return validationf("poll_type must be single or multiple")
	}
	if in.ResultsVisible == "" {
		in.ResultsVisible = domain.ResultsAfterClose
	}
	if !in.ResultsVisible.Valid() {
		return validationf("results_visible must be always, after_vote or after_close")
	}

	opens := now
	if in.OpensAt != nil {
		opens = in.OpensAt.UTC()
	}
	var closes *time.Time
	if in.ClosesAt != nil {
		c := in.ClosesAt.UTC()
		if !c.After(opens) {
			return validationf("closes_at must be after opens_at")
		}
		closes = &c
	}

	p.Question = question
	p.Description = strings.TrimSpace(in.Description)
	p.Type = in.Type
	p.IsAnonymous = in.IsAnonymous
	p.ResultsVisible = in.ResultsVisible
	p.OpensAt = opens
	p.ClosesAt = closes
	return nil
}
