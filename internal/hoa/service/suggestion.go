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

type SuggestionService struct {
	Store store.Store
	Now   func() time.Time
}

type SuggestionInput struct {
	Title       string
	Description string
}

// UpvoteState is the result of a toggle.
type UpvoteState struct {
	Upvoted bool
	Count   int
}

func (s *SuggestionService) CreateSuggestion(ctx context.Context, authz AuthorizationContext, in SuggestionInput) (domain.SuggestionView, error) {
	if err := authz.Require(domain.OpCreateSuggestion); err != nil {
		return domain.SuggestionView{}, err
	}
	title, err := required("title", in.Title)
	if err != nil {
		return domain.SuggestionView{}, err
	}

	now := clock(s.Now)
	sg := domain.Suggestion{
		ID:          idx.New().String(),
		CommunityID: authz.CommunityID,
		UserID:      authz.UserID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      domain.SuggestionSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Suggestions().CreateSuggestion(ctx, sg); err != nil {
		return domain.SuggestionView{}, err
	}
	return s.view(ctx, authz, sg.ID)
}

// ListSuggestions orders by upvotes, most popular first.
func (s *SuggestionService) ListSuggestions(ctx context.Context, authz AuthorizationContext) ([]domain.SuggestionView, error) {
	if err := authz.Require(domain.OpViewSuggestions); err != nil {
		return nil, err
	}
	return s.Store.Suggestions().ListSuggestions(ctx, authz.CommunityID, authz.UserID)
}

func (s *SuggestionService) GetSuggestion(ctx context.Context, authz AuthorizationContext, id string) (domain.SuggestionView, error) {
	if err := authz.Require(domain.OpViewSuggestions); err != nil {
		return domain.SuggestionView{}, err
	}
	return s.view(ctx, authz, id)
}

func (s *SuggestionService) UpdateSuggestion(ctx context.Context, authz AuthorizationContext, id string, in SuggestionInput) (domain.SuggestionView, error) {
	title, err := required("title", in.Title)
	if err != nil {
		return domain.SuggestionView{}, err
	}

	sg, err := s.get(ctx, authz.CommunityID, id)
	if err != nil {
		return domain.SuggestionView{}, err
	}
	if err := authz.RequireOwned(domain.OpUpdateSuggestion, sg.UserID); err != nil {
		return domain.SuggestionView{}, err
	}

	sg.Title = title
	sg.Description = strings.TrimSpace(in.Description)
	sg.UpdatedAt = clock(s.Now)
	if err := s.Store.Suggestions().UpdateSuggestion(ctx, sg); err != nil {
		return domain.SuggestionView{}, err
	}
	return s.view(ctx, authz, id)
}

func (s *SuggestionService) DeleteSuggestion(ctx context.Context, authz AuthorizationContext, id string) error {
	sg, err := s.get(ctx, authz.CommunityID, id)
	if err != nil {
		return err
	}
	if err := authz.RequireOwned(domain.OpDeleteSuggestion, sg.UserID); err != nil {
		return err
	}
	return s.Store.Suggestions().DeleteSuggestion(ctx, authz.CommunityID, id)
}

// SetStatus records a board decision and who made it.
func (s *SuggestionService) SetStatus(
	ctx context.Context,
	authz AuthorizationContext,
	id string,
	status domain.SuggestionStatus,
) (domain.SuggestionView, error) {
	if err := authz.Require(domain.OpSetSuggestionStatus); err != nil {
		return domain.SuggestionView{}, err
	}
	if !status.Valid() {
		return domain.SuggestionView{}, validationf("invalid status %q", status)
	}
	if _, err := s.get(ctx, authz.CommunityID, id); err != nil {
		return domain.SuggestionView{}, err
	}

	if err := s.Store.Suggestions().UpdateSuggestionStatus(ctx, id, status, authz.UserID, clock(s.Now)); err != nil {
		return domain.SuggestionView{}, err
	}

	slogx.FromContext(ctx).Info("suggestion status changed",
		slog.String("suggestion_id", id),
		slog.String("status", string(status)),
	)
	return s.view(ctx, authz, id)
}

// ToggleUpvote adds the caller's upvote, or removes it when present.
func (s *SuggestionService) ToggleUpvote(ctx context.Context, authz AuthorizationContext, id string) (UpvoteState, error) {
	if err := authz.Require(domain.OpToggleSuggestionVote); err != nil {
		return UpvoteState{}, err
	}

	var state UpvoteState
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Suggestions().GetSuggestion(ctx, authz.CommunityID, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSuggestionNotFound
			}
			return err
		}

		has, err := tx.Suggestions().HasUpvote(ctx, id, authz.UserID)
		if err != nil {
			return err
		}
		if has {
			err = tx.Suggestions().RemoveUpvote(ctx, id, authz.UserID)
		} else {
			err = tx.Suggestions().AddUpvote(ctx, id, authz.UserID, clock(s.Now))
		}
		if err != nil {
			return err
		}

		state.Upvoted = !has
		state.Count, err = tx.Suggestions().CountUpvotes(ctx, id)
		return err
	})
	if err != nil {
		return UpvoteState{}, err
	}
	return state, nil
}

func (s *SuggestionService) get(ctx context.Context, communityID, id string) (domain.Suggestion, error) {
	sg, err := s.Store.Suggestions().GetSuggestion(ctx, communityID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Suggestion{}, ErrSuggestionNotFound
		}
		return domain.Suggestion{}, err
	}
	return sg, nil
}

func (s *SuggestionService) view(ctx context.Context, authz AuthorizationContext, id string) (domain.SuggestionView, error) {
	v, err := s.Store.Suggestions().GetSuggestionView(ctx, authz.CommunityID, id, authz.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.SuggestionView{}, ErrSuggestionNotFound
		}
		return domain.SuggestionView{}, err
	}
	return v, nil
}
