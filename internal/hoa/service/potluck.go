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

type PotluckService struct {
	Store store.Store
	Now   func() time.Time
}

type PotluckInput struct {
	Title       string
	Theme       string
	Description string
	EventDate   string
	EventTime   string
	Location    string
	Limits      domain.CategoryLimits
}

type SignupInput struct {
	DishName string
	Category domain.DishCategory
	Notes    string
}

type PotluckDetail struct {
	Event   domain.PotluckEvent
	Signups []domain.PotluckSignup
	Counts  map[domain.DishCategory]int
}

func (s *PotluckService) CreatePotluck(ctx context.Context, authz AuthorizationContext, in PotluckInput) (domain.PotluckEvent, error) {
	if err := authz.Require(domain.OpCreatePotluck); err != nil {
		return domain.PotluckEvent{}, err
	}

	now := clock(s.Now)
	e := domain.PotluckEvent{
		ID:          idx.New().String(),
		CommunityID: authz.CommunityID,
		CreatedBy:   authz.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := applyPotluckInput(&e, in); err != nil {
		return domain.PotluckEvent{}, err
	}

	if err := s.Store.Potlucks().CreatePotluck(ctx, e); err != nil {
		return domain.PotluckEvent{}, err
	}

	slogx.FromContext(ctx).Info("potluck created",
		slog.String("community_id", e.CommunityID),
		slog.String("potluck_id", e.ID),
	)
	return e, nil
}

func (s *PotluckService) UpdatePotluck(ctx context.Context, authz AuthorizationContext, eventID string, in PotluckInput) (domain.PotluckEvent, error) {
	if err := authz.Require(domain.OpUpdatePotluck); err != nil {
		return domain.PotluckEvent{}, err
	}

	e, err := getPotluck(ctx, s.Store, authz.CommunityID, eventID)
	if err != nil {
		return domain.PotluckEvent{}, err
	}
	if err := applyPotluckInput(&e, in); err != nil {
		return domain.PotluckEvent{}, err
	}
	e.UpdatedAt = clock(s.Now)

	if err := s.Store.Potlucks().UpdatePotluck(ctx, e); err != nil {
		return domain.PotluckEvent{}, err
	}
	return e, nil
}

func (s *PotluckService) DeletePotluck(ctx context.Context, authz AuthorizationContext, eventID string) error {
	if err := authz.Require(domain.OpDeletePotluck); err != nil {
		return err
	}
	if err := s.Store.Potlucks().DeletePotluck(ctx, authz.CommunityID, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPotluckNotFound
		}
		return err
	}
	return nil
}

func (s *PotluckService) ListPotlucks(ctx context.Context, authz AuthorizationContext) ([]domain.PotluckSummary, error) {
	if err := authz.Require(domain.OpViewPotlucks); err != nil {
		return nil, err
	}
	return s.Store.Potlucks().ListPotlucks(ctx, authz.CommunityID)
}

// GetPotluck returns the event, its signups and the per category counts.
func (s *PotluckService) GetPotluck(ctx context.Context, authz AuthorizationContext, eventID string) (PotluckDetail, error) {
	if err := authz.Require(domain.OpViewPotlucks); err != nil {
		return PotluckDetail{}, err
	}

	e, err := getPotluck(ctx, s.Store, authz.CommunityID, eventID)
	if err != nil {
		return PotluckDetail{}, err
	}
	signups, err := s.Store.Potlucks().ListSignups(ctx, e.ID)
	if err != nil {
		return PotluckDetail{}, err
	}

	counts := make(map[domain.DishCategory]int, len(domain.DishCategories))
	for _, c := range domain.DishCategories {
		counts[c] = 0
	}
	for _, su := range signups {
		counts[su.Category]++
	}
	return PotluckDetail{Event: e, Signups: signups, Counts: counts}, nil
}

// CreateSignup adds a dish. The limit check and the insert share a
// transaction so two members cannot both take the last slot.
func (s *PotluckService) CreateSignup(ctx context.Context, authz AuthorizationContext, eventID string, in SignupInput) (domain.PotluckSignup, error) {
	if err := authz.Require(domain.OpCreateSignup); err != nil {
		return domain.PotluckSignup{}, err
	}
	if err := validateSignup(&in); err != nil {
		return domain.PotluckSignup{}, err
	}

	now := clock(s.Now)
	su := domain.PotluckSignup{
		ID:        idx.New().String(),
		EventID:   eventID,
		UserID:    authz.UserID,
		DishName:  in.DishName,
		Category:  in.Category,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := getPotluck(ctx, tx, authz.CommunityID, eventID)
		if err != nil {
			return err
		}
		if err := checkCategoryLimit(ctx, tx, e, su.Category); err != nil {
			return err
		}
		if err := tx.Potlucks().CreateSignup(ctx, su); err != nil {
			return err
		}
		su, err = tx.Potlucks().GetSignup(ctx, eventID, su.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrCategoryFull) {
			slogx.FromContext(ctx).Warn("potluck category full",
				slog.String("potluck_id", eventID),
				slog.String("category", string(in.Category)),
			)
		}
		return domain.PotluckSignup{}, err
	}
	return su, nil
}

// UpdateSignup edits a dish. Keeping the category skips the limit check so a
// member can always re-save their own slot.
func (s *PotluckService) UpdateSignup(
	ctx context.Context,
	authz AuthorizationContext,
	eventID, signupID string,
	in SignupInput,
) (domain.PotluckSignup, error) {
	if err := validateSignup(&in); err != nil {
		return domain.PotluckSignup{}, err
	}

	var su domain.PotluckSignup
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := getPotluck(ctx, tx, authz.CommunityID, eventID)
		if err != nil {
			return err
		}
		su, err = getSignup(ctx, tx, eventID, signupID)
		if err != nil {
			return err
		}
		if err := authz.RequireOwned(domain.OpUpdateSignup, su.UserID); err != nil {
			return err
		}

		if in.Category != su.Category {
			if err := checkCategoryLimit(ctx, tx, e, in.Category); err != nil {
				return err
			}
		}

		su.DishName = in.DishName
		su.Category = in.Category
		su.Notes = in.Notes
		su.UpdatedAt = clock(s.Now)
		return tx.Potlucks().UpdateSignup(ctx, su)
	})
	if err != nil {
		return domain.PotluckSignup{}, err
	}
	return su, nil
}

func (s *PotluckService) DeleteSignup(ctx context.Context, authz AuthorizationContext, eventID, signupID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := getPotluck(ctx, tx, authz.CommunityID, eventID); err != nil {
			return err
		}
		su, err := getSignup(ctx, tx, eventID, signupID)
		if err != nil {
			return err
		}
		if err := authz.RequireOwned(domain.OpDeleteSignup, su.UserID); err != nil {
			return err
		}
		return tx.Potlucks().DeleteSignup(ctx, eventID, signupID)
	})
}

func checkCategoryLimit(ctx context.Context, st store.Store, e domain.PotluckEvent, c domain.DishCategory) error {
	if _, limited := e.Limits[c]; !limited {
		return nil
	}
	n, err := st.Potlucks().CountSignupsInCategory(ctx, e.ID, c)
	if err != nil {
		return err
	}
	if e.Limits.Full(c, n) {
		return withMsg(ErrCategoryFull, "no spots left for %s", c)
	}
	return nil
}

func getPotluck(ctx context.Context, st store.Store, communityID, eventID string) (domain.PotluckEvent, error) {
	e, err := st.Potlucks().GetPotluck(ctx, communityID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PotluckEvent{}, ErrPotluckNotFound
		}
		return domain.PotluckEvent{}, err
	}
	return e, nil
}

func getSignup(ctx context.Context, st store.Store, eventID, signupID string) (domain.PotluckSignup, error) {
	su, err := st.Potlucks().GetSignup(ctx, eventID, signupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PotluckSignup{}, ErrSignupNotFound
		}
		return domain.PotluckSignup{}, err
	}
	return su, nil
}

func validateSignup(in *SignupInput) error {
	dish, err := required("dish_name", in.DishName)
	if err != nil {
		return err
	}
	if in.Category == "" {
		return validationf("category is required")
	}
	if !in.Category.Valid() {
		return validationf("unknown category %q", in.Category)
	}
	in.DishName = dish
	in.Notes = strings.TrimSpace(in.Notes)
	return nil
}

func applyPotluckInput(e *domain.PotluckEvent, in PotluckInput) error {
	title, err := required("title", in.Title)
	if err != nil {
		return err
	}
	date, err := required("event_date", in.EventDate)
	if err != nil {
		return err
	}
	if err := validDate("event_date", date); err != nil {
		return err
	}
	if err := validClock("event_time", in.EventTime); err != nil {
		return err
	}

	limits := domain.CategoryLimits{}
	for c, n := range in.Limits {
		if !c.Valid() {
			return validationf("unknown category %q", c)
		}
		if n < 0 {
			return validationf("limit for %s cannot be negative", c)
		}
		limits[c] = n
	}

	e.Title = title
	e.Theme = strings.TrimSpace(in.Theme)
	e.Description = strings.TrimSpace(in.Description)
	e.EventDate = date
	e.EventTime = in.EventTime
	e.Location = strings.TrimSpace(in.Location)
	e.Limits = limits
	return nil
}
