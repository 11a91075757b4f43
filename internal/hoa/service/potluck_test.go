package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

func newPotluck(t *testing.T, e *env, authz AuthorizationContext, limits domain.CategoryLimits) domain.PotluckEvent {
	t.Helper()
	p, err := e.potlucks.CreatePotluck(context.Background(), authz, PotluckInput{
		Title:     "Summer Potluck",
		Theme:     "Tacos",
		EventDate: "2026-06-20",
		EventTime: "17:30",
		Location:  "Clubhouse",
		Limits:    limits,
	})
	require.NoError(t, err)
	return p
}

func TestCreatePotluck(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	board := e.member(t, c, admin, "board", domain.RoleBoardMember)

	_, err := e.potlucks.CreatePotluck(ctx, e.authz(t, board.ID, c.ID), PotluckInput{Title: "x", EventDate: "2026-06-20"})
	require.ErrorIs(t, err, ErrForbidden, "potlucks are admin only")

	tests := []struct {
		name string
		in   PotluckInput
	}{
		{"missing title", PotluckInput{EventDate: "2026-06-20"}},
		{"missing date", PotluckInput{Title: "x"}},
		{"bad date", PotluckInput{Title: "x", EventDate: "20/06/2026"}},
		{"bad time", PotluckInput{Title: "x", EventDate: "2026-06-20", EventTime: "5pm"}},
		{"negative limit", PotluckInput{Title: "x", EventDate: "2026-06-20", Limits: domain.CategoryLimits{domain.DishMain: -1}}},
		{"unknown category", PotluckInput{Title: "x", EventDate: "2026-06-20", Limits: domain.CategoryLimits{"soup": 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.potlucks.CreatePotluck(ctx, e.authz(t, admin.ID, c.ID), tt.in)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPotluckCategoryLimit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	p := newPotluck(t, e, e.authz(t, admin.ID, c.ID), domain.CategoryLimits{domain.DishAppetizer: 2})

	var signups []domain.PotluckSignup
	for _, name := range []string{"ann", "ben"} {
		u := e.member(t, c, admin, name, domain.RoleResident)
		su, err := e.potlucks.CreateSignup(ctx, e.authz(t, u.ID, c.ID), p.ID, SignupInput{
			DishName: name + "'s dip",
			Category: domain.DishAppetizer,
		})
		require.NoError(t, err)
		require.Equal(t, name, su.User.Name)
		signups = append(signups, su)
	}

	cal := e.member(t, c, admin, "cal", domain.RoleResident)
	calAuthz := e.authz(t, cal.ID, c.ID)

	_, err := e.potlucks.CreateSignup(ctx, calAuthz, p.ID, SignupInput{DishName: "Nachos", Category: domain.DishAppetizer})
	require.ErrorIs(t, err, ErrCategoryFull)
	require.Equal(t, KindConflict, KindOf(err))

	// Unlimited categories take any number.
	_, err = e.potlucks.CreateSignup(ctx, calAuthz, p.ID, SignupInput{DishName: "Nachos", Category: domain.DishSide})
	require.NoError(t, err)

	t.Run("editing within the same full category succeeds", func(t *testing.T) {
		ann := signups[0]
		updated, err := e.potlucks.UpdateSignup(ctx, e.authz(t, ann.UserID, c.ID), p.ID, ann.ID, SignupInput{
			DishName: "Seven layer dip",
			Category: domain.DishAppetizer,
			Notes:    "vegetarian",
		})
		require.NoError(t, err)
		require.Equal(t, "Seven layer dip", updated.DishName)
	})

	t.Run("moving into a full category fails", func(t *testing.T) {
		side, err := e.potlucks.GetPotluck(ctx, calAuthz, p.ID)
		require.NoError(t, err)

		var calSignup domain.PotluckSignup
		for _, su := range side.Signups {
			if su.UserID == cal.ID {
				calSignup = su
			}
		}
		_, err = e.potlucks.UpdateSignup(ctx, calAuthz, p.ID, calSignup.ID, SignupInput{
			DishName: "Nachos",
			Category: domain.DishAppetizer,
		})
		require.ErrorIs(t, err, ErrCategoryFull)
	})

	t.Run("counts", func(t *testing.T) {
		d, err := e.potlucks.GetPotluck(ctx, calAuthz, p.ID)
		require.NoError(t, err)
		require.Len(t, d.Signups, 3)
		require.Equal(t, 2, d.Counts[domain.DishAppetizer])
		require.Equal(t, 1, d.Counts[domain.DishSide])
		require.Equal(t, 0, d.Counts[domain.DishDessert])
		require.Len(t, d.Counts, len(domain.DishCategories))
	})

	t.Run("a freed slot can be taken", func(t *testing.T) {
		ben := signups[1]
		require.NoError(t, e.potlucks.DeleteSignup(ctx, e.authz(t, ben.UserID, c.ID), p.ID, ben.ID))
		_, err := e.potlucks.CreateSignup(ctx, calAuthz, p.ID, SignupInput{DishName: "Salsa", Category: domain.DishAppetizer})
		require.NoError(t, err)
	})
}

func TestPotluckSignupOwnership(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	p := newPotluck(t, e, e.authz(t, admin.ID, c.ID), nil)

	owner := e.member(t, c, admin, "owner", domain.RoleResident)
	other := e.member(t, c, admin, "other", domain.RoleResident)
	board := e.member(t, c, admin, "board", domain.RoleBoardMember)

	su, err := e.potlucks.CreateSignup(ctx, e.authz(t, owner.ID, c.ID), p.ID, SignupInput{DishName: "Pie", Category: domain.DishDessert})
	require.NoError(t, err)

	edit := SignupInput{DishName: "Cake", Category: domain.DishDessert}

	_, err = e.potlucks.UpdateSignup(ctx, e.authz(t, other.ID, c.ID), p.ID, su.ID, edit)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = e.potlucks.UpdateSignup(ctx, e.authz(t, board.ID, c.ID), p.ID, su.ID, edit)
	require.ErrorIs(t, err, ErrForbidden)
	require.ErrorIs(t, e.potlucks.DeleteSignup(ctx, e.authz(t, other.ID, c.ID), p.ID, su.ID), ErrForbidden)

	updated, err := e.potlucks.UpdateSignup(ctx, e.authz(t, admin.ID, c.ID), p.ID, su.ID, edit)
	require.NoError(t, err)
	require.Equal(t, "Cake", updated.DishName)

	require.NoError(t, e.potlucks.DeleteSignup(ctx, e.authz(t, admin.ID, c.ID), p.ID, su.ID))
	require.ErrorIs(t, e.potlucks.DeleteSignup(ctx, e.authz(t, admin.ID, c.ID), p.ID, su.ID), ErrSignupNotFound)

	_, err = e.potlucks.CreateSignup(ctx, e.authz(t, owner.ID, c.ID), p.ID, SignupInput{DishName: "Soup", Category: "soup"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestPotluckUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	authz := e.authz(t, admin.ID, c.ID)
	p := newPotluck(t, e, authz, domain.CategoryLimits{domain.DishMain: 3})

	updated, err := e.potlucks.UpdatePotluck(ctx, authz, p.ID, PotluckInput{
		Title:     "Autumn Potluck",
		EventDate: "2026-10-03",
		Limits:    domain.CategoryLimits{domain.DishDrink: 4},
	})
	require.NoError(t, err)
	require.Equal(t, domain.CategoryLimits{domain.DishDrink: 4}, updated.Limits)

	list, err := e.potlucks.ListPotlucks(ctx, authz)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Autumn Potluck", list[0].Title)

	require.NoError(t, e.potlucks.DeletePotluck(ctx, authz, p.ID))
	_, err = e.potlucks.GetPotluck(ctx, authz, p.ID)
	require.ErrorIs(t, err, ErrPotluckNotFound)
}
