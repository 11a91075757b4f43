package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

func TestCapabilityAllows(t *testing.T) {
	tests := []struct {
		cap   domain.Capability
		role  domain.Role
		allow bool
	}{
		{domain.AnyMember, domain.RoleResident, true},
		{domain.AnyMember, domain.RoleBoardMember, true},
		{domain.AnyMember, domain.RoleAdmin, true},
		{domain.AnyMember, domain.Role(""), false},

		{domain.BoardOrAdmin, domain.RoleResident, false},
		{domain.BoardOrAdmin, domain.RoleBoardMember, true},
		{domain.BoardOrAdmin, domain.RoleAdmin, true},

		// Board members are not a rank below admin.
		{domain.AdminOnly, domain.RoleBoardMember, false},
		{domain.AdminOnly, domain.RoleResident, false},
		{domain.AdminOnly, domain.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.cap.String()+"/"+string(tt.role), func(t *testing.T) {
			require.Equal(t, tt.allow, tt.cap.Allows(tt.role))
		})
	}
}

func TestRequiredCapabilityTable(t *testing.T) {
	require.Equal(t, domain.AdminOnly, domain.RequiredCapability(domain.OpAcceptMember))
	require.Equal(t, domain.AdminOnly, domain.RequiredCapability(domain.OpCreatePotluck))
	require.Equal(t, domain.BoardOrAdmin, domain.RequiredCapability(domain.OpCreatePoll))
	require.Equal(t, domain.BoardOrAdmin, domain.RequiredCapability(domain.OpCreateCalendarEvent))
	require.Equal(t, domain.AnyMember, domain.RequiredCapability(domain.OpCastVote))

	// Unknown operations fail closed.
	require.Equal(t, domain.AdminOnly, domain.RequiredCapability(domain.Operation("nope")))
}

func TestNonOwnerCapability(t *testing.T) {
	c, ok := domain.NonOwnerCapability(domain.OpDeleteSuggestion)
	require.True(t, ok)
	require.Equal(t, domain.BoardOrAdmin, c)

	c, ok = domain.NonOwnerCapability(domain.OpUpdateSuggestion)
	require.True(t, ok)
	require.Equal(t, domain.AdminOnly, c)

	_, ok = domain.NonOwnerCapability(domain.OpCastVote)
	require.False(t, ok)
}

func TestCategoryLimits(t *testing.T) {
	limits := domain.CategoryLimits{domain.DishAppetizer: 2}

	require.False(t, limits.Full(domain.DishAppetizer, 1))
	require.True(t, limits.Full(domain.DishAppetizer, 2))
	require.False(t, limits.Full(domain.DishMain, 100))
}

func TestQuestionVisibleTo(t *testing.T) {
	q := domain.BoardQuestion{UserID: "author"}

	require.True(t, domain.QuestionVisibleTo(q, "author", domain.RoleResident))
	require.True(t, domain.QuestionVisibleTo(q, "other", domain.RoleBoardMember))
	require.False(t, domain.QuestionVisibleTo(q, "other", domain.RoleResident))

	q.IsPublic = true
	require.True(t, domain.QuestionVisibleTo(q, "other", domain.RoleResident))
}
