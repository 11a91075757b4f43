package domain

import "fmt"

// Capability is the privilege an operation demands. The two elevated levels
// are deliberately not a ranking: a board member passes BoardOrAdmin but
// never AdminOnly.
type Capability int

const (
	AnyMember Capability = iota
	BoardOrAdmin
	AdminOnly
)

func (c Capability) String() string {
	switch c {
	case AnyMember:
		return "any_member"
	case BoardOrAdmin:
		return "board_or_admin"
	case AdminOnly:
		return "admin_only"
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// Allows reports whether an accepted member holding role has capability c.
func (c Capability) Allows(role Role) bool {
	switch c {
	case AnyMember:
		return role.Valid()
	case BoardOrAdmin:
		return role.IsBoard()
	case AdminOnly:
		return role == RoleAdmin
	}
	return false
}

// Operation names a community scoped action.
type Operation string

const (
	OpViewCommunity        Operation = "community.view"
	OpUpdateCommunity      Operation = "community.update"
	OpDeleteCommunity      Operation = "community.delete"
	OpRegenerateInviteCode Operation = "community.regenerate_code"
	OpListPendingMembers   Operation = "members.list_pending"
	OpAcceptMember         Operation = "members.accept"
	OpRejectMember         Operation = "members.reject"
	OpChangeRole           Operation = "members.change_role"
	OpRemoveMember         Operation = "members.remove"
	OpLeaveCommunity       Operation = "members.leave"

	OpViewPolls  Operation = "polls.view"
	OpCreatePoll Operation = "polls.create"
	OpUpdatePoll Operation = "polls.update"
	OpDeletePoll Operation = "polls.delete"
	OpCastVote   Operation = "polls.vote"

	OpViewPotlucks  Operation = "potlucks.view"
	OpCreatePotluck Operation = "potlucks.create"
	OpUpdatePotluck Operation = "potlucks.update"
	OpDeletePotluck Operation = "potlucks.delete"
	OpCreateSignup  Operation = "potlucks.signup"
	OpUpdateSignup  Operation = "potlucks.signup_update"
	OpDeleteSignup  Operation = "potlucks.signup_delete"

	OpViewSuggestions      Operation = "suggestions.view"
	OpCreateSuggestion     Operation = "suggestions.create"
	OpUpdateSuggestion     Operation = "suggestions.update"
	OpDeleteSuggestion     Operation = "suggestions.delete"
	OpSetSuggestionStatus  Operation = "suggestions.set_status"
	OpToggleSuggestionVote Operation = "suggestions.upvote"

	OpViewQuestions         Operation = "questions.view"
	OpViewAllQuestions      Operation = "questions.view_all"
	OpAskQuestion           Operation = "questions.ask"
	OpRespondQuestion       Operation = "questions.respond"
	OpSetQuestionVisibility Operation = "questions.set_visibility"

	OpViewCalendar        Operation = "calendar.view"
	OpCreateCalendarEvent Operation = "calendar.create"
	OpUpdateCalendarEvent Operation = "calendar.update"
	OpDeleteCalendarEvent Operation = "calendar.delete"
)

var requiredCapability = map[Operation]Capability{
	OpViewCommunity:        AnyMember,
	OpUpdateCommunity:      AdminOnly,
	OpDeleteCommunity:      AdminOnly,
	OpRegenerateInviteCode: AdminOnly,
	OpListPendingMembers:   AdminOnly,
	OpAcceptMember:         AdminOnly,
	OpRejectMember:         AdminOnly,
	OpChangeRole:           AdminOnly,
	OpRemoveMember:         AdminOnly,
	OpLeaveCommunity:       AnyMember,

	OpViewPolls:  AnyMember,
	OpCreatePoll: BoardOrAdmin,
	OpUpdatePoll: BoardOrAdmin,
	OpDeletePoll: BoardOrAdmin,
	OpCastVote:   AnyMember,

	OpViewPotlucks:  AnyMember,
	OpCreatePotluck: AdminOnly,
	OpUpdatePotluck: AdminOnly,
	OpDeletePotluck: AdminOnly,
	OpCreateSignup:  AnyMember,
	OpUpdateSignup:  AnyMember,
	OpDeleteSignup:  AnyMember,

	OpViewSuggestions:      AnyMember,
	OpCreateSuggestion:     AnyMember,
	OpUpdateSuggestion:     AnyMember,
	OpDeleteSuggestion:     AnyMember,
	OpSetSuggestionStatus:  BoardOrAdmin,
	OpToggleSuggestionVote: AnyMember,

	OpViewQuestions:         AnyMember,
	OpViewAllQuestions:      BoardOrAdmin,
	OpAskQuestion:           AnyMember,
	OpRespondQuestion:       BoardOrAdmin,
	OpSetQuestionVisibility: BoardOrAdmin,

	OpViewCalendar:        AnyMember,
	OpCreateCalendarEvent: BoardOrAdmin,
	OpUpdateCalendarEvent: BoardOrAdmin,
	OpDeleteCalendarEvent: BoardOrAdmin,
}

// nonOwnerCapability covers operations on member authored entities: the
// author only needs RequiredCapability, anybody else needs this.
var nonOwnerCapability = map[Operation]Capability{
	OpUpdateSignup:     AdminOnly,
	OpDeleteSignup:     AdminOnly,
	OpUpdateSuggestion: AdminOnly,
	OpDeleteSuggestion: BoardOrAdmin,
}

// RequiredCapability returns what op demands. Unknown operations demand
// AdminOnly so a forgotten table entry fails closed.
func RequiredCapability(op Operation) Capability {
	if c, ok := requiredCapability[op]; ok {
		return c
	}
	return AdminOnly
}

// NonOwnerCapability returns what a non author needs for op, and false when
// op has no ownership rule.
func NonOwnerCapability(op Operation) (Capability, bool) {
	c, ok := nonOwnerCapability[op]
	return c, ok
}
