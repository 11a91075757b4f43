package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. Transports map kinds, never codes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindAuthentication
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	default:
		return "internal"
	}
}

// Error is a business rule failure. Two errors are the same failure when
// their codes match, so errors.Is works against the sentinels below even when
// the message was specialised.
type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg}
}

// withMsg returns a copy of a sentinel carrying a more specific message.
func withMsg(sentinel *Error, format string, args ...any) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Msg: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) error {
	return withMsg(ErrValidation, format, args...)
}

// KindOf classifies any error. Anything that is not a *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrValidation      = newError(KindValidation, "validation_failed", "validation failed")
	ErrForbidden       = newError(KindForbidden, "forbidden", "insufficient permissions")
	ErrNotMember       = newError(KindForbidden, "not_member", "not a member of this community")
	ErrUnauthenticated = newError(KindAuthentication, "unauthenticated", "authentication required")

	// Identity
	ErrEmailTaken         = newError(KindConflict, "email_taken", "email already registered")
	ErrInvalidCredentials = newError(KindAuthentication, "invalid_credentials", "invalid email or password")
	ErrIncorrectPassword  = newError(KindValidation, "incorrect_password", "current password is incorrect")
	ErrInvalidResetToken  = newError(KindValidation, "invalid_reset_token", "invalid or expired reset token")
	ErrUserNotFound       = newError(KindNotFound, "user_not_found", "user not found")

	// Membership
	ErrCommunityNotFound  = newError(KindNotFound, "community_not_found", "community not found")
	ErrInviteCodeNotFound = newError(KindNotFound, "invalid_invite_code", "invalid invite code")
	ErrMembershipNotFound = newError(KindNotFound, "membership_not_found", "membership request not found")
	ErrAlreadyMember      = newError(KindConflict, "already_member", "already a member of this community")
	ErrAlreadyRequested   = newError(KindConflict, "already_requested", "join request already pending")
	ErrAlreadyAccepted    = newError(KindConflict, "already_accepted", "member already accepted")
	ErrSelfDemotion       = newError(KindConflict, "self_demotion", "cannot change your own admin role")
	ErrSelfRemoval        = newError(KindConflict, "self_removal", "cannot remove yourself, leave the community instead")
	ErrSoleAdmin          = newError(KindConflict, "sole_admin", "community must keep at least one admin")

	// Polls
	ErrPollNotFound          = newError(KindNotFound, "poll_not_found", "poll not found")
	ErrPollNotOpenYet        = newError(KindValidation, "poll_not_open", "poll is not open yet")
	ErrPollClosed            = newError(KindValidation, "poll_closed", "poll has closed")
	ErrEmptySelection        = newError(KindValidation, "empty_selection", "at least one option must be selected")
	ErrInvalidSelectionCount = newError(KindValidation, "invalid_selection_count", "single choice polls take exactly one option")
	ErrInvalidOption         = newError(KindValidation, "invalid_option", "option does not belong to this poll")
	ErrPollTypeLocked        = newError(KindValidation, "poll_type_locked", "a poll with ballots cannot become single choice")

	// Features
	ErrPotluckNotFound    = newError(KindNotFound, "potluck_not_found", "potluck not found")
	ErrSignupNotFound     = newError(KindNotFound, "signup_not_found", "signup not found")
	ErrCategoryFull       = newError(KindConflict, "category_full", "no spots left in this category")
	ErrSuggestionNotFound = newError(KindNotFound, "suggestion_not_found", "suggestion not found")
	ErrQuestionNotFound   = newError(KindNotFound, "question_not_found", "question not found")
	ErrEventNotFound      = newError(KindNotFound, "event_not_found", "event not found")
)
