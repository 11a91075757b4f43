package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx scoped store hands out repos
// bound to the same transaction, and nobody can start a transaction inside
// another one by accident.
type Store interface {
	Users() Users
	PasswordResets() PasswordResets
	Communities() Communities
	Memberships() Memberships
	Polls() Polls
	Potlucks() Potlucks
	Suggestions() Suggestions
	Questions() Questions
	CalendarEvents() CalendarEvents

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Inside fn only
	// the tx argument may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already lower cased email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile sets name, email and phone and bumps updated_at.
	UpdateProfile(ctx context.Context, u domain.User) error

	UpdatePasswordHash(ctx context.Context, userID, hash string, at time.Time) error
}

type PasswordResets interface {
	CreateResetToken(ctx context.Context, t domain.PasswordResetToken) error

	// GetResetTokenByHash returns the token regardless of expiry.
	GetResetTokenByHash(ctx context.Context, hash string) (domain.PasswordResetToken, error)

	DeleteUserResetTokens(ctx context.Context, userID string) error

	// DeleteExpiredResetTokens is housekeeping, it returns the rows removed.
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Communities interface {
	// CreateCommunity returns ErrAlreadyExists on an invite code collision.
	CreateCommunity(ctx context.Context, c domain.Community) error

	GetCommunityByID(ctx context.Context, id string) (domain.Community, error)

	// GetCommunityByInviteCode expects a normalised (upper case) code.
	GetCommunityByInviteCode(ctx context.Context, code string) (domain.Community, error)

	// UpdateCommunity sets name, description and address.
	UpdateCommunity(ctx context.Context, c domain.Community) error

	UpdateInviteCode(ctx context.Context, communityID, code string, at time.Time) error

	// DeleteCommunity cascades to memberships and all community owned rows.
	DeleteCommunity(ctx context.Context, id string) error

	// ListCommunitiesForUser returns accepted memberships only, ordered by
	// community name.
	ListCommunitiesForUser(ctx context.Context, userID string) ([]domain.CommunityMembership, error)
}

type Memberships interface {
	GetMembership(ctx context.Context, communityID, userID string) (domain.Membership, error)

	// CreateMembership returns ErrAlreadyExists if a row exists for the pair.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// AcceptMembership flips a pending row to accepted.
	AcceptMembership(ctx context.Context, communityID, userID string, joinedAt time.Time) error

	UpdateMembershipRole(ctx context.Context, communityID, userID string, role domain.Role) error

	DeleteMembership(ctx context.Context, communityID, userID string) error

	CountAcceptedAdmins(ctx context.Context, communityID string) (int, error)

	// ListMembers returns accepted members ordered by role then name.
	ListMembers(ctx context.Context, communityID string) ([]domain.Member, error)

	// ListPendingMembers returns join requests oldest first.
	ListPendingMembers(ctx context.Context, communityID string) ([]domain.Member, error)
}

type Polls interface {
	// CreatePoll inserts the poll and its options. Call it inside a Tx.
	CreatePoll(ctx context.Context, p domain.Poll) error

	// GetPoll returns the poll with options in display order, scoped to the
	// community.
	GetPoll(ctx context.Context, communityID, pollID string) (domain.Poll, error)

	// ListPolls returns polls newest first without options.
	ListPolls(ctx context.Context, communityID string) ([]domain.PollSummary, error)

	// UpdatePoll edits everything except options.
	UpdatePoll(ctx context.Context, p domain.Poll) error

	DeletePoll(ctx context.Context, communityID, pollID string) error

	DeleteUserVotes(ctx context.Context, pollID, userID string) error

	// CreateVote is idempotent for the (poll, option, user) triple.
	CreateVote(ctx context.Context, pollID, optionID, userID string, at time.Time) error

	// ListVotes returns every vote with its voter, oldest first.
	ListVotes(ctx context.Context, pollID string) ([]domain.VoteRecord, error)

	ListUserOptionIDs(ctx context.Context, pollID, userID string) ([]string, error)

	// CountVoters counts distinct users that hold at least one vote.
	CountVoters(ctx context.Context, pollID string) (int, error)
}

type Potlucks interface {
	CreatePotluck(ctx context.Context, e domain.PotluckEvent) error
	GetPotluck(ctx context.Context, communityID, eventID string) (domain.PotluckEvent, error)

	// ListPotlucks returns events by event date, newest first.
	ListPotlucks(ctx context.Context, communityID string) ([]domain.PotluckSummary, error)

	UpdatePotluck(ctx context.Context, e domain.PotluckEvent) error
	DeletePotluck(ctx context.Context, communityID, eventID string) error

	CreateSignup(ctx context.Context, s domain.PotluckSignup) error
	GetSignup(ctx context.Context, eventID, signupID string) (domain.PotluckSignup, error)

	// ListSignups orders by category then creation time.
	ListSignups(ctx context.Context, eventID string) ([]domain.PotluckSignup, error)

	UpdateSignup(ctx context.Context, s domain.PotluckSignup) error
	DeleteSignup(ctx context.Context, eventID, signupID string) error
	CountSignupsInCategory(ctx context.Context, eventID string, c domain.DishCategory) (int, error)
}

type Suggestions interface {
	CreateSuggestion(ctx context.Context, s domain.Suggestion) error
	GetSuggestion(ctx context.Context, communityID, id string) (domain.Suggestion, error)

	// GetSuggestionView decorates a suggestion for viewerID.
	GetSuggestionView(ctx context.Context, communityID, id, viewerID string) (domain.SuggestionView, error)

	// ListSuggestions orders by upvote count desc then newest first.
	ListSuggestions(ctx context.Context, communityID, viewerID string) ([]domain.SuggestionView, error)

	// UpdateSuggestion sets title and description.
	UpdateSuggestion(ctx context.Context, s domain.Suggestion) error
	UpdateSuggestionStatus(ctx context.Context, id string, status domain.SuggestionStatus, by string, at time.Time) error
	DeleteSuggestion(ctx context.Context, communityID, id string) error

	HasUpvote(ctx context.Context, suggestionID, userID string) (bool, error)
	AddUpvote(ctx context.Context, suggestionID, userID string, at time.Time) error
	RemoveUpvote(ctx context.Context, suggestionID, userID string) error
	CountUpvotes(ctx context.Context, suggestionID string) (int, error)
}

type Questions interface {
	CreateQuestion(ctx context.Context, q domain.BoardQuestion) error

	// GetQuestion includes the author and response count.
	GetQuestion(ctx context.Context, communityID, id string) (domain.BoardQuestion, error)

	// ListQuestions returns everything when all is set, otherwise questions
	// authored by viewerID or public ones. Newest first.
	ListQuestions(ctx context.Context, communityID, viewerID string, all bool) ([]domain.BoardQuestion, error)

	SetQuestionVisibility(ctx context.Context, id string, isPublic bool, at time.Time) error
	SetQuestionStatus(ctx context.Context, id string, status domain.QuestionStatus, at time.Time) error

	CreateResponse(ctx context.Context, r domain.QuestionResponse) error

	// ListResponses returns responses oldest first.
	ListResponses(ctx context.Context, questionID string) ([]domain.QuestionResponse, error)
}

type CalendarEvents interface {
	CreateEvent(ctx context.Context, e domain.CalendarEvent) error
	GetEvent(ctx context.Context, communityID, id string) (domain.CalendarEvent, error)

	// ListEvents orders by date then start time. from and to are inclusive
	// YYYY-MM-DD bounds, empty means unbounded.
	ListEvents(ctx context.Context, communityID, from, to string) ([]domain.CalendarEvent, error)

	UpdateEvent(ctx context.Context, e domain.CalendarEvent) error
	DeleteEvent(ctx context.Context, communityID, id string) error
}
