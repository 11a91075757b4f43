package domain

import "time"

type SuggestionStatus string

const (
	SuggestionSubmitted     SuggestionStatus = "submitted"
	SuggestionAddedToAgenda SuggestionStatus = "added_to_agenda"
	SuggestionReviewed      SuggestionStatus = "reviewed"
	SuggestionDeclined      SuggestionStatus = "declined"
)

func (s SuggestionStatus) Valid() bool {
	switch s {
	case SuggestionSubmitted, SuggestionAddedToAgenda, SuggestionReviewed, SuggestionDeclined:
		return true
	}
	return false
}

type Suggestion struct {
	ID              string
	CommunityID     string
	UserID          string
	Title           string
	Description     string
	Status          SuggestionStatus
	StatusUpdatedBy string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SuggestionView is a suggestion as seen by one member.
type SuggestionView struct {
	Suggestion
	Author      Person
	UpvoteCount int
	Upvoted     bool
}
