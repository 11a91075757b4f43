package domain

import "time"

type QuestionStatus string

const (
	QuestionPending  QuestionStatus = "pending"
	QuestionAnswered QuestionStatus = "answered"
)

type BoardQuestion struct {
	ID          string
	CommunityID string
	UserID      string
	Title       string
	Message     string
	IsPublic    bool
	Status      QuestionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author        Person
	ResponseCount int
}

type QuestionResponse struct {
	ID         string
	QuestionID string
	UserID     string
	Message    string
	IsPublic   bool
	CreatedAt  time.Time

	Responder Person
}

// QuestionVisibleTo reports whether a member may read q. The board sees
// everything, residents see their own questions and public ones.
func QuestionVisibleTo(q BoardQuestion, userID string, role Role) bool {
	return role.IsBoard() || q.UserID == userID || q.IsPublic
}
