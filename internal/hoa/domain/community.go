package domain

import "time"

// Community is a tenant. Everything else except users hangs off one.
type Community struct {
	ID          string
	Name        string
	Description string
	Address     string
	InviteCode  string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Member is a membership joined with the user it belongs to.
type Member struct {
	UserID      string
	Name        string
	Email       string
	AvatarURL   string
	Role        Role
	Status      MembershipStatus
	RequestedAt time.Time
	JoinedAt    *time.Time
}

// CommunityMembership is one entry of "my communities".
type CommunityMembership struct {
	Community Community
	Role      Role
	JoinedAt  *time.Time
}
