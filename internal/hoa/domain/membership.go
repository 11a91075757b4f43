package domain

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleBoardMember Role = "board_member"
	RoleResident    Role = "resident"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBoardMember, RoleResident:
		return true
	}
	return false
}

// IsBoard reports membership of the {admin, board_member} privilege set.
func (r Role) IsBoard() bool {
	return r == RoleAdmin || r == RoleBoardMember
}

type MembershipStatus string

const (
	StatusPending  MembershipStatus = "pending"
	StatusAccepted MembershipStatus = "accepted"
)

// Membership is the (user, community) row. A missing row is the Absent
// state; there is no transition from accepted back to pending.
type Membership struct {
	CommunityID string
	UserID      string
	Role        Role
	Status      MembershipStatus
	RequestedAt time.Time
	JoinedAt    *time.Time
}

func (m Membership) Accepted() bool { return m.Status == StatusAccepted }
