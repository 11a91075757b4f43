package hoasdk

import (
	"context"
	"net/http"
	"net/url"
)

// Community paths are built from caller supplied ids, so every segment is
// escaped.
func communityPath(communityID string, rest ...string) string {
	p := "/v1/communities/" + url.PathEscape(communityID)
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

// CreateCommunity creates a community with the caller as its admin.
func (s *Session) CreateCommunity(ctx context.Context, req CommunityRequest) (*Community, error) {
	var out Community
	if err := s.call(ctx, http.MethodPost, "/v1/communities", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCommunities returns the communities the caller is an accepted member of.
func (s *Session) ListCommunities(ctx context.Context) ([]CommunityMembership, error) {
	var out []CommunityMembership
	if err := s.call(ctx, http.MethodGet, "/v1/communities", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// JoinCommunity files a join request. Codes are matched case insensitively.
func (s *Session) JoinCommunity(ctx context.Context, inviteCode string) (*JoinResponse, error) {
	var out JoinResponse
	if err := s.call(ctx, http.MethodPost, "/v1/communities/join", JoinRequest{InviteCode: inviteCode}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetCommunity(ctx context.Context, communityID string) (*CommunityDetail, error) {
	var out CommunityDetail
	if err := s.call(ctx, http.MethodGet, communityPath(communityID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateCommunity(ctx context.Context, communityID string, req CommunityRequest) (*Community, error) {
	var out Community
	if err := s.call(ctx, http.MethodPut, communityPath(communityID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteCommunity(ctx context.Context, communityID string) error {
	return s.call(ctx, http.MethodDelete, communityPath(communityID), nil, nil, http.StatusNoContent)
}

// RegenerateInviteCode replaces the invite code. The old one stops working.
func (s *Session) RegenerateInviteCode(ctx context.Context, communityID string) (string, error) {
	var out InviteCodeResponse
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "invite-code"), nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.InviteCode, nil
}

func (s *Session) ListPendingMembers(ctx context.Context, communityID string) ([]Member, error) {
	var out []Member
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "members", "pending"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) AcceptMember(ctx context.Context, communityID, userID string) (*Membership, error) {
	var out Membership
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "members", userID, "accept"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RejectMember(ctx context.Context, communityID, userID string) error {
	return s.call(ctx, http.MethodPost, communityPath(communityID, "members", userID, "reject"), nil, nil, http.StatusNoContent)
}

func (s *Session) ChangeRole(ctx context.Context, communityID, userID, role string) (*Membership, error) {
	var out Membership
	path := communityPath(communityID, "members", userID, "role")
	if err := s.call(ctx, http.MethodPut, path, ChangeRoleRequest{Role: role}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RemoveMember(ctx context.Context, communityID, userID string) error {
	return s.call(ctx, http.MethodDelete, communityPath(communityID, "members", userID), nil, nil, http.StatusNoContent)
}

// LeaveCommunity fails with sole_admin for the last admin.
func (s *Session) LeaveCommunity(ctx context.Context, communityID string) error {
	return s.call(ctx, http.MethodPost, communityPath(communityID, "leave"), nil, nil, http.StatusNoContent)
}
