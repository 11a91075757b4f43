package hoasdk

import (
	"context"
	"net/http"
)

// ListPolls returns the community's polls, newest first.
func (s *Session) ListPolls(ctx context.Context, communityID string) ([]PollListItem, error) {
	var out []PollListItem
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "polls"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePoll needs a board member or admin.
func (s *Session) CreatePoll(ctx context.Context, communityID string, req PollRequest) (*Poll, error) {
	var out Poll
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "polls"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPoll returns the poll as the caller sees it. Results are only present
// when CanSeeResults is set.
func (s *Session) GetPoll(ctx context.Context, communityID, pollID string) (*PollDetail, error) {
	var out PollDetail
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "polls", pollID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePoll ignores req.Options; options are fixed once created.
func (s *Session) UpdatePoll(ctx context.Context, communityID, pollID string, req PollRequest) (*Poll, error) {
	var out Poll
	if err := s.call(ctx, http.MethodPut, communityPath(communityID, "polls", pollID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeletePoll(ctx context.Context, communityID, pollID string) error {
	return s.call(ctx, http.MethodDelete, communityPath(communityID, "polls", pollID), nil, nil, http.StatusNoContent)
}

// Vote replaces the caller's ballot with optionIDs.
func (s *Session) Vote(ctx context.Context, communityID, pollID string, optionIDs ...string) (*PollDetail, error) {
	var out PollDetail
	path := communityPath(communityID, "polls", pollID, "vote")
	if err := s.call(ctx, http.MethodPost, path, VoteRequest{OptionIDs: optionIDs}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
