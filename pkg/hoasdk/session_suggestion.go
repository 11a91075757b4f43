package hoasdk

import (
	"context"
	"net/http"
)

// ListSuggestions returns suggestions with the most upvoted first.
func (s *Session) ListSuggestions(ctx context.Context, communityID string) ([]Suggestion, error) {
	var out []Suggestion
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "suggestions"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateSuggestion(ctx context.Context, communityID string, req SuggestionRequest) (*Suggestion, error) {
	var out Suggestion
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "suggestions"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetSuggestion(ctx context.Context, communityID, suggestionID string) (*Suggestion, error) {
	var out Suggestion
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "suggestions", suggestionID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateSuggestion(ctx context.Context, communityID, suggestionID string, req SuggestionRequest) (*Suggestion, error) {
	var out Suggestion
	if err := s.call(ctx, http.MethodPut, communityPath(communityID, "suggestions", suggestionID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteSuggestion(ctx context.Context, communityID, suggestionID string) error {
	return s.call(ctx, http.MethodDelete, communityPath(communityID, "suggestions", suggestionID), nil, nil, http.StatusNoContent)
}

// SetSuggestionStatus records a board decision.
func (s *Session) SetSuggestionStatus(ctx context.Context, communityID, suggestionID, status string) (*Suggestion, error) {
	var out Suggestion
	path := communityPath(communityID, "suggestions", suggestionID, "status")
	if err := s.call(ctx, http.MethodPut, path, SuggestionStatusRequest{Status: status}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleUpvote adds the caller's upvote, or removes it if already present.
func (s *Session) ToggleUpvote(ctx context.Context, communityID, suggestionID string) (*UpvoteResponse, error) {
	var out UpvoteResponse
	path := communityPath(communityID, "suggestions", suggestionID, "upvote")
	if err := s.call(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
