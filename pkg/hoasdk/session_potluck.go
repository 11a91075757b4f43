package hoasdk

import (
	"context"
	"net/http"
)

func (s *Session) ListPotlucks(ctx context.Context, communityID string) ([]Potluck, error) {
	var out []Potluck
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "potlucks"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePotluck needs an admin. Nil Max* fields leave a category unlimited.
func (s *Session) CreatePotluck(ctx context.Context, communityID string, req PotluckRequest) (*Potluck, error) {
	var out Potluck
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "potlucks"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetPotluck(ctx context.Context, communityID, potluckID string) (*PotluckDetail, error) {
	var out PotluckDetail
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "potlucks", potluckID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdatePotluck(ctx context.Context, communityID, potluckID string, req PotluckRequest) (*Potluck, error) {
	var out Potluck
	if err := s.call(ctx, http.MethodPut, communityPath(communityID, "potlucks", potluckID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeletePotluck(ctx context.Context, communityID, potluckID string) error {
	return s.call(ctx, http.MethodDelete, communityPath(communityID, "potlucks", potluckID), nil, nil, http.StatusNoContent)
}

// SignUp brings a dish. A full category fails with category_full.
func (s *Session) SignUp(ctx context.Context, communityID, potluckID string, req SignupRequest) (*Signup, error) {
	var out Signup
	path := communityPath(communityID, "potlucks", potluckID, "signups")
	if err := s.call(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateSignup(ctx context.Context, communityID, potluckID, signupID string, req SignupRequest) (*Signup, error) {
	var out Signup
	path := communityPath(communityID, "potlucks", potluckID, "signups", signupID)
	if err := s.call(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteSignup(ctx context.Context, communityID, potluckID, signupID string) error {
	path := communityPath(communityID, "potlucks", potluckID, "signups", signupID)
	return s.call(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
