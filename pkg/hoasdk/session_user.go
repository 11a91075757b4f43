package hoasdk

import (
	"context"
	"net/http"
)

// Me returns the signed in user and their communities.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.call(ctx, http.MethodGet, "/v1/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetProfile(ctx context.Context) (*User, error) {
	var out User
	if err := s.call(ctx, http.MethodGet, "/v1/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var out User
	if err := s.call(ctx, http.MethodPut, "/v1/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	var out MessageResponse
	return s.call(ctx, http.MethodPut, "/v1/profile/password", req, &out, http.StatusOK)
}
