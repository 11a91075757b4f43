package hoasdk

import (
	"context"
	"net/http"
)

// Register creates an account and signs it in.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, &auth), nil
}

// Login signs in with email and password.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &auth), nil
}

// ForgotPassword asks for a reset link. The server answers the same way
// whether or not the email is registered.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/forgot-password", ForgotPasswordRequest{Email: email})
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ResetPassword redeems the token from a reset link.
func (c *SDKClient) ResetPassword(ctx context.Context, token, password string) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/reset-password", ResetPasswordRequest{Token: token, Password: password})
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}
