package hoasdk

import (
	"time"
)

// Session is a signed in member. Access tokens are long lived and there is
// no refresh, so an expired Session must sign in again.
type Session struct {
	client *SDKClient

	accessToken string
	expiresAt   time.Time
	user        User
}

func newSession(c *SDKClient, auth *AuthResponse) *Session {
	return &Session{
		client:      c,
		accessToken: auth.AccessToken,
		expiresAt:   auth.ExpiresAt,
		user:        auth.User,
	}
}

// AccessToken returns the bearer token sent with every request.
func (s *Session) AccessToken() string { return s.accessToken }

// ExpiresAt is when the server stops accepting the token.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User is the account the session was created for. It is empty for sessions
// built with NewSession.
func (s *Session) User() User { return s.user }

// Expired reports whether the token has passed its expiry.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt)
}
