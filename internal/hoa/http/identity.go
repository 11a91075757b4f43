package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

// IdentityHandler serves account endpoints.
type IdentityHandler struct {
	IdentityService *service.IdentityService
}

func toAuthResponse(s service.Session) hoasdk.AuthResponse {
	return hoasdk.AuthResponse{
		User:        toUser(s.User),
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
	}
}

// HandleRegister godoc
//
//	@Summary		Register an account
//	@Description	Creates a user and returns an access token. Passwords need at least 8 characters with an upper case letter, a lower case letter and a digit.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.RegisterRequest	true	"email, password, name"
//	@Success		201	{object}	hoasdk.AuthResponse	"user, access_token, token_type, expires_at"
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"email_taken"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/register [post].
func (h *IdentityHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req hoasdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	session, err := h.IdentityService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(session))
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token. Unknown emails and wrong passwords fail the same way.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.LoginRequest	true	"email, password"
//	@Success		200	{object}	hoasdk.AuthResponse	"user, access_token, token_type, expires_at"
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"invalid_credentials"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/login [post].
func (h *IdentityHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req hoasdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	session, err := h.IdentityService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(session))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Description	The caller, every community they are an accepted member of, and when their token expires.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	hoasdk.MeResponse	"user, communities, token_expires_at"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *IdentityHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	me, err := h.IdentityService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp := hoasdk.MeResponse{
		User:        toUser(me.User),
		Communities: toCommunityMemberships(me.Communities),
	}
	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok && claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.UTC()
		resp.TokenExpiresAt = &exp
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetProfile godoc
//
//	@Summary		Get profile
//	@Description	Profile of the caller.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	hoasdk.User
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/profile [get].
func (h *IdentityHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	u, err := h.IdentityService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Name and email are required. An email already used by someone else is a conflict.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.UpdateProfileRequest	true	"name, email, phone"
//	@Success		200	{object}	hoasdk.User
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"email_taken"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/profile [put].
func (h *IdentityHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req hoasdk.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := h.IdentityService.UpdateProfile(r.Context(), userID, service.ProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleChangePassword godoc
//
//	@Summary		Change password
//	@Description	The current password must match and the new one must satisfy the password policy.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.ChangePasswordRequest	true	"current_password, new_password"
//	@Success		200	{object}	hoasdk.MessageResponse
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, incorrect_password"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/profile/password [put].
func (h *IdentityHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req hoasdk.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.IdentityService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hoasdk.MessageResponse{Message: "password updated"})
}

// HandleForgotPassword godoc
//
//	@Summary		Request a password reset
//	@Description	Mails a reset link when the email is registered. The answer is the same whether or not it is.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.ForgotPasswordRequest	true	"email"
//	@Success		200	{object}	hoasdk.MessageResponse
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/forgot-password [post].
func (h *IdentityHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req hoasdk.ForgotPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.IdentityService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hoasdk.MessageResponse{
		Message: "if that email is registered, a reset link has been sent",
	})
}

// HandleResetPassword godoc
//
//	@Summary		Reset password
//	@Description	Sets a new password using the token from the reset link. Tokens are single use and expire.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.ResetPasswordRequest	true	"token, password"
//	@Success		200	{object}	hoasdk.MessageResponse
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_reset_token"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/reset-password [post].
func (h *IdentityHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req hoasdk.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.IdentityService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hoasdk.MessageResponse{Message: "password has been reset"})
}
