package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

// CommunitiesHandler serves community CRUD and the membership lifecycle.
type CommunitiesHandler struct {
	Gate             *service.Gate
	CommunityService *service.CommunityService
}

// HandleCreate godoc
//
//	@Summary		Create a community
//	@Description	Creates a community with a fresh invite code. The caller becomes its first admin.
//	@Tags			Communities
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.CommunityRequest	true	"name, description, address"
//	@Success		201	{object}	hoasdk.Community	"includes invite_code"
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities [post].
func (h *CommunitiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req hoasdk.CommunityRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.CommunityService.CreateCommunity(r.Context(), userID, service.CommunityInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCommunity(c, true))
}

// HandleListMine godoc
//
//	@Summary		List my communities
//	@Description	Communities where the caller is an accepted member, with their role.
//	@Tags			Communities
//	@Produce		json
//	@Success		200	{array}	hoasdk.CommunityMembership
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities [get].
func (h *CommunitiesHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	list, err := h.CommunityService.ListMyCommunities(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommunityMemberships(list))
}

// HandleJoin godoc
//
//	@Summary		Request to join
//	@Description	Files a pending join request using an invite code. Codes are matched case insensitively.
//	@Tags			Communities
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hoasdk.JoinRequest	true	"invite_code"
//	@Success		201	{object}	hoasdk.JoinResponse	"community, pending membership"
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"invalid_invite_code"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"already_member, already_requested"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/join [post].
func (h *CommunitiesHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req hoasdk.JoinRequest
	if !decode(w, r, &req) {
		return
	}

	c, m, err := h.CommunityService.JoinByInviteCode(r.Context(), userID, req.InviteCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, hoasdk.JoinResponse{
		Community:  toCommunity(c, false),
		Membership: toMembership(m),
	})
}

// HandleGet godoc
//
//	@Summary		Get a community
//	@Description	Community details and accepted members ordered by role then name. The invite code is only shown to admins.
//	@Tags			Communities
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{object}	hoasdk.CommunityDetail
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID} [get].
func (h *CommunitiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	d, err := h.CommunityService.GetCommunity(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hoasdk.CommunityDetail{
		Community: toCommunity(d.Community, authz.Role == domain.RoleAdmin),
		MyRole:    string(authz.Role),
		Members:   toMembers(d.Members),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update a community
//	@Description	Admins only. Name is required.
//	@Tags			Communities
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			request	body		hoasdk.CommunityRequest	true	"name, description, address"
//	@Success		200	{object}	hoasdk.Community
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID} [put].
func (h *CommunitiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.CommunityRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.CommunityService.UpdateCommunity(r.Context(), authz, service.CommunityInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommunity(c, true))
}

// HandleDelete godoc
//
//	@Summary		Delete a community
//	@Description	Admins only. Removes the community with its members, polls, potlucks, suggestions, questions and events.
//	@Tags			Communities
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID} [delete].
func (h *CommunitiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.CommunityService.DeleteCommunity(r.Context(), authz); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRegenerateCode godoc
//
//	@Summary		Regenerate the invite code
//	@Description	Admins only. The previous code stops working.
//	@Tags			Communities
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{object}	hoasdk.InviteCodeResponse
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/invite-code [post].
func (h *CommunitiesHandler) HandleRegenerateCode(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	code, err := h.CommunityService.RegenerateInviteCode(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hoasdk.InviteCodeResponse{InviteCode: code})
}

// HandleListPending godoc
//
//	@Summary		List join requests
//	@Description	Admins only. Pending requests ordered by request time.
//	@Tags			Members
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{array}	hoasdk.Member
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/members/pending [get].
func (h *CommunitiesHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	pending, err := h.CommunityService.ListPendingMembers(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembers(pending))
}

// HandleAccept godoc
//
//	@Summary		Accept a join request
//	@Description	Admins only.
//	@Tags			Members
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			userID	path		string	true	"User ID"
//	@Success		200	{object}	hoasdk.Membership
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"membership_not_found"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"already_accepted"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/members/{userID}/accept [post].
func (h *CommunitiesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	m, err := h.CommunityService.AcceptMember(r.Context(), authz, r.PathValue("userID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembership(m))
}

// HandleReject godoc
//
//	@Summary		Reject a join request
//	@Description	Admins only. Deletes the pending request.
//	@Tags			Members
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			userID	path		string	true	"User ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"membership_not_found"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"already_accepted"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/members/{userID}/reject [post].
func (h *CommunitiesHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.CommunityService.RejectMember(r.Context(), authz, r.PathValue("userID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleChangeRole godoc
//
//	@Summary		Change a member's role
//	@Description	Admins only. Admins cannot change their own role and the last admin cannot be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			userID	path		string	true	"User ID"
//	@Param			request	body		hoasdk.ChangeRoleRequest	true	"admin, board_member or resident"
//	@Success		200	{object}	hoasdk.Membership
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"membership_not_found"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"self_demotion, sole_admin"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/members/{userID}/role [put].
func (h *CommunitiesHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.ChangeRoleRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.CommunityService.ChangeRole(r.Context(), authz, r.PathValue("userID"), domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembership(m))
}

// HandleRemove godoc
//
//	@Summary		Remove a member
//	@Description	Admins only. Admins cannot remove themselves.
//	@Tags			Members
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			userID	path		string	true	"User ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"membership_not_found"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"self_removal, sole_admin"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/members/{userID} [delete].
func (h *CommunitiesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.CommunityService.RemoveMember(r.Context(), authz, r.PathValue("userID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLeave godoc
//
//	@Summary		Leave a community
//	@Description	The last admin cannot leave.
//	@Tags			Members
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"sole_admin"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/leave [post].
func (h *CommunitiesHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.CommunityService.Leave(r.Context(), authz); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
