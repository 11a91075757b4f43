package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

// PollsHandler serves the voting engine.
type PollsHandler struct {
	Gate        *service.Gate
	PollService *service.PollService
}

func pollInput(req hoasdk.PollRequest) service.PollInput {
	return service.PollInput{
		Question:       req.Question,
		Description:    req.Description,
		Type:           domain.PollType(req.PollType),
		IsAnonymous:    req.IsAnonymous,
		ResultsVisible: domain.ResultsVisibility(req.ResultsVisible),
		OpensAt:        req.OpensAt,
		ClosesAt:       req.ClosesAt,
		Options:        req.Options,
	}
}

// HandleList godoc
//
//	@Summary		List polls
//	@Description	Newest first, each with its creator, voter count and current state.
//	@Tags			Polls
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{array}	hoasdk.PollListItem
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/polls [get].
func (h *PollsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	polls, err := h.PollService.ListPolls(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPollListItems(polls))
}

// HandleCreate godoc
//
//	@Summary		Create a poll
//	@Description	Board members and admins only. Needs at least two options. Defaults: single choice, results after close, opening now.
//	@Tags			Polls
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			request	body		hoasdk.PollRequest	true	"poll"
//	@Success		201	{object}	hoasdk.Poll
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/polls [post].
func (h *PollsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.PollRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.PollService.CreatePoll(r.Context(), authz, pollInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPoll(p))
}

// HandleGet godoc
//
//	@Summary		Get a poll
//	@Description	The poll as the caller sees it now: state, participation, their own selection, time remaining and, when visible, the results.
//	@Tags			Polls
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			pollID	path		string	true	"Poll ID"
//	@Success		200	{object}	hoasdk.PollDetail
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"poll_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/polls/{pollID} [get].
func (h *PollsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	d, err := h.PollService.GetPoll(r.Context(), authz, r.PathValue("pollID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPollDetail(d))
}

// HandleUpdate godoc
//
//	@Summary		Update a poll
//	@Description	Board members and admins only. Options cannot change. Omitted type, visibility and opens_at keep their values. A multiple choice poll with ballots cannot become single choice.
//	@Tags			Polls
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			pollID	path		string	true	"Poll ID"
//	@Param			request	body		hoasdk.PollRequest	true	"poll"
//	@Success		200	{object}	hoasdk.Poll
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, poll_type_locked"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"poll_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/polls/{pollID} [put].
func (h *PollsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.PollRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.PollService.UpdatePoll(r.Context(), authz, r.PathValue("pollID"), pollInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPoll(p))
}

// HandleDelete godoc
//
//	@Summary		Delete a poll
//	@Description	Board members and admins only.
//	@Tags			Polls
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			pollID	path		string	true	"Poll ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"poll_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/polls/{pollID} [delete].
func (h *PollsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.PollService.DeletePoll(r.Context(), authz, r.PathValue("pollID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleVote godoc
//
//	@Summary		Cast a vote
//	@Description	Replaces the caller's previous selection. Single choice polls take exactly one option.
//	@Tags			Polls
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			pollID	path		string	true	"Poll ID"
//	@Param			request	body		hoasdk.VoteRequest	true	"option_ids"
//	@Success		200	{object}	hoasdk.PollDetail
//	@Failure		400	{object}	hoasdk.ErrorResponse	"poll_not_open, poll_closed, empty_selection, invalid_selection_count, invalid_option"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"poll_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/polls/{pollID}/vote [post].
func (h *PollsHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.VoteRequest
	if !decode(w, r, &req) {
		return
	}

	d, err := h.PollService.CastVote(r.Context(), authz, r.PathValue("pollID"), req.OptionIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPollDetail(d))
}
