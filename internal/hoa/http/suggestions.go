package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

type SuggestionsHandler struct {
	Gate              *service.Gate
	SuggestionService *service.SuggestionService
}

// HandleList godoc
//
//	@Summary		List meeting suggestions
//	@Description	Most upvoted first, then newest. Each says whether the caller upvoted it.
//	@Tags			Suggestions
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{array}	hoasdk.Suggestion
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions [get].
func (h *SuggestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	list, err := h.SuggestionService.ListSuggestions(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]hoasdk.Suggestion, 0, len(list))
	for _, v := range list {
		out = append(out, toSuggestion(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Submit a suggestion
//	@Description	Any member. Title is required.
//	@Tags			Suggestions
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			request	body		hoasdk.SuggestionRequest	true	"title, description"
//	@Success		201	{object}	hoasdk.Suggestion
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions [post].
func (h *SuggestionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.SuggestionRequest
	if !decode(w, r, &req) {
		return
	}

	v, err := h.SuggestionService.CreateSuggestion(r.Context(), authz, service.SuggestionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSuggestion(v))
}

// HandleGet godoc
//
//	@Summary		Get a suggestion
//	@Tags			Suggestions
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			suggestionID	path		string	true	"Suggestion ID"
//	@Success		200	{object}	hoasdk.Suggestion
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"suggestion_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions/{suggestionID} [get].
func (h *SuggestionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	v, err := h.SuggestionService.GetSuggestion(r.Context(), authz, r.PathValue("suggestionID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSuggestion(v))
}

// HandleUpdate godoc
//
//	@Summary		Update a suggestion
//	@Description	The author or an admin.
//	@Tags			Suggestions
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			suggestionID	path		string	true	"Suggestion ID"
//	@Param			request	body		hoasdk.SuggestionRequest	true	"title, description"
//	@Success		200	{object}	hoasdk.Suggestion
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"suggestion_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions/{suggestionID} [put].
func (h *SuggestionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.SuggestionRequest
	if !decode(w, r, &req) {
		return
	}

	v, err := h.SuggestionService.UpdateSuggestion(r.Context(), authz, r.PathValue("suggestionID"), service.SuggestionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSuggestion(v))
}

// HandleDelete godoc
//
//	@Summary		Delete a suggestion
//	@Description	The author, a board member or an admin.
//	@Tags			Suggestions
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			suggestionID	path		string	true	"Suggestion ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"suggestion_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions/{suggestionID} [delete].
func (h *SuggestionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.SuggestionService.DeleteSuggestion(r.Context(), authz, r.PathValue("suggestionID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetStatus godoc
//
//	@Summary		Set a suggestion's status
//	@Description	Board members and admins only. One of submitted, added_to_agenda, reviewed, declined.
//	@Tags			Suggestions
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			suggestionID	path		string	true	"Suggestion ID"
//	@Param			request	body		hoasdk.SuggestionStatusRequest	true	"status"
//	@Success		200	{object}	hoasdk.Suggestion
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"suggestion_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions/{suggestionID}/status [put].
func (h *SuggestionsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.SuggestionStatusRequest
	if !decode(w, r, &req) {
		return
	}

	v, err := h.SuggestionService.SetStatus(r.Context(), authz, r.PathValue("suggestionID"), domain.SuggestionStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSuggestion(v))
}

// HandleToggleUpvote godoc
//
//	@Summary		Toggle an upvote
//	@Description	Adds the caller's upvote, or removes it when already present.
//	@Tags			Suggestions
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			suggestionID	path		string	true	"Suggestion ID"
//	@Success		200	{object}	hoasdk.UpvoteResponse
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"suggestion_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/suggestions/{suggestionID}/upvote [post].
func (h *SuggestionsHandler) HandleToggleUpvote(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	state, err := h.SuggestionService.ToggleUpvote(r.Context(), authz, r.PathValue("suggestionID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hoasdk.UpvoteResponse{Upvoted: state.Upvoted, UpvoteCount: state.Count})
}
