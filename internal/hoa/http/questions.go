package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

type QuestionsHandler struct {
	Gate            *service.Gate
	QuestionService *service.QuestionService
}

// HandleList godoc
//
//	@Summary		List board questions
//	@Description	The board sees every question. Residents see their own and public ones.
//	@Tags			Questions
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{array}	hoasdk.Question
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/questions [get].
func (h *QuestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	list, err := h.QuestionService.ListQuestions(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]hoasdk.Question, 0, len(list))
	for _, q := range list {
		out = append(out, toQuestion(q))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAsk godoc
//
//	@Summary		Ask the board
//	@Description	Any member. Questions start private and pending.
//	@Tags			Questions
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			request	body		hoasdk.QuestionRequest	true	"title, message"
//	@Success		201	{object}	hoasdk.Question
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/questions [post].
func (h *QuestionsHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.QuestionRequest
	if !decode(w, r, &req) {
		return
	}

	q, err := h.QuestionService.AskQuestion(r.Context(), authz, service.QuestionInput{
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toQuestion(q))
}

// HandleGet godoc
//
//	@Summary		Get a question
//	@Description	The question with its responses, oldest first.
//	@Tags			Questions
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			questionID	path		string	true	"Question ID"
//	@Success		200	{object}	hoasdk.QuestionDetail
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"question_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/questions/{questionID} [get].
func (h *QuestionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	d, err := h.QuestionService.GetQuestion(r.Context(), authz, r.PathValue("questionID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := hoasdk.QuestionDetail{
		Question:  toQuestion(d.Question),
		Responses: make([]hoasdk.QuestionResponse, 0, len(d.Responses)),
	}
	for _, resp := range d.Responses {
		out.Responses = append(out.Responses, toQuestionResponse(resp))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRespond godoc
//
//	@Summary		Respond to a question
//	@Description	Board members and admins only. Marks the question answered. A public response makes the question public.
//	@Tags			Questions
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			questionID	path		string	true	"Question ID"
//	@Param			request	body		hoasdk.ResponseRequest	true	"message, is_public"
//	@Success		201	{object}	hoasdk.QuestionResponse
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"question_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/questions/{questionID}/responses [post].
func (h *QuestionsHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.ResponseRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.QuestionService.Respond(r.Context(), authz, r.PathValue("questionID"), req.Message, req.IsPublic)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toQuestionResponse(resp))
}

// HandleSetVisibility godoc
//
//	@Summary		Set question visibility
//	@Description	Board members and admins only.
//	@Tags			Questions
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			questionID	path		string	true	"Question ID"
//	@Param			request	body		hoasdk.VisibilityRequest	true	"is_public"
//	@Success		200	{object}	hoasdk.Question
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"question_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/questions/{questionID}/visibility [put].
func (h *QuestionsHandler) HandleSetVisibility(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.VisibilityRequest
	if !decode(w, r, &req) {
		return
	}

	q, err := h.QuestionService.SetVisibility(r.Context(), authz, r.PathValue("questionID"), req.IsPublic)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toQuestion(q))
}
