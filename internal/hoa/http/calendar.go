package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

type CalendarHandler struct {
	Gate            *service.Gate
	CalendarService *service.CalendarService
}

func calendarInput(req hoasdk.CalendarEventRequest) service.CalendarEventInput {
	return service.CalendarEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Type:        domain.CalendarEventType(req.EventType),
	}
}

// HandleList godoc
//
//	@Summary		List calendar events
//	@Description	Ordered by date then start time. month narrows the list to one calendar month.
//	@Tags			Calendar
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			month	query		string	false	"Month as YYYY-MM"
//	@Success		200	{array}	hoasdk.CalendarEvent
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/events [get].
func (h *CalendarHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	events, err := h.CalendarService.ListEvents(r.Context(), authz, r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]hoasdk.CalendarEvent, 0, len(events))
	for _, e := range events {
		out = append(out, toCalendarEvent(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create a calendar event
//	@Description	Board members and admins only. event_type defaults to meeting.
//	@Tags			Calendar
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			request	body		hoasdk.CalendarEventRequest	true	"event"
//	@Success		201	{object}	hoasdk.CalendarEvent
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/events [post].
func (h *CalendarHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.CalendarEventRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.CalendarService.CreateEvent(r.Context(), authz, calendarInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCalendarEvent(e))
}

// HandleGet godoc
//
//	@Summary		Get a calendar event
//	@Tags			Calendar
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			eventID	path		string	true	"Event ID"
//	@Success		200	{object}	hoasdk.CalendarEvent
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"event_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/events/{eventID} [get].
func (h *CalendarHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	e, err := h.CalendarService.GetEvent(r.Context(), authz, r.PathValue("eventID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCalendarEvent(e))
}

// HandleUpdate godoc
//
//	@Summary		Update a calendar event
//	@Description	Board members and admins only.
//	@Tags			Calendar
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			eventID	path		string	true	"Event ID"
//	@Param			request	body		hoasdk.CalendarEventRequest	true	"event"
//	@Success		200	{object}	hoasdk.CalendarEvent
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"event_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/events/{eventID} [put].
func (h *CalendarHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.CalendarEventRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.CalendarService.UpdateEvent(r.Context(), authz, r.PathValue("eventID"), calendarInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCalendarEvent(e))
}

// HandleDelete godoc
//
//	@Summary		Delete a calendar event
//	@Description	Board members and admins only.
//	@Tags			Calendar
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			eventID	path		string	true	"Event ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"event_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/events/{eventID} [delete].
func (h *CalendarHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.CalendarService.DeleteEvent(r.Context(), authz, r.PathValue("eventID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
