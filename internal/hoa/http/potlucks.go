package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
)

type PotlucksHandler struct {
	Gate           *service.Gate
	PotluckService *service.PotluckService
}

func potluckInput(req hoasdk.PotluckRequest) service.PotluckInput {
	return service.PotluckInput{
		Title:       req.Title,
		Theme:       req.Theme,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		Limits:      limitsFromRequest(req),
	}
}

func signupInput(req hoasdk.SignupRequest) service.SignupInput {
	return service.SignupInput{
		DishName: req.DishName,
		Category: domain.DishCategory(req.Category),
		Notes:    req.Notes,
	}
}

// HandleList godoc
//
//	@Summary		List potlucks
//	@Description	Newest event date first, with signup counts.
//	@Tags			Potlucks
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Success		200	{array}	hoasdk.Potluck
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks [get].
func (h *PotlucksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	list, err := h.PotluckService.ListPotlucks(r.Context(), authz)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]hoasdk.Potluck, 0, len(list))
	for _, p := range list {
		out = append(out, toPotluck(p.PotluckEvent, p.SignupCount))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create a potluck
//	@Description	Admins only. Omitted max_* fields leave that category unlimited.
//	@Tags			Potlucks
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			request	body		hoasdk.PotluckRequest	true	"potluck"
//	@Success		201	{object}	hoasdk.Potluck
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks [post].
func (h *PotlucksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.PotluckRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.PotluckService.CreatePotluck(r.Context(), authz, potluckInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPotluck(e, 0))
}

// HandleGet godoc
//
//	@Summary		Get a potluck
//	@Description	The event, its signups ordered by category and the number of signups per category.
//	@Tags			Potlucks
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			potluckID	path		string	true	"Potluck ID"
//	@Success		200	{object}	hoasdk.PotluckDetail
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"potluck_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks/{potluckID} [get].
func (h *PotlucksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}

	d, err := h.PotluckService.GetPotluck(r.Context(), authz, r.PathValue("potluckID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPotluckDetail(d))
}

// HandleUpdate godoc
//
//	@Summary		Update a potluck
//	@Description	Admins only.
//	@Tags			Potlucks
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			potluckID	path		string	true	"Potluck ID"
//	@Param			request	body		hoasdk.PotluckRequest	true	"potluck"
//	@Success		200	{object}	hoasdk.Potluck
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"potluck_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks/{potluckID} [put].
func (h *PotlucksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.PotluckRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.PotluckService.UpdatePotluck(r.Context(), authz, r.PathValue("potluckID"), potluckInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPotluck(e, 0))
}

// HandleDelete godoc
//
//	@Summary		Delete a potluck
//	@Description	Admins only.
//	@Tags			Potlucks
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			potluckID	path		string	true	"Potluck ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"potluck_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks/{potluckID} [delete].
func (h *PotlucksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	if err := h.PotluckService.DeletePotluck(r.Context(), authz, r.PathValue("potluckID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCreateSignup godoc
//
//	@Summary		Sign up a dish
//	@Description	Any member. Fails when the category has reached its limit.
//	@Tags			Potlucks
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			potluckID	path		string	true	"Potluck ID"
//	@Param			request	body		hoasdk.SignupRequest	true	"dish_name, category, notes"
//	@Success		201	{object}	hoasdk.Signup
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"potluck_not_found"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"category_full"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks/{potluckID}/signups [post].
func (h *PotlucksHandler) HandleCreateSignup(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	su, err := h.PotluckService.CreateSignup(r.Context(), authz, r.PathValue("potluckID"), signupInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSignup(su))
}

// HandleUpdateSignup godoc
//
//	@Summary		Update a signup
//	@Description	The author or an admin. Moving to another category checks its limit.
//	@Tags			Potlucks
//	@Accept			json
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			potluckID	path		string	true	"Potluck ID"
//	@Param			signupID	path		string	true	"Signup ID"
//	@Param			request	body		hoasdk.SignupRequest	true	"dish_name, category, notes"
//	@Success		200	{object}	hoasdk.Signup
//	@Failure		400	{object}	hoasdk.ErrorResponse	"validation_failed, invalid_request"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"potluck_not_found, signup_not_found"
//	@Failure		409	{object}	hoasdk.ErrorResponse	"category_full"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks/{potluckID}/signups/{signupID} [put].
func (h *PotlucksHandler) HandleUpdateSignup(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	var req hoasdk.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	su, err := h.PotluckService.UpdateSignup(r.Context(), authz,
		r.PathValue("potluckID"), r.PathValue("signupID"), signupInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSignup(su))
}

// HandleDeleteSignup godoc
//
//	@Summary		Delete a signup
//	@Description	The author or an admin.
//	@Tags			Potlucks
//	@Produce		json
//	@Param			communityID	path		string	true	"Community ID"
//	@Param			potluckID	path		string	true	"Potluck ID"
//	@Param			signupID	path		string	true	"Signup ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	hoasdk.ErrorResponse	"unauthenticated"
//	@Failure		403	{object}	hoasdk.ErrorResponse	"forbidden, not_member"
//	@Failure		404	{object}	hoasdk.ErrorResponse	"potluck_not_found, signup_not_found"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500	{object}	hoasdk.ErrorResponse	"server_error"
//	@Security		BearerAuth
//	@Router			/v1/communities/{communityID}/potlucks/{potluckID}/signups/{signupID} [delete].
func (h *PotlucksHandler) HandleDeleteSignup(w http.ResponseWriter, r *http.Request) {
	authz, r, ok := communityScope(h.Gate, w, r)
	if !ok {
		return
	}
	err := h.PotluckService.DeleteSignup(r.Context(), authz, r.PathValue("potluckID"), r.PathValue("signupID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
