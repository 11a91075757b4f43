package http

import (
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

// communityScope resolves the caller of a /v1/communities/{communityID}/...
// route into an AuthorizationContext. On failure the response has already
// been written.
func communityScope(gate *service.Gate, w http.ResponseWriter, r *http.Request) (service.AuthorizationContext, *http.Request, bool) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthenticated)
		return service.AuthorizationContext{}, r, false
	}

	id, err := idx.Parse(r.PathValue("communityID"))
	if err != nil {
		writeServiceError(w, r, service.ErrNotMember)
		return service.AuthorizationContext{}, r, false
	}
	communityID := id.String()
	authz, err := gate.Authorize(r.Context(), userID, communityID)
	if err != nil {
		writeServiceError(w, r, err)
		return service.AuthorizationContext{}, r, false
	}

	ctx := slogx.With(r.Context(), "community_id", communityID, "role", string(authz.Role))
	return authz, r.WithContext(ctx), true
}

// callerID returns the authenticated user for routes outside a community.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthenticated)
		return "", false
	}
	return userID, true
}
