package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
)

// LivezHandler godoc
//
//	@Summary		Liveness check
//	@Description	Answers 200 while the process is up.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	hoasdk.HealthResponse	"status, uptime, version"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, hoasdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness check
//	@Description	Answers 503 until the database responds and signing keys are loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	hoasdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	hoasdk.HealthResponse	"degraded"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &hoasdk.HealthChecks{Database: "ok", Signer: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, hoasdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// JWKSHandler godoc
//
//	@Summary		JSON Web Key Set
//	@Description	Public keys that verify access tokens.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	hoasdk.JWKSResponse	"keys"
//	@Failure		429	{object}	hoasdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, hoasdk.JWKSResponse(keys.PublicJWKS()))
	}
}
