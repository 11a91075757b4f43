package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

// AuthnMiddleware resolves the bearer token into the caller's identity.
// Requests without a valid token never reach the handler.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}
			if claims.Subject == "" {
				writeBearerError(w, "token has no subject")
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthenticated", desc)
}
