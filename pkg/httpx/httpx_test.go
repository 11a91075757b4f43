package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims jwtx.Claims
	err    error
}

func (s stubVerifier) Verify(string) (jwtx.Claims, error) { return s.claims, s.err }

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	serve(h, newRequest("1.1.1.1:1"))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	claims := jwtx.NewAccessClaims("user-1", "a@example.com", "Alice", "iss", time.Hour, time.Now())

	var gotUser string
	protected := func(v jwtx.Verifier) http.Handler {
		return httpx.AuthnMiddleware(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, _ = httpx.UserIDFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))
	}

	t.Run("missing header", func(t *testing.T) {
		rec := serve(protected(stubVerifier{claims: claims}), newRequest("1.1.1.1:1"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "unauthenticated", body.Error)
	})

	t.Run("verifier rejects", func(t *testing.T) {
		req := newRequest("1.1.1.1:1")
		req.Header.Set("Authorization", "Bearer junk")
		rec := serve(protected(stubVerifier{err: errors.New("bad")}), req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := newRequest("1.1.1.1:1")
		req.Header.Set("Authorization", "Bearer good")
		rec := serve(protected(stubVerifier{claims: claims}), req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "user-1", gotUser)
	})
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Oak Street"}`))
	require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
	require.Equal(t, "Oak Street", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
}

func TestWriteJSONSetsHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
