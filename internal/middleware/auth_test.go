// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ussr-leaders/backend/internal/core"
)

type stubVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (s *stubVerifier) VerifyAccessToken(
	context.Context,
	string,
) (*AccessTokenClaims, error) {
	return s.claims, s.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticatorMissingToken(t *testing.T) {
	h := Authenticator(&stubVerifier{})(okHandler())

	rec := doRequest(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	h := Authenticator(&stubVerifier{err: core.ErrTokenInvalid})(okHandler())

	rec := doRequest(h, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	h := Authenticator(&stubVerifier{err: core.ErrTokenExpired})(okHandler())

	rec := doRequest(h, "Bearer expired-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthenticatorSetsContext(t *testing.T) {
	verifier := &stubVerifier{claims: &AccessTokenClaims{
		UserID: "user-1",
		Role:   core.RoleEditor,
	}}

	var gotUserID string
	var gotRole core.Role
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotRole = GetUserRole(r.Context())
	})

	doRequest(Authenticator(verifier)(inner), "Bearer good-token")

	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, core.RoleEditor, gotRole)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	var authenticated bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authenticated = IsAuthenticated(r.Context())
	})

	rec := doRequest(OptionalAuth(&stubVerifier{})(inner), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, authenticated)
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	inner := okHandler()
	verifier := &stubVerifier{err: core.ErrTokenInvalid}

	rec := doRequest(OptionalAuth(verifier)(inner), "Bearer bad-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleOrdering(t *testing.T) {
	tests := []struct {
		name     string
		role     core.Role
		min      core.Role
		wantCode int
	}{
		{"user blocked from editor route", core.RoleUser, core.RoleEditor, http.StatusForbidden},
		{"editor allowed on editor route", core.RoleEditor, core.RoleEditor, http.StatusOK},
		{"admin allowed on editor route", core.RoleAdmin, core.RoleEditor, http.StatusOK},
		{"editor blocked from admin route", core.RoleEditor, core.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{claims: &AccessTokenClaims{
				UserID: "user-1",
				Role:   tt.role,
			}}

			h := Authenticator(verifier)(RequireRole(tt.min)(okHandler()))
			rec := doRequest(h, "Bearer token")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireRoleUnauthenticated(t *testing.T) {
	h := RequireRole(core.RoleUser)(okHandler())

	rec := doRequest(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Equal(t, "", ExtractToken(req))

	req.Header.Del("Authorization")
	assert.Equal(t, "", ExtractToken(req))
}
