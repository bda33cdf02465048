package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestAuthenticateExactMatchOnly(t *testing.T) {
	m := NewSessionManager("signing-secret", "bikeoff2025")

	assert.True(t, m.Authenticate("bikeoff2025"))
	assert.False(t, m.Authenticate("bikeoff2024"))
	assert.False(t, m.Authenticate("bikeoff2025 "))
	assert.False(t, m.Authenticate(""))
}

func TestAuthenticateRejectsEverythingWithoutConfiguredPassword(t *testing.T) {
	m := NewSessionManager("signing-secret", "")

	assert.False(t, m.Authenticate(""))
	assert.False(t, m.Authenticate("anything"))
}

func TestIssuedSessionIsRecognized(t *testing.T) {
	m := NewSessionManager("signing-secret", "pw")

	rec := httptest.NewRecorder()
	require.NoError(t, m.IssueSession(rec))

	req := requestWithCookies(t, rec)
	assert.True(t, m.IsAuthenticated(req))
}

func TestAnonymousRequestIsNotAuthenticated(t *testing.T) {
	m := NewSessionManager("signing-secret", "pw")

	req := httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	assert.False(t, m.IsAuthenticated(req))
}

func TestTamperedCookieIsRejected(t *testing.T) {
	m := NewSessionManager("signing-secret", "pw")

	rec := httptest.NewRecorder()
	require.NoError(t, m.IssueSession(rec))
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value + "x"})
	assert.False(t, m.IsAuthenticated(req))
}

func TestSessionSignedWithDifferentSecretIsRejected(t *testing.T) {
	issuer := NewSessionManager("secret-one", "pw")
	verifier := NewSessionManager("secret-two", "pw")

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.IssueSession(rec))

	req := requestWithCookies(t, rec)
	assert.False(t, verifier.IsAuthenticated(req))
}

func TestClearSessionExpiresCookie(t *testing.T) {
	m := NewSessionManager("signing-secret", "pw")

	rec := httptest.NewRecorder()
	m.ClearSession(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
