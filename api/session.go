package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookieName = "blog_session"
	sessionLifetime   = 7 * 24 * time.Hour
)

// sessionClaims carries the single capability a session can hold.
type sessionClaims struct {
	Admin bool `json:"adm"`
	jwt.RegisteredClaims
}

// SessionManager gates the admin panel. Sessions are two-state: anonymous or
// authenticated. The state lives client-side in a signed cookie, so the
// server verifies rather than stores it.
type SessionManager struct {
	signingSecret []byte
	adminPassword string
	logger        zerolog.Logger
}

func NewSessionManager(signingSecret, adminPassword string) *SessionManager {
	return &SessionManager{
		signingSecret: []byte(signingSecret),
		adminPassword: adminPassword,
		logger:        log.With().Str("handlerName", "sessionManager").Logger(),
	}
}

// Authenticate compares the submitted password against the configured admin
// password. Exact equality, constant time. No lockout or hashing is applied;
// that gap is inherited from the deployment this replaces.
func (m *SessionManager) Authenticate(password string) bool {
	if m.adminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(m.adminPassword)) == 1
}

// IssueSession marks the caller's session as authenticated by setting a
// signed cookie.
func (m *SessionManager) IssueSession(w http.ResponseWriter) error {
	now := time.Now()
	claims := sessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.signingSecret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// IsAuthenticated reports whether the request carries a valid admin session.
func (m *SessionManager) IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return m.signingSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return false
	}
	return claims.Admin
}

// ClearSession transitions the session back to anonymous. Safe to call on an
// anonymous session.
func (m *SessionManager) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
