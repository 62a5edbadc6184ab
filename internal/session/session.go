// internal/session/session.go
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/mfadel/shopfront/internal/config"
)

const (
	CookieName = "shopfront_session"

	// ContextKey is where the middleware stores the resolved session ID.
	ContextKey = "session_id"
)

// Manager issues and verifies the opaque per-visitor session identifier. The
// identifier itself is a UUID; it travels inside a signed cookie so clients
// cannot mint identifiers of their own choosing.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.SecretKey),
		ttl:    time.Duration(cfg.TTLHours) * time.Hour,
	}
}

func (m *Manager) sign(sessionID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
		Issuer:    "shopfront",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid && claims.Subject != "" {
		return claims.Subject, nil
	}

	return "", errors.New("invalid session token")
}

// Middleware resolves the visitor's session ID from the signed cookie,
// generating and setting a fresh one when the cookie is missing or invalid.
// Handlers read the ID via FromContext.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(CookieName); err == nil {
			if sid, err := m.verify(raw); err == nil {
				c.Set(ContextKey, sid)
				c.Next()
				return
			}
		}

		sid := uuid.NewString()
		if signed, err := m.sign(sid); err == nil {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
		}
		c.Set(ContextKey, sid)
		c.Next()
	}
}

// FromContext returns the session ID placed by Middleware.
func FromContext(c *gin.Context) string {
	if v, exists := c.Get(ContextKey); exists {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}
