package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"employee-directory/internal/models"
	"employee-directory/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session_token"

// SessionAuth gates protected routes on a valid session. An invalid or
// missing session answers 401 with a redirect hint to the login view; the
// gate lazily clears expired records as a side effect of the check.
type SessionAuth struct {
	gate   *session.Gate
	secret []byte
}

func NewSessionAuth(gate *session.Gate, secret []byte) *SessionAuth {
	return &SessionAuth{gate: gate, secret: secret}
}

// Authenticate validates the session token and the stored session record,
// then sets the username on the request context.
func (m *SessionAuth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			deny(c, "Authentication required")
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			deny(c, "Invalid session")
			return
		}
		claims, ok := token.Claims.(*models.SessionClaims)
		if !ok {
			deny(c, "Invalid session")
			return
		}

		// The token only names a session; the stored record decides validity.
		rec, ok := m.gate.Current(c.Request.Context())
		if !ok || rec.ID != claims.SessionID {
			deny(c, "Session expired")
			return
		}

		c.Set("username", rec.Username)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func deny(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg, "redirect": "/login"})
	c.Abort()
}
