package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionRecord is what the session store persists under its single fixed key.
type SessionRecord struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	CreatedAtMillis int64  `json:"created_at_millis"`
	CreatedAtISO    string `json:"created_at_iso"`
}

// CreatedAt returns the creation instant of the record.
func (s SessionRecord) CreatedAt() time.Time {
	return time.UnixMilli(s.CreatedAtMillis)
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response with the session token
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Redirect string `json:"redirect"`
}

// SessionClaims are the JWT claims carried by the session cookie. The token
// only names the session; validity is decided against the stored record.
type SessionClaims struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
