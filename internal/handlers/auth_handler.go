package handlers

import (
	"net/http"
	"time"

	"employee-directory/internal/middleware"
	"employee-directory/internal/models"
	"employee-directory/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	gate   *session.Gate
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(gate *session.Gate, secret []byte, ttl time.Duration) *AuthHandler {
	return &AuthHandler{gate: gate, secret: secret, ttl: ttl}
}

// Login validates the credential pair and opens a session
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	if !h.gate.ValidateCredentials(input.Username, input.Password) {
		// Generic message: no hint which field was wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	rec, err := h.gate.CreateSession(c.Request.Context(), input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := h.signToken(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.ttl.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: rec.Username,
		Redirect: "/",
	})
}

// Logout clears the session unconditionally
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login"})
}

// Me returns the logged-in username for the page header
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	username, _ := c.Get("username")
	c.JSON(http.StatusOK, gin.H{"username": username})
}

func (h *AuthHandler) signToken(rec models.SessionRecord) (string, error) {
	now := rec.CreatedAt()
	claims := models.SessionClaims{
		Username:  rec.Username,
		SessionID: rec.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}
