package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/shardulsaptarshi/deadlines-website/internal/auth"
	"github.com/shardulsaptarshi/deadlines-website/internal/dto"
)

const defaultSessionTTL = 24 * time.Hour

// AuthHandler checks the shared access password and manages sessions. It
// replaces the old client-side password gate with a check at the API
// boundary; the password itself is only stored as a bcrypt hash.
type AuthHandler struct {
	sessions     *auth.Store
	passwordHash string
	sessionTTL   time.Duration
}

// NewAuthHandler returns a new AuthHandler. sessionTTL must match the TTL
// the session store was built with, so the cookie and the Redis entry
// expire together.
func NewAuthHandler(sessions *auth.Store, passwordHash string, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthHandler{sessions: sessions, passwordHash: passwordHash, sessionTTL: sessionTTL}
}

// Login godoc
// @Summary      Login with the shared access password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Password"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true) // httpOnly
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
