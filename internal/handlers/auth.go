package handlers

import (
	"errors"
	"net/http"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/auth"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/dto"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/notify"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/service"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, register and logout. Sign-in warms the user's
// store (initial load); sign-out drops it.
type AuthHandler struct {
	sessions auth.SessionStore
	userSvc  *service.UserService
	stores   *store.Manager
	toasts   *notify.Memory
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions auth.SessionStore, userSvc *service.UserService, stores *store.Manager, toasts *notify.Memory) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, stores: stores, toasts: toasts}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	// Sign-in trigger: load the user's tasks and projects now, applying
	// the bootstrap policy on first sign-in.
	h.stores.Get(c.Request.Context(), user.ID)
	c.SetCookie(auth.SessionCookieName, sessionID, 24*60*60, "/", "", false, true) // 24h, httpOnly
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": dto.UserResponse{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName}})
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		case errors.Is(err, service.ErrDisplayNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "display name is required"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	h.stores.Get(c.Request.Context(), user.ID)
	c.SetCookie(auth.SessionCookieName, sessionID, 24*60*60, "/", "", false, true) // 24h, httpOnly
	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": dto.UserResponse{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName}})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		// Sign-out reset: drop the session-local state, nothing remote
		// is deleted.
		if userID, ok := h.sessions.GetUserID(c.Request.Context(), sessionID); ok {
			h.stores.Drop(userID)
			h.toasts.Clear(userID)
		}
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
