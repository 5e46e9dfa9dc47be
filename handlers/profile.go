package handlers

import (
	"net/http"

	"carexyz/middleware"
	"carexyz/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler mirrors identity-provider users into the document store.
type ProfileHandler struct {
	Accounts account.AccountService
	Logger   *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(as account.AccountService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Accounts: as, Logger: logger}
}

// SyncProfile handles POST /api/profile, called by the client after sign-in.
// The uid always comes from the verified token, never from the body.
func (h *ProfileHandler) SyncProfile(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Email    string `json:"email" binding:"required"`
		FullName string `json:"fullName"`
		PhotoURL string `json:"photoUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.Accounts.SyncProfile(uid, req.Email, req.FullName, req.PhotoURL)
	if err != nil {
		h.Logger.Error("profile sync failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetMyProfile handles GET /api/profile.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	p, err := h.Accounts.GetProfile(uid)
	if err != nil {
		h.Logger.Error("failed to fetch profile", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
