package handlers

import (
	"crypto/subtle"
	"net/http"

	"carexyz/config"
	"carexyz/services/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SeedHandler owns the one-shot demo data loader.
type SeedHandler struct {
	Seeder *seed.Seeder
	Logger *zap.Logger
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(s *seed.Seeder, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{Seeder: s, Logger: logger}
}

// Seed handles POST /api/seed. When SEED_SECRET is configured the caller must
// present it via ?secret= or the X-Seed-Secret header; without a configured
// secret the endpoint only works outside production.
func (h *SeedHandler) Seed(c *gin.Context) {
	secret := config.AppConfig.SeedSecret
	if secret != "" {
		provided := c.Query("secret")
		if provided == "" {
			provided = c.GetHeader("X-Seed-Secret")
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid seed secret"})
			return
		}
	} else if config.IsProduction() {
		c.JSON(http.StatusForbidden, gin.H{"error": "seeding requires a configured secret in production"})
		return
	}

	res, err := h.Seeder.Run("seed-endpoint")
	if err != nil {
		h.Logger.Error("seed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "seed failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
