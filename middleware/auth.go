package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	profileRepo "carexyz/database/repository/profile"
	"carexyz/models"
	"carexyz/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TokenVerifier verifies an identity-provider bearer token. Satisfied by the
// Firebase auth client; swapped for a stub in tests.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware verifies the bearer token against the identity provider and
// resolves the server-trusted role from the mirrored profile. The role coming
// from the client is never consulted. uid→role pairs are cached in Redis.
func AuthMiddleware(verifier TokenVerifier, profiles profileRepo.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		token, err := verifier.VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired credential"})
			return
		}
		uid := token.UID

		role, disabled := lookupRole(ctx, uid, profiles, logger)
		if disabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
			return
		}
		if role == "" {
			// No mirrored profile yet; treat as a plain user until /api/profile
			// sync runs. Admin routes will still reject.
			role = models.RoleUser
		}

		c.Set("userID", uid)
		c.Set("userRole", role)
		c.Next()
	}
}

// lookupRole resolves uid→role cache-first, falling back to the profile
// store. The second return reports a disabled account; disabling drops the
// cache entry, so a stale cached role cannot mask it for long.
func lookupRole(ctx context.Context, uid string, profiles profileRepo.ProfileRepository, logger *zap.Logger) (models.Role, bool) {
	cacheKey := utils.RoleCachePrefix + uid

	// Use the client var directly; when Redis was never initialized we just
	// fall back to a DB lookup instead of failing the request.
	roleCache := utils.AuthCacheClient
	cacheEnabled := roleCache != nil

	if cacheEnabled {
		cached, err := roleCache.Get(ctx, cacheKey).Result()
		if err == nil {
			return models.Role(cached), false
		} else if err != redis.Nil {
			logger.Warn("role cache lookup failed, falling back to DB", zap.Error(err))
		}
	}

	p, err := profiles.GetByUID(uid)
	if err != nil || p == nil {
		return "", false
	}
	if p.Status == "disabled" {
		return "", true
	}

	if cacheEnabled {
		if err := roleCache.Set(ctx, cacheKey, string(p.Role), utils.RoleCacheTTL).Err(); err != nil {
			logger.Warn("role cache write failed", zap.Error(err))
		}
	}
	return p.Role, false
}

// CurrentUserID returns the authenticated uid set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	uid, ok := v.(string)
	return uid, ok && uid != ""
}

// CurrentRole returns the server-trusted role set by AuthMiddleware.
func CurrentRole(c *gin.Context) models.Role {
	v, ok := c.Get("userRole")
	if !ok {
		return ""
	}
	role, _ := v.(models.Role)
	return role
}
