package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mem "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/memcache"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const (
	CtxUserID    = "user_id"
	CtxRole      = "role"
	CtxTokenID   = "token_id"
	CtxTokenExp  = "token_exp"
	RoleAdmin    = "admin"
	bearerPrefix = "Bearer "
)

// AuthMiddleware accepts the session cookie, or an Authorization bearer token
// for non-browser clients, and rejects tokens revoked by logout or issued to a
// deleted account.
func AuthMiddleware(jwt *utils.JWTManager, revoker mem.TokenRevoker, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, cookieName)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := isRevoked(c.Request.Context(), revoker, claims)
		if err != nil {
			zap.L().Error("token revocation lookup failed", zap.Error(err))
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if revoked {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

func isRevoked(ctx context.Context, revoker mem.TokenRevoker, claims *utils.Claims) (bool, error) {
	revoked, err := revoker.IsRevoked(ctx, claims.ID)
	if err != nil || revoked {
		return revoked, err
	}
	return revoker.IsRevoked(ctx, mem.UserKey(claims.UserID))
}

// TokenRemaining is how long the current request's token stays valid.
func TokenRemaining(c *gin.Context) time.Duration {
	exp := c.GetTime(CtxTokenExp)
	if exp.IsZero() {
		return 0
	}
	return time.Until(exp)
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	}
	return ""
}
