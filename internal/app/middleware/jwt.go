package middleware

import (
	"net/http"
	"strings"

	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var (
	jwtService   services.InterfaceJWTService
	adminService services.InterfaceAdminService
)

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
	adminService = services.NewAdminService(db, cfg)
}

// extractToken strips the "Bearer " prefix from an authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// abortUnauthorized writes a 401 and stops the chain
func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    401,
		"message": message,
		"data":    nil,
	})
	c.Abort()
}

// claimsFromRequest validates the bearer token and returns its claims
func claimsFromRequest(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, "Authorization header is required")
		return nil, false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil {
		abortUnauthorized(c, "Invalid token: "+err.Error())
		return nil, false
	}
	if !token.Valid {
		abortUnauthorized(c, "Invalid token")
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		abortUnauthorized(c, "Invalid token claims")
		return nil, false
	}
	return claims, true
}

// AuthenticateUser verifies any signed-in citizen
func AuthenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromRequest(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		userID, hasID := claims["user_id"].(float64)
		if !exists || !hasID || (role != "user" && role != "admin") {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires valid user role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", uint(userID))
		c.Set("role", role)
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticateAdmin verifies administrator capability. On top of the role
// claim it re-checks admin_users existence against the database, so revoking
// a row locks the holder out of every mutating path even before their token
// expires.
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromRequest(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		userID, hasID := claims["user_id"].(float64)
		if !exists || role != "admin" || !hasID {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		isAdmin, err := adminService.IsAdmin(uint(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "Failed to verify admin status",
				"data":    nil,
			})
			c.Abort()
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: admin access has been revoked",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", uint(userID))
		c.Set("role", role)
		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the context
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
