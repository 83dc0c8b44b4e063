package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tamaula/leaguehub/pkg/token"
)

const authClaimsKey = "auth_claims"

// AuthMiddleware validates the bearer token and stores the authentication
// context {principal id, role} for downstream handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// RequireRole refuses principals whose role is not among the given ones.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}
		for _, role := range roles {
			if strings.EqualFold(claims.Role, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":    "Forbidden",
			"message":  "You don't have permission to access this resource",
			"required": roles,
		})
	}
}

// AdminOnly is a convenience middleware for admin-only access.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(token.RoleAdmin)
}

// ClubOnly is a convenience middleware for club-only access.
func ClubOnly() gin.HandlerFunc {
	return RequireRole(token.RoleClub)
}

// PlayerOnly is a convenience middleware for player-only access.
func PlayerOnly() gin.HandlerFunc {
	return RequireRole(token.RolePlayer)
}

// GetClaims extracts the authentication context from the request.
func GetClaims(c *gin.Context) (*token.Claims, error) {
	val, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, errors.New("authentication context not found")
	}
	claims, ok := val.(*token.Claims)
	if !ok {
		return nil, errors.New("authentication context has unexpected type")
	}
	return claims, nil
}

// PrincipalID returns the acting principal's id, or 0 when unauthenticated.
func PrincipalID(c *gin.Context) uint {
	claims, err := GetClaims(c)
	if err != nil {
		return 0
	}
	return claims.UserID
}
