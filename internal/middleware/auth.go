package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
			c.Abort()
			return
		}

		claims, code := parseBearer(tokens, authHeader)
		if code != "" {
			httperr.Unauthorized(c, code, "Invalid or expired token.")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the caller when a valid token is present and lets
// anonymous requests through untouched.
func OptionalAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, code := parseBearer(tokens, authHeader); code == "" {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role == "" {
			httperr.Unauthorized(c, "unauthorized", "Authentication required.")
			c.Abort()
			return
		}

		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden", "Access denied for your role.")
		c.Abort()
	}
}

// CurrentUser returns the authenticated caller, if any.
func CurrentUser(c *gin.Context) (uint, string, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return 0, "", false
	}
	return id.(uint), c.GetString(ContextUserRole), true
}

func parseBearer(tokens *auth.TokenService, header string) (*auth.Claims, string) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "invalid_authorization_header"
	}

	claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, "invalid_token"
	}
	return claims, ""
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	id, _ := claims.UserID()
	c.Set(ContextUserID, id)
	c.Set(ContextUserRole, claims.Role)
}
