package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/services"
	"kharcha/internal/token"
)

// TokenCookie is the cookie that carries the auth token for browser clients.
const TokenCookie = "token"

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "currentUser"
)

// Auth returns the authorization gate for protected routes. It extracts a
// candidate token (cookie first, Authorization: Bearer header as
// fallback), verifies it, resolves the embedded user ID to a live user
// record, and attaches both ID and user to the context. It aborts with
// 401 on a missing or invalid credential and 404 when the token's user no
// longer exists. Handlers behind this gate never touch persistence for
// unauthenticated requests.
func Auth(users services.UserServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := token.Verify(tokenString)
		if err != nil {
			abortWithError(c, err)
			return
		}

		// The user may have been removed after the token was issued.
		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(CtxUserIDKey, user.ID)
		c.Set(CtxUserKey, user)
		c.Next()
	}
}

// extractToken returns the candidate token from the request, preferring
// the cookie over the Authorization header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// abortWithError writes the error envelope and stops the handler chain.
func abortWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.ErrInternalServer
	}
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
