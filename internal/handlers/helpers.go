package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/logger"
	"kharcha/internal/middleware"
	"kharcha/internal/models"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get(middleware.CtxUserIDKey)
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return userID.(string), nil
}

// currentUser extracts the gate-resolved user from the Gin context.
// Absence means a handler was wired without the auth gate; surfaced as a
// 400 per the API contract rather than a 500.
func currentUser(c *gin.Context) (*models.User, error) {
	user, exists := c.Get(middleware.CtxUserKey)
	if !exists {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "User identity missing")
	}
	return user.(*models.User), nil
}

// dateLayouts are the accepted wire formats for expense dates.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses an expense date from its wire format.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date")
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
