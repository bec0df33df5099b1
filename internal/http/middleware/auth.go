package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/common/logger"
	"kra.app/feedback/internal/auth"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// Authenticate requires a valid bearer token and attaches its user to the request context.
func Authenticate(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization header provided. Please log in again."})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided. Please log in again."})
			return
		}

		user, err := authenticator.Authenticate(ctx, token)
		if err != nil {
			status, msg := authFailure(err)
			if status == http.StatusInternalServerError {
				slog.ErrorContext(ctx, "authentication misconfigured", "error", err)
			} else {
				slog.DebugContext(ctx, "authentication rejected", "error", err)
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		ctx = context.WithValue(ctx, userContextKey, user)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrSecretNotConfigured):
		return http.StatusInternalServerError, "Server configuration error"
	case errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired. Please log in again."
	case errors.Is(err, auth.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid token. Please log in again."
	case errors.Is(err, auth.ErrTokenVerification):
		return http.StatusUnauthorized, "Token verification failed. Please log in again."
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusUnauthorized, "User not found. Please log in again."
	default:
		return http.StatusUnauthorized, "Authentication failed. Please log in again."
	}
}

// Authorize admits only callers whose role is in roles. It must run after Authenticate.
func Authorize(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c.Request.Context())
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !slices.Contains(roles, user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// WithUser attaches user the way Authenticate does.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
