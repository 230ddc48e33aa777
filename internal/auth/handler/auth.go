package handler

import (
	"net/http"
	"strings"

	"vinoteca-server/internal/auth/processor"
	"vinoteca-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key the middleware stores the verified
// user identity under.
const UserIDKey = "User-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware verifies the bearer credential before any other
// work happens. Every failure mode (missing header, malformed token,
// expired, bad signature, non-UUID subject) collapses to the same 401
// so the response never acts as an oracle.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		h.logger.Error(ctx, "token subject is not a user ID", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})
	c.Request = c.Request.WithContext(ctx)
	c.Set(UserIDKey, userID)
	c.Next()
}

// UserIDFromContext returns the verified user identity set by the
// middleware. The boolean is false when the middleware did not run.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
