package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"vinoteca-server/internal/apierrors"
	"vinoteca-server/internal/assistant/processor"
	"vinoteca-server/internal/assistant/provider"
	authHandler "vinoteca-server/internal/auth/handler"
	"vinoteca-server/internal/observability"
	"vinoteca-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssistantProcessor is the business-logic seam for the assistant endpoints.
type AssistantProcessor interface {
	Chat(ctx context.Context, userID, connectionID uuid.UUID, messages []provider.Message) (processor.ChatResponse, error)
	ListConnections(ctx context.Context, userID uuid.UUID) ([]store.AIConnection, error)
	CreateConnection(ctx context.Context, userID uuid.UUID, params processor.CreateConnectionParams) (store.AIConnection, error)
	DeleteConnection(ctx context.Context, connectionID, userID uuid.UUID) error
	ListMessages(ctx context.Context, connectionID, userID uuid.UUID) ([]store.ChatMessage, error)
}

type Handler struct {
	assistantProcessor AssistantProcessor
	logger             *observability.Logger
}

func New(assistantProcessor AssistantProcessor, logger *observability.Logger) Handler {
	return Handler{assistantProcessor: assistantProcessor, logger: logger}
}

type ChatRequest struct {
	ConnectionID uuid.UUID          `json:"connectionId" binding:"required"`
	Messages     []provider.Message `json:"messages" binding:"required,min=1,dive"`
}

// HandleChat is the gateway endpoint: a conversation in, a final answer
// (and any client-action directives) out.
func (h *Handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	response, err := h.assistantProcessor.Chat(ctx, userID, req.ConnectionID, req.Messages)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleListConnections returns the caller's saved connections. Stored
// keys never serialize.
func (h *Handler) HandleListConnections(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	connections, err := h.assistantProcessor.ListConnections(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"connections": connections})
}

type CreateConnectionRequest struct {
	Provider    string `json:"provider" binding:"required"`
	ModelName   string `json:"model_name" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	APIKey      string `json:"api_key"`
}

func (h *Handler) HandleCreateConnection(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	connection, err := h.assistantProcessor.CreateConnection(ctx, userID, processor.CreateConnectionParams{
		Provider:    req.Provider,
		ModelName:   req.ModelName,
		DisplayName: req.DisplayName,
		APIKey:      req.APIKey,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, connection)
}

func (h *Handler) HandleDeleteConnection(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	connectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid connection ID"))
		return
	}

	if err := h.assistantProcessor.DeleteConnection(ctx, connectionID, userID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// HandleGetMessages returns the persisted chat history for one of the
// caller's connections, oldest first.
func (h *Handler) HandleGetMessages(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	connectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid connection ID"))
		return
	}

	messages, err := h.assistantProcessor.ListMessages(ctx, connectionID, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
