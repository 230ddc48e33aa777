package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"vinoteca-server/internal/assistant/provider"
	"vinoteca-server/internal/store"

	"github.com/google/uuid"
)

// AssistantStore defines the database operations required by AssistantProcessor
type AssistantStore interface {
	GetAIConnection(ctx context.Context, connectionID, userID uuid.UUID) (store.AIConnection, error)
	GetAIConnectionsByUserID(ctx context.Context, userID uuid.UUID) ([]store.AIConnection, error)
	CreateAIConnection(ctx context.Context, params store.CreateAIConnectionParams) (store.AIConnection, error)
	DeleteAIConnection(ctx context.Context, connectionID, userID uuid.UUID) error
	GetChatMessagesByConnectionID(ctx context.Context, connectionID, userID uuid.UUID) ([]store.ChatMessage, error)
	CreateChatMessagePair(ctx context.Context, userID, connectionID uuid.UUID, userContent, assistantContent string) error
	SearchWines(ctx context.Context, params store.SearchWinesParams) ([]store.Wine, error)
	GetWineByID(ctx context.Context, id uuid.UUID) (store.Wine, error)
	GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]store.OrderWithItems, error)
	GetOrderByID(ctx context.Context, orderID, userID uuid.UUID) (store.OrderWithItems, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
	UpdateProfileByUserID(ctx context.Context, userID uuid.UUID, params store.UpdateProfileParams) (store.Profile, error)
	GetPaymentMethodsByUserID(ctx context.Context, userID uuid.UUID) ([]store.PaymentMethod, error)
}

// ProviderClient issues one completion call against a configured AI provider
type ProviderClient interface {
	Complete(ctx context.Context, req provider.Request) (provider.Result, error)
}
