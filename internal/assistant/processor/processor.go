package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"vinoteca-server/internal/assistant/provider"
	"vinoteca-server/internal/observability"
	"vinoteca-server/internal/store"

	"github.com/google/uuid"
)

var ErrConnectionNotFound = errors.New("connection not found")

var ErrUnsupportedProvider = errors.New("unsupported provider")

var ErrAPIKeyRequired = errors.New("api key is required for this provider")

var ErrLovableNotConfigured = errors.New("lovable AI is not configured")

var ErrEmptyConversation = errors.New("conversation has no messages")

type AssistantProcessor struct {
	store          AssistantStore
	providerClient ProviderClient
	lovableAPIKey  string
	logger         *observability.Logger
	toolHandlers   map[string]toolHandler
}

// New builds the processor and verifies manifest/dispatch-table parity,
// failing loudly at startup if a tool lacks a handler or vice versa.
func New(store AssistantStore, providerClient ProviderClient, lovableAPIKey string,
	logger *observability.Logger) AssistantProcessor {
	p := AssistantProcessor{
		store:          store,
		providerClient: providerClient,
		lovableAPIKey:  lovableAPIKey,
		logger:         logger,
	}
	p.toolHandlers = p.buildToolHandlers()
	verifyToolHandlers(p.toolHandlers)
	return p
}

// ChatResponse is the gateway's final payload: a human-readable answer
// plus any client-side action directives produced by cart tools.
type ChatResponse struct {
	Content string         `json:"content"`
	Actions []ClientAction `json:"actions,omitempty"`
}

func isSupportedProvider(name string) bool {
	switch name {
	case provider.ProviderOpenAI, provider.ProviderAnthropic, provider.ProviderGoogle, provider.ProviderLovable:
		return true
	}
	return false
}

// Chat runs one full gateway request: resolve the caller's connection,
// call the configured provider, execute any requested tools, persist the
// exchange, and return the final payload. Authentication already
// happened upstream; userID is the verified identity.
func (p *AssistantProcessor) Chat(ctx context.Context, userID, connectionID uuid.UUID,
	messages []provider.Message) (ChatResponse, error) {
	if len(messages) == 0 {
		return ChatResponse{}, ErrEmptyConversation
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "connection_id", Value: connectionID.String()})

	// The lookup predicate includes the user ID: this is the sole
	// authorization boundary for the stored provider credential, and a
	// foreign connection must be indistinguishable from a missing one.
	connection, err := p.store.GetAIConnection(ctx, connectionID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ChatResponse{}, ErrConnectionNotFound
		}
		return ChatResponse{}, err
	}

	if !isSupportedProvider(connection.Provider) {
		p.logger.Warn(ctx, fmt.Sprintf("connection references unsupported provider %q", connection.Provider))
		return ChatResponse{}, ErrUnsupportedProvider
	}

	apiKey := connection.APIKeyEncrypted
	if connection.Provider == provider.ProviderLovable {
		if p.lovableAPIKey == "" {
			return ChatResponse{}, ErrLovableNotConfigured
		}
		apiKey = p.lovableAPIKey
	}

	result, err := p.providerClient.Complete(ctx, provider.Request{
		Provider: connection.Provider,
		Model:    connection.ModelName,
		APIKey:   apiKey,
		Messages: messages,
		Tools:    ToolManifest(),
	})
	if err != nil {
		p.logger.Error(ctx, "provider call failed", err)
		return ChatResponse{}, fmt.Errorf("provider call failed: %w", err)
	}

	lastUserMessage := messages[len(messages)-1].Content

	// Plain text answer: no tool execution, just persist and return.
	if len(result.ToolCalls) == 0 {
		if err := p.store.CreateChatMessagePair(ctx, userID, connectionID, lastUserMessage, result.Text); err != nil {
			return ChatResponse{}, err
		}
		return ChatResponse{Content: result.Text}, nil
	}

	outcomes := p.executeToolCalls(ctx, userID, result.ToolCalls)
	content := formatToolSummary(outcomes)

	var actions []ClientAction
	for _, outcome := range outcomes {
		if action, ok := outcome.Result.(ClientAction); ok {
			actions = append(actions, action)
		}
	}

	if err := p.store.CreateChatMessagePair(ctx, userID, connectionID, lastUserMessage, content); err != nil {
		return ChatResponse{}, err
	}

	return ChatResponse{Content: content, Actions: actions}, nil
}

type toolOutcome struct {
	Tool   string
	Result interface{}
}

// executeToolCalls runs the batch concurrently. Each invocation is
// independent; a failure stays inside its own result slot and never
// aborts the siblings. Results keep the provider's order.
func (p *AssistantProcessor) executeToolCalls(ctx context.Context, userID uuid.UUID,
	calls []provider.ToolCall) []toolOutcome {
	outcomes := make([]toolOutcome, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call provider.ToolCall) {
			defer wg.Done()
			outcomes[i] = toolOutcome{Tool: call.Name, Result: p.executeToolCall(ctx, userID, call)}
		}(i, call)
	}
	wg.Wait()
	return outcomes
}

func (p *AssistantProcessor) executeToolCall(ctx context.Context, userID uuid.UUID,
	call provider.ToolCall) interface{} {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool", Value: call.Name})
	p.logger.Info(ctx, "executing tool")

	handler, ok := p.toolHandlers[call.Name]
	if !ok {
		return map[string]interface{}{"error": "Unknown tool"}
	}

	result, err := handler(ctx, userID, call.Args)
	if err != nil {
		p.logger.Error(ctx, "tool execution failed", err)
		return map[string]interface{}{"error": err.Error()}
	}
	return result
}

// formatToolSummary collapses the batch into one human-readable message.
// The actions list carries the machine-readable part.
func formatToolSummary(outcomes []toolOutcome) string {
	lines := make([]string, len(outcomes))
	for i, outcome := range outcomes {
		encoded, err := json.MarshalIndent(outcome.Result, "", "  ")
		if err != nil {
			encoded = []byte(fmt.Sprintf("%+v", outcome.Result))
		}
		lines[i] = fmt.Sprintf("✓ %s: %s", outcome.Tool, encoded)
	}
	return "J'ai exécuté les actions suivantes:\n\n" + strings.Join(lines, "\n\n")
}

// ListConnections returns the caller's saved connections.
func (p *AssistantProcessor) ListConnections(ctx context.Context, userID uuid.UUID) ([]store.AIConnection, error) {
	return p.store.GetAIConnectionsByUserID(ctx, userID)
}

// CreateConnectionParams carries a new connection's configuration.
type CreateConnectionParams struct {
	Provider    string
	ModelName   string
	DisplayName string
	APIKey      string
}

// CreateConnection saves a provider configuration for the caller. The
// key is required except for lovable, which uses a service-wide one.
func (p *AssistantProcessor) CreateConnection(ctx context.Context, userID uuid.UUID,
	params CreateConnectionParams) (store.AIConnection, error) {
	if !isSupportedProvider(params.Provider) {
		return store.AIConnection{}, ErrUnsupportedProvider
	}
	if params.Provider != provider.ProviderLovable && params.APIKey == "" {
		return store.AIConnection{}, ErrAPIKeyRequired
	}
	return p.store.CreateAIConnection(ctx, store.CreateAIConnectionParams{
		UserID:      userID,
		Provider:    params.Provider,
		ModelName:   params.ModelName,
		DisplayName: params.DisplayName,
		APIKey:      params.APIKey,
	})
}

// DeleteConnection removes one of the caller's connections. A foreign
// or missing connection resolves to ErrConnectionNotFound.
func (p *AssistantProcessor) DeleteConnection(ctx context.Context, connectionID, userID uuid.UUID) error {
	err := p.store.DeleteAIConnection(ctx, connectionID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrConnectionNotFound
	}
	return err
}

// ListMessages returns the caller's chat history for one connection,
// oldest first.
func (p *AssistantProcessor) ListMessages(ctx context.Context, connectionID, userID uuid.UUID) ([]store.ChatMessage, error) {
	return p.store.GetChatMessagesByConnectionID(ctx, connectionID, userID)
}
