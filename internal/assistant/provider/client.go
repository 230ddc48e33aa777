package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"vinoteca-server/internal/observability"
)

// 30s bounds a hung upstream without cutting off slow completions.
const defaultCallTimeout = 30 * time.Second

// Client issues exactly one outbound HTTP call per completion. It holds
// no per-user state; the credential travels in the Request.
type Client struct {
	httpClient *http.Client
	logger     *observability.Logger

	openAIURL    string
	lovableURL   string
	anthropicURL string
	googleURL    string
}

func NewClient(logger *observability.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: defaultCallTimeout},
		logger:       logger,
		openAIURL:    openAIChatCompletionsURL,
		lovableURL:   lovableChatCompletionsURL,
		anthropicURL: anthropicMessagesURL,
		googleURL:    googleGenerateContentURL,
	}
}

// Complete translates the conversation into the provider's native wire
// format, issues the call, and parses the native response back into a
// provider-agnostic Result. An unsupported provider fails before any
// network I/O; a non-success upstream status becomes an UpstreamError
// carrying the raw body.
func (c *Client) Complete(ctx context.Context, req Request) (Result, error) {
	var wire wireRequest
	var err error

	switch req.Provider {
	case ProviderOpenAI:
		wire, err = buildOpenAIRequest(c.openAIURL, req)
	case ProviderLovable:
		wire, err = buildOpenAIRequest(c.lovableURL, req)
	case ProviderAnthropic:
		wire, err = buildAnthropicRequest(c.anthropicURL, req)
	case ProviderGoogle:
		wire, err = buildGoogleRequest(c.googleURL, req)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, req.Provider)
	}
	if err != nil {
		return Result{}, err
	}

	body, err := c.post(ctx, wire)
	if err != nil {
		return Result{}, err
	}

	switch req.Provider {
	case ProviderAnthropic:
		return parseAnthropicResponse(body)
	case ProviderGoogle:
		return parseGoogleResponse(body)
	default:
		return parseOpenAIResponse(body)
	}
}

func (c *Client) post(ctx context.Context, wire wireRequest) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, wire.URL, bytes.NewReader(wire.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	for key, value := range wire.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error(ctx, "provider call failed", err)
		return nil, &UpstreamError{StatusCode: http.StatusBadGateway, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "failed to read provider response", err)
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error(ctx, "provider returned non-success status",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
