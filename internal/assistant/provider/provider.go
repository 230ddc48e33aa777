package provider

import (
	"errors"
	"fmt"
)

// Supported provider kinds. The set is closed: request translation and
// response parsing branch on these values, and anything else is rejected
// before a network call is made.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderLovable   = "lovable"
)

const RoleUser = "user"
const RoleAssistant = "assistant"

var ErrUnsupportedProvider = errors.New("unsupported provider")

// UpstreamError carries a provider's non-success status and raw body.
// It is surfaced verbatim for operator diagnosis and never retried here.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream provider returned status %d: %s", e.StatusCode, e.Body)
}

// Message is one provider-agnostic conversation line.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// Tool is one provider-independent capability descriptor. Parameters is
// a JSON-schema object passed through to the provider, re-keyed or
// re-nested as each wire format demands.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// ToolCall is a provider-agnostic tool invocation parsed out of a
// response. Args are already decoded: some providers send a JSON object,
// others a JSON-encoded string; both normalize to a map here.
type ToolCall struct {
	Name string
	Args map[string]interface{}
}

// Result is the normalized outcome of one provider call: either plain
// text or one-or-more tool invocations, never both.
type Result struct {
	Text      string
	ToolCalls []ToolCall
}

// Request is everything one completion call needs. APIKey is the
// request-scoped credential: the connection's own key, or the
// service-wide key for lovable.
type Request struct {
	Provider string
	Model    string
	APIKey   string
	Messages []Message
	Tools    []Tool
}

// wireRequest is a fully translated provider call: endpoint, auth
// headers in the provider's convention, and the marshaled native body.
type wireRequest struct {
	URL     string
	Headers map[string]string
	Body    []byte
}
