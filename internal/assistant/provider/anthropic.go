package provider

import (
	"encoding/json"
	"fmt"
)

const anthropicMessagesURL = "https://api.anthropic.com/v1/messages"

const anthropicVersion = "2023-06-01"

// Anthropic requires an explicit output budget on every call.
const anthropicMaxTokens = 1024

// Anthropic re-keys the manifest: the parameter schema travels as
// input_schema instead of parameters, without the function wrapper.
type anthropicTool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

type anthropicRequest struct {
	Model     string          `json:"model"`
	Messages  []Message       `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
	Tools     []anthropicTool `json:"tools,omitempty"`
}

func buildAnthropicRequest(url string, req Request) (wireRequest, error) {
	body := anthropicRequest{
		Model:     req.Model,
		Messages:  req.Messages,
		MaxTokens: anthropicMaxTokens,
	}
	for _, t := range req.Tools {
		body.Tools = append(body.Tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Parameters,
		})
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return wireRequest{}, fmt.Errorf("failed to marshal anthropic request: %w", err)
	}

	return wireRequest{
		URL: url,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			"x-api-key":         req.APIKey,
			"anthropic-version": anthropicVersion,
		},
		Body: encoded,
	}, nil
}

// anthropicContentBlock is one entry of the response content array:
// either a text block or a tool_use block, distinguished by Type.
type anthropicContentBlock struct {
	Type  string                 `json:"type"`
	Text  string                 `json:"text"`
	Name  string                 `json:"name"`
	Input map[string]interface{} `json:"input"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

// parseAnthropicResponse partitions the content array by block type:
// any tool_use blocks win, otherwise the first text block is the answer.
func parseAnthropicResponse(body []byte) (Result, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{}, fmt.Errorf("failed to decode anthropic response: %w", err)
	}
	if len(resp.Content) == 0 {
		return Result{}, fmt.Errorf("anthropic response has no content blocks")
	}

	var calls []ToolCall
	var text string
	for _, block := range resp.Content {
		switch block.Type {
		case "tool_use":
			args := block.Input
			if args == nil {
				args = map[string]interface{}{}
			}
			calls = append(calls, ToolCall{Name: block.Name, Args: args})
		case "text":
			if text == "" {
				text = block.Text
			}
		}
	}

	if len(calls) > 0 {
		return Result{ToolCalls: calls}, nil
	}
	return Result{Text: text}, nil
}
