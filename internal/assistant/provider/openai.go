package provider

import (
	"encoding/json"
	"fmt"
)

const openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// The Lovable AI gateway exposes an OpenAI-compatible surface; only the
// endpoint and the credential differ.
const lovableChatCompletionsURL = "https://ai.gateway.lovable.dev/v1/chat/completions"

type openAIFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type openAITool struct {
	Type     string         `json:"type"`
	Function openAIFunction `json:"function"`
}

type openAIRequest struct {
	Model    string       `json:"model"`
	Messages []Message    `json:"messages"`
	Tools    []openAITool `json:"tools,omitempty"`
}

func buildOpenAIRequest(url string, req Request) (wireRequest, error) {
	body := openAIRequest{
		Model:    req.Model,
		Messages: req.Messages,
	}
	for _, t := range req.Tools {
		body.Tools = append(body.Tools, openAITool{
			Type: "function",
			Function: openAIFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return wireRequest{}, fmt.Errorf("failed to marshal openai request: %w", err)
	}

	return wireRequest{
		URL: url,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + req.APIKey,
		},
		Body: encoded,
	}, nil
}

type openAIToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content   string           `json:"content"`
			ToolCalls []openAIToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// parseOpenAIResponse normalizes an OpenAI-format response. Tool
// arguments arrive as a JSON-encoded string and are decoded here.
func parseOpenAIResponse(body []byte) (Result, error) {
	var resp openAIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{}, fmt.Errorf("failed to decode openai response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("openai response has no choices")
	}

	message := resp.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		return Result{Text: message.Content}, nil
	}

	calls := make([]ToolCall, 0, len(message.ToolCalls))
	for _, tc := range message.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return Result{}, fmt.Errorf("failed to decode tool call arguments for %q: %w", tc.Function.Name, err)
			}
		}
		calls = append(calls, ToolCall{Name: tc.Function.Name, Args: args})
	}
	return Result{ToolCalls: calls}, nil
}
