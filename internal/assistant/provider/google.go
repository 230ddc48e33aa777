package provider

import (
	"encoding/json"
	"fmt"
	"net/url"
)

const googleGenerateContentURL = "https://generativelanguage.googleapis.com/v1beta/models"

type googlePart struct {
	Text         string              `json:"text,omitempty"`
	FunctionCall *googleFunctionCall `json:"functionCall,omitempty"`
}

type googleFunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

type googleContent struct {
	Role  string       `json:"role"`
	Parts []googlePart `json:"parts"`
}

type googleFunctionDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Google nests the manifest one level deeper than the other providers.
type googleToolList struct {
	FunctionDeclarations []googleFunctionDeclaration `json:"functionDeclarations"`
}

type googleRequest struct {
	Contents []googleContent  `json:"contents"`
	Tools    []googleToolList `json:"tools,omitempty"`
}

// buildGoogleRequest remaps the assistant role to "model", wraps each
// message in a parts array, and puts the credential in the query string
// rather than a header, per the Gemini REST convention.
func buildGoogleRequest(baseURL string, req Request) (wireRequest, error) {
	body := googleRequest{}
	for _, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		body.Contents = append(body.Contents, googleContent{
			Role:  role,
			Parts: []googlePart{{Text: m.Content}},
		})
	}

	if len(req.Tools) > 0 {
		declarations := make([]googleFunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			declarations = append(declarations, googleFunctionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			})
		}
		body.Tools = []googleToolList{{FunctionDeclarations: declarations}}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return wireRequest{}, fmt.Errorf("failed to marshal google request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s",
		baseURL, url.PathEscape(req.Model), url.QueryEscape(req.APIKey))

	return wireRequest{
		URL: endpoint,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: encoded,
	}, nil
}

type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []googlePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// parseGoogleResponse scans candidates[0].content.parts by shape: parts
// carrying a functionCall become tool invocations, otherwise the first
// text part is the answer.
func parseGoogleResponse(body []byte) (Result, error) {
	var resp googleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{}, fmt.Errorf("failed to decode google response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return Result{}, fmt.Errorf("google response has no candidates")
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return Result{}, fmt.Errorf("google response has no parts")
	}

	var calls []ToolCall
	for _, part := range parts {
		if part.FunctionCall == nil {
			continue
		}
		args := part.FunctionCall.Args
		if args == nil {
			args = map[string]interface{}{}
		}
		calls = append(calls, ToolCall{Name: part.FunctionCall.Name, Args: args})
	}

	if len(calls) > 0 {
		return Result{ToolCalls: calls}, nil
	}
	return Result{Text: parts[0].Text}, nil
}
