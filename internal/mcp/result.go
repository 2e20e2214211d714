package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

// ErrorDetail describes a failed tool call.
type ErrorDetail struct {
	Kind    regerrors.Kind `json:"kind"`
	Message string         `json:"message"`
}

// ErrorPayload is the structured content of an error result.
type ErrorPayload struct {
	Error ErrorDetail `json:"error"`
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// JSONResult creates a CallToolResult carrying v as structured content and
// as a JSON text block for clients that only read text.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}

	result := TextResult(string(data))
	result.StructuredContent = v

	return result, nil
}

// ErrorResult creates a CallToolResult indicating an error. The text block
// reads "<kind>: <message>".
func ErrorResult(err error) *mcp.CallToolResult {
	detail := ErrorDetail{
		Kind:    regerrors.KindOf(err),
		Message: err.Error(),
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s: %s", detail.Kind, detail.Message)},
		},
		StructuredContent: ErrorPayload{Error: detail},
		IsError:           true,
	}
}

// convertCallToolResultToMap converts a CallToolResult to the plain map form
// printed by the CLI. Only text content is produced by this server.
func convertCallToolResultToMap(result *mcp.CallToolResult) map[string]any {
	if result == nil {
		return map[string]any{
			"content": []map[string]any{},
		}
	}

	content := make([]map[string]any, 0, len(result.Content))
	for _, c := range result.Content {
		if v, ok := c.(*mcp.TextContent); ok {
			content = append(content, map[string]any{
				"type": "text",
				"text": v.Text,
			})
		}
	}

	resultMap := map[string]any{
		"content": content,
	}

	if result.StructuredContent != nil {
		resultMap["structuredContent"] = result.StructuredContent
	}

	if result.IsError {
		resultMap["is_error"] = true
	}

	return resultMap
}
