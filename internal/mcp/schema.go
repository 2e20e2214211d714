package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

// toolSpec holds tool metadata and the bound handler for the dispatch table.
type toolSpec struct {
	name     ToolName
	tool     *mcp.Tool
	resolved *jsonschema.Resolved
	call     func(ctx context.Context, args json.RawMessage) (any, error)
}

// bind builds a toolSpec whose input schema is inferred from In. Arguments
// are validated against the schema and then decoded into In before fn runs.
func bind[In any](
	name ToolName,
	description string,
	annotations *mcp.ToolAnnotations,
	fn func(ctx context.Context, in In) (any, error),
) (*toolSpec, error) {
	schema, err := jsonschema.For[In](nil)
	if err != nil {
		return nil, fmt.Errorf("inferring schema for %s: %w", name, err)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolving schema for %s: %w", name, err)
	}

	spec := &toolSpec{
		name:     name,
		tool:     NewTool(string(name), description, schema),
		resolved: resolved,
	}
	spec.tool.Annotations = annotations

	spec.call = func(ctx context.Context, args json.RawMessage) (any, error) {
		var in In
		if err := decodeArguments(name, resolved, args, &in); err != nil {
			return nil, err
		}

		return fn(ctx, in)
	}

	return spec, nil
}

// decodeArguments validates raw tool arguments against resolved and decodes
// them into dst. Absent or null arguments are treated as an empty object.
func decodeArguments(name ToolName, resolved *jsonschema.Resolved, raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	var instance map[string]any
	if err := json.Unmarshal(trimmed, &instance); err != nil {
		return &regerrors.MalformedRequestError{
			Tool: string(name),
			Err:  fmt.Errorf("arguments must be a JSON object: %w", err),
		}
	}

	if err := resolved.Validate(instance); err != nil {
		return &regerrors.MalformedRequestError{Tool: string(name), Err: err}
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return &regerrors.MalformedRequestError{Tool: string(name), Err: err}
	}

	return nil
}

// NewTool creates an mcp.Tool with the given parameters.
func NewTool(name, description string, inputSchema *jsonschema.Schema) *mcp.Tool {
	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}
}
