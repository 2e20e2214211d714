package uikit

import (
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/uikit-mcp-go/internal/install"
	internalmcp "github.com/wagiedev/uikit-mcp-go/internal/mcp"
)

// Re-export MCP SDK types for public API.
type (
	// CallToolResult is the server's response to a tool call.
	CallToolResult = mcp.CallToolResult

	// McpTextContent represents text content in a tool result.
	McpTextContent = mcp.TextContent

	// McpTool represents an MCP tool definition from the official SDK.
	McpTool = mcp.Tool

	// Transport carries JSON-RPC messages between client and server.
	Transport = mcp.Transport
)

// StdioTransport returns a transport over the process stdin and stdout.
func StdioTransport() Transport {
	return &mcp.StdioTransport{}
}

// IOTransport returns a newline-delimited JSON-RPC transport over r and w.
// Closing the transport does not close r or w.
func IOTransport(r io.Reader, w io.Writer) Transport {
	return &mcp.IOTransport{
		Reader: io.NopCloser(r),
		Writer: nopWriteCloser{w},
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ToolName identifies a tool in the server's dispatch table.
type ToolName = internalmcp.ToolName

// Tool names.
const (
	ToolListCategories   = internalmcp.ToolListCategories
	ToolListComponents   = internalmcp.ToolListComponents
	ToolSearchComponents = internalmcp.ToolSearchComponents
	ToolGetComponent     = internalmcp.ToolGetComponent
	ToolInstallComponent = internalmcp.ToolInstallComponent
)

// Tools returns every tool name in registration order.
func Tools() []ToolName {
	out := make([]ToolName, len(internalmcp.AllTools))
	copy(out, internalmcp.AllTools)

	return out
}

// Tool result payloads.
type (
	// CategoryListing is the list-categories result.
	CategoryListing = internalmcp.CategoryListing
	// CategoryEntry is one row of CategoryListing.
	CategoryEntry = internalmcp.CategoryEntry
	// ComponentListing is the list-components result.
	ComponentListing = internalmcp.ComponentListing
	// SearchListing is the search-components result.
	SearchListing = internalmcp.SearchListing
	// ErrorPayload is the structured content of an error result.
	ErrorPayload = internalmcp.ErrorPayload
	// ErrorDetail describes a failed tool call.
	ErrorDetail = internalmcp.ErrorDetail
)

// Installer is the file-copy collaborator behind install-component.
type Installer = internalmcp.Installer

// InstallRequest describes one install.
type InstallRequest = install.Request

// InstallResult reports what an install wrote.
type InstallResult = install.Result
