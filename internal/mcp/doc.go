// Package mcp implements the Model Context Protocol adapter for the
// component registry.
//
// The Server owns a fixed dispatch table from tool name to handler. Each
// tool's input schema is generated from its argument struct, and every call
// is validated against it before the handler runs. Handlers read the
// immutable catalog only; the install tool delegates to an Installer.
//
// The same table serves two paths: CallTool for direct programmatic dispatch,
// and an official go-sdk server (Run, Connect) for clients speaking MCP over
// a transport such as stdio. Errors never escape as protocol failures: they
// are encoded as tool results with isError set and a structured
// {"error": {"kind", "message"}} payload.
package mcp
