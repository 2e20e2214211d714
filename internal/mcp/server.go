package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/uikit-mcp-go/internal/catalog"
	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
	"github.com/wagiedev/uikit-mcp-go/internal/install"
)

// State is the adapter lifecycle state.
type State int32

const (
	// StateUninitialized means tool handlers are not yet registered.
	StateUninitialized State = iota
	// StateReady means the dispatch table is complete and requests are served.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Installer is the file-copy collaborator behind install-component.
type Installer interface {
	Install(ctx context.Context, req install.Request) (*install.Result, error)
}

// Options configures a Server.
type Options struct {
	// Name and Version are advertised in the initialize response.
	Name    string
	Version string
	// Instructions are sent to clients as server usage hints.
	Instructions string
	// Logger receives request logs. Nil disables logging.
	Logger *slog.Logger
	// Installer handles install-component. Nil makes the tool report
	// an unsupported operation.
	Installer Installer
	// Overwrite makes every install replace existing files.
	Overwrite bool
}

// Server exposes a catalog.Registry as MCP tools.
//
// Tool calls are served one at a time; the registry is read-only so the
// lock only enforces request ordering.
type Server struct {
	name      string
	version   string
	log       *slog.Logger
	registry  *catalog.Registry
	installer Installer
	overwrite bool

	tools map[ToolName]*toolSpec
	sdk   *mcp.Server

	callMu sync.Mutex
	state  atomic.Int32
}

// NewServer registers the tool handlers for reg and returns a Ready server.
func NewServer(reg *catalog.Registry, opts Options) (*Server, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}

	name := opts.Name
	if name == "" {
		name = "uikit-mcp"
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		name:      name,
		version:   version,
		log:       log.With("component", "mcp"),
		registry:  reg,
		installer: opts.Installer,
		overwrite: opts.Overwrite,
	}

	tools, err := s.buildTools()
	if err != nil {
		return nil, err
	}

	s.tools = tools

	s.sdk = mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: opts.Instructions,
	})

	for _, tn := range AllTools {
		s.sdk.AddTool(s.tools[tn].tool, s.handleToolCall)
	}

	s.sdk.AddReceivingMiddleware(s.loggingMiddleware, s.unsupportedToolMiddleware)

	s.state.Store(int32(StateReady))
	s.log.Debug("MCP server ready", "name", name, "version", version, "tools", len(s.tools))

	return s, nil
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version.
func (s *Server) Version() string {
	return s.version
}

// State returns the lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Registry returns the catalog the server reads from.
func (s *Server) Registry() *catalog.Registry {
	return s.registry
}

// ServerInfo returns the identity advertised in the initialize response.
func (s *Server) ServerInfo() map[string]any {
	return map[string]any{
		"name":    s.name,
		"version": s.version,
	}
}

// Capabilities returns the capability set advertised in the initialize
// response.
func (s *Server) Capabilities() map[string]any {
	return map[string]any{
		"tools": map[string]any{},
	}
}

// Run serves MCP over transport until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	if s.State() != StateReady {
		return errors.New("server is not ready")
	}

	s.log.Info("Serving MCP", "name", s.name, "version", s.version)

	err := s.sdk.Run(ctx, transport)
	if err != nil && ctx.Err() != nil {
		// Cancellation is a normal shutdown.
		return nil
	}

	return err
}

// Connect starts a single session over transport without blocking.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.sdk.Connect(ctx, transport, nil)
}

// ListTools returns metadata for all registered tools in dispatch order.
// The result format matches what the control protocol expects.
func (s *Server) ListTools() []map[string]any {
	result := make([]map[string]any, 0, len(s.tools))

	for _, tn := range AllTools {
		t := s.tools[tn].tool
		toolMap := map[string]any{
			"name":        t.Name,
			"description": t.Description,
		}

		// Convert InputSchema to map[string]any for the control protocol
		if t.InputSchema != nil {
			if schemaMap, err := toMap(t.InputSchema); err == nil {
				toolMap["inputSchema"] = schemaMap
			}
		}

		if t.Annotations != nil {
			if annotMap, err := toMap(t.Annotations); err == nil {
				toolMap["annotations"] = annotMap
			}
		}

		result = append(result, toolMap)
	}

	return result
}

// Call dispatches a tool by name and returns the handler's value.
// Unknown names yield an UnsupportedOperationError and invalid arguments a
// MalformedRequestError.
func (s *Server) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	spec, ok := s.tools[ToolName(name)]
	if !ok {
		return nil, &regerrors.UnsupportedOperationError{Operation: name}
	}

	s.callMu.Lock()
	defer s.callMu.Unlock()

	return spec.call(ctx, args)
}

// CallTool executes a tool and encodes the outcome as a CallToolResult.
// Failures are reported in the result, never as a Go error.
func (s *Server) CallTool(ctx context.Context, name string, args json.RawMessage) *mcp.CallToolResult {
	callID, ok := callIDFrom(ctx)
	if !ok {
		callID = newCallID()
	}

	log := s.log.With("call_id", callID, "tool", name)
	start := time.Now()

	value, err := s.Call(ctx, name, args)
	if err != nil {
		kind := regerrors.KindOf(err)
		if kind == regerrors.KindInternal {
			log.Error("Tool failed", "error", err, "duration", time.Since(start))
		} else {
			log.Debug("Tool rejected call", "kind", kind, "error", err)
		}

		return ErrorResult(err)
	}

	result, err := JSONResult(value)
	if err != nil {
		log.Error("Failed to encode tool result", "error", err)

		return ErrorResult(err)
	}

	log.Debug("Tool call complete", "duration", time.Since(start))

	return result
}

// CallToolMap executes a tool with map input and returns the result in plain
// map form, as printed by the call command.
func (s *Server) CallToolMap(ctx context.Context, name string, input map[string]any) (map[string]any, error) {
	if input == nil {
		input = map[string]any{}
	}

	inputBytes, err := json.Marshal(input)
	if err != nil {
		//nolint:nilerr // Intentionally return nil error - error is encoded in the result
		return convertCallToolResultToMap(ErrorResult(&regerrors.MalformedRequestError{
			Tool: name,
			Err:  fmt.Errorf("failed to marshal input: %w", err),
		})), nil
	}

	return convertCallToolResultToMap(s.CallTool(ctx, name, inputBytes)), nil
}

// handleToolCall adapts the dispatch table to the go-sdk raw tool handler.
func (s *Server) handleToolCall(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if req == nil || req.Params == nil {
		return ErrorResult(&regerrors.MalformedRequestError{Err: errors.New("missing params")}), nil
	}

	return s.CallTool(ctx, req.Params.Name, req.Params.Arguments), nil
}

func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return m, nil
}
