package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

const methodCallTool = "tools/call"

type callIDKey struct{}

func newCallID() string {
	return ulid.Make().String()
}

func withCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

func callIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callIDKey{}).(string)

	return id, ok
}

// loggingMiddleware tags every inbound request with a call id and logs its
// outcome.
func (s *Server) loggingMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		callID := newCallID()
		log := s.log.With("call_id", callID, "method", method)

		if ct, ok := req.(*mcp.CallToolRequest); ok && ct.Params != nil {
			log = log.With("tool", ct.Params.Name)
		}

		start := time.Now()
		res, err := next(withCallID(ctx, callID), method, req)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			log.Warn("Request failed", "error", err, "duration", elapsed)
		case isErrorResult(res):
			log.Info("Tool call returned error", "duration", elapsed)
		default:
			log.Debug("Request handled", "duration", elapsed)
		}

		return res, err
	}
}

// unsupportedToolMiddleware answers tools/call for names outside the
// dispatch table with an unsupported_operation tool result, so clients get
// the same error shape as for every other failure.
func (s *Server) unsupportedToolMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if method != methodCallTool {
			return next(ctx, method, req)
		}

		ct, ok := req.(*mcp.CallToolRequest)
		if !ok || ct.Params == nil {
			return next(ctx, method, req)
		}

		if _, known := s.tools[ToolName(ct.Params.Name)]; !known {
			return ErrorResult(&regerrors.UnsupportedOperationError{Operation: ct.Params.Name}), nil
		}

		return next(ctx, method, req)
	}
}

func isErrorResult(res mcp.Result) bool {
	tr, ok := res.(*mcp.CallToolResult)

	return ok && tr != nil && tr.IsError
}
