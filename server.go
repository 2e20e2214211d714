package uikit

import (
	"context"
	"fmt"

	"github.com/wagiedev/uikit-mcp-go/internal/install"
	internalmcp "github.com/wagiedev/uikit-mcp-go/internal/mcp"
)

// Server exposes a Registry as MCP tools.
type Server = internalmcp.Server

// ServerState is the adapter lifecycle state.
type ServerState = internalmcp.State

const (
	// StateUninitialized means tool handlers are not yet registered.
	StateUninitialized = internalmcp.StateUninitialized
	// StateReady means the server accepts requests.
	StateReady = internalmcp.StateReady
)

// NewServer creates an MCP server over reg.
//
// install-component is served by the Installer option when set; otherwise
// by a file installer built from InstallSource or InstallDir. With none of
// them the tool reports ErrInstallUnavailable.
//
// Example:
//
//	reg, _ := uikit.DefaultCatalog()
//	srv, err := uikit.NewServer(reg,
//	    uikit.WithLogger(logger),
//	    uikit.WithInstallDir("./registry"),
//	)
func NewServer(reg *Registry, opts ...Option) (*Server, error) {
	options := applyOptions(opts)

	installer, err := buildInstaller(options)
	if err != nil {
		return nil, err
	}

	return internalmcp.NewServer(reg, internalmcp.Options{
		Name:         options.Name,
		Version:      options.Version,
		Instructions: options.Instructions,
		Logger:       options.Logger,
		Installer:    installer,
		Overwrite:    options.Overwrite,
	})
}

// Serve runs an MCP server over stdio until the client disconnects or ctx
// is cancelled. Logs must not be written to stdout while serving.
func Serve(ctx context.Context, reg *Registry, opts ...Option) error {
	srv, err := NewServer(reg, opts...)
	if err != nil {
		return err
	}

	return srv.Run(ctx, StdioTransport())
}

func buildInstaller(o *Options) (Installer, error) {
	if o.Installer != nil {
		return o.Installer, nil
	}

	instOpts := install.Options{
		Source:      o.InstallSource,
		Root:        o.InstallRoot,
		Concurrency: o.InstallConcurrency,
		Logger:      o.Logger,
	}

	switch {
	case o.InstallSource != nil:
		inst, err := install.New(instOpts)
		if err != nil {
			return nil, fmt.Errorf("configuring installer: %w", err)
		}

		return inst, nil
	case o.InstallDir != "":
		inst, err := install.NewDir(o.InstallDir, instOpts)
		if err != nil {
			return nil, fmt.Errorf("configuring installer: %w", err)
		}

		return inst, nil
	default:
		return nil, nil
	}
}
