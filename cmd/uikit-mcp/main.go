// Command uikit-mcp serves the UI component registry over MCP stdio and
// offers the same queries from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	uikit "github.com/wagiedev/uikit-mcp-go"
	"github.com/wagiedev/uikit-mcp-go/internal/config"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	catalog    string
	logLevel   string
	logFormat  string
}

// app is the state a subcommand runs against, built once per invocation.
type app struct {
	cfg *config.Config
	log *slog.Logger
	reg *uikit.Registry
	srv *uikit.Server
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "uikit-mcp",
		Short: "UI component registry over the Model Context Protocol",
		Long: `uikit-mcp exposes a catalog of UI components to MCP clients.

Run "uikit-mcp serve" from an MCP client configuration to serve the
registry over stdio. The other commands query the same registry
directly from the terminal.

Examples:
  uikit-mcp serve
  uikit-mcp list --category forms
  uikit-mcp search button
  uikit-mcp install button components/ui`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(flags, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default $"+config.EnvConfigPath+" or ~/.config/uikit-mcp/config.yaml)")
	pf.StringVar(&flags.catalog, "catalog", "", "Catalog YAML file (default: embedded catalog)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(
		serveCmd(a),
		categoriesCmd(a),
		listCmd(a),
		searchCmd(a),
		showCmd(a),
		toolsCmd(a),
		callCmd(a),
		installCmd(a),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the registry
// and server.
func (a *app) setup(flags *rootFlags, stderr io.Writer) error {
	cfg, err := config.Load(config.ResolvePath(flags.configPath))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flags.catalog != "" {
		cfg.Catalog.Path = flags.catalog
	}

	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}

	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating flags: %w", err)
	}

	a.cfg = cfg
	a.log = setupLogger(cfg.Logging, stderr)

	if cfg.Catalog.Path != "" {
		a.reg, err = uikit.LoadCatalogFile(cfg.Catalog.Path)
	} else {
		a.reg, err = uikit.DefaultCatalog()
	}

	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	opts := []uikit.Option{
		uikit.WithLogger(a.log),
		uikit.WithName(cfg.Server.Name),
		uikit.WithVersion(serverVersion(cfg.Server.Version)),
		uikit.WithInstructions(cfg.Server.Instructions),
		uikit.WithOverwrite(cfg.Install.Overwrite),
	}

	if cfg.Install.SourceDir != "" {
		opts = append(opts,
			uikit.WithInstallDir(cfg.Install.SourceDir),
			uikit.WithInstallRoot(cfg.Install.Root),
			uikit.WithInstallConcurrency(cfg.Install.Concurrency),
		)
	}

	a.srv, err = uikit.NewServer(a.reg, opts...)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	a.log.Debug("Registry loaded",
		"components", a.reg.Count(),
		"categories", len(a.reg.Categories()),
		"install_enabled", cfg.Install.SourceDir != "",
	)

	return nil
}

// serverVersion prefers the build-time version over the configured default.
func serverVersion(configured string) string {
	if configured == "" || configured == "dev" {
		return version
	}

	return configured
}
