package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	uikit "github.com/wagiedev/uikit-mcp-go"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry over MCP stdio",
		Long: `Serve the registry to an MCP client over stdin/stdout.

Messages are newline-delimited JSON-RPC. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.Info("Serving registry over stdio",
				"name", a.srv.Name(),
				"version", a.srv.Version(),
				"components", a.reg.Count(),
			)

			if err := a.srv.Run(cmd.Context(), transportFor(cmd)); err != nil {
				return fmt.Errorf("serving: %w", err)
			}

			a.log.Info("Server stopped")

			return nil
		},
	}
}

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List component categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := a.call(cmd, uikit.ToolListCategories, nil)
			if err != nil {
				return err
			}

			listing, ok := value.(uikit.CategoryListing)
			if !ok {
				return unexpectedResult(uikit.ToolListCategories, value)
			}

			printCategories(cmd.OutOrStdout(), listing)

			return nil
		},
	}
}

func listCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components",
		Long: `List component summaries.

Examples:
  uikit-mcp list
  uikit-mcp list --category forms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := map[string]any{}
			if category != "" {
				args["category"] = category
			}

			value, err := a.call(cmd, uikit.ToolListComponents, args)
			if err != nil {
				return err
			}

			listing, ok := value.(uikit.ComponentListing)
			if !ok {
				return unexpectedResult(uikit.ToolListComponents, value)
			}

			title := "Components"
			if listing.Category != "" {
				title = fmt.Sprintf("Components in %s", listing.Category)
			}

			printSummaries(cmd.OutOrStdout(), title, listing.Components)

			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list components in this category")

	return cmd
}

func searchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search components by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			value, err := a.call(cmd, uikit.ToolSearchComponents, map[string]any{"query": query})
			if err != nil {
				return err
			}

			listing, ok := value.(uikit.SearchListing)
			if !ok {
				return unexpectedResult(uikit.ToolSearchComponents, value)
			}

			printSummaries(cmd.OutOrStdout(), fmt.Sprintf("Results for %q", listing.Query), listing.Components)

			return nil
		},
	}
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a component's props, usage and dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.call(cmd, uikit.ToolGetComponent, map[string]any{"id": args[0]})
			if err != nil {
				return err
			}

			c, ok := value.(uikit.Component)
			if !ok {
				return unexpectedResult(uikit.ToolGetComponent, value)
			}

			printComponent(cmd.OutOrStdout(), c)

			return nil
		},
	}
}

func toolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Show the server identity and the MCP tools it exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printServer(cmd.OutOrStdout(), a.srv.ServerInfo(), a.srv.Capabilities())
			printTools(cmd.OutOrStdout(), a.srv.ListTools())

			return nil
		},
	}
}

func callCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke a tool and print its result as JSON",
		Long: `Invoke a tool exactly as an MCP client would and print the result.

Examples:
  uikit-mcp call list-categories
  uikit-mcp call get-component '{"id":"button"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &input); err != nil {
					return &uikit.MalformedRequestError{
						Tool: args[0],
						Err:  fmt.Errorf("arguments must be a JSON object: %w", err),
					}
				}
			}

			result, err := a.srv.CallToolMap(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if isError, _ := result["is_error"].(bool); isError {
				return fmt.Errorf("tool %s returned an error", args[0])
			}

			return nil
		},
	}
}

func installCmd(a *app) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "install <id> <target-path>",
		Short: "Copy a component's source files into the project",
		Long: `Copy a component's source files into <target-path>, relative to the
install root.

Requires install.source_dir in the config file. Existing files are left
untouched unless --overwrite is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.call(cmd, uikit.ToolInstallComponent, map[string]any{
				"id":         args[0],
				"targetPath": args[1],
				"overwrite":  overwrite,
			})
			if err != nil {
				if errors.Is(err, uikit.ErrInstallUnavailable) {
					return fmt.Errorf("%w (set install.source_dir in the config file)", err)
				}

				return err
			}

			result, ok := value.(*uikit.InstallResult)
			if !ok {
				return unexpectedResult(uikit.ToolInstallComponent, value)
			}

			printInstall(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace files that already exist")

	return cmd
}

// call dispatches a tool through the server so the CLI and MCP clients
// share validation and error kinds.
func (a *app) call(cmd *cobra.Command, tool uikit.ToolName, args map[string]any) (any, error) {
	var raw json.RawMessage

	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encoding arguments: %w", err)
		}

		raw = data
	}

	return a.srv.Call(cmd.Context(), string(tool), raw)
}

func unexpectedResult(tool uikit.ToolName, value any) error {
	return fmt.Errorf("%s returned unexpected %T", tool, value)
}

// transportFor serves over the process stdio, or over the command's
// streams when they have been redirected.
func transportFor(cmd *cobra.Command) uikit.Transport {
	out := cmd.OutOrStdout()
	if out == os.Stdout {
		return uikit.StdioTransport()
	}

	return uikit.IOTransport(cmd.InOrStdin(), out)
}
