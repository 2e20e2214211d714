package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	uikit "github.com/wagiedev/uikit-mcp-go"
)

func printCategories(w io.Writer, listing uikit.CategoryListing) {
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "  Categories")
	cyan.Fprintln(w, "  ----------")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  CATEGORY\tCOUNT\tDESCRIPTION")

	for _, c := range listing.Categories {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", c.Category, c.Count, c.Description)
	}

	tw.Flush()
	fmt.Fprintln(w)
}

func printSummaries(w io.Writer, title string, summaries []uikit.Summary) {
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "  %s\n", title)
	cyan.Fprintf(w, "  %s\n", strings.Repeat("-", len(title)))

	if len(summaries) == 0 {
		fmt.Fprintln(w, "  (no components)")
		fmt.Fprintln(w)

		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tCATEGORY\tDESCRIPTION")

	for _, s := range summaries {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.ID, s.Category, s.Description)
	}

	tw.Flush()
	fmt.Fprintf(w, "\n  %d component(s)\n\n", len(summaries))
}

func printComponent(w io.Writer, c uikit.Component) {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "  %s", c.Name)
	fmt.Fprintf(w, " (%s, %s)\n", c.ID, c.Category)
	fmt.Fprintf(w, "  %s\n", c.Description)

	if len(c.Props) > 0 {
		fmt.Fprintln(w)
		yellow.Fprintln(w, "  Props:")

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, p := range c.Props {
			req := ""
			if p.Required {
				req = "required"
			}

			def := ""
			if p.Default != "" {
				def = "default " + p.Default
			}

			fmt.Fprintf(tw, "    %s\t%s\t%s\t%s\n", p.Name, p.Type, req, def)
		}

		tw.Flush()
	}

	if len(c.Usage) > 0 {
		fmt.Fprintln(w)
		yellow.Fprintln(w, "  Usage:")

		for _, u := range c.Usage {
			fmt.Fprintf(w, "    %s\n", u)
		}
	}

	if len(c.Tags) > 0 {
		fmt.Fprintln(w)
		yellow.Fprint(w, "  Tags: ")
		fmt.Fprintln(w, strings.Join(c.Tags, ", "))
	}

	if len(c.Dependencies) > 0 {
		yellow.Fprint(w, "  Dependencies: ")
		fmt.Fprintln(w, strings.Join(c.Dependencies, ", "))
	}

	fmt.Fprintln(w)
}

func printServer(w io.Writer, info, capabilities map[string]any) {
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "  %v", info["name"])
	fmt.Fprintf(w, " %v\n", info["version"])
	fmt.Fprintf(w, "  capabilities: %s\n", strings.Join(slices.Sorted(maps.Keys(capabilities)), ", "))
}

func printTools(w io.Writer, tools []map[string]any) {
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "  Tools")
	cyan.Fprintln(w, "  -----")

	for _, t := range tools {
		fmt.Fprintln(w)
		cyan.Fprintf(w, "  %v\n", t["name"])
		fmt.Fprintf(w, "    %v\n", t["description"])

		schema, _ := t["inputSchema"].(map[string]any)
		for _, arg := range schemaArgs(schema) {
			fmt.Fprintf(w, "      %s\n", arg)
		}
	}

	fmt.Fprintln(w)
}

// schemaArgs renders the properties of an object schema as
// "name: type (required)" lines in name order.
func schemaArgs(schema map[string]any) []string {
	props, _ := schema["properties"].(map[string]any)
	if len(props) == 0 {
		return []string{"(no arguments)"}
	}

	required := map[string]bool{}
	if list, ok := schema["required"].([]any); ok {
		for _, r := range list {
			if name, ok := r.(string); ok {
				required[name] = true
			}
		}
	}

	lines := make([]string, 0, len(props))
	for _, name := range slices.Sorted(maps.Keys(props)) {
		line := name

		if prop, ok := props[name].(map[string]any); ok {
			if typ, ok := prop["type"].(string); ok {
				line += ": " + typ
			}
		}

		if required[name] {
			line += " (required)"
		}

		lines = append(lines, line)
	}

	return lines
}

func printInstall(w io.Writer, result *uikit.InstallResult) {
	green := color.New(color.FgGreen)

	green.Fprintf(w, "✓ Installed %s into %s\n", result.ID, result.Target)

	for _, f := range result.Files {
		fmt.Fprintf(w, "    %s\n", f)
	}
}
