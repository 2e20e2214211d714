// Package uikit serves a UI component registry over the Model Context
// Protocol.
//
// The registry is an immutable catalog of component metadata (props, usage
// examples, tags, dependencies) grouped into a fixed set of categories. It is
// built once at startup and passed explicitly to the server; nothing in this
// package keeps process-wide state.
//
// # Basic Usage
//
// Serve the embedded catalog over stdio:
//
//	reg, err := uikit.DefaultCatalog()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := uikit.Serve(ctx, reg, uikit.WithVersion("1.0.0")); err != nil {
//	    log.Fatal(err)
//	}
//
// # Querying Directly
//
// The registry can be queried without a protocol round-trip:
//
//	for _, c := range reg.Search("button") {
//	    fmt.Println(c.ID, c.Description)
//	}
//
//	members, err := reg.ByCategory("forms")
//
// # Tools
//
// The server exposes five tools: list-categories, list-components,
// search-components, get-component and install-component. Invoke them
// without a transport through Server.Call or Server.CallTool:
//
//	srv, _ := uikit.NewServer(reg)
//	result := srv.CallTool(ctx, uikit.ToolGetComponent, json.RawMessage(`{"id":"button"}`))
//
// # Installing Sources
//
// install-component copies a component's files from an install source laid
// out as <id>/<files...> into the project. Configure it with WithInstallDir
// or WithInstallSource. Target paths must stay inside the install root, and
// existing files are only replaced when overwrite is requested.
//
// # Error Handling
//
// Failures carry a Kind (not_found, invalid_category, unsupported_operation,
// malformed_request, conflict, internal):
//
//	_, err := reg.Get("missing")
//	if nf, ok := errors.AsType[*uikit.NotFoundError](err); ok {
//	    log.Printf("no component %q", nf.ID)
//	}
//
// Over MCP the same errors come back as tool results with isError set and a
// structured {"error": {"kind", "message"}} payload.
package uikit
