package uikit

import (
	"io/fs"
	"log/slog"
)

// Options configures a Server.
type Options struct {
	// Logger is the slog logger for request logs.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Name and Version are advertised to MCP clients.
	Name    string
	Version string

	// Instructions are sent to clients as server usage hints.
	Instructions string

	// Installer handles install-component. It takes precedence over
	// InstallSource and InstallDir.
	Installer Installer

	// InstallSource holds one directory per component.
	InstallSource fs.FS

	// InstallDir is a directory laid out like InstallSource.
	// Ignored when InstallSource is set.
	InstallDir string

	// InstallRoot is the directory target paths resolve against.
	// Defaults to the working directory.
	InstallRoot string

	// InstallConcurrency bounds parallel file copies.
	InstallConcurrency int

	// Overwrite makes every install replace existing files.
	Overwrite bool
}

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for request logs.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithName sets the server name advertised to clients.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithVersion sets the server version advertised to clients.
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithInstructions sets the usage hints sent in the initialize response.
func WithInstructions(instructions string) Option {
	return func(o *Options) {
		o.Instructions = instructions
	}
}

// WithInstaller sets a custom install-component collaborator.
func WithInstaller(installer Installer) Option {
	return func(o *Options) {
		o.Installer = installer
	}
}

// WithInstallSource sets the file system component sources are copied from.
func WithInstallSource(source fs.FS) Option {
	return func(o *Options) {
		o.InstallSource = source
	}
}

// WithInstallDir reads component sources from a directory.
func WithInstallDir(dir string) Option {
	return func(o *Options) {
		o.InstallDir = dir
	}
}

// WithInstallRoot sets the directory target paths resolve against.
func WithInstallRoot(root string) Option {
	return func(o *Options) {
		o.InstallRoot = root
	}
}

// WithInstallConcurrency bounds how many files an install copies at once.
func WithInstallConcurrency(n int) Option {
	return func(o *Options) {
		o.InstallConcurrency = n
	}
}

// WithOverwrite lets every install replace existing files.
func WithOverwrite(overwrite bool) Option {
	return func(o *Options) {
		o.Overwrite = overwrite
	}
}
