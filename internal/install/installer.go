// Package install copies a component's source files from an install source
// into a project directory. It is the file-system collaborator behind the
// install-component tool.
//
// The source is an fs.FS laid out as <component-id>/<files...>. Destinations
// are confined to the installer's root: target paths must be local (relative,
// no ".." escape) and every write goes through an os.Root, so a symlink inside
// the root cannot redirect files outside it. Without Overwrite an install that
// would replace any existing file fails before anything is written.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

// DefaultConcurrency is the number of files copied in parallel when
// Options.Concurrency is unset.
const DefaultConcurrency = 4

// Request describes one install.
type Request struct {
	// ID is the component identifier; it names the source directory.
	ID string
	// TargetPath is the destination directory relative to the root.
	TargetPath string
	// Overwrite allows replacing existing files.
	Overwrite bool
}

// Result reports what an install wrote.
type Result struct {
	ID     string   `json:"id"`
	Target string   `json:"target"`
	Files  []string `json:"files"`
}

// Options configures an Installer.
type Options struct {
	// Source holds component directories. Required.
	Source fs.FS
	// Root is the directory target paths resolve against. Defaults to ".".
	Root string
	// Concurrency bounds parallel file copies.
	Concurrency int
	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger
}

// Installer copies component sources into a project tree.
type Installer struct {
	source      fs.FS
	root        string
	concurrency int
	log         *slog.Logger
}

// New creates an Installer.
func New(opts Options) (*Installer, error) {
	if opts.Source == nil {
		return nil, regerrors.ErrInstallUnavailable
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Installer{
		source:      opts.Source,
		root:        root,
		concurrency: concurrency,
		log:         log.With("component", "install"),
	}, nil
}

// NewDir creates an Installer reading sources from the directory sourceDir.
func NewDir(sourceDir string, opts Options) (*Installer, error) {
	if sourceDir == "" {
		return nil, regerrors.ErrInstallUnavailable
	}

	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("install source: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("install source %s is not a directory", sourceDir)
	}

	opts.Source = os.DirFS(sourceDir)

	return New(opts)
}

// Root returns the directory target paths resolve against.
func (i *Installer) Root() string {
	return i.root
}

// Install copies every file under the component's source directory into
// <root>/<TargetPath>, preserving sub-directories.
func (i *Installer) Install(ctx context.Context, req Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	files, err := i.sourceFiles(req.ID)
	if err != nil {
		return nil, err
	}

	target := filepath.Clean(req.TargetPath)
	dests := make([]string, len(files))

	for n, f := range files {
		dests[n] = filepath.Join(target, filepath.FromSlash(f))
	}

	if err := os.MkdirAll(i.root, 0o755); err != nil {
		return nil, fmt.Errorf("creating install root: %w", err)
	}

	root, err := os.OpenRoot(i.root)
	if err != nil {
		return nil, fmt.Errorf("opening install root: %w", err)
	}
	defer root.Close()

	if !req.Overwrite {
		if err := checkConflicts(root, dests); err != nil {
			return nil, err
		}
	}

	i.log.Debug("Installing component",
		"id", req.ID,
		"target", target,
		"files", len(files),
		"overwrite", req.Overwrite,
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for n, f := range files {
		src := path.Join(req.ID, f)
		dst := dests[n]

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			return i.copyFile(root, src, dst)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("installing %s: %w", req.ID, err)
	}

	written := make([]string, len(dests))
	for n, d := range dests {
		written[n] = filepath.ToSlash(d)
	}

	slices.Sort(written)

	return &Result{
		ID:     req.ID,
		Target: filepath.ToSlash(target),
		Files:  written,
	}, nil
}

func validateRequest(req Request) error {
	if req.ID == "" || !fs.ValidPath(req.ID) || path.Base(req.ID) != req.ID {
		return &regerrors.MalformedRequestError{
			Tool: "install-component",
			Err:  fmt.Errorf("invalid component id %q", req.ID),
		}
	}

	if req.TargetPath == "" || !filepath.IsLocal(req.TargetPath) {
		return &regerrors.MalformedRequestError{
			Tool: "install-component",
			Err:  fmt.Errorf("target path %q must be relative and stay inside the project root", req.TargetPath),
		}
	}

	return nil
}

// sourceFiles lists regular files under the component's source directory,
// relative to it, in lexical order.
func (i *Installer) sourceFiles(id string) ([]string, error) {
	info, err := fs.Stat(i.source, id)
	if err != nil || !info.IsDir() {
		return nil, &regerrors.NotFoundError{ID: id, What: "component source"}
	}

	var files []string

	err = fs.WalkDir(i.source, id, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel := p[len(id)+1:]
		files = append(files, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading source for %s: %w", id, err)
	}

	if len(files) == 0 {
		return nil, &regerrors.NotFoundError{ID: id, What: "component source"}
	}

	return files, nil
}

// checkConflicts reports destinations that already exist. Paths that
// resolve outside root fail here rather than being written later.
func checkConflicts(root *os.Root, dests []string) error {
	var conflicts []string

	for _, d := range dests {
		_, err := root.Lstat(d)

		switch {
		case err == nil:
			conflicts = append(conflicts, filepath.ToSlash(d))
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("checking %s: %w", d, err)
		}
	}

	if len(conflicts) > 0 {
		slices.Sort(conflicts)

		return &regerrors.ConflictError{Paths: conflicts}
	}

	return nil
}

// copyFile writes src to dst, a path relative to root.
func (i *Installer) copyFile(root *os.Root, src, dst string) error {
	in, err := i.source.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if err := root.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	out, err := root.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()

		return fmt.Errorf("writing %s: %w", dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	i.log.Debug("Wrote file", "path", dst)

	return nil
}
