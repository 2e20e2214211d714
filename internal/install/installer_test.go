package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"button/button.tsx":         {Data: []byte("export function Button() {}\n")},
		"button/variants/button.ts": {Data: []byte("export const variants = {}\n")},
		"badge/badge.tsx":           {Data: []byte("export function Badge() {}\n")},
		"empty/.keep":               {Mode: os.ModeDir},
	}
}

func newTestInstaller(t *testing.T) (*Installer, string) {
	t.Helper()

	root := t.TempDir()
	inst, err := New(Options{Source: testSource(), Root: root, Concurrency: 2})
	require.NoError(t, err)

	return inst, root
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(Options{})
	require.ErrorIs(t, err, regerrors.ErrInstallUnavailable)

	_, err = NewDir("", Options{})
	require.ErrorIs(t, err, regerrors.ErrInstallUnavailable)

	_, err = NewDir(filepath.Join(t.TempDir(), "missing"), Options{})
	require.Error(t, err)
}

func TestNewDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "card"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "card", "card.tsx"), []byte("card"), 0o644))

	root := t.TempDir()
	inst, err := NewDir(src, Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, root, inst.Root())

	res, err := inst.Install(context.Background(), Request{ID: "card", TargetPath: "components/ui"})
	require.NoError(t, err)
	assert.Equal(t, []string{"components/ui/card.tsx"}, res.Files)

	notDir := filepath.Join(src, "card", "card.tsx")
	_, err = NewDir(notDir, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestInstall(t *testing.T) {
	inst, root := newTestInstaller(t)

	res, err := inst.Install(context.Background(), Request{ID: "button", TargetPath: "src/components/ui"})
	require.NoError(t, err)

	assert.Equal(t, "button", res.ID)
	assert.Equal(t, "src/components/ui", res.Target)
	assert.Equal(t, []string{
		"src/components/ui/button.tsx",
		"src/components/ui/variants/button.ts",
	}, res.Files)

	data, err := os.ReadFile(filepath.Join(root, "src", "components", "ui", "variants", "button.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export const variants = {}\n", string(data))
}

func TestInstall_Conflict(t *testing.T) {
	inst, root := newTestInstaller(t)
	ctx := context.Background()

	dir := filepath.Join(root, "ui")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "button.tsx"), []byte("local edits"), 0o644))

	_, err := inst.Install(ctx, Request{ID: "button", TargetPath: "ui"})

	var conflict *regerrors.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []string{"ui/button.tsx"}, conflict.Paths)

	// Nothing was written, including the non-conflicting file.
	_, statErr := os.Stat(filepath.Join(dir, "variants", "button.ts"))
	require.ErrorIs(t, statErr, os.ErrNotExist)

	data, err := os.ReadFile(filepath.Join(dir, "button.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "local edits", string(data))

	res, err := inst.Install(ctx, Request{ID: "button", TargetPath: "ui", Overwrite: true})
	require.NoError(t, err)
	assert.Len(t, res.Files, 2)

	data, err = os.ReadFile(filepath.Join(dir, "button.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export function Button() {}\n", string(data))
}

func TestInstall_InvalidRequests(t *testing.T) {
	inst, _ := newTestInstaller(t)

	tests := []struct {
		name string
		req  Request
		kind regerrors.Kind
	}{
		{name: "escaping target", req: Request{ID: "button", TargetPath: "../outside"}, kind: regerrors.KindMalformedRequest},
		{name: "absolute target", req: Request{ID: "button", TargetPath: "/tmp/x"}, kind: regerrors.KindMalformedRequest},
		{name: "empty target", req: Request{ID: "button"}, kind: regerrors.KindMalformedRequest},
		{name: "empty id", req: Request{TargetPath: "ui"}, kind: regerrors.KindMalformedRequest},
		{name: "nested id", req: Request{ID: "button/variants", TargetPath: "ui"}, kind: regerrors.KindMalformedRequest},
		{name: "missing source", req: Request{ID: "dialog", TargetPath: "ui"}, kind: regerrors.KindNotFound},
		{name: "source without files", req: Request{ID: "empty", TargetPath: "ui"}, kind: regerrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := inst.Install(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.kind, regerrors.KindOf(err))
		})
	}
}

func TestInstall_CancelledContext(t *testing.T) {
	inst, root := newTestInstaller(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inst.Install(ctx, Request{ID: "badge", TargetPath: "ui"})
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(root, "ui", "badge.tsx"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestInstall_SymlinkEscape(t *testing.T) {
	inst, root := newTestInstaller(t)
	outside := t.TempDir()

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	for _, overwrite := range []bool{false, true} {
		_, err := inst.Install(context.Background(), Request{
			ID:         "badge",
			TargetPath: "link/ui",
			Overwrite:  overwrite,
		})
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(outside, "ui", "badge.tsx"))
		require.ErrorIs(t, statErr, os.ErrNotExist)
	}
}

func TestInstall_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	inst, err := New(Options{Source: testSource(), Root: root})
	require.NoError(t, err)

	res, err := inst.Install(context.Background(), Request{ID: "badge", TargetPath: "ui"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/badge.tsx"}, res.Files)

	_, err = os.Stat(filepath.Join(root, "ui", "badge.tsx"))
	require.NoError(t, err)
}
