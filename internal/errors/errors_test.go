package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{ID: "missing"}

	require.Equal(t, `component "missing" not found`, err.Error())
	require.Equal(t, KindNotFound, err.Kind())

	src := &NotFoundError{ID: "button", What: "component source"}
	require.Equal(t, `component source "button" not found`, src.Error())
}

func TestInvalidCategoryError(t *testing.T) {
	err := &InvalidCategoryError{Category: "nonexistent", Valid: []string{"actions", "forms"}}

	require.Equal(t, `invalid category "nonexistent" (valid: actions, forms)`, err.Error())
	require.Equal(t, KindInvalidCategory, err.Kind())

	bare := &InvalidCategoryError{Category: "x"}
	require.Equal(t, `invalid category "x"`, bare.Error())
}

func TestUnsupportedOperationError(t *testing.T) {
	err := &UnsupportedOperationError{Operation: "delete-component"}
	require.Equal(t, `unsupported operation "delete-component"`, err.Error())
	require.NoError(t, err.Unwrap())

	wrapped := &UnsupportedOperationError{Operation: "install-component", Err: ErrInstallUnavailable}
	require.Equal(t, `unsupported operation "install-component": install source not configured`, wrapped.Error())
	require.ErrorIs(t, wrapped, ErrInstallUnavailable)
	require.Equal(t, KindUnsupportedOperation, wrapped.Kind())
}

func TestMalformedRequestError(t *testing.T) {
	root := errors.New("missing properties: [\"id\"]")
	err := &MalformedRequestError{Tool: "get-component", Err: root}

	require.Equal(t, `malformed request for get-component: missing properties: ["id"]`, err.Error())
	require.ErrorIs(t, err, root)
	require.Equal(t, KindMalformedRequest, err.Kind())

	noTool := &MalformedRequestError{Err: root}
	require.Contains(t, noTool.Error(), "malformed request: ")
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{Paths: []string{"ui/button.tsx", "ui/index.ts"}}

	require.Equal(t, "refusing to overwrite existing files: ui/button.tsx, ui/index.ts", err.Error())
	require.Equal(t, KindConflict, err.Kind())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: &NotFoundError{ID: "x"}, want: KindNotFound},
		{name: "wrapped invalid category", err: fmt.Errorf("listing: %w", &InvalidCategoryError{Category: "x"}), want: KindInvalidCategory},
		{name: "malformed", err: &MalformedRequestError{Err: errors.New("bad")}, want: KindMalformedRequest},
		{name: "conflict", err: &ConflictError{Paths: []string{"a"}}, want: KindConflict},
		{name: "plain error", err: errors.New("disk full"), want: KindInternal},
		{name: "nil", err: nil, want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
