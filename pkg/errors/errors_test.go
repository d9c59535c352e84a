package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidPanelErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewInvalidPanelError("", "identifier is empty")

	var panelErr *InvalidPanelError
	require.ErrorAs(t, err, &panelErr)
	require.Equal(t, "identifier is empty", panelErr.Reason)
	require.True(t, stdErrors.Is(err, ErrInvalidPanel))
	require.Contains(t, err.Error(), "identifier is empty")
}

func TestInvalidPanelErrorSurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("start dashboard: %w", NewInvalidPanelError(" ", ""))
	require.ErrorIs(t, err, ErrInvalidPanel)
	require.Contains(t, err.Error(), `invalid panel " "`)
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("field colour not found")
	err := NewParseError("atlas.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "atlas.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: atlas.yaml:7: field colour not found", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("atlas.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: atlas.yaml: empty document", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("navigation.initial_panel", "must name a configured tab", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "navigation.initial_panel", validationErr.Field)
	require.Contains(t, err.Error(), "must name a configured tab")
}

func TestStorageErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("database is locked")
	err := NewStorageError("set", "atlas.currentSection", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "set", storageErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "atlas.currentSection")
}
