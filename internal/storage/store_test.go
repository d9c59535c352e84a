package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atlas/internal/navigation"
	apperrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "state", "atlas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	require.NoError(t, s.Set(ctx, "theme", "light"))

	value, ok, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", value)

	require.NoError(t, s.Delete(ctx, "theme"))
	require.NoError(t, s.Delete(ctx, "theme"))
	_, ok, err = s.Get(ctx, "theme")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSectionIndexRoundTripAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "atlas.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSectionIndex(ctx, 2))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	idx, ok, err := reopened.LoadSectionIndex(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func TestLoadSectionIndexIgnoresMalformedValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.Set(ctx, SectionKey, "not-a-number"))
	_, ok, err := s.LoadSectionIndex(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, SectionKey, "-4"))
	_, ok, err = s.LoadSectionIndex(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), " ")
	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "open", storageErr.Op)
}

func TestStoreServesAsSectionRecorderTarget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t)
	sections := navigation.Panels("vision", "features", "pricing")

	c, err := navigation.New("vision", navigation.WithScope("sections"))
	require.NoError(t, err)
	c.Subscribe(navigation.SectionRecorder(ctx, s, sections))

	c.NavigateTo("pricing")
	idx, ok, err := s.LoadSectionIndex(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, idx)
}
