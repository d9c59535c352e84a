package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atlas/internal/storage"
)

func seedSection(t *testing.T, path string, idx int) {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.SaveSectionIndex(ctx, idx))
}

func TestSectionShowAndReset(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	output, err := execute(t, "--config", env.configPath, "section", "show")
	require.NoError(t, err)
	require.Contains(t, output, "No section stored.")

	seedSection(t, env.storePath, 2)

	output, err = execute(t, "--config", env.configPath, "section", "show")
	require.NoError(t, err)
	require.Contains(t, output, "atlas.currentSection = 2 (pricing)")

	output, err = execute(t, "--config", env.configPath, "section", "reset")
	require.NoError(t, err)
	require.Contains(t, output, "Section index cleared.")

	output, err = execute(t, "--config", env.configPath, "section", "show")
	require.NoError(t, err)
	require.Contains(t, output, "No section stored.")
}

func TestSectionShowOutOfRange(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	seedSection(t, env.storePath, 7)

	output, err := execute(t, "--config", env.configPath, "section", "show")
	require.NoError(t, err)
	require.Contains(t, output, "out of range")
}
