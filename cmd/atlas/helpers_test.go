package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	dir        string
	configPath string
	storePath  string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	env := testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.yaml"),
		storePath:  filepath.Join(dir, "state", "atlas.db"),
	}
	content := fmt.Sprintf("storage:\n  path: %s\nlogging:\n  file: %s\n", env.storePath, filepath.Join(dir, "atlas.log"))
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0o644))
	return env
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(newAppContext())
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
