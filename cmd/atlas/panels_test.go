package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanelsListTable(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	output, err := execute(t, "--config", env.configPath, "panels", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 11)
	require.Contains(t, lines[0], "KIND")
	require.Contains(t, output, "pricing")
	require.Contains(t, output, "roadmap")
}

func TestPanelsListJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	output, err := execute(t, "--config", env.configPath, "panels", "list", "--json")
	require.NoError(t, err)

	var payload panelsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Equal(t, 10, payload.Count)
	require.Equal(t, "tab", payload.Panels[0].Kind)
	require.Equal(t, "home", payload.Panels[0].ID)
}

func TestPanelsFind(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	output, err := execute(t, "--config", env.configPath, "panels", "find", "plans", "--json")
	require.NoError(t, err)

	var payload panelsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.GreaterOrEqual(t, payload.Count, 2)
	require.Equal(t, "pricing", payload.Panels[0].ID)
	require.Equal(t, "roadmap", payload.Panels[1].ID)

	output, err = execute(t, "--config", env.configPath, "panels", "find", "zzzzzzzz")
	require.NoError(t, err)
	require.Contains(t, output, "Nothing matches")
}

func TestPanelsFindRequiresQuery(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := execute(t, "--config", env.configPath, "panels", "find")
	require.Error(t, err)
}
