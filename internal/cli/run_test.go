package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const passingScenario = `name: cli-pass
run_token: run-token-cli
steps:
  - invoke: double
    input: 21
    expect:
      outcome: ok
      value: 42
  - invoke: divide
    input: [10, 0]
    expect:
      outcome: failure
      message: Cannot divide by zero
`

const failingScenario = `name: cli-fail
run_token: run-token-cli
steps:
  - invoke: double
    input: 21
    expect:
      outcome: ok
      value: 43
`

func TestRun_PassingScenario(t *testing.T) {
	path := writeScenario(t, passingScenario)

	stdout, _, err := executeCommand(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "scenario: cli-pass (run run-token-cli)")
	assert.Contains(t, stdout, "step 1")
	assert.Contains(t, stdout, "step 2")
	assert.Contains(t, stdout, "PASS\n")
	assert.NotContains(t, stdout, "FAIL")
}

func TestRun_FailingScenarioExitsOne(t *testing.T) {
	path := writeScenario(t, failingScenario)

	stdout, _, err := executeCommand(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "FAIL: step 1 (double): expected value 43, got 42")
	assert.Contains(t, stdout, "FAIL\n")
}

func TestRun_MissingFileExitsTwo(t *testing.T) {
	_, _, err := executeCommand(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load scenario")
}

func TestRun_InvalidScenarioExitsTwo(t *testing.T) {
	path := writeScenario(t, "name: no-steps\nsteps: []\n")

	_, _, err := executeCommand(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRun_JSONFormat(t *testing.T) {
	path := writeScenario(t, passingScenario)

	stdout, _, err := executeCommand(t, "run", path, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	report, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cli-pass", report["scenario"])
	assert.Equal(t, "run-token-cli", report["run_token"])
	assert.Equal(t, true, report["pass"])
}
