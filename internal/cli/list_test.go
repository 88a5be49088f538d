package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Text(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Use cases:")
	assert.Contains(t, stdout, "  boom\n")
	assert.Contains(t, stdout, "  divide\n")
	assert.Contains(t, stdout, "  double\n")
	assert.Contains(t, stdout, "  greet\n")
	assert.Contains(t, stdout, "Ports:")
	assert.Contains(t, stdout, "cli.Salutation")
	assert.Contains(t, stdout, "Adapters:")
	assert.Contains(t, stdout, "  toLen\n")
}

func TestList_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"boom", "divide", "double", "greet"}, data["use_cases"])
	assert.Equal(t, []any{"toLen"}, data["adapters"])
}

func TestList_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(t, "list", "extra")
	require.Error(t, err)
}
