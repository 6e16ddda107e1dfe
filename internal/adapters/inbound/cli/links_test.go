package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinksCommand_Labelled(t *testing.T) {
	out, err := runCommand(t, "links", mrDescription)
	require.NoError(t, err)

	assert.Contains(t, out, "Ticket: https://a.example/x")
	assert.Contains(t, out, "Testing: https://b.example/y")
	assert.Contains(t, out, "Documentation: not found")
}

func TestLinksCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "links", mrDescription, "--json")
	require.NoError(t, err)

	var links map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &links))
	assert.Equal(t, "https://a.example/x", links["ticket_link"])
	assert.NotContains(t, links, "documentation_link", "absent links are omitted")
}

func TestLinksCommand_All(t *testing.T) {
	out, err := runCommand(t, "links", "see https://a.example/x and https://a.example/x", "--all")
	require.NoError(t, err)
	assert.Equal(t, "https://a.example/x\nhttps://a.example/x\n", out)
}

func TestLinksCommand_AllJSON(t *testing.T) {
	out, err := runCommand(t, "links", "see https://a.example/x", "--all", "--json")
	require.NoError(t, err)

	var urls []string
	require.NoError(t, json.Unmarshal([]byte(out), &urls))
	assert.Equal(t, []string{"https://a.example/x"}, urls)
}

func TestLinksCommand_NoDescription(t *testing.T) {
	_, err := runCommand(t, "links")
	assert.Error(t, err)
}
