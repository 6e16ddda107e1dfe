package cli_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}

func fixtureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	for name, message := range map[string]string{
		"a.txt": "feat: Tambah fitur login (Taiga #DATB-123)",
		"b.txt": "update stuff",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
		runGit(t, dir, "add", ".")
		runGit(t, dir, "commit", "-m", message)
	}
	return dir
}

func TestAuditCommand(t *testing.T) {
	dir := fixtureRepo(t)

	out, err := runCommand(t, "audit", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "50% compliant")
	assert.Contains(t, out, "update stuff")
}

func TestAuditCommand_JSON(t *testing.T) {
	dir := fixtureRepo(t)

	out, err := runCommand(t, "audit", dir, "--json")
	require.NoError(t, err)

	var audit map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &audit))
	assert.Equal(t, float64(2), audit["total"])
	assert.Equal(t, float64(1), audit["compliant"])
}

func TestAuditCommand_CIFailsBelowMinimum(t *testing.T) {
	dir := fixtureRepo(t)

	_, err := runCommand(t, "audit", dir, "--ci", "--min", "100")
	assert.Error(t, err)

	_, err = runCommand(t, "audit", dir, "--ci", "--min", "50")
	assert.NoError(t, err)
}

func TestAuditCommand_NotARepo(t *testing.T) {
	_, err := runCommand(t, "audit", t.TempDir())
	assert.Error(t, err)
}

func TestAuditCommand_Limit(t *testing.T) {
	dir := fixtureRepo(t)

	out, err := runCommand(t, "audit", dir, "--limit", "1", "--json")
	require.NoError(t, err)

	var audit map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &audit))
	assert.Equal(t, float64(1), audit["total"])
}
