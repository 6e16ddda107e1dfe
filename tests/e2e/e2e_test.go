package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/abdidvp/gitcomply/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "gitcomply-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "gitcomply")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../..")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Commit tests ---

func TestE2E_CommitCompliant(t *testing.T) {
	out, code := run(t, "commit", "feat: Tambah fitur login (Taiga #DATB-123)", "--plain")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "COMPLIANT")
	assert.Contains(t, out, "DATB")
}

func TestE2E_CommitJSON(t *testing.T) {
	out, code := run(t, "commit", "feat: Tambah fitur login (Taiga #DATB-123)", "--json")
	assert.Equal(t, 0, code)

	var result domain.ComplianceResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.StatusCompliant, result.Status)
	require.NotNil(t, result.ParsedTitle)
	assert.Equal(t, "123", result.ParsedTitle.Ticket)
}

func TestE2E_CommitCIExitCode(t *testing.T) {
	_, code := run(t, "commit", "update stuff", "--ci", "--plain")
	assert.Equal(t, 1, code, "should exit 1 for a non-compliant title in CI mode")
}

func TestE2E_CommitASCII(t *testing.T) {
	out, code := run(t, "commit", "update stuff", "--ascii")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "[X] NON-COMPLIANT")
}

// --- MR tests ---

func TestE2E_MRWithLinks(t *testing.T) {
	description := "Ticket Link: [(Taiga #DATB-456)](https://a.example/x)\nTesting Link: [https://b.example/y]"
	out, code := run(t, "mr", "fix: Perbaiki bug login (Taiga #DATB-456)", "--description", description, "--json")
	assert.Equal(t, 0, code)

	var review domain.MergeRequestReview
	require.NoError(t, json.Unmarshal([]byte(out), &review))
	assert.True(t, review.Compliance.IsValid)
	require.NotNil(t, review.Links)
	assert.Equal(t, "https://a.example/x", review.Links.TicketLink)
	assert.Equal(t, "https://b.example/y", review.Links.TestingLink)
	assert.Empty(t, review.Links.DocumentationLink)
}

// --- Audit tests ---

func TestE2E_Audit(t *testing.T) {
	dir := t.TempDir()
	git := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, string(out))
	}
	git("init")
	git("config", "user.email", "test@test.com")
	git("config", "user.name", "Test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	git("add", ".")
	git("commit", "-m", "feat: Tambah fitur login (Taiga #DATB-123)")

	out, code := run(t, "audit", dir, "--json")
	assert.Equal(t, 0, code)

	var audit domain.RepoAudit
	require.NoError(t, json.Unmarshal([]byte(out), &audit))
	assert.Equal(t, 1, audit.Total)
	assert.Equal(t, 1, audit.Compliant)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "gitcomply")
}
