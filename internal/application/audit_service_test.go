package application_test

import (
	"errors"
	"testing"

	"github.com/abdidvp/gitcomply/internal/application"
	"github.com/abdidvp/gitcomply/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLog struct {
	entries []domain.CommitEntry
	err     error
}

func (s stubLog) Recent(path string, limit int) ([]domain.CommitEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && limit < len(s.entries) {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

func TestAudit_CountsCompliance(t *testing.T) {
	log := stubLog{entries: []domain.CommitEntry{
		{Hash: "aaa", Title: "feat: Tambah fitur login (Taiga #DATB-123)"},
		{Hash: "bbb", Title: "update stuff"},
		{Hash: "ccc", Title: "fix: Perbaiki bug login (Taiga #DATB-456)", Body: "Testing Link: [https://b.example/y]"},
	}}

	svc := application.NewAuditService(log, newService())
	audit, err := svc.Audit("/repo", 0)
	require.NoError(t, err)

	assert.Equal(t, 3, audit.Total)
	assert.Equal(t, 2, audit.Compliant)
	assert.Equal(t, 1, audit.NonCompliant)
	assert.Equal(t, 66, audit.CompliancePercent())
	require.Len(t, audit.Commits, 3)

	assert.Nil(t, audit.Commits[0].Links, "commit without body has no links object")
	require.NotNil(t, audit.Commits[2].Links)
	assert.Equal(t, "https://b.example/y", audit.Commits[2].Links.TestingLink)
	assert.False(t, audit.Commits[1].Result.IsValid)
}

func TestAudit_EmptyHistory(t *testing.T) {
	svc := application.NewAuditService(stubLog{}, newService())
	audit, err := svc.Audit("/repo", 10)
	require.NoError(t, err)

	assert.Equal(t, 0, audit.Total)
	assert.Equal(t, 100, audit.CompliancePercent())
}

func TestAudit_LogError(t *testing.T) {
	svc := application.NewAuditService(stubLog{err: errors.New("not a repo")}, newService())
	_, err := svc.Audit("/nowhere", 10)
	assert.ErrorContains(t, err, "reading commit log")
}
