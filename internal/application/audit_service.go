package application

import (
	"fmt"

	"github.com/abdidvp/gitcomply/internal/domain"
)

// AuditService validates the recent history of a local repository.
// The commit log is an outbound port; the compliance core itself only
// ever sees the title and body strings it produces.
type AuditService struct {
	log        domain.CommitLog
	compliance *ComplianceService
}

func NewAuditService(log domain.CommitLog, compliance *ComplianceService) *AuditService {
	return &AuditService{log: log, compliance: compliance}
}

// Audit checks up to limit recent commits of the repository at path.
func (s *AuditService) Audit(path string, limit int) (*domain.RepoAudit, error) {
	entries, err := s.log.Recent(path, limit)
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}

	audit := &domain.RepoAudit{Path: path}
	for _, entry := range entries {
		review := s.compliance.CheckMergeRequest(entry.Title, entry.Body)

		audit.Total++
		if review.Compliance.IsValid {
			audit.Compliant++
		} else {
			audit.NonCompliant++
		}

		audit.Commits = append(audit.Commits, domain.CommitAudit{
			Hash:   entry.Hash,
			Title:  entry.Title,
			Result: review.Compliance,
			Links:  review.Links,
		})
	}

	return audit, nil
}
