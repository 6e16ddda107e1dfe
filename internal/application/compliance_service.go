package application

import (
	"github.com/abdidvp/gitcomply/internal/domain"
)

// ComplianceService composes the title validator and the link extractor.
// It holds no mutable state and is safe for concurrent use.
type ComplianceService struct {
	titles *domain.TitleValidator
	links  domain.LinkExtractor
}

func NewComplianceService(policy domain.Policy) *ComplianceService {
	return &ComplianceService{
		titles: domain.NewTitleValidator(policy),
		links:  domain.NewLinkExtractor(),
	}
}

// CheckCommit validates a commit title.
func (s *ComplianceService) CheckCommit(title string) *domain.ComplianceResult {
	return s.titles.Validate(title)
}

// CheckMergeRequest validates an MR title and, when a description was
// supplied, extracts its labelled links. Links is nil when the description
// is empty so callers can tell "no description" from "no links found".
func (s *ComplianceService) CheckMergeRequest(title, description string) *domain.MergeRequestReview {
	review := &domain.MergeRequestReview{
		Compliance: s.titles.Validate(title),
	}
	if description != "" {
		links := s.links.Extract(description)
		review.Links = &links
	}
	return review
}

// ExtractLinks exposes the labelled link extraction on its own.
func (s *ComplianceService) ExtractLinks(description string) domain.ExtractedLinks {
	return s.links.Extract(description)
}

// ExtractAllURLs returns every URL in the description, in order.
func (s *ComplianceService) ExtractAllURLs(description string) []string {
	return s.links.ExtractAllURLs(description)
}
