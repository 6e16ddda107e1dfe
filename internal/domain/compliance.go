package domain

// ComplianceStatus is the verdict for a single title check.
type ComplianceStatus string

const (
	StatusCompliant    ComplianceStatus = "compliant"
	StatusNonCompliant ComplianceStatus = "non_compliant"
)

// ComplianceResult holds the full outcome of validating one title.
// IsValid is redundant with Status but kept as a convenience for callers
// that just want to branch; the two always agree.
type ComplianceResult struct {
	Status      ComplianceStatus `json:"status"`
	IsValid     bool             `json:"is_valid"`
	Errors      []string         `json:"errors"`
	Suggestions []string         `json:"suggestions"`
	ParsedTitle *ParsedTitle     `json:"parsed_title,omitempty"`
}

// ParsedTitle carries the captured segments of a title that matched the
// structural grammar. Values are verbatim captures, never normalized, and
// are present even when a later semantic check fails.
type ParsedTitle struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
	Project string `json:"project"`
	Ticket  string `json:"ticket"`
}

// ExtractedLinks holds the labelled links found in a description.
// An empty string means the label was absent or malformed.
type ExtractedLinks struct {
	TicketLink        string `json:"ticket_link,omitempty"`
	DocumentationLink string `json:"documentation_link,omitempty"`
	TestingLink       string `json:"testing_link,omitempty"`
}

// MergeRequestReview pairs a title verdict with the links extracted from
// the MR description. Links is nil when no description was supplied,
// which is distinct from a description in which nothing was found.
type MergeRequestReview struct {
	Compliance *ComplianceResult `json:"compliance"`
	Links      *ExtractedLinks   `json:"links,omitempty"`
}

// RepoAudit summarizes compliance across the recent history of one repo.
type RepoAudit struct {
	Path         string        `json:"path"`
	Total        int           `json:"total"`
	Compliant    int           `json:"compliant"`
	NonCompliant int           `json:"non_compliant"`
	Commits      []CommitAudit `json:"commits"`
}

// CommitAudit is the verdict for a single commit in an audit run.
type CommitAudit struct {
	Hash   string            `json:"hash"`
	Title  string            `json:"title"`
	Result *ComplianceResult `json:"result"`
	Links  *ExtractedLinks   `json:"links,omitempty"`
}

// CompliancePercent returns the share of compliant commits, 0-100.
func (a *RepoAudit) CompliancePercent() int {
	if a.Total == 0 {
		return 100
	}
	return a.Compliant * 100 / a.Total
}
