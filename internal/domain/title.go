package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Grammar for a compliant title:
//
//	<type>: <summary> (Taiga #<PROJECT>-<TICKET>)
//
// The whole title must match; the keyword and the type token are matched
// case-insensitively.
var (
	titlePattern      = regexp.MustCompile(`(?i)^([a-z]+):\s+(.+?)\s+\(taiga\s+#([A-Z0-9]+)-([0-9]+)\)$`)
	typePrefixPattern = regexp.MustCompile(`(?i)^([a-z]+):`)
	noSpacePattern    = regexp.MustCompile(`(?i)^[a-z]+:[^\s]`)
	taigaRefPattern   = regexp.MustCompile(`(?i)\(taiga\s+#[A-Z0-9]+-[0-9]+\)`)
)

const formatHint = "use the format: <type>: <summary> (Taiga #<PROJECT>-<TICKET>)"

// TitleValidator checks commit and merge-request titles against the
// structural grammar and the semantic rules of a Policy.
// Validation never fails: malformed input yields a non-compliant result
// describing why, not an error.
type TitleValidator struct {
	policy Policy
}

func NewTitleValidator(policy Policy) *TitleValidator {
	return &TitleValidator{policy: policy}
}

// Validate runs the full compliance pipeline on one title.
func (v *TitleValidator) Validate(title string) *ComplianceResult {
	if strings.TrimSpace(title) == "" {
		return &ComplianceResult{
			Status:      StatusNonCompliant,
			IsValid:     false,
			Errors:      []string{"title must not be empty"},
			Suggestions: []string{formatHint},
		}
	}

	title = strings.TrimSpace(title)

	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		errs, suggestions := v.diagnose(title)
		return &ComplianceResult{
			Status:      StatusNonCompliant,
			IsValid:     false,
			Errors:      errs,
			Suggestions: suggestions,
		}
	}

	parsed := &ParsedTitle{
		Type:    m[1],
		Summary: m[2],
		Project: m[3],
		Ticket:  m[4],
	}

	if !v.policy.HasType(strings.ToLower(parsed.Type)) {
		return &ComplianceResult{
			Status:      StatusNonCompliant,
			IsValid:     false,
			Errors:      []string{fmt.Sprintf("type %q is not valid", strings.ToLower(parsed.Type))},
			Suggestions: []string{"use one of: " + strings.Join(v.policy.Types, ", ")},
			ParsedTitle: parsed,
		}
	}

	var errs, suggestions []string

	// The two bounds are deliberately separate checks; both append.
	summaryLen := utf8.RuneCountInString(strings.TrimSpace(parsed.Summary))
	if summaryLen < v.policy.SummaryMinLen {
		errs = append(errs, fmt.Sprintf("summary too short (minimum %d characters)", v.policy.SummaryMinLen))
		suggestions = append(suggestions, "describe the change in more detail")
	}
	if summaryLen > v.policy.SummaryMaxLen {
		errs = append(errs, fmt.Sprintf("summary too long (maximum %d characters)", v.policy.SummaryMaxLen))
		suggestions = append(suggestions, "shorten the summary, keep it clear and concise")
	}

	if len(errs) > 0 {
		return &ComplianceResult{
			Status:      StatusNonCompliant,
			IsValid:     false,
			Errors:      errs,
			Suggestions: suggestions,
			ParsedTitle: parsed,
		}
	}

	return &ComplianceResult{
		Status:      StatusCompliant,
		IsValid:     true,
		Errors:      []string{},
		Suggestions: []string{},
		ParsedTitle: parsed,
	}
}

// diagnose runs the independent probes for a title that failed the grammar.
// Every applicable probe fires; they are not a decision tree.
func (v *TitleValidator) diagnose(title string) (errs, suggestions []string) {
	if !typePrefixPattern.MatchString(title) {
		errs = append(errs, "type prefix not found at start of title")
		suggestions = append(suggestions, "start the title with '<type>: ' (e.g. feat:, fix:, docs:)")
	} else {
		token := strings.ToLower(typePrefixPattern.FindStringSubmatch(title)[1])
		if !v.policy.HasType(token) {
			errs = append(errs, fmt.Sprintf("type %q is not valid", token))
			suggestions = append(suggestions, "use one of: "+strings.Join(v.policy.Types, ", "))
		}
	}

	if noSpacePattern.MatchString(title) {
		errs = append(errs, "no space after the colon (:)")
		suggestions = append(suggestions, "add a space after ':' (e.g. 'feat: ' not 'feat:')")
	}

	if !strings.Contains(strings.ToLower(title), "taiga") {
		errs = append(errs, "Taiga reference not found")
		suggestions = append(suggestions, "append '(Taiga #<PROJECT>-<TICKET>)' at the end of the title")
	} else if !taigaRefPattern.MatchString(title) {
		errs = append(errs, "Taiga reference format is invalid")
		suggestions = append(suggestions, "use the format (Taiga #<PROJECT>-<TICKET>), e.g. (Taiga #DATB-123)")
	}

	if len(errs) == 0 {
		errs = append(errs, "title format does not match the standard")
		suggestions = append(suggestions,
			formatHint,
			"example: feat: Add login feature (Taiga #DATB-123)",
		)
	}

	return errs, suggestions
}
