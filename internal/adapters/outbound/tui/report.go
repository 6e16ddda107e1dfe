package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/gitcomply/internal/domain"
)

// SymbolStyle is the glyph pair used to mark compliant/non-compliant
// results. Callers pick the pair based on their output stream; consoles
// without Unicode support get the ASCII fallback.
type SymbolStyle struct {
	Check string
	Cross string
}

var (
	UnicodeSymbols = SymbolStyle{Check: "✓", Cross: "✗"}
	ASCIISymbols   = SymbolStyle{Check: "[OK]", Cross: "[X]"}
)

// FormatReport renders a plain multi-line compliance report. It performs
// no validation of its own.
func FormatReport(result *domain.ComplianceResult, symbols SymbolStyle) string {
	var lines []string

	if result.IsValid {
		lines = append(lines, fmt.Sprintf("%s COMPLIANT - title matches the standard", symbols.Check))
		if result.ParsedTitle != nil {
			lines = append(lines,
				"  Type: "+result.ParsedTitle.Type,
				"  Summary: "+result.ParsedTitle.Summary,
				"  Project: "+result.ParsedTitle.Project,
				"  Ticket: "+result.ParsedTitle.Ticket,
			)
		}
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("%s NON-COMPLIANT - title does not match the standard", symbols.Cross))
	lines = append(lines, "", "Errors:")
	for _, e := range result.Errors {
		lines = append(lines, "  - "+e)
	}
	if len(result.Suggestions) > 0 {
		lines = append(lines, "", "Suggestions:")
		for _, s := range result.Suggestions {
			lines = append(lines, "  - "+s)
		}
	}

	return strings.Join(lines, "\n")
}
