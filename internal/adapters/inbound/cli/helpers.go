package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/gitcomply/internal/adapters/outbound/config"
	"github.com/abdidvp/gitcomply/internal/adapters/outbound/tui"
	"github.com/abdidvp/gitcomply/internal/application"
	"github.com/abdidvp/gitcomply/internal/domain"
)

// newComplianceService loads the policy for policyPath and builds the facade.
func newComplianceService(policyPath string) (*application.ComplianceService, error) {
	policy, err := config.New().Load(policyPath)
	if err != nil {
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	return application.NewComplianceService(policy), nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeReport picks the presentation for a compliance result:
// styled by default, the plain unicode/ascii report on request.
func writeReport(cmd *cobra.Command, result *domain.ComplianceResult, plain, ascii bool) {
	switch {
	case ascii:
		fmt.Fprintln(cmd.OutOrStdout(), tui.FormatReport(result, tui.ASCIISymbols))
	case plain:
		fmt.Fprintln(cmd.OutOrStdout(), tui.FormatReport(result, tui.UnicodeSymbols))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(result))
	}
}

// firstLine returns the subject line of a commit message file's content.
func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.ReplaceAll(message, "\r\n", "\n"), "\n")
	return strings.TrimSpace(line)
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
