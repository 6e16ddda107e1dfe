package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/gitcomply/internal/adapters/outbound/tui"
)

func newMRCmd() *cobra.Command {
	var (
		description     string
		descriptionFile string
		jsonOutput      bool
		plain           bool
		ascii           bool
		ciMode          bool
		policyPath      string
	)

	cmd := &cobra.Command{
		Use:   "mr <title>",
		Short: "Check a merge-request title and its description links",
		Long:  "Validate a merge-request title and extract the Ticket/Documentation/Testing links from its description, when one is supplied.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if descriptionFile != "" {
				content, err := readTextFile(descriptionFile)
				if err != nil {
					return err
				}
				description = content
			}

			svc, err := newComplianceService(policyPath)
			if err != nil {
				return err
			}

			review := svc.CheckMergeRequest(args[0], description)

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, review); err != nil {
					return err
				}
			case plain || ascii:
				symbols := tui.UnicodeSymbols
				if ascii {
					symbols = tui.ASCIISymbols
				}
				fmt.Fprintln(cmd.OutOrStdout(), tui.FormatReport(review.Compliance, symbols))
				if review.Links != nil {
					fmt.Fprintln(cmd.OutOrStdout())
					fmt.Fprintln(cmd.OutOrStdout(), "Links:")
					fmt.Fprintf(cmd.OutOrStdout(), "  Ticket: %s\n", orNotFound(review.Links.TicketLink))
					fmt.Fprintf(cmd.OutOrStdout(), "  Documentation: %s\n", orNotFound(review.Links.DocumentationLink))
					fmt.Fprintf(cmd.OutOrStdout(), "  Testing: %s\n", orNotFound(review.Links.TestingLink))
				}
			default:
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMRReview(review))
			}

			if ciMode && !review.Compliance.IsValid {
				return fmt.Errorf("merge request title is non-compliant: %d error(s)", len(review.Compliance.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "MR description to scan for links")
	cmd.Flags().StringVar(&descriptionFile, "description-file", "", "Read the MR description from a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain report without styling")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "Plain report with ASCII symbols (implies --plain)")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the title is non-compliant")
	cmd.Flags().StringVar(&policyPath, "path", ".", "Directory containing .gitcomply.yaml")

	return cmd
}

func orNotFound(url string) string {
	if url == "" {
		return "not found"
	}
	return url
}
