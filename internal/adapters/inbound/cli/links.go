package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLinksCmd() *cobra.Command {
	var (
		file       string
		all        bool
		jsonOutput bool
		policyPath string
	)

	cmd := &cobra.Command{
		Use:   "links [description]",
		Short: "Extract reference links from a description",
		Long:  "Scan a description for the labelled Ticket/Documentation/Testing links. With --all, list every URL found instead.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var description string
			switch {
			case file != "":
				content, err := readTextFile(file)
				if err != nil {
					return err
				}
				description = content
			case len(args) == 1:
				description = args[0]
			default:
				return fmt.Errorf("provide a description argument or --file")
			}

			svc, err := newComplianceService(policyPath)
			if err != nil {
				return err
			}

			if all {
				urls := svc.ExtractAllURLs(description)
				if jsonOutput {
					return renderJSON(cmd, urls)
				}
				for _, u := range urls {
					fmt.Fprintln(cmd.OutOrStdout(), u)
				}
				return nil
			}

			links := svc.ExtractLinks(description)
			if jsonOutput {
				return renderJSON(cmd, links)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ticket: %s\n", orNotFound(links.TicketLink))
			fmt.Fprintf(cmd.OutOrStdout(), "Documentation: %s\n", orNotFound(links.DocumentationLink))
			fmt.Fprintf(cmd.OutOrStdout(), "Testing: %s\n", orNotFound(links.TestingLink))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the description from a file")
	cmd.Flags().BoolVar(&all, "all", false, "List every URL in order of appearance")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&policyPath, "path", ".", "Directory containing .gitcomply.yaml")

	return cmd
}
