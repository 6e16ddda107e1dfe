package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	var (
		file       string
		jsonOutput bool
		plain      bool
		ascii      bool
		ciMode     bool
		policyPath string
	)

	cmd := &cobra.Command{
		Use:   "commit [title]",
		Short: "Check a commit title against the convention",
		Long:  "Validate a commit title. Pass the title as an argument, or --file to read the subject line from a commit message file (e.g. .git/COMMIT_EDITMSG in a commit-msg hook).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			switch {
			case file != "":
				content, err := readTextFile(file)
				if err != nil {
					return err
				}
				title = firstLine(content)
			case len(args) == 1:
				title = args[0]
			default:
				return fmt.Errorf("provide a title argument or --file")
			}

			svc, err := newComplianceService(policyPath)
			if err != nil {
				return err
			}

			result := svc.CheckCommit(title)

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				writeReport(cmd, result, plain, ascii)
			}

			if ciMode && !result.IsValid {
				return fmt.Errorf("commit title is non-compliant: %d error(s)", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the title from a commit message file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain report without styling")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "Plain report with ASCII symbols (implies --plain)")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the title is non-compliant")
	cmd.Flags().StringVar(&policyPath, "path", ".", "Directory containing .gitcomply.yaml")

	return cmd
}
