package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitcomply",
		Short:         "Keep commit and MR titles compliant",
		Long:          "gitcomply checks commit and merge-request titles against the team convention '<type>: <summary> (Taiga #<PROJECT>-<TICKET>)' and extracts reference links from descriptions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCommitCmd())
	cmd.AddCommand(newMRCmd())
	cmd.AddCommand(newLinksCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
