package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/gitcomply/internal/adapters/outbound/gitlog"
	"github.com/abdidvp/gitcomply/internal/adapters/outbound/tui"
	"github.com/abdidvp/gitcomply/internal/application"
)

func newAuditCmd() *cobra.Command {
	var (
		limit      int
		jsonOutput bool
		ciMode     bool
		minPercent int
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Check the recent commit history of a repository",
		Long:  "Validate the titles of the most recent commits of a local repository and summarize how compliant its history is.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}
			absPath, err := filepath.Abs(repoPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc, err := newComplianceService(absPath)
			if err != nil {
				return err
			}
			auditSvc := application.NewAuditService(gitlog.New(), svc)

			audit, err := auditSvc.Audit(absPath, limit)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, audit); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAudit(audit))
			}

			if ciMode && audit.CompliancePercent() < minPercent {
				return fmt.Errorf("compliance %d%% is below minimum %d%%", audit.CompliancePercent(), minPercent)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of commits to check (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if compliance is below --min")
	cmd.Flags().IntVar(&minPercent, "min", 100, "Minimum compliance percentage for CI mode")

	return cmd
}
