package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/gitcomply/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 3).
			Width(64)

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle    = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderReport renders a styled compliance report for interactive use.
func RenderReport(result *domain.ComplianceResult) string {
	var b strings.Builder

	if result.IsValid {
		b.WriteString("  " + passStyle.Render("✓ COMPLIANT") + "  " + dimStyle.Render("title matches the standard"))
		b.WriteString("\n\n")
		renderParsedTitle(&b, result.ParsedTitle)
		return b.String()
	}

	b.WriteString("  " + failStyle.Render("✗ NON-COMPLIANT") + "  " + dimStyle.Render("title does not match the standard"))
	b.WriteString("\n\n")

	b.WriteString("  " + sectionStyle.Render("Errors") + "\n")
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), e)
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("\n  " + sectionStyle.Render("Suggestions") + "\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("●"), hintStyle.Render(s))
		}
	}

	if result.ParsedTitle != nil {
		b.WriteString("\n")
		renderParsedTitle(&b, result.ParsedTitle)
	}

	return b.String()
}

// RenderMRReview renders the title verdict plus the extracted links.
func RenderMRReview(review *domain.MergeRequestReview) string {
	var b strings.Builder
	b.WriteString(RenderReport(review.Compliance))

	b.WriteString("\n  " + sectionStyle.Render("Links") + "\n")
	if review.Links == nil {
		b.WriteString("    " + faintStyle.Render("no description supplied") + "\n")
		return b.String()
	}

	renderLink(&b, "Ticket", review.Links.TicketLink)
	renderLink(&b, "Documentation", review.Links.DocumentationLink)
	renderLink(&b, "Testing", review.Links.TestingLink)
	return b.String()
}

// RenderAudit renders a repo-wide compliance summary.
func RenderAudit(audit *domain.RepoAudit) string {
	var b strings.Builder

	header := headerStyle.Render("gitcomply") + "\n" +
		dimStyle.Render(audit.Path) + "\n\n" +
		titleStyle.Render(fmt.Sprintf("%d%% compliant", audit.CompliancePercent())) + "  " +
		dimStyle.Render(fmt.Sprintf("%d of %d commits", audit.Compliant, audit.Total))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	for _, c := range audit.Commits {
		mark := passStyle.Render("✓")
		if !c.Result.IsValid {
			mark = failStyle.Render("✗")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", mark, faintStyle.Render(shortHash(c.Hash)), c.Title)
		if !c.Result.IsValid && len(c.Result.Errors) > 0 {
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render(c.Result.Errors[0]))
		}
	}

	return b.String()
}

func renderParsedTitle(b *strings.Builder, parsed *domain.ParsedTitle) {
	if parsed == nil {
		return
	}
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight("Type", 14)), parsed.Type)
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight("Summary", 14)), parsed.Summary)
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight("Project", 14)), parsed.Project)
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight("Ticket", 14)), parsed.Ticket)
}

func renderLink(b *strings.Builder, label, url string) {
	if url == "" {
		fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(label, 14)), faintStyle.Render("not found"))
		return
	}
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(label, 14)), url)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
