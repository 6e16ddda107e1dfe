package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/gitcomply/internal/adapters/outbound/config"
	"github.com/abdidvp/gitcomply/internal/adapters/outbound/gitlog"
	"github.com/abdidvp/gitcomply/internal/application"
)

// registerTools registers all gitcomply MCP tools on the given server.
func registerTools(s *server.MCPServer, policyPath string) {
	// 1. gitcomply_check_commit
	s.AddTool(
		mcplib.NewTool("gitcomply_check_commit",
			mcplib.WithDescription("Check a commit title against the team convention; returns the compliance verdict with errors and suggestions as JSON"),
			mcplib.WithString("title",
				mcplib.Required(),
				mcplib.Description("The commit title to check"),
			),
		),
		handleCheckCommit(policyPath),
	)

	// 2. gitcomply_check_mr
	s.AddTool(
		mcplib.NewTool("gitcomply_check_mr",
			mcplib.WithDescription("Check a merge-request title and extract the labelled links from its description"),
			mcplib.WithString("title",
				mcplib.Required(),
				mcplib.Description("The merge-request title to check"),
			),
			mcplib.WithString("description",
				mcplib.Description("The merge-request description to scan for links"),
			),
		),
		handleCheckMR(policyPath),
	)

	// 3. gitcomply_extract_links
	s.AddTool(
		mcplib.NewTool("gitcomply_extract_links",
			mcplib.WithDescription("Extract the Ticket/Documentation/Testing links from a description"),
			mcplib.WithString("description",
				mcplib.Required(),
				mcplib.Description("The description to scan"),
			),
			mcplib.WithBoolean("all", mcplib.Description("Return every URL found instead of the labelled links")),
		),
		handleExtractLinks(policyPath),
	)

	// 4. gitcomply_audit
	s.AddTool(
		mcplib.NewTool("gitcomply_audit",
			mcplib.WithDescription("Validate the titles of the most recent commits of a local repository"),
			mcplib.WithString("repo_path",
				mcplib.Required(),
				mcplib.Description("Path to the repository to audit"),
			),
			mcplib.WithNumber("limit", mcplib.Description("Number of commits to check (default 20, 0 for all)")),
		),
		handleAudit(policyPath),
	)
}

// newService builds the compliance facade for the configured policy dir.
func newService(policyPath string) (*application.ComplianceService, error) {
	policy, err := config.New().Load(policyPath)
	if err != nil {
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	return application.NewComplianceService(policy), nil
}

func handleCheckCommit(policyPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		title, err := request.RequireString("title")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, err := newService(policyPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(svc.CheckCommit(title))
	}
}

func handleCheckMR(policyPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		title, err := request.RequireString("title")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		description, _ := request.GetArguments()["description"].(string)

		svc, err := newService(policyPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(svc.CheckMergeRequest(title, description))
	}
}

func handleExtractLinks(policyPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		description, err := request.RequireString("description")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		all, _ := request.GetArguments()["all"].(bool)

		svc, err := newService(policyPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		if all {
			return jsonResult(svc.ExtractAllURLs(description))
		}
		return jsonResult(svc.ExtractLinks(description))
	}
}

func handleAudit(policyPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		repoPath, err := request.RequireString("repo_path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		limit := 20
		if raw, ok := request.GetArguments()["limit"].(float64); ok {
			limit = int(raw)
		}

		svc, err := newService(policyPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		auditSvc := application.NewAuditService(gitlog.New(), svc)

		audit, err := auditSvc.Audit(repoPath, limit)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(audit)
	}
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a text result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
