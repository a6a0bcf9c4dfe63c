package mcpserve

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dtnitsch/docstats/internal/metrics"
	"github.com/dtnitsch/docstats/internal/resolve"
	"github.com/dtnitsch/docstats/models"
)

// handleReadabilityScores implements the get_readability_scores tool.
// Failures are reported inside the tool result as JSON, never as protocol
// errors, so the invoking model can read and act on them.
func handleReadabilityScores(resolver *resolve.Resolver, engine *metrics.Engine, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		src, err := models.NewSource(
			request.GetString("text", ""),
			request.GetString("web_url", ""),
			request.GetString("gcs_pdf_uri", ""),
		)
		if err != nil {
			return toolError("invalid input", err), nil
		}

		text, provenance, err := resolver.Resolve(ctx, src)
		if err != nil {
			logger.Error("tool resolution failed", "error", err)
			return toolError("resolution error", err), nil
		}

		scores, err := engine.Score(text, provenance)
		if err != nil {
			logger.Error("tool scoring failed", "error", err)
			return toolError("metrics error", err), nil
		}

		payload, err := json.Marshal(scores)
		if err != nil {
			logger.Error("tool result marshal failed", "error", err)
			return toolError("server error", err), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(string(payload)),
			},
		}, nil
	}
}

func toolError(kind string, err error) *mcp.CallToolResult {
	payload, _ := json.Marshal(map[string]string{
		"error":  kind,
		"detail": err.Error(),
	})
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(payload)),
		},
	}
}
