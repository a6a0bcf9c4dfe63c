package mcpserve

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createReadabilityTool returns the get_readability_scores tool definition.
// Exactly one of the three parameters must be provided.
func createReadabilityTool() mcp.Tool {
	return mcp.NewTool("get_readability_scores",
		mcp.WithDescription("Calculates readability scores for text from direct input, a web URL, or a GCS PDF URI. Provide exactly one source."),
		mcp.WithString("text",
			mcp.Description("Text to score directly"),
		),
		mcp.WithString("web_url",
			mcp.Description("HTTP(S) URL of a page or PDF to fetch and score"),
		),
		mcp.WithString("gcs_pdf_uri",
			mcp.Description("gs://bucket/object URI of a PDF in Google Cloud Storage"),
		),
	)
}
