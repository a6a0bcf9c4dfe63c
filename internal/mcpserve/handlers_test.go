package mcpserve

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dtnitsch/docstats/internal/metrics"
	"github.com/dtnitsch/docstats/internal/resolve"
	"github.com/dtnitsch/docstats/pkg/fetcher"
)

func setupHandler(t *testing.T) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	resolver := resolve.New(fetcher.NewFetcher(), nil, logger)
	engine := metrics.NewEngine(logger)
	return handleReadabilityScores(resolver, engine, logger)
}

func callTool(t *testing.T, args map[string]any) map[string]any {
	t.Helper()
	handler := setupHandler(t)

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_readability_scores"
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v, want nil (failures belong in the tool result)", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("result has %d content blocks, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want mcp.TextContent", result.Content[0])
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(text.Text), &decoded); err != nil {
		t.Fatalf("tool result is not JSON: %v\n%s", err, text.Text)
	}
	return decoded
}

func TestHandleReadabilityScores_DirectText(t *testing.T) {
	decoded := callTool(t, map[string]any{"text": "long black cat so nice and fat"})

	if wc, ok := decoded["word_count"].(float64); !ok || wc != 7 {
		t.Errorf("word_count = %v, want 7", decoded["word_count"])
	}
	if decoded["spache"] != nil {
		t.Errorf("spache = %v, want null for 7 words", decoded["spache"])
	}
	if decoded["flesch_reading_ease"] == nil {
		t.Error("flesch_reading_ease = null, want value")
	}
}

func TestHandleReadabilityScores_TwoSources(t *testing.T) {
	decoded := callTool(t, map[string]any{
		"text":    "hello there",
		"web_url": "https://example.com",
	})

	if decoded["error"] != "invalid input" {
		t.Errorf("error = %v, want %q", decoded["error"], "invalid input")
	}
	detail, _ := decoded["detail"].(string)
	if !strings.Contains(detail, "exactly one of text, web_url, or gcs_pdf_uri") {
		t.Errorf("detail = %q, want exclusive-source message", detail)
	}
}

func TestHandleReadabilityScores_NoSource(t *testing.T) {
	decoded := callTool(t, map[string]any{})
	if decoded["error"] != "invalid input" {
		t.Errorf("error = %v, want %q", decoded["error"], "invalid input")
	}
}

func TestHandleReadabilityScores_GCSWithoutStorage(t *testing.T) {
	decoded := callTool(t, map[string]any{"gcs_pdf_uri": "gs://bucket/doc.pdf"})

	if decoded["error"] != "resolution error" {
		t.Errorf("error = %v, want %q", decoded["error"], "resolution error")
	}
	detail, _ := decoded["detail"].(string)
	if !strings.Contains(detail, "gs://bucket/doc.pdf") {
		t.Errorf("detail = %q, want the URI in the message", detail)
	}
}
