// Package mcpserve is the MCP request adapter: an stdio tool server
// exposing the readability pipeline as a single tool.
package mcpserve

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/docstats/internal/gcs"
	"github.com/dtnitsch/docstats/internal/metrics"
	"github.com/dtnitsch/docstats/internal/resolve"
	"github.com/dtnitsch/docstats/pkg/fetcher"
)

const serverVersion = "1.0.0"

// Action runs the MCP stdio server, blocking until the peer disconnects.
// Logging defaults to warnings only: stdout belongs to the protocol and
// chatty stderr clutters MCP client logs.
func Action(c *cli.Context) error {
	logLevel := slog.LevelWarn
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx := context.Background()

	var blob resolve.BlobReader
	reader, err := gcs.NewReader(ctx)
	if err != nil {
		logger.Warn("GCS storage unavailable, gcs_pdf_uri sources will fail", "error", err)
	} else {
		blob = reader
		defer reader.Close()
	}

	resolver := resolve.New(fetcher.NewFetcher(), blob, logger)
	engine := metrics.NewEngine(logger)

	mcpServer := server.NewMCPServer(
		"docstats",
		serverVersion,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTool(createReadabilityTool(), handleReadabilityScores(resolver, engine, logger))

	return server.ServeStdio(mcpServer)
}
