package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/docstats/internal/mcpserve"
	"github.com/dtnitsch/docstats/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "docstats",
		Usage: "readability scoring for text, web pages, and GCS-hosted PDFs",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "host",
						Usage: "address to bind",
						Value: "127.0.0.1",
					},
					&cli.IntFlag{
						Name:  "port",
						Usage: "port to listen on",
						Value: 8000,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to YAML config file",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
				Action: serve.Action,
			},
			{
				Name:  "mcp",
				Usage: "run the MCP stdio tool server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
				Action: mcpserve.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
