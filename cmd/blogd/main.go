package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hhpeter/blogd/cmd/blogd/commands"
	"github.com/hhpeter/blogd/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("blogd"),
		kong.Description("Localized blog content pipeline and API server."),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
