// Package commands implements the blogd CLI subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hhpeter/blogd/internal/config"
	"github.com/hhpeter/blogd/internal/content"
	"github.com/hhpeter/blogd/internal/markdown"
	"github.com/hhpeter/blogd/internal/metrics"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve ServeCmd `cmd:"" help:"Serve the blog API over HTTP"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Feed  FeedCmd  `cmd:"" help:"Render the RSS feed for a locale to stdout"`
	List  ListCmd  `cmd:"" help:"List post summaries for a locale"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration file and reconfigures logging per its
// logging section (--verbose keeps debug level regardless).
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if root.Verbose {
		cfg.Logging.Level = string(config.LogLevelDebug)
	}
	slog.SetDefault(cfg.Logging.NewLogger())
	return cfg, nil
}

// newRepository wires the content repository from configuration.
func newRepository(cfg *config.Config, recorder metrics.Recorder) *content.Repository {
	return content.NewRepository(cfg.Content.Dir, cfg.LocaleCodes(), markdown.NewRenderer(), recorder)
}
