package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lyleresnick/folio/internal/config"
)

// Global is shared state passed to every subcommand.
type Global struct {
	Logger  *slog.Logger
	Context context.Context
}

func (g *Global) ctx() context.Context {
	if g == nil || g.Context == nil {
		return context.Background()
	}
	return g.Context
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"site.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"1" help:"Render the site into the output directory"`
	Serve ServeCmd `cmd:"" help:"Build, serve locally and rebuild on change"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once. The logging section
// of the config is honored when the file loads; load errors surface later
// from the command itself.
func (c *CLI) AfterApply() error {
	var logCfg config.LoggingConfig
	if cfg, err := config.Load(c.Config); err == nil {
		logCfg = cfg.Logging
	}
	slog.SetDefault(config.NewLogger(os.Stderr, logCfg, c.Verbose))
	return nil
}
