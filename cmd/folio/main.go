package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/lyleresnick/folio/cmd/folio/commands"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Render markdown articles, tags and resume data into a static site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	global := &commands.Global{Logger: slog.Default(), Context: ctx}
	if err := parser.Run(global, &cli); err != nil {
		stop()
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
