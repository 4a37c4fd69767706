package commands

import (
	"fmt"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/preview"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Port   int    `short:"p" help:"Port to listen on" default:"8000"`
	Host   string `help:"Interface to bind" default:"localhost"`
	Output string `short:"o" help:"Output directory (overrides output.directory)"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	if s.Port < 1 || s.Port > 65535 {
		return ferrors.ValidationError("port %d out of range 1-65535", s.Port).WithContext("port", s.Port).Build()
	}
	output, err := absOrEmpty(s.Output)
	if err != nil {
		return err
	}
	srv, err := preview.New(root.Config, output, fmt.Sprintf("%s:%d", s.Host, s.Port))
	if err != nil {
		return err
	}
	return srv.Run(g.ctx())
}
