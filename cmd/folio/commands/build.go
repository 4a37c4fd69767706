package commands

import (
	"fmt"
	"path/filepath"

	"github.com/lyleresnick/folio/internal/publish"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory (overrides output.directory)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	output, err := absOrEmpty(b.Output)
	if err != nil {
		return err
	}
	d := &publish.Driver{ConfigPath: root.Config, OutputDir: output}
	report, err := d.Run(g.ctx())
	if err != nil {
		return err
	}
	fmt.Printf("Built %d documents into %s\n", report.Documents, report.OutputDir)
	return nil
}

func absOrEmpty(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	return filepath.Abs(p)
}
