package output

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/lyleresnick/folio/internal/assemble"
	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/logfields"
)

// FlushOptions controls where a render result is written.
type FlushOptions struct {
	OutputDir   string
	AssetsDir   string
	Concurrency int
}

// Flush writes the assets and every rendered file into a staging directory
// and promotes it to OutputDir. On any error the stage is removed and the
// previous output, if any, is left untouched. It returns the number of files
// written, assets excluded.
func Flush(ctx context.Context, res *assemble.Result, opts FlushOptions) (int, error) {
	stage, err := Begin(opts.OutputDir)
	if err != nil {
		return 0, err
	}
	defer stage.Abort()

	if opts.AssetsDir != "" {
		if err := CopyDir(opts.AssetsDir, stage.Dir()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return 0, ferrors.FileSystemError("copy assets").WithCause(err).WithContext("path", opts.AssetsDir).Build()
			}
			slog.Debug("No assets directory", logfields.Path(opts.AssetsDir))
		}
	}

	files := make([]assemble.File, 0, len(res.Documents)+len(res.Files))
	for _, d := range res.Documents {
		files = append(files, assemble.File{Path: d.Path, Bytes: d.Bytes})
	}
	files = append(files, res.Files...)

	if err := writeAll(ctx, stage, files, opts.Concurrency); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := stage.Finalize(); err != nil {
		return 0, err
	}
	return len(files), nil
}

func writeAll(ctx context.Context, stage *Stage, files []assemble.File, workers int) error {
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, f := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}
			if err := stage.WriteFile(f.Path, f.Bytes); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}
