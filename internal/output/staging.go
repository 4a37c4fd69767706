// Package output writes a rendered site to disk. Everything lands in a
// sibling staging directory first and is promoted in one rename, so a
// failed or canceled build never leaves partial output behind.
package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/logfields"
)

// Stage is an in-progress output tree.
type Stage struct {
	outputDir string
	dir       string
}

// Begin creates a fresh staging directory next to outputDir: <output>_stage.
func Begin(outputDir string) (*Stage, error) {
	outputDir = filepath.Clean(outputDir)
	dir := outputDir + "_stage"
	if err := os.RemoveAll(dir); err != nil {
		return nil, ferrors.FileSystemError("clear stale staging directory").WithCause(err).WithContext("path", dir).Build()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ferrors.FileSystemError("create staging directory").WithCause(err).WithContext("path", dir).Build()
	}
	slog.Debug("Initialized staging directory", slog.String("staging", dir), logfields.Output(outputDir))
	return &Stage{outputDir: outputDir, dir: dir}, nil
}

// Dir returns the staging directory.
func (s *Stage) Dir() string { return s.dir }

// WriteFile writes data at rel, a forward-slash path inside the stage.
func (s *Stage) WriteFile(rel string, data []byte) error {
	target, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return ferrors.FileSystemError("create output directory").WithCause(err).WithContext("path", rel).Build()
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return ferrors.FileSystemError("write output file").WithCause(err).WithContext("path", rel).Build()
	}
	return nil
}

func (s *Stage) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ferrors.InternalError(fmt.Sprintf("output path %q escapes the output directory", rel)).Build()
	}
	return filepath.Join(s.dir, clean), nil
}

// Finalize promotes the stage to the output directory.
// Strategy:
//  1. Move the existing output (if any) to <output>.prev.
//  2. Rename the stage to the output directory.
//  3. Remove the backup.
func (s *Stage) Finalize() error {
	if s.dir == "" {
		return ferrors.InternalError("no staging directory initialized").Build()
	}
	if _, err := os.Stat(s.dir); err != nil {
		return ferrors.FileSystemError("staging directory missing").WithCause(err).WithContext("path", s.dir).Build()
	}

	prev := s.outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous backup", logfields.Path(prev), logfields.Error(err))
	}
	if _, err := os.Stat(s.outputDir); err == nil {
		if err := os.Rename(s.outputDir, prev); err != nil {
			return ferrors.FileSystemError("backup existing output").WithCause(err).WithContext("path", s.outputDir).Build()
		}
	}
	if err := os.Rename(s.dir, s.outputDir); err != nil {
		return ferrors.FileSystemError("promote staging").WithCause(err).WithContext("path", s.outputDir).Build()
	}
	s.dir = ""
	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous backup", logfields.Path(prev), logfields.Error(err))
	}
	slog.Debug("Promoted staging directory", logfields.Output(s.outputDir))
	return nil
}

// Abort removes the staging directory. It is safe to call after Finalize.
func (s *Stage) Abort() {
	if s == nil || s.dir == "" {
		return
	}
	if err := os.RemoveAll(s.dir); err != nil {
		slog.Warn("Failed to remove staging directory", logfields.Path(s.dir), logfields.Error(err))
	}
	s.dir = ""
}
