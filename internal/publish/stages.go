package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	ferrors "github.com/lyleresnick/folio/internal/foundation/errors"
	"github.com/lyleresnick/folio/internal/logfields"
	"github.com/lyleresnick/folio/internal/metrics"
)

// StageName is a strongly-typed identifier for a publish stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageLoadConfig      StageName = "load_config"
	StageDiscoverContent StageName = "discover_content"
	StageBuildIndices    StageName = "build_indices"
	StageValidateSlugs   StageName = "validate_slugs"
	StageRender          StageName = "render"
	StageFlush           StageName = "flush"
)

// Stage is a discrete unit of work in a publish run.
type Stage func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Run must abort.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{
		Kind:  StageErrorCanceled,
		Stage: stage,
		Err:   ferrors.WrapError(err, ferrors.CategoryCanceled, "publish canceled").Build(),
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// pipeline is a fluent builder for ordered stage definitions.
type pipeline struct{ defs []StageDef }

func newPipeline() *pipeline { return &pipeline{defs: make([]StageDef, 0, 6)} }

func (p *pipeline) add(name StageName, fn Stage) *pipeline {
	p.defs = append(p.defs, StageDef{Name: name, Fn: fn})
	return p
}

func (p *pipeline) build() []StageDef {
	out := make([]StageDef, len(p.defs))
	copy(out, p.defs)
	return out
}

// runStages executes stages in order, recording timing and stopping on the first error.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef, rec metrics.Recorder) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := newCanceledStageError(st.Name, ctx.Err())
			bs.Report.recordFailure(se)
			rec.IncStageResult(string(st.Name), metrics.ResultCanceled)
			return se
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur
		rec.ObserveStageDuration(string(st.Name), dur)

		if err != nil {
			var se *StageError
			switch {
			case errors.As(err, &se):
			case isCancellation(err):
				se = newCanceledStageError(st.Name, err)
			default:
				se = newFatalStageError(st.Name, err)
			}
			bs.Report.recordFailure(se)
			result := metrics.ResultFatal
			if se.Kind == StageErrorCanceled {
				result = metrics.ResultCanceled
			}
			rec.IncStageResult(string(st.Name), result)
			return se
		}

		rec.IncStageResult(string(st.Name), metrics.ResultSuccess)
		slog.Debug("Stage complete", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}
