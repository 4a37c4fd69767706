package publish

import (
	"fmt"
	"time"
)

// Outcome is the typed enumeration of final publish result states.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Report captures what a publish run did. It is never written into the
// output tree, so its timestamps do not affect output bytes.
type Report struct {
	RunID           string
	Start           time.Time
	End             time.Time
	Articles        int
	Tags            int
	StaticPages     int
	Documents       int
	FilesWritten    int
	OutputDir       string
	StageDurations  map[StageName]time.Duration
	StageErrorKinds map[StageName]StageErrorKind
	Errors          []error
	Outcome         Outcome
}

func newReport(runID string) *Report {
	return &Report{
		RunID:           runID,
		Start:           time.Now(),
		StageDurations:  make(map[StageName]time.Duration),
		StageErrorKinds: make(map[StageName]StageErrorKind),
	}
}

func (r *Report) recordFailure(se *StageError) {
	r.Errors = append(r.Errors, se)
	r.StageErrorKinds[se.Stage] = se.Kind
}

func (r *Report) finish() {
	r.End = time.Now()
	r.deriveOutcome()
}

func (r *Report) deriveOutcome() {
	for _, e := range r.Errors {
		if se, ok := e.(*StageError); ok && se.Kind == StageErrorCanceled {
			r.Outcome = OutcomeCanceled
			return
		}
	}
	if len(r.Errors) > 0 {
		r.Outcome = OutcomeFailed
		return
	}
	r.Outcome = OutcomeSuccess
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("articles=%d tags=%d pages=%d documents=%d files=%d duration=%s errors=%d stages=%d outcome=%s",
		r.Articles, r.Tags, r.StaticPages, r.Documents, r.FilesWritten,
		r.Duration().Truncate(time.Millisecond), len(r.Errors), len(r.StageDurations), r.Outcome)
}
