// Package metrics provides build metrics for folio.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	rec := metrics.NoopRecorder{}
//	rec.ObserveStageDuration("render", time.Since(start))
//
// The preview server swaps in a PrometheusRecorder and exposes its registry
// with HTTPHandler.
package metrics
