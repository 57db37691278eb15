// Package metrics provides observability hooks for bookindex runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics stay optional:
//
//	recorder := metrics.NewPrometheusRecorder(registry)
//	result := index.Run(ctx, opts, index.WithRecorder(recorder))
//	_ = metrics.WriteTextfile("bookindex.prom", registry)
//
// There is no long-running process to scrape, so Prometheus output is written
// as a textfile after the run.
package metrics
