// Package metrics records inlining runs as Prometheus metrics.
//
// There is no scrape endpoint: the tool is a one-shot command, so the
// registry is written to a node_exporter textfile when a run finishes.
//
// # Usage Pattern
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	runner := skills.NewRunner(root, cfg, skills.WithRecorder(rec))
//	...
//	err := metrics.WriteTextfile(path, reg)
//
// A nil *PrometheusRecorder is valid and records nothing.
package metrics
