package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/benjaminjackson/exa-skills/internal/skills"
)

const namespace = "inline_requirements"

// PrometheusRecorder implements skills.Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	documents       *prom.CounterVec
	sectionsInlined prom.Counter
	sectionsMissing prom.Counter
	runDuration     prom.Histogram
	lastRunFiles    prom.Gauge
	lastRunTime     prom.Gauge
}

var _ skills.Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder constructs the run metrics and registers them on reg.
// It panics when reg already holds them.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.documents = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "documents_total",
		Help:      "Processed skill documents by outcome",
	}, []string{"outcome"})
	pr.sectionsInlined = prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "sections_inlined_total",
		Help:      "Sections written into skill documents",
	})
	pr.sectionsMissing = prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "sections_missing_total",
		Help:      "Referenced sections absent from the common requirements document",
	})
	pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of a full inlining run",
		Buckets:   prom.DefBuckets,
	})
	pr.lastRunFiles = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_files",
		Help:      "Skill documents discovered by the last run",
	})
	pr.lastRunTime = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished",
	})
	reg.MustRegister(pr.documents, pr.sectionsInlined, pr.sectionsMissing, pr.runDuration, pr.lastRunFiles, pr.lastRunTime)
	return pr
}

func (p *PrometheusRecorder) ObserveDocument(res skills.Result) {
	if p == nil || p.documents == nil {
		return
	}
	p.documents.WithLabelValues(string(res.Outcome)).Inc()
	p.sectionsInlined.Add(float64(len(res.Inlined)))
	p.sectionsMissing.Add(float64(len(res.Missing)))
}

func (p *PrometheusRecorder) ObserveRun(sum skills.Summary, d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
	p.lastRunFiles.Set(float64(sum.Files))
	p.lastRunTime.SetToCurrentTime()
}

// WriteTextfile writes every metric gathered by reg to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, reg prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
