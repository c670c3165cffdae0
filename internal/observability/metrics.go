// Package observability exposes evaluation counters and latencies as
// Prometheus metrics and writes them to a node_exporter textfile.
package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vastucartapps/jyotish/internal/model"
)

// Metric names registered by NewMetrics.
const (
	// ChartsEvaluated counts successful evaluations, cache hits included.
	ChartsEvaluated = "jyotish_charts_evaluated_total"
	// CacheHits and CacheMisses count report cache lookups.
	CacheHits   = "jyotish_cache_hits_total"
	CacheMisses = "jyotish_cache_misses_total"
	// InFlight is a gauge of batch evaluations currently running.
	InFlight = "jyotish_batch_in_flight"
	// EvalLatency is a histogram of per-chart evaluation time in seconds.
	EvalLatency = "jyotish_evaluation_seconds"
	// ChartErrors counts failed charts, labelled by error kind.
	ChartErrors = "jyotish_chart_errors_total"
	// Findings counts doshas, yogas and transit flags, labelled by finding.
	Findings = "jyotish_findings_total"
)

// Metrics holds every collector, keyed by metric name. The zero value is not
// usable; a nil *Metrics is, and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
	vecs     map[string]*prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry
func NewMetrics() *Metrics {
	evaluated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: ChartsEvaluated,
		Help: "Charts evaluated successfully, including cache hits.",
	})
	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: CacheHits,
		Help: "Reports served from the report cache.",
	})
	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: CacheMisses,
		Help: "Reports that had to be computed.",
	})
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: InFlight,
		Help: "Chart evaluations currently running in a batch.",
	})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    EvalLatency,
		Help:    "Time to evaluate one chart, from validation to report.",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14),
	})
	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ChartErrors,
		Help: "Charts rejected or failed, by error kind.",
	}, []string{"kind"})
	findings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: Findings,
		Help: "Doshas, yogas and transit flags found, by finding.",
	}, []string{"finding"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(evaluated, hits, misses, inFlight, latency, errs, findings)

	return &Metrics{
		registry: reg,
		counters: map[string]prometheus.Counter{
			ChartsEvaluated: evaluated,
			CacheHits:       hits,
			CacheMisses:     misses,
		},
		gauges: map[string]prometheus.Gauge{
			InFlight: inFlight,
		},
		histos: map[string]prometheus.Observer{
			EvalLatency: latency,
		},
		vecs: map[string]*prometheus.CounterVec{
			ChartErrors: errs,
			Findings:    findings,
		},
	}
}

// Registry is the gatherer behind these metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncCounter adds v to the named counter. Unknown names are ignored.
func (m *Metrics) IncCounter(name string, v float64) {
	if m == nil {
		return
	}
	if c, ok := m.counters[name]; ok {
		c.Add(v)
	}
}

// AddGauge adds v, which may be negative, to the named gauge. Unknown names
// are ignored.
func (m *Metrics) AddGauge(name string, v float64) {
	if m == nil {
		return
	}
	if g, ok := m.gauges[name]; ok {
		g.Add(v)
	}
}

// ObserveLatency records d in seconds on the named histogram. Unknown names
// are ignored.
func (m *Metrics) ObserveLatency(name string, d time.Duration) {
	if m == nil {
		return
	}
	if h, ok := m.histos[name]; ok {
		h.Observe(d.Seconds())
	}
}

// RecordCache counts one cache lookup
func (m *Metrics) RecordCache(hit bool) {
	if hit {
		m.IncCounter(CacheHits, 1)
	} else {
		m.IncCounter(CacheMisses, 1)
	}
}

// RecordError counts a failed chart under the kind carried by err
func (m *Metrics) RecordError(err error) {
	if m == nil || err == nil {
		return
	}
	m.vecs[ChartErrors].WithLabelValues(string(errorKind(err))).Inc()
}

// RecordReport counts a finished evaluation and its findings
func (m *Metrics) RecordReport(r *model.Report, elapsed time.Duration) {
	if m == nil || r == nil {
		return
	}
	m.IncCounter(ChartsEvaluated, 1)
	m.ObserveLatency(EvalLatency, elapsed)

	findings := m.vecs[Findings]
	if r.Doshas.Kalsarp.Status != model.KalsarpNone {
		findings.WithLabelValues("kalsarp_" + string(r.Doshas.Kalsarp.Status)).Inc()
	}
	if r.Doshas.Pitra.HasDosha {
		findings.WithLabelValues("pitra").Inc()
	}
	for _, y := range r.Yogas.Yogas {
		findings.WithLabelValues("yoga_" + string(y.Type)).Inc()
	}
	if r.SadeSati != nil && r.SadeSati.Phase != model.PhaseNone {
		findings.WithLabelValues("sade_sati").Inc()
	}
	if r.Panchak != nil && r.Panchak.Active {
		findings.WithLabelValues("panchak").Inc()
	}
}

// WriteTextfile atomically writes all metrics in the text exposition format
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

func errorKind(err error) model.ErrorKind {
	var oe *model.OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return "other"
}
