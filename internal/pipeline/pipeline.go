package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastucartapps/jyotish/internal/cache"
	"github.com/vastucartapps/jyotish/internal/calendar"
	"github.com/vastucartapps/jyotish/internal/chartfile"
	"github.com/vastucartapps/jyotish/internal/dosha"
	"github.com/vastucartapps/jyotish/internal/logger"
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/observability"
	"github.com/vastucartapps/jyotish/internal/transit"
	"github.com/vastucartapps/jyotish/internal/validate"
	"github.com/vastucartapps/jyotish/internal/yoga"
)

// Pipeline orchestrates one chart evaluation: validation, cache lookup, every
// evaluator, and report assembly. It is safe for concurrent use.
type Pipeline struct {
	doshas    *dosha.Evaluator
	yogas     *yoga.Evaluator
	transit   *transit.Engine
	cache     cache.Cache // nil when caching is disabled
	metrics   *observability.Metrics
	renderer  *Renderer
	config    *model.Config
	now       func() time.Time
	cacheSalt string
}

// Option customises a Pipeline
type Option func(*Pipeline)

// WithMetrics records evaluations on m
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithCache overrides the cache built from the configuration
func WithCache(c cache.Cache) Option {
	return func(p *Pipeline) { p.cache = c }
}

// WithReferenceDate fixes the date used for charts that do not carry one
func WithReferenceDate(t time.Time) Option {
	return func(p *Pipeline) { p.now = func() time.Time { return t.UTC() } }
}

// NewPipeline creates a pipeline from cfg
func NewPipeline(cfg *model.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	anchor, err := transit.AnchorFromConfig(cfg.Transit)
	if err != nil {
		return nil, fmt.Errorf("transit anchor: %w", err)
	}

	p := &Pipeline{
		doshas:   dosha.NewEvaluator(),
		yogas:    yoga.NewEvaluator(),
		transit:  transit.NewEngine(anchor),
		cache:    cache.FromConfig(cfg.Cache),
		renderer: NewRenderer(cfg.Output),
		config:   cfg,
		// Undated charts are evaluated at today's UTC midnight.
		now:       func() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) },
		cacheSalt: fmt.Sprintf("%d@%s", int(anchor.Sign), anchor.Date.Format(time.RFC3339)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Transit exposes the Saturn engine the pipeline evaluates with
func (p *Pipeline) Transit() *transit.Engine {
	return p.transit
}

// Renderer returns the renderer configured for this pipeline
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// EvaluateFile loads the chart at path and evaluates it
func (p *Pipeline) EvaluateFile(ctx context.Context, path string) (*model.Report, error) {
	in, err := chartfile.Load(path, p.now())
	if err != nil {
		p.metrics.RecordError(err)
		logger.L().Warn("chart.load_failed", "path", path, "error", err)
		return nil, err
	}
	return p.Evaluate(ctx, in)
}

// Evaluate produces the report for one chart
func (p *Pipeline) Evaluate(ctx context.Context, in model.ChartInput) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	if in.ReferenceDate.IsZero() {
		in.ReferenceDate = p.now()
	}

	if err := validate.Chart(in.Chart); err != nil {
		var oe *model.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = in.SourcePath
		}
		p.metrics.RecordError(err)
		logger.L().Warn("chart.invalid", "subject", in.Subject, "path", in.SourcePath, "error", err)
		return nil, err
	}

	key := cache.ReportKey(in, p.cacheSalt)
	if report, ok := p.cached(key, in); ok {
		p.metrics.RecordCache(true)
		p.metrics.RecordReport(report, time.Since(started))
		logger.L().Info("chart.evaluated", "subject", in.Subject, "cached", true,
			"highlights", report.Highlights())
		return report, nil
	}
	if p.cache != nil {
		p.metrics.RecordCache(false)
	}

	report, err := p.buildReport(in)
	if err != nil {
		p.metrics.RecordError(err)
		return nil, err
	}

	if p.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := p.cache.Set(key, data, 0); err != nil {
				logger.L().Warn("cache.write_failed", "key", key, "error", err)
			}
		}
	}

	elapsed := time.Since(started)
	p.metrics.RecordReport(report, elapsed)
	logger.L().Info("chart.evaluated", "subject", in.Subject, "cached", false,
		"highlights", report.Highlights(), "elapsed_ms", elapsed.Milliseconds())
	return report, nil
}

func (p *Pipeline) buildReport(in model.ChartInput) (*model.Report, error) {
	report := &model.Report{
		ID:            uuid.NewString(),
		Subject:       in.Subject,
		SourcePath:    in.SourcePath,
		GeneratedAt:   time.Now().UTC(),
		ReferenceDate: in.ReferenceDate,
		Chart:         in.Chart,
		Doshas:        p.doshas.Evaluate(in.Chart),
		Yogas:         p.yogas.Evaluate(in.Chart),
		VikramSamvat:  calendar.VikramSamvat(in.ReferenceDate),
	}

	status := p.transit.Status(in.Chart.SignOf(model.Moon), in.ReferenceDate)
	report.SadeSati = &status

	if in.MoonNakshatra != nil {
		panchak, err := calendar.PanchakStatus(*in.MoonNakshatra)
		if err != nil {
			var oe *model.OpError
			if errors.As(err, &oe) {
				oe.Path = in.SourcePath
			}
			return nil, err
		}
		report.Panchak = &panchak
	}

	return report, nil
}

// cached returns a stored report re-labelled for this request
func (p *Pipeline) cached(key string, in model.ChartInput) (*model.Report, bool) {
	if p.cache == nil {
		return nil, false
	}
	data, ok := p.cache.Get(key)
	if !ok {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		logger.L().Warn("cache.corrupt_entry", "key", key, "error", err)
		_ = p.cache.Delete(key)
		return nil, false
	}

	report.ID = uuid.NewString()
	report.Subject = in.Subject
	report.SourcePath = in.SourcePath
	report.GeneratedAt = time.Now().UTC()
	report.Cached = true
	return &report, true
}

// RenderReport writes the report to the requested outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		logger.L().Debug("report.written", "format", "json", "path", jsonPath)
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		logger.L().Debug("report.written", "format", "markdown", "path", mdPath)
	}

	return nil
}
