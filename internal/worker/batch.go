package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vastucartapps/jyotish/internal/chartfile"
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/observability"
)

// Evaluator turns one chart file into a report
type Evaluator interface {
	EvaluateFile(ctx context.Context, path string) (*model.Report, error)
}

// ChartJob evaluates a single chart file
type ChartJob struct {
	Index     int
	Path      string
	Evaluator Evaluator
	limiter   *Limiter
	metrics   *observability.Metrics
}

// Execute waits for the source's rate limit, then evaluates the chart
func (j *ChartJob) Execute(ctx context.Context) Result {
	result := &ChartResult{Index: j.Index, Path: j.Path}

	if j.limiter != nil {
		if err := j.limiter.Wait(ctx, j.Path); err != nil {
			result.Error = fmt.Errorf("rate limit: %w", err)
			return result
		}
	}

	j.metrics.AddGauge(observability.InFlight, 1)
	defer j.metrics.AddGauge(observability.InFlight, -1)

	result.Report, result.Error = j.Evaluator.EvaluateFile(ctx, j.Path)
	return result
}

// ChartResult is the outcome of a ChartJob
type ChartResult struct {
	Index  int
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the evaluation error, if any
func (r *ChartResult) GetError() error {
	return r.Error
}

// Summary counts the outcomes of a batch
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Cached    int
}

// Summarize tallies results
func Summarize(results []*ChartResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Error != nil:
			s.Failed++
		default:
			s.Succeeded++
			if r.Report != nil && r.Report.Cached {
				s.Cached++
			}
		}
	}
	return s
}

// BatchProcessor evaluates many chart files concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
	limiter     *Limiter
	metrics     *observability.Metrics
}

// NewBatchProcessor creates a processor running concurrency workers. A
// positive ratePerSecond throttles loads per source directory.
func NewBatchProcessor(evaluator Evaluator, concurrency int, ratePerSecond float64, burst int) *BatchProcessor {
	b := &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
	}
	if ratePerSecond > 0 {
		b.limiter = NewLimiter(ratePerSecond, burst)
	}
	return b
}

// WithMetrics tracks in-flight evaluations on m
func (b *BatchProcessor) WithMetrics(m *observability.Metrics) *BatchProcessor {
	b.metrics = m
	return b
}

// ProcessFiles evaluates every path and returns results in input order.
// Paths never started because ctx ended carry ctx's error.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*ChartResult {
	if len(paths) == 0 {
		return []*ChartResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, path := range paths {
		job := &ChartJob{
			Index:     i,
			Path:      path,
			Evaluator: b.evaluator,
			limiter:   b.limiter,
			metrics:   b.metrics,
		}
		if !pool.Submit(job) {
			break
		}
	}

	results := pool.Wait()

	chartResults := make([]*ChartResult, len(paths))
	for _, result := range results {
		r := result.(*ChartResult)
		chartResults[r.Index] = r
	}
	for i, r := range chartResults {
		if r == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			chartResults[i] = &ChartResult{Index: i, Path: paths[i], Error: err}
		}
	}
	return chartResults
}

// ProcessFile evaluates the charts named by a list file, or every chart in a
// directory
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*ChartResult, error) {
	paths, err := CollectChartPaths(path)
	if err != nil {
		return nil, err
	}
	return b.ProcessFiles(ctx, paths), nil
}

// CollectChartPaths expands path into chart files. A directory yields its
// chart files sorted by name. Any other file is read as a list, one path per
// line, relative to the list's directory; blank lines and # comments are
// skipped and duplicates dropped.
func CollectChartPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &model.OpError{Op: "batch.collect", Kind: model.KindIO, Path: path, Err: err}
	}
	if info.IsDir() {
		return chartsInDir(path)
	}
	return ReadChartList(path)
}

func chartsInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &model.OpError{Op: "batch.collect", Kind: model.KindIO, Path: dir, Err: err}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := chartfile.DetectFormat(e.Name()); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadChartList reads chart paths from a list file
func ReadChartList(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, &model.OpError{Op: "batch.read_list", Kind: model.KindIO, Path: listPath, Err: err}
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(listPath)
	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		line = filepath.Clean(line)

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &model.OpError{Op: "batch.read_list", Kind: model.KindIO, Path: listPath, Err: err}
	}
	return paths, nil
}
