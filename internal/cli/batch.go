package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vastucartapps/jyotish/internal/observability"
	"github.com/vastucartapps/jyotish/internal/pipeline"
	"github.com/vastucartapps/jyotish/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	ratePerSec   float64
	burst        int
	// noCache, noFooter, language and metricsFile are shared with chart.go
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list>",
	Short: "Evaluate many chart files in parallel",
	Long: `Batch evaluates every chart in a directory, or every chart named in a
list file (one path per line, relative to the list):
- Charts are evaluated in parallel with a configurable worker count
- Loads can be rate limited per source directory
- A JSON and a Markdown report is written for each chart

Example:
  jyotish batch ./charts
  jyotish batch charts.txt --concurrency 8 --output-dir ./reports
  jyotish batch /mnt/share/charts --rate 20 --burst 5 --metrics-file jyotish.prom`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./jyotish-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().Float64Var(&ratePerSec, "rate", 0, "max chart loads per second per source directory (0: from config)")
	batchCmd.Flags().IntVar(&burst, "burst", 0, "rate limiter burst (default from config)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&language, "lang", "", "report language: en or hi (default from config)")
	batchCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOutputFlags(cfg)
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if ratePerSec > 0 {
		cfg.Concurrency.RatePerSecond = ratePerSec
	}
	if burst > 0 {
		cfg.Concurrency.Burst = burst
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, sectionStyle.Render("Jyotish Batch Evaluation"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.Concurrency.RatePerSecond > 0 {
		fmt.Fprintf(os.Stderr, "  Rate limit:   %.1f/s per directory (burst %d)\n", cfg.Concurrency.RatePerSecond, cfg.Concurrency.Burst)
	}
	fmt.Fprintln(os.Stderr)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	metrics := observability.NewMetrics()
	p, err := pipeline.NewPipeline(cfg, pipeline.WithMetrics(metrics))
	if err != nil {
		return err
	}

	paths, err := worker.CollectChartPaths(input)
	if err != nil {
		return fmt.Errorf("collect charts: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Found %d chart(s)\n\n", len(paths))

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, cfg.Concurrency.RatePerSecond, cfg.Concurrency.Burst).
		WithMetrics(metrics)
	results := processor.ProcessFiles(ctx, paths)

	written := make(map[string]int)
	renderer := p.Renderer()
	for _, result := range results {
		if result.Error != nil {
			fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("✗ %s: %v", result.Path, result.Error)))
			continue
		}

		slug := uniqueSlug(written, sanitizeFilename(result.Report.Subject))
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("✗ %s: failed to write JSON: %v", result.Path, err)))
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("✗ %s: failed to write Markdown: %v", result.Path, err)))
			continue
		}

		line := fmt.Sprintf("✓ %s", result.Report.Subject)
		if h := result.Report.Highlights(); len(h) > 0 {
			line += mutedStyle.Render("  " + strings.Join(h, ", "))
		}
		fmt.Fprintln(os.Stderr, okStyle.Render(line))
	}

	s := worker.Summarize(results)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, sectionStyle.Render("Batch Complete"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "  Total:     %d charts\n", s.Total)
	fmt.Fprintf(os.Stderr, "  Success:   %d (%d from cache)\n", s.Succeeded, s.Cached)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", s.Failed)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n\n", outputDir)

	if err := writeMetrics(metrics, cfg.Metrics.TextfilePath); err != nil {
		return err
	}
	if s.Failed > 0 {
		return fmt.Errorf("%d of %d charts failed", s.Failed, s.Total)
	}
	return nil
}

var filenameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
)

// sanitizeFilename makes a subject safe to use as a file name
func sanitizeFilename(s string) string {
	s = filenameReplacer.Replace(strings.TrimSpace(s))
	s = strings.Trim(s, ".")
	if s == "" {
		s = "chart"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// uniqueSlug suffixes repeated slugs with -2, -3, ...
func uniqueSlug(seen map[string]int, slug string) string {
	seen[slug]++
	if n := seen[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}
