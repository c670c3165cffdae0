package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vastucartapps/jyotish/internal/chartfile"
	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/observability"
	"github.com/vastucartapps/jyotish/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	chartDate   string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	language    string
	metricsFile string
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Evaluate one chart file and print its report",
	Long: `Chart loads a YAML, JSON or TOML chart and evaluates:
- Kalsarp and Pitra doshas
- Yogas with an overall interpretation
- Saturn's position, Sade Sati and Panoti for the reference date
- Vikram Samvat, and Panchak when the Moon's nakshatra is known

Example:
  jyotish chart asha.yaml
  jyotish chart asha.yaml --json asha.json --md asha.md
  jyotish chart asha.toml --date 2027-03-01 --lang hi`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	chartCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	chartCmd.Flags().StringVar(&chartDate, "date", "", "reference date, overriding the chart's own (YYYY-MM-DD)")
	chartCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "evaluation timeout")
	chartCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	chartCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	chartCmd.Flags().StringVar(&language, "lang", "", "report language: en or hi (default from config)")
	chartCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
}

// applyOutputFlags folds the shared output flags into cfg
func applyOutputFlags(cfg *model.Config) {
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if language != "" {
		cfg.Output.Language = language
	}
	if metricsFile != "" {
		cfg.Metrics.TextfilePath = metricsFile
	}
}

func runChart(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOutputFlags(cfg)

	metrics := observability.NewMetrics()
	p, err := pipeline.NewPipeline(cfg, pipeline.WithMetrics(metrics))
	if err != nil {
		return err
	}

	in, err := chartfile.Load(path, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return err
	}
	if chartDate != "" {
		if in.ReferenceDate, err = parseDate(chartDate); err != nil {
			return err
		}
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Evaluating: %s (%s)\n", path, in.ReferenceDate.Format(time.DateOnly))
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	report, err := p.Evaluate(ctx, in)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", path, err)
	}

	fmt.Print(p.Renderer().Summary(report))

	if err := p.RenderReport(report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if outJSON != "" {
		fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", outJSON)
	}
	if outMD != "" {
		fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", outMD)
	}

	return writeMetrics(metrics, cfg.Metrics.TextfilePath)
}

func writeMetrics(m *observability.Metrics, path string) error {
	if path == "" {
		return nil
	}
	if err := m.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
