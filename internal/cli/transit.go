package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/pipeline"
	"github.com/vastucartapps/jyotish/internal/transit"
)

var (
	moonSign    string
	transitDate string
	windowsFrom string
	windowsTo   string
	asJSON      bool
)

// sadesatiCmd represents the sadesati command
var sadesatiCmd = &cobra.Command{
	Use:   "sadesati",
	Short: "Show Sade Sati and Panoti for a Moon sign",
	Long: `Sadesati reports where Saturn stands relative to a natal Moon sign on a
date, the current Sade Sati window if any, and the next one. With --from and
--to it lists every window in that range.

Example:
  jyotish sadesati --moon pisces
  jyotish sadesati --moon 3 --date 2030-01-01
  jyotish sadesati --moon aries --from 2000-01-01 --to 2060-01-01`,
	Args: cobra.NoArgs,
	RunE: runSadeSati,
}

// ingressCmd represents the ingress command
var ingressCmd = &cobra.Command{
	Use:   "ingress",
	Short: "Print Saturn's ingress table for one cycle",
	Args:  cobra.NoArgs,
	RunE:  runIngress,
}

func init() {
	rootCmd.AddCommand(sadesatiCmd)
	rootCmd.AddCommand(ingressCmd)

	sadesatiCmd.Flags().StringVar(&moonSign, "moon", "", "natal Moon sign, by name or 0-11 (required)")
	sadesatiCmd.Flags().StringVar(&transitDate, "date", "", "reference date (default today)")
	sadesatiCmd.Flags().StringVar(&windowsFrom, "from", "", "list windows starting from this date")
	sadesatiCmd.Flags().StringVar(&windowsTo, "to", "", "list windows up to this date")
	sadesatiCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	_ = sadesatiCmd.MarkFlagRequired("moon")

	ingressCmd.Flags().StringVar(&transitDate, "date", "", "date to mark in the table (default today)")
	ingressCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

func transitEngine() (*transit.Engine, *pipeline.Renderer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	anchor, err := transit.AnchorFromConfig(cfg.Transit)
	if err != nil {
		return nil, nil, err
	}
	return transit.NewEngine(anchor), pipeline.NewRenderer(cfg.Output), nil
}

func runSadeSati(cmd *cobra.Command, args []string) error {
	moon, err := model.ParseSign(moonSign)
	if err != nil {
		return err
	}
	if !moon.Valid() {
		return fmt.Errorf("%w: moon sign %d out of range 0..11", model.ErrInvalidInput, int(moon))
	}
	date, err := parseDate(transitDate)
	if err != nil {
		return err
	}

	engine, _, err := transitEngine()
	if err != nil {
		return err
	}

	if windowsFrom != "" || windowsTo != "" {
		return printWindows(engine, moon, date)
	}

	status := engine.Status(moon, date)
	if asJSON {
		return printJSON(status)
	}

	fmt.Println(sectionStyle.Render(fmt.Sprintf("Sade Sati for a %s Moon on %s", moon, date.Format(time.DateOnly))))
	saturn := status.Saturn.Sign.String()
	if status.Saturn.Approximate {
		saturn += mutedStyle.Render(" (extrapolated)")
	}
	fmt.Printf("  Saturn:   %s, house %d from the Moon\n", saturn, status.HouseFromMoon)
	fmt.Printf("  Phase:    %s\n", status.Phase)
	if status.Panoti != model.PanotiNone {
		fmt.Printf("  Panoti:   %s\n", status.Panoti)
	}
	if status.Current != nil {
		fmt.Printf("  Current:  %s\n", describeWindow(*status.Current))
	}
	fmt.Printf("  Next:     %s\n", describeWindow(status.Next))
	return nil
}

func printWindows(engine *transit.Engine, moon model.Sign, date time.Time) error {
	from, to := date, date.AddDate(60, 0, 0)
	var err error
	if windowsFrom != "" {
		if from, err = parseDate(windowsFrom); err != nil {
			return err
		}
	}
	if windowsTo != "" {
		if to, err = parseDate(windowsTo); err != nil {
			return err
		}
	}
	if !to.After(from) {
		return fmt.Errorf("%w: --to must be after --from", model.ErrInvalidInput)
	}

	windows := engine.Windows(moon, from, to)
	if asJSON {
		return printJSON(windows)
	}

	fmt.Println(sectionStyle.Render(fmt.Sprintf("Sade Sati windows for a %s Moon, %s to %s",
		moon, from.Format(time.DateOnly), to.Format(time.DateOnly))))
	if len(windows) == 0 {
		fmt.Println(mutedStyle.Render("  none"))
	}
	for _, w := range windows {
		fmt.Printf("  %s\n", describeWindow(w))
	}
	return nil
}

func describeWindow(w model.TransitWindow) string {
	s := fmt.Sprintf("%s to %s, peak %s to %s",
		w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly),
		w.PeakStart.Format(time.DateOnly), w.PeakEnd.Format(time.DateOnly))
	if w.Approximate {
		s += mutedStyle.Render(" (extrapolated)")
	}
	return s
}

func runIngress(cmd *cobra.Command, args []string) error {
	date, err := parseDate(transitDate)
	if err != nil {
		return err
	}

	engine, renderer, err := transitEngine()
	if err != nil {
		return err
	}

	table := engine.IngressTable()
	if asJSON {
		return printJSON(table)
	}

	anchor := engine.Anchor()
	fmt.Println(sectionStyle.Render(fmt.Sprintf("Saturn ingress cycle from %s, %s", anchor.Sign, anchor.Date.Format(time.DateOnly))))
	fmt.Print(renderer.IngressTable(table, date))

	lookup := engine.CurrentSign(date)
	if lookup.Approximate {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%s is outside the table; Saturn extrapolated to %s", date.Format(time.DateOnly), lookup.Sign)))
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
