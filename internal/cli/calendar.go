package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vastucartapps/jyotish/internal/calendar"
	"github.com/vastucartapps/jyotish/internal/model"
)

var (
	nakshatraIdx  int
	moonLongitude float64
	panchakStart  string
)

// panchakCmd represents the panchak command
var panchakCmd = &cobra.Command{
	Use:   "panchak",
	Short: "Check whether the Moon's nakshatra falls in Panchak",
	Long: `Panchak covers the last five nakshatras, Dhanishta to Revati. Give the
Moon's nakshatra as an index (0 Ashwini to 26 Revati) or its sidereal
longitude. --starts names the weekday the Panchak began on to classify it.

Example:
  jyotish panchak --nakshatra 24
  jyotish panchak --moon-longitude 301.5 --starts saturday`,
	Args: cobra.NoArgs,
	RunE: runPanchak,
}

// samvatCmd represents the samvat command
var samvatCmd = &cobra.Command{
	Use:   "samvat [date]",
	Short: "Print the Vikram Samvat year for a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}
		date, err := parseDate(raw)
		if err != nil {
			return err
		}
		fmt.Printf("%s is in Vikram Samvat %d\n", date.Format(time.DateOnly), calendar.VikramSamvat(date))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(panchakCmd)
	rootCmd.AddCommand(samvatCmd)

	panchakCmd.Flags().IntVar(&nakshatraIdx, "nakshatra", -1, "Moon nakshatra index, 0-26")
	panchakCmd.Flags().Float64Var(&moonLongitude, "moon-longitude", 0, "Moon sidereal longitude in degrees")
	panchakCmd.Flags().StringVar(&panchakStart, "starts", "", "weekday the Panchak started on")
	panchakCmd.MarkFlagsMutuallyExclusive("nakshatra", "moon-longitude")
	panchakCmd.MarkFlagsOneRequired("nakshatra", "moon-longitude")
}

func runPanchak(cmd *cobra.Command, args []string) error {
	idx := nakshatraIdx
	if cmd.Flags().Changed("moon-longitude") {
		nak := calendar.NakshatraFromLongitude(moonLongitude)
		idx = nak.Index
		fmt.Printf("Moon at %.2f° is in %s, pada %d\n", moonLongitude, nak.Name.En, nak.Pada)
	}

	status, err := calendar.PanchakStatus(idx)
	if err != nil {
		return err
	}
	if !status.Active {
		fmt.Println(okStyle.Render("No Panchak"))
		return nil
	}

	fmt.Println(failStyle.Render(fmt.Sprintf("Panchak is active: the Moon is in %s (%s)",
		status.Nakshatra.Name.En, status.Nakshatra.Name.Hi)))
	if panchakStart != "" {
		day, err := parseWeekday(panchakStart)
		if err != nil {
			return err
		}
		fmt.Printf("Kind: %s Panchak\n", calendar.PanchakKind(day))
	}
	for _, w := range status.Warnings {
		fmt.Printf("  - %s\n", w.En)
	}
	return nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(raw, name) || strings.EqualFold(raw, name[:3]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", model.ErrInvalidInput, raw)
}
