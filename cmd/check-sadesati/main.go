// Check program listing Sade Sati windows for every Moon sign around a known
// period, for comparison against published ephemeris tables
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
	"github.com/vastucartapps/jyotish/internal/transit"
)

func main() {
	fmt.Println("=== Sade Sati Window Check ===")
	fmt.Println()

	engine := transit.NewEngine(transit.DefaultAnchor())
	from := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC)
	today := time.Now().UTC()

	lookup := engine.CurrentSign(today)
	fmt.Printf("Saturn today (%s): %s", today.Format(time.DateOnly), lookup.Sign)
	if lookup.Approximate {
		fmt.Print(" (extrapolated)")
	}
	fmt.Println()
	fmt.Println()

	for s := model.Aries; s <= model.Pisces; s++ {
		fmt.Printf("Moon in %s\n", s)
		fmt.Println(strings.Repeat("-", 60))

		status := engine.Status(s, today)
		if status.Phase != model.PhaseNone {
			fmt.Printf("  ⚠️  IN SADE SATI (%s)\n", status.Phase)
		}
		if status.Panoti != model.PanotiNone {
			fmt.Printf("  ⚠️  %s\n", status.Panoti)
		}

		for _, w := range engine.Windows(s, from, to) {
			mark := ""
			if w.Approximate {
				mark = "  ~"
			}
			fmt.Printf("  %s → %s  (peak %s → %s)%s\n",
				w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly),
				w.PeakStart.Format(time.DateOnly), w.PeakEnd.Format(time.DateOnly), mark)
		}
		fmt.Println()
	}

	fmt.Println("=== Check Complete ===")
	fmt.Println("\nNote: ingress dates assume a uniform dwell per sign.")
	fmt.Println("Windows marked ~ were extrapolated outside the anchored cycle.")
}
