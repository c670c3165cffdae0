package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vastucartapps/jyotish/internal/model"
)

const dateLayout = "2006-01-02"

// Renderer turns reports into JSON, Markdown and terminal summaries
type Renderer struct {
	includeFooter bool
	lang          string
}

// NewRenderer creates a renderer for the given output settings
func NewRenderer(cfg model.OutputConfig) *Renderer {
	return &Renderer{
		includeFooter: cfg.IncludeFooter,
		lang:          cfg.Language,
	}
}

// text picks the configured language, falling back to English
func (r *Renderer) text(b model.Bilingual) string {
	if r.lang == "hi" && b.Hi != "" {
		return b.Hi
	}
	return b.En
}

// title turns identifiers like "sade_sati" into "Sade Sati". Casers hold
// state, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// JSON encodes the report with stable, indented output
func (r *Renderer) JSON(report *model.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderJSON writes the report as JSON to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := r.JSON(report)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// RenderMarkdown writes the report as Markdown to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return writeFile(path, []byte(r.Markdown(report)))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Markdown renders the full report
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Jyotish Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- **Report ID:** `%s`\n", report.ID)
	fmt.Fprintf(&b, "- **Reference date:** %s\n", report.ReferenceDate.Format(dateLayout))
	fmt.Fprintf(&b, "- **Vikram Samvat:** %d\n", report.VikramSamvat)
	fmt.Fprintf(&b, "- **Ascendant:** %s\n", r.text(report.Chart.Ascendant.Name()))
	if report.SourcePath != "" {
		fmt.Fprintf(&b, "- **Source:** `%s`\n", report.SourcePath)
	}
	b.WriteString("\n")

	r.writeChart(&b, report.Chart)
	r.writeDoshas(&b, report.Doshas)
	r.writeYogas(&b, report.Yogas)
	if report.SadeSati != nil {
		r.writeSadeSati(&b, report.SadeSati)
	}
	if report.Panchak != nil {
		r.writePanchak(&b, report.Panchak)
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("_Saturn ingress dates assume a uniform dwell per sign and may differ from an ephemeris by a few weeks._\n")
	}
	return b.String()
}

func (r *Renderer) writeChart(b *strings.Builder, chart model.Chart) {
	b.WriteString("## Chart\n\n")
	b.WriteString("| Graha | House | Sign |\n")
	b.WriteString("|-------|------:|------|\n")
	for _, g := range model.AllGrahas {
		p, ok := chart.Planets[g]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %s | %d | %s |\n", r.text(g.Name()), p.House, r.text(p.Sign.Name()))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeDoshas(b *strings.Builder, d model.DoshaReport) {
	b.WriteString("## Doshas\n\n")

	k := d.Kalsarp
	fmt.Fprintf(b, "### %s\n\n", r.text(k.Name))
	fmt.Fprintf(b, "- **Status:** %s\n", title(string(k.Status)))
	if k.Status != model.KalsarpNone {
		fmt.Fprintf(b, "- **Direction:** %s\n", title(string(k.Direction)))
		fmt.Fprintf(b, "- **Rahu / Ketu:** house %d / house %d\n", k.RahuHouse, k.KetuHouse)
		if k.Type != nil {
			fmt.Fprintf(b, "- **Type:** %s (%s)\n", r.text(k.Type.Name), title(k.Type.Intensity.String()))
			fmt.Fprintf(b, "- **Effects:** %s\n", r.text(k.Type.Effects))
		}
		if len(k.OutsidePlanets) > 0 {
			fmt.Fprintf(b, "- **Outside the axis:** %s\n", r.grahaList(k.OutsidePlanets))
		}
	}
	if desc := r.text(k.Description); desc != "" {
		fmt.Fprintf(b, "\n%s\n", desc)
	}
	b.WriteString("\n")

	p := d.Pitra
	b.WriteString("### Pitra Dosha\n\n")
	fmt.Fprintf(b, "- **Severity:** %s\n", title(p.Severity.String()))
	fmt.Fprintf(b, "- **9th house:** %s, ruled by %s\n\n", r.text(p.NinthHouseSign.Name()), r.text(p.NinthLord.Name()))
	for _, ind := range p.Indicators {
		fmt.Fprintf(b, "- **%s** (%s): %s\n", r.text(ind.Name), ind.Severity, r.text(ind.Description))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeYogas(b *strings.Builder, y model.YogaSummary) {
	b.WriteString("## Yogas\n\n")
	fmt.Fprintf(b, "**%s.** %s\n\n", r.text(y.Interpretation.Title), r.text(y.Interpretation.Summary))
	for _, yoga := range y.Yogas {
		fmt.Fprintf(b, "### %s\n\n", r.text(yoga.Name))
		fmt.Fprintf(b, "- **Category:** %s\n", title(string(yoga.Category)))
		fmt.Fprintf(b, "- **Intensity:** %s\n", title(string(yoga.Intensity)))
		fmt.Fprintf(b, "- **Formed by:** %s\n\n", r.grahaList(yoga.Planets))
		fmt.Fprintf(b, "%s\n\n", r.text(yoga.Description))
		if effects := r.text(yoga.Effects); effects != "" {
			fmt.Fprintf(b, "_%s_\n\n", effects)
		}
	}
}

func (r *Renderer) writeSadeSati(b *strings.Builder, s *model.SadeSatiStatus) {
	b.WriteString("## Sade Sati\n\n")
	approx := ""
	if s.Saturn.Approximate {
		approx = " (extrapolated)"
	}
	fmt.Fprintf(b, "- **Moon sign:** %s\n", r.text(s.MoonSign.Name()))
	fmt.Fprintf(b, "- **Saturn:** %s%s, house %d from the Moon\n", r.text(s.Saturn.Sign.Name()), approx, s.HouseFromMoon)
	fmt.Fprintf(b, "- **Phase:** %s\n", title(string(s.Phase)))
	if s.Panoti != model.PanotiNone {
		fmt.Fprintf(b, "- **Small Panoti:** %s\n", title(string(s.Panoti)))
	}
	if s.Current != nil {
		fmt.Fprintf(b, "- **Current period:** %s\n", windowSpan(*s.Current))
	}
	fmt.Fprintf(b, "- **Next period:** %s\n\n", windowSpan(s.Next))
}

func (r *Renderer) writePanchak(b *strings.Builder, p *model.PanchakStatus) {
	b.WriteString("## Panchak\n\n")
	if !p.Active {
		b.WriteString("Not active.\n\n")
		return
	}
	fmt.Fprintf(b, "Active: the Moon is in %s.\n\n", r.text(p.Nakshatra.Name))
	for _, w := range p.Warnings {
		fmt.Fprintf(b, "- %s\n", r.text(w))
	}
	b.WriteString("\n")
}

func (r *Renderer) grahaList(gs []model.Graha) string {
	names := make([]string, len(gs))
	for i, g := range gs {
		names[i] = r.text(g.Name())
	}
	return strings.Join(names, ", ")
}

func windowSpan(w model.TransitWindow) string {
	s := fmt.Sprintf("%s to %s (peak %s to %s)",
		w.Start.Format(dateLayout), w.End.Format(dateLayout),
		w.PeakStart.Format(dateLayout), w.PeakEnd.Format(dateLayout))
	if w.Approximate {
		s += ", extrapolated"
	}
	return s
}

// Summary renders a compact, coloured overview for the terminal
func (r *Renderer) Summary(report *model.Report) string {
	var rows []string

	row := func(label, value string) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value))
	}

	rows = append(rows, titleStyle.Render(report.Subject))
	row("Ascendant", r.text(report.Chart.Ascendant.Name()))
	row("Date", report.ReferenceDate.Format(dateLayout)+mutedStyle.Render(fmt.Sprintf("  VS %d", report.VikramSamvat)))

	rows = append(rows, sectionStyle.Render("Doshas"))
	k := report.Doshas.Kalsarp
	kalsarp := goodStyle.Render("none")
	if k.Status != model.KalsarpNone {
		sev := model.SeverityModerate
		if k.Type != nil {
			sev = k.Type.Intensity
		}
		kalsarp = severityStyle(sev.String()).Render(fmt.Sprintf("%s (%s)", r.text(k.Name), k.Status))
	}
	row("Kalsarp", kalsarp)
	pitra := report.Doshas.Pitra
	row("Pitra", severityStyle(pitra.Severity.String()).Render(fmt.Sprintf("%s, %d indicator(s)", pitra.Severity, countIndicators(pitra))))

	rows = append(rows, sectionStyle.Render("Yogas"))
	if len(report.Yogas.Yogas) == 0 {
		rows = append(rows, mutedStyle.Render(r.text(report.Yogas.Interpretation.Title)))
	}
	for _, y := range report.Yogas.Yogas {
		row(title(string(y.Intensity)), goodStyle.Render(r.text(y.Name)))
	}

	if s := report.SadeSati; s != nil {
		rows = append(rows, sectionStyle.Render("Saturn"))
		phase := goodStyle.Render("no Sade Sati")
		if s.Phase != model.PhaseNone {
			phase = warnStyle.Render("Sade Sati, " + string(s.Phase))
		}
		row("Transit", fmt.Sprintf("%s in %s", phase, r.text(s.Saturn.Sign.Name())))
		if s.Panoti != model.PanotiNone {
			row("Panoti", warnStyle.Render(title(string(s.Panoti))))
		}
		row("Next", windowSpan(s.Next))
	}

	if p := report.Panchak; p != nil && p.Active {
		row("Panchak", badStyle.Render("active: "+r.text(p.Nakshatra.Name)))
	}

	if report.Cached {
		rows = append(rows, mutedStyle.Render("served from cache"))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n"
}

// countIndicators ignores the "none" sentinel
func countIndicators(p model.PitraResult) int {
	if !p.HasDosha {
		return 0
	}
	return len(p.Indicators)
}

// IngressTable renders the ingress table as aligned text
func (r *Renderer) IngressTable(entries []model.IngressEntry, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %-12s %-12s\n", "Sign", "From", "Until")
	for _, e := range entries {
		line := fmt.Sprintf("%-14s %-12s %-12s", r.text(e.Sign.Name()), e.Start.Format(dateLayout), e.End.Format(dateLayout))
		if e.Contains(now) {
			line = goodStyle.Render(line + "  <- now")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
