package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"pqcbench/internal/bench"
	"pqcbench/internal/mechanism"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")).
			Bold(true).
			Padding(0, 1)

	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				MarginBottom(1)
)

// Banner returns a styled single-line heading for console output.
func Banner(text string) string {
	return bannerStyle.Render(text)
}

// RenderSummary writes the aligned summary table for the run: a subset of
// the CSV fields, sized for a terminal. Timings are in milliseconds.
func RenderSummary(w io.Writer, records []bench.Record) {
	fmt.Fprintln(w, summaryTitleStyle.Render("Benchmark Summary"))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tTYPE\tKEYGEN (MS)\tSIGN (MS)\tVERIFY (MS)\tSIG SIZE (B)")
	for _, rec := range records {
		sigSize := NotApplicable
		if rec.Category == mechanism.CategorySignature {
			sigSize = fmt.Sprintf("%d", rec.Details.SignatureBytes)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.3f\t%.3f\t%s\n",
			rec.Algorithm, rec.Category, rec.KeygenMs, rec.EncapsSignMs, rec.DecapsVerifyMs, sigSize)
	}
	tw.Flush()
}
