// ColorStdoutWriter prints human-friendly, colorized results to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const defaultWrapWidth = 80

var (
	missStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	impactStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	severityTint = map[string]lipgloss.Color{
		"regional":    lipgloss.Color("11"),
		"continental": lipgloss.Color("208"),
		"global":      lipgloss.Color("9"),
		"ocean":       lipgloss.Color("12"),
		"inland":      lipgloss.Color("3"),
	}
)

// ColorStdoutWriter prints results using lipgloss styles, wrapping detail
// lines to a fixed width.
type ColorStdoutWriter struct {
	out   io.Writer
	width int
	once  sync.Once
	model string
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
// model is printed once as a header; width <= 0 uses 80 columns.
func NewColorStdoutWriter(model string, width int) *ColorStdoutWriter {
	if width <= 0 {
		width = defaultWrapWidth
	}
	return &ColorStdoutWriter{out: os.Stdout, width: width, model: model}
}

func (w *ColorStdoutWriter) printHeader() {
	if w.model == "" {
		return
	}
	fmt.Fprintln(w.out, headerStyle.Render("Impact model: "+w.model))
	fmt.Fprintln(w.out)
}

// Write outputs a single result in colorized format.
func (w *ColorStdoutWriter) Write(row ResultRow) error {
	w.once.Do(w.printHeader)

	res := row.Result
	outcome := missStyle.Render(res.Outcome)
	if res.WillImpact {
		outcome = impactStyle.Render(res.Outcome)
	}
	tag := string(res.Severity)
	if tag == "" {
		tag = string(res.Location)
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("["+row.Scenario+"]") + " " + outcome)
	if tag != "" {
		b.WriteString(" " + lipgloss.NewStyle().Foreground(severityTint[tag]).Render("("+tag+")"))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("  miss=%.0f km  energy=%.1f Mt  lead=%g y", res.MissDistanceKM, res.EnergyMegatons, row.LeadTimeYears)))
	b.WriteString("\n")
	for _, d := range res.Details {
		wrapped := wordwrap.String(d, w.width-4)
		lines := strings.Split(wrapped, "\n")
		for i, l := range lines {
			prefix := "  • "
			if i > 0 {
				prefix = "    "
			}
			b.WriteString(prefix + detailStyle.Render(l) + "\n")
		}
	}
	_, err := fmt.Fprint(w.out, b.String())
	return err
}

// WriteBatch outputs multiple results.
func (w *ColorStdoutWriter) WriteBatch(rows []ResultRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
