// Writer implementation printing results as plain text
package sim

import (
	"fmt"
	"io"
	"os"
)

// StdoutWriter prints the outcome and detail lines of each result.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a StdoutWriter writing to os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

// Write outputs a single result.
func (w *StdoutWriter) Write(row ResultRow) error {
	if _, err := fmt.Fprintf(w.out, "[%s] %s\n", row.Scenario, row.Result.Outcome); err != nil {
		return err
	}
	for _, d := range row.Result.Details {
		if _, err := fmt.Fprintf(w.out, "  - %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch outputs multiple results.
func (w *StdoutWriter) WriteBatch(rows []ResultRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
