package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dcarber/spinesel/internal/model"
)

// renderReport prints the per-category tallies in a fixed taxonomy order.
func renderReport(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "Source:       %s\n", report.Source)
	fmt.Fprintf(w, "Events:       %d\n", report.Events)
	fmt.Fprintf(w, "Interactions: %d\n", report.Interactions)
	fmt.Fprintln(w)
	for i := 0; i < model.NumCategories; i++ {
		c := model.Category(i)
		fmt.Fprintf(w, "  %d  %-20s %8d\n", i, c, report.Counts[i])
	}
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Warnings: %d malformed lines skipped\n", len(report.Warnings))
	}
}

// writeReportJSON writes the report to path as indented JSON.
func writeReportJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
