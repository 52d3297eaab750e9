package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dcarber/spinesel/internal/pipeline"
)

var (
	selectionPath string
	tableOutDir   string
	tableTimeout  time.Duration
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table <events.ndjson>",
	Short: "Build CSV tables from a YAML selection file",
	Long: `Table evaluates registered variables on the interactions passing
registered cuts, as named in a YAML selection file, and writes one CSV
per table.

Selection file format:

  tables:
    - name: selected_1mux
      on: reco
      cuts: [fiducial_containment, topological_1mux]
      variables: [visible_energy, leading_muon_ke, leading_muon_pt]

Example:
  spinesel table events.ndjson --selection selection.yaml
  spinesel table events.ndjson --selection selection.yaml --output-dir ./tables`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVar(&selectionPath, "selection", "selection.yaml", "YAML selection file naming cuts and variables")
	tableCmd.Flags().StringVar(&tableOutDir, "output-dir", ".", "output directory for CSV tables")
	tableCmd.Flags().DurationVar(&tableTimeout, "timeout", 10*time.Minute, "total timeout for table building")

	tableCmd.Flags().Float64Var(&muonKE, "muon-ke", 0, "muon kinetic energy threshold in MeV (0 = config default)")
	tableCmd.Flags().Float64Var(&electronKE, "electron-ke", 0, "electron kinetic energy threshold in MeV (0 = config default)")
	tableCmd.Flags().Float64Var(&primaryThreshold, "primary-threshold", 0, "re-derive primary designation from the softmax score with this threshold (0 = upstream assignment)")
}

func runTable(cmd *cobra.Command, args []string) error {
	eventsPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), tableTimeout)
	defer cancel()

	_, actx, err := buildContext()
	if err != nil {
		return err
	}

	spec, err := pipeline.LoadSelection(selectionPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(tableOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, tspec := range spec.Tables {
		bound, err := pipeline.BindTable(actx.Registries, tspec)
		if err != nil {
			return err
		}

		outPath := filepath.Join(tableOutDir, tspec.Name+".csv")
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create table %s: %w", outPath, err)
		}

		rows, err := bound.WriteCSV(ctx, eventsPath, f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("table %q: %w", tspec.Name, err)
		}
		if closeErr != nil {
			return fmt.Errorf("close table %s: %w", outPath, closeErr)
		}

		fmt.Fprintf(os.Stderr, "ok   %s: %d rows -> %s\n", tspec.Name, rows, outPath)
	}

	return nil
}
