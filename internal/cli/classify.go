package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dcarber/spinesel/internal/analysis"
	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/pid"
	"github.com/dcarber/spinesel/internal/pipeline"
)

var (
	outJSON          string
	timeout          time.Duration
	noCache          bool
	muonKE           float64
	electronKE       float64
	primaryThreshold float64
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <events.ndjson>",
	Short: "Classify every truth interaction in a single event file",
	Long: `Classify runs the category cascade over every truth interaction in
an NDJSON event file and reports the per-category tallies.

Example:
  spinesel classify events.ndjson
  spinesel classify events.ndjson --muon-ke 50 --json report.json
  spinesel classify events.ndjson --primary-threshold 0.6`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	// Output flags
	classifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")

	// Selection flags
	classifyCmd.Flags().Float64Var(&muonKE, "muon-ke", 0, "muon kinetic energy threshold in MeV (0 = config default)")
	classifyCmd.Flags().Float64Var(&electronKE, "electron-ke", 0, "electron kinetic energy threshold in MeV (0 = config default)")
	classifyCmd.Flags().Float64Var(&primaryThreshold, "primary-threshold", 0, "re-derive primary designation from the softmax score with this threshold (0 = upstream assignment)")

	classifyCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall classification timeout")
	classifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh classification)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, p, err := buildPipeline()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Classifying: %s\n", path)
		fmt.Fprintf(os.Stderr, "Muon KE threshold: %.1f MeV\n", cfg.Selection.MuonKEThreshold)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	report, err := p.ProcessFile(ctx, path)
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Decoded %d events\n", report.Events)
		fmt.Fprintf(os.Stderr, "Classified %d interactions\n", report.Interactions)
		fmt.Fprintln(os.Stderr)
	}

	renderReport(os.Stdout, report)

	if outJSON != "" {
		if err := writeReportJSON(report, outJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outJSON)
		}
	}

	return nil
}

// buildContext assembles the configuration, scheme, and analysis context
// shared by every command that evaluates registered functions.
func buildContext() (*model.Config, *analysis.Context, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if muonKE > 0 {
		cfg.Selection.MuonKEThreshold = muonKE
	}
	if electronKE > 0 {
		cfg.Selection.ElectronKEThreshold = electronKE
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.Verbose = verbose

	var scheme *pid.Scheme
	if primaryThreshold > 0 {
		scheme = pid.WithPrimaryThreshold(primaryThreshold)
	}

	actx, err := analysis.NewContext(cfg, scheme)
	if err != nil {
		return nil, nil, err
	}
	return cfg, actx, nil
}

// buildPipeline wraps the analysis context in a classification pipeline,
// shared by the classify and batch commands.
func buildPipeline() (*model.Config, *pipeline.Pipeline, error) {
	cfg, actx, err := buildContext()
	if err != nil {
		return nil, nil, err
	}

	p, err := pipeline.New(cfg, actx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}
