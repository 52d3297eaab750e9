package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <filelist>",
	Short: "Classify multiple event files in parallel",
	Long: `Batch classifies multiple event files concurrently:
- Read event-file paths from the list file (one per line)
- Classify files in parallel with configurable worker count
- Throttle reads per directory for shared filesystems
- Write an individual JSON report per file plus a combined summary

Example:
  spinesel batch files.txt
  spinesel batch files.txt --concurrency 10 --output-dir ./reports
  spinesel batch files.txt --muon-ke 50 --timeout 30m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./spinesel-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit flags from the classify command
	batchCmd.Flags().Float64Var(&muonKE, "muon-ke", 0, "muon kinetic energy threshold in MeV (0 = config default)")
	batchCmd.Flags().Float64Var(&electronKE, "electron-ke", 0, "electron kinetic energy threshold in MeV (0 = config default)")
	batchCmd.Flags().Float64Var(&primaryThreshold, "primary-threshold", 0, "re-derive primary designation from the softmax score with this threshold (0 = upstream assignment)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh classification)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, p, err := buildPipeline()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input list:  %s\n", listPath)
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:  %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:     %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency, cfg.RateLimit.ReadsPerSecond, cfg.RateLimit.BurstSize)

	results, err := processor.ProcessList(ctx, listPath)
	if err != nil {
		return fmt.Errorf("process list: %w", err)
	}

	combined := &model.Report{Source: listPath}
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++
		combined.Merge(result.Report)

		jsonPath := filepath.Join(outputDir, reportFilename(result.Path))
		if err := writeReportJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write report: %v\n", result.Path, err)
			continue
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "ok   %s (%d interactions)\n", result.Path, result.Report.Interactions)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Files:     %d\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	renderReport(os.Stdout, combined)

	return nil
}

// reportFilename derives the per-file report name from the event file path.
func reportFilename(eventsPath string) string {
	base := filepath.Base(eventsPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".report.json"
}
