package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dcarber/spinesel/internal/model"
)

// Classifier is the per-file entry point implemented by pipeline.Pipeline.
type Classifier interface {
	ProcessFile(ctx context.Context, path string) (*model.Report, error)
}

// ClassifyJob classifies one event file.
type ClassifyJob struct {
	Path       string
	Classifier Classifier
	Limiter    *Limiter // optional read throttle
}

// Execute runs the job, honoring the read limiter when one is set.
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Path); err != nil {
			return &ClassifyResult{Path: j.Path, Error: err}
		}
	}
	report, err := j.Classifier.ProcessFile(ctx, j.Path)
	return &ClassifyResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// ClassifyResult is the outcome of classifying one event file.
type ClassifyResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the result.
func (r *ClassifyResult) GetError() error {
	return r.Error
}

// BatchProcessor classifies many event files concurrently.
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor with the given parallelism
// and per-directory read rate.
func NewBatchProcessor(classifier Classifier, concurrency int, readsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  classifier,
		concurrency: concurrency,
		limiter:     NewLimiter(readsPerSecond, burst),
	}
}

// ProcessPaths classifies the given event files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ClassifyResult {
	if len(paths) == 0 {
		return []*ClassifyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, path := range paths {
		pool.Submit(&ClassifyJob{
			Path:       path,
			Classifier: b.classifier,
			Limiter:    b.limiter,
		})
	}

	results := pool.Wait()

	classifyResults := make([]*ClassifyResult, len(results))
	for i, result := range results {
		classifyResults[i] = result.(*ClassifyResult)
	}

	return classifyResults
}

// ProcessList reads event-file paths from a list file and classifies them
// concurrently.
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*ClassifyResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read file list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a list file, one per line. Blank
// lines and #-comments are skipped and duplicates dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
