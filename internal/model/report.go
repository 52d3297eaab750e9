package model

import "time"

// Report summarizes the classification of one event file.
type Report struct {
	ID          string    `json:"id"`           // Unique report identifier
	Source      string    `json:"source"`       // Path of the classified event file
	ProcessedAt time.Time `json:"processed_at"` // When the classification ran
	Fingerprint string    `json:"fingerprint"`  // Configuration fingerprint used

	Events       int `json:"events"`       // Number of events decoded
	Interactions int `json:"interactions"` // Number of truth interactions classified

	Counts [NumCategories]int `json:"counts"` // Interactions per category code

	Warnings []string `json:"warnings,omitempty"` // Non-fatal decode problems
}

// Add records one classified interaction.
func (r *Report) Add(c Category) {
	r.Interactions++
	r.Counts[c]++
}

// Merge folds another report's tallies into this one.
func (r *Report) Merge(other *Report) {
	r.Events += other.Events
	r.Interactions += other.Interactions
	for i := range r.Counts {
		r.Counts[i] += other.Counts[i]
	}
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Breakdown returns the per-category counts keyed by category name, for
// rendering. Zero-count categories are included so consumers always see the
// full taxonomy.
func (r *Report) Breakdown() map[string]int {
	out := make(map[string]int, NumCategories)
	for i := 0; i < NumCategories; i++ {
		out[Category(i).String()] = r.Counts[i]
	}
	return out
}
