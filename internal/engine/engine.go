package engine

import (
	"os"

	"github.com/attackmap/attackmap/internal/extract"
	"github.com/attackmap/attackmap/internal/logging"
	"github.com/attackmap/attackmap/internal/types"
)

// Config controls one coverage run: what to walk and how to filter it.
type Config struct {
	// Root is the detections directory to scan.
	Root string
	// Platforms restricts input to trees whose first path segment below
	// Root matches (after normalization). Empty means all detections.
	Platforms []string
	// IncludeGlobs / ExcludeGlobs are optional comma-separated doublestar
	// patterns applied to root-relative paths.
	IncludeGlobs string
	ExcludeGlobs string
	// MaxBytes skips rule files larger than this (0 = no limit).
	MaxBytes int64
	// ExtraExcludeDirs adds directory names to the built-in exclusion set.
	ExtraExcludeDirs []string
}

// Stats reports one run's accounting: parsed + skipped equals the number of
// candidate files the enumerator produced.
type Stats struct {
	Parsed  int
	Skipped int
}

// Run executes the pipeline and returns the finalized per-technique
// summaries keyed by technique ID. Returns ErrNoInput when the enumerator
// finds nothing.
func Run(cfg Config) (map[string]*types.TechniqueSummary, Stats, error) {
	files, err := Enumerate(cfg)
	if err != nil {
		return nil, Stats{}, err
	}

	agg := newAggregator()
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			// Unreadable mid-walk (racing deletes, permissions). Count it
			// with the no-technique skips rather than failing the run.
			logging.L().Debugw("skipping unreadable rule file", "path", path, "error", err)
			agg.skipped++
			continue
		}
		facts := extract.Facts(raw)
		if len(facts.Techniques) == 0 {
			logging.L().Debugw("no techniques found", "path", path)
		}
		agg.add(path, facts)
	}

	return agg.summaries, Stats{Parsed: agg.parsed, Skipped: agg.skipped}, nil
}
