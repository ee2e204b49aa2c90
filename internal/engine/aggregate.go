package engine

import (
	"fmt"
	"path/filepath"

	"github.com/attackmap/attackmap/internal/types"
)

// aggregator folds per-file rule facts into per-technique summaries.
// Pure accumulation; files must be fed in the enumerator's sorted order for
// deterministic example selection.
type aggregator struct {
	summaries map[string]*types.TechniqueSummary
	parsed    int
	skipped   int
}

func newAggregator() *aggregator {
	return &aggregator{summaries: map[string]*types.TechniqueSummary{}}
}

// add records one rule file's facts. Files with no techniques only bump the
// skipped tally.
func (a *aggregator) add(path string, facts types.RuleFacts) {
	if len(facts.Techniques) == 0 {
		a.skipped++
		return
	}
	a.parsed++

	score := facts.Severity.Score()
	loc := locationLabel(path)

	for _, tid := range facts.Techniques {
		sum := a.summaries[tid]
		if sum == nil {
			sum = &types.TechniqueSummary{BestSeverity: types.SevUnknown}
			a.summaries[tid] = sum
		}
		sum.Count++
		if len(sum.Examples) < types.MaxExamples {
			sum.Examples = append(sum.Examples, loc)
		}
		// Strictly greater: on a score tie the earlier-seen label stands.
		if score > sum.BestScore {
			sum.BestScore = score
			sum.BestSeverity = facts.Severity
		}
	}
}

// locationLabel identifies a rule by its immediate folder and file name,
// matching the repo convention <platform>/<rule-name>/<file>.
func locationLabel(path string) string {
	return fmt.Sprintf("%s/%s", filepath.Base(filepath.Dir(path)), filepath.Base(path))
}
