package types

import "strings"

// Severity is a normalized detection severity label ("sev0".."sev4" in the
// rule corpus; anything else falls back to the unknown score).
type Severity string

// SevUnknown is the severity assigned when a rule carries no recognized label.
const SevUnknown Severity = "unknown"

// severityScores maps the five severity tiers to Navigator gradient scores.
// Sev0 is the most critical tier. Labels outside the table score 50, sitting
// between sev1 and sev2 so unlabeled rules neither vanish nor dominate.
var severityScores = map[Severity]int{
	"sev0": 100,
	"sev1": 90,
	"sev2": 70,
	"sev3": 40,
	"sev4": 20,
}

const defaultScore = 50

// NormalizeSeverity lowercases and trims a raw severity value. Empty input
// yields SevUnknown.
func NormalizeSeverity(raw string) Severity {
	s := strings.TrimSpace(raw)
	if s == "" {
		return SevUnknown
	}
	return Severity(strings.ToLower(s))
}

// Score returns the gradient score for the severity.
func (s Severity) Score() int {
	if v, ok := severityScores[Severity(strings.ToLower(string(s)))]; ok {
		return v
	}
	return defaultScore
}

func (s Severity) String() string { return string(s) }

// RuleFacts is what one rule file contributes to aggregation: its severity
// and the ATT&CK technique IDs it flags. Techniques are uppercased,
// deduplicated and sorted; a file with no techniques is skipped upstream.
type RuleFacts struct {
	Severity   Severity
	Techniques []string
}

// TechniqueSummary accumulates per-technique coverage across rule files.
type TechniqueSummary struct {
	Count        int      // rule files flagging this technique
	BestScore    int      // highest severity-derived score seen
	BestSeverity Severity // label that produced BestScore (first seen on ties)
	Examples     []string // up to MaxExamples "<rule-dir>/<file>" labels
}

// MaxExamples caps the example locations retained per technique. The first
// MaxExamples contributing files, in sorted walk order, are kept.
const MaxExamples = 5
