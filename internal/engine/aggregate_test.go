package engine

import (
	"fmt"
	"testing"

	"github.com/attackmap/attackmap/internal/types"
)

func facts(sev string, techs ...string) types.RuleFacts {
	return types.RuleFacts{Severity: types.NormalizeSeverity(sev), Techniques: techs}
}

func TestAggregator_ScoreMonotonicity(t *testing.T) {
	agg := newAggregator()
	// Five files flag T1059 at increasing severities.
	for i, sev := range []string{"Sev4", "Sev3", "Sev2", "Sev1", "Sev0"} {
		agg.add(fmt.Sprintf("/repo/Okta/rule%d/rule.yml", i), facts(sev, "T1059"))
	}

	sum := agg.summaries["T1059"]
	if sum == nil {
		t.Fatal("expected T1059 summary")
	}
	if sum.Count != 5 {
		t.Fatalf("count=%d want 5", sum.Count)
	}
	if sum.BestScore != 100 {
		t.Fatalf("best score=%d want 100", sum.BestScore)
	}
	if sum.BestSeverity != "sev0" {
		t.Fatalf("best severity=%q want sev0", sum.BestSeverity)
	}
	if agg.parsed != 5 || agg.skipped != 0 {
		t.Fatalf("parsed=%d skipped=%d", agg.parsed, agg.skipped)
	}
}

func TestAggregator_TieKeepsFirstSeenSeverity(t *testing.T) {
	agg := newAggregator()
	// Unknown and unrecognized labels both score 50; the first label seen
	// for that score must stand.
	agg.add("/repo/Okta/a/rule.yml", facts("unknown", "T1110"))
	agg.add("/repo/Okta/b/rule.yml", facts("weird", "T1110"))

	sum := agg.summaries["T1110"]
	if sum.BestScore != 50 {
		t.Fatalf("best score=%d want 50", sum.BestScore)
	}
	if sum.BestSeverity != "unknown" {
		t.Fatalf("tie must keep first-seen label, got %q", sum.BestSeverity)
	}
}

func TestAggregator_ExampleCap(t *testing.T) {
	agg := newAggregator()
	for i := 0; i < 8; i++ {
		agg.add(fmt.Sprintf("/repo/Okta/rule%d/rule.yml", i), facts("Sev2", "T1078"))
	}

	sum := agg.summaries["T1078"]
	if sum.Count != 8 {
		t.Fatalf("count=%d want 8", sum.Count)
	}
	if len(sum.Examples) != types.MaxExamples {
		t.Fatalf("examples=%d want %d", len(sum.Examples), types.MaxExamples)
	}
	// Exactly the first five, in processing order, never replaced.
	for i, want := range []string{"rule0/rule.yml", "rule1/rule.yml", "rule2/rule.yml", "rule3/rule.yml", "rule4/rule.yml"} {
		if sum.Examples[i] != want {
			t.Fatalf("examples[%d]=%q want %q", i, sum.Examples[i], want)
		}
	}
}

func TestAggregator_NoTechniquesSkipped(t *testing.T) {
	agg := newAggregator()
	agg.add("/repo/Okta/a/rule.yml", facts("Sev1"))
	agg.add("/repo/Okta/b/rule.yml", facts("Sev1", "T1059"))

	if agg.parsed != 1 || agg.skipped != 1 {
		t.Fatalf("parsed=%d skipped=%d, want 1/1", agg.parsed, agg.skipped)
	}
	if len(agg.summaries) != 1 {
		t.Fatalf("expected one technique, got %d", len(agg.summaries))
	}
}

func TestLocationLabel(t *testing.T) {
	if got := locationLabel("/repo/detections/Okta/suspicious_login/rule.yml"); got != "suspicious_login/rule.yml" {
		t.Fatalf("locationLabel=%q", got)
	}
}
