package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate_Smoke(t *testing.T) {
	dir := t.TempDir()
	rule := filepath.Join(dir, "Okta", "brute_force")
	if err := os.MkdirAll(rule, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "Severity: Sev1\nMitreTechniques: [T1110]\n"
	if err := os.WriteFile(filepath.Join(rule, "rule.yml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	l, stats, err := Generate(Config{Root: dir}, "Coverage - All")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if stats.Parsed != 1 || stats.Skipped != 0 {
		t.Fatalf("stats=%+v", stats)
	}
	if len(l.Techniques) != 1 || l.Techniques[0].TechniqueID != "T1110" {
		t.Fatalf("layer=%+v", l)
	}

	var buf bytes.Buffer
	if err := MarshalLayer(&buf, l); err != nil {
		t.Fatalf("MarshalLayer: %v", err)
	}
	back, err := UnmarshalLayer(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("UnmarshalLayer: %v", err)
	}
	if back.Name != "Coverage - All" {
		t.Fatalf("round trip lost name: %q", back.Name)
	}
}

func TestNetworkPlatforms_CopyIsIndependent(t *testing.T) {
	a := NetworkPlatforms()
	if len(a) == 0 {
		t.Fatal("expected non-empty platform list")
	}
	a[0] = "mutated"
	if b := NetworkPlatforms(); b[0] == "mutated" {
		t.Fatal("NetworkPlatforms must return a copy")
	}
}
