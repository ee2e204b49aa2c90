// Package report emits the layer artifact and the operator-facing run
// summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/attackmap/attackmap/internal/engine"
	"github.com/attackmap/attackmap/internal/layer"
)

// WriteLayer serializes the layer as indented JSON to path, creating parent
// directories as needed. Any failure is fatal for the run; no partial
// artifact is considered valid.
func WriteLayer(path string, l layer.Layer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	buf, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling layer: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("writing layer: %w", err)
	}
	return nil
}

// PrintSummary writes the four run summary lines. This output is a contract
// with operators and CI log scrapers; keep it on stdout and keep the order.
func PrintSummary(w io.Writer, st engine.Stats, outPath string, l layer.Layer) {
	fmt.Fprintf(w, "Rule files with techniques: %d\n", st.Parsed)
	fmt.Fprintf(w, "Skipped (no techniques): %d\n", st.Skipped)
	fmt.Fprintf(w, "Wrote layer: %s\n", outPath)
	fmt.Fprintf(w, "Techniques in layer: %d\n", len(l.Techniques))
}

// PrintTable renders the layer's technique entries as a bordered table for
// terminals. Entries are already sorted by technique ID.
func PrintTable(w io.Writer, l layer.Layer) {
	if len(l.Techniques) == 0 {
		fmt.Fprintln(w, "No techniques to display")
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("TECHNIQUE", "SCORE", "DETECTIONS", "MAX SEVERITY")
	for _, t := range l.Techniques {
		count, sev := metaValues(t.Metadata)
		_ = table.Append([]string{t.TechniqueID, strconv.Itoa(t.Score), count, sev})
	}
	_ = table.Render()
}

func metaValues(meta []layer.Metadata) (count, sev string) {
	for _, m := range meta {
		switch m.Name {
		case "detections_count":
			count = m.Value
		case "max_severity":
			sev = m.Value
		}
	}
	return count, sev
}
