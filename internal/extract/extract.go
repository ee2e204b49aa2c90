// Package extract pulls severity and ATT&CK technique facts out of a single
// rule file. Parsing is best-effort: a file that fails structured YAML
// parsing degrades to a raw-text technique scan instead of erroring.
package extract

import (
	"regexp"
	"sort"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/attackmap/attackmap/internal/types"
)

// techniqueRE matches ATT&CK technique IDs: T + 4 digits, with an optional
// 3-digit sub-technique suffix (T1059, T1059.001).
var techniqueRE = regexp.MustCompile(`(?i)\bT\d{4}(?:\.\d{3})?\b`)

// Recognized field-name spellings, tried in order. Rule corpora are not
// consistent about casing.
var (
	severityKeys  = []string{"Severity", "severity"}
	techniqueKeys = []string{"MitreTechniques"}
)

// techniqueStrategy yields technique IDs from a parsed document and/or the
// raw file text. Strategies are tried in order until one returns a non-empty
// result; the raw-text scan is the terminal fallback.
type techniqueStrategy func(doc map[string]any, raw []byte) []string

var techniqueStrategies = []techniqueStrategy{
	structuredTechniques,
	rawTextTechniques,
}

// Facts extracts severity and technique facts from raw rule file content.
// It never fails: malformed YAML or a non-mapping document simply means the
// structured tier contributes nothing.
func Facts(raw []byte) types.RuleFacts {
	doc := parseMapping(raw)
	return types.RuleFacts{
		Severity:   severityOf(doc),
		Techniques: techniquesOf(doc, raw),
	}
}

// parseMapping attempts structured parsing. Anything other than a clean
// top-level mapping (scalar documents, sequences, parse errors) is treated
// as absent structured data.
func parseMapping(raw []byte) map[string]any {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return doc
}

func severityOf(doc map[string]any) types.Severity {
	if doc == nil {
		return types.SevUnknown
	}
	for _, k := range severityKeys {
		if s, ok := doc[k].(string); ok && strings.TrimSpace(s) != "" {
			return types.NormalizeSeverity(s)
		}
	}
	return types.SevUnknown
}

func techniquesOf(doc map[string]any, raw []byte) []string {
	for _, strat := range techniqueStrategies {
		if techs := strat(doc, raw); len(techs) > 0 {
			return techs
		}
	}
	return nil
}

// structuredTechniques reads the recognized technique-list field. The field
// may hold a single string ("T1059, T1110") or a list of strings; either way
// IDs are pattern-extracted so loose formatting still resolves.
func structuredTechniques(doc map[string]any, _ []byte) []string {
	if doc == nil {
		return nil
	}
	for _, k := range techniqueKeys {
		v, ok := doc[k]
		if !ok {
			continue
		}
		if techs := normalizeTechniques(v); len(techs) > 0 {
			return techs
		}
	}
	return nil
}

// rawTextTechniques scans the entire file text. Some rule files only mention
// techniques in comments or fields the structured pass cannot type.
func rawTextTechniques(_ map[string]any, raw []byte) []string {
	return dedupeUpper(techniqueRE.FindAllString(string(raw), -1))
}

func normalizeTechniques(v any) []string {
	var found []string
	switch val := v.(type) {
	case string:
		found = techniqueRE.FindAllString(val, -1)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				found = append(found, techniqueRE.FindAllString(s, -1)...)
			}
		}
	}
	return dedupeUpper(found)
}

func dedupeUpper(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToUpper(id)
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
