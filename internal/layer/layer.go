// Package layer builds the ATT&CK Navigator layer document. The JSON shape
// is a contract with the Navigator UI; field names and the fixed
// presentation values must not drift.
package layer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/attackmap/attackmap/internal/types"
)

// Fixed artifact-level values. These are presentation constants of the
// build, not derived from input.
const (
	domain      = "enterprise-attack"
	description = "Auto-generated from detection rule files in repo (technique + severity)."
)

// Layer is the Navigator layer document.
type Layer struct {
	Name         string      `json:"name"`
	Domain       string      `json:"domain"`
	Description  string      `json:"description"`
	Gradient     Gradient    `json:"gradient"`
	Layout       Layout      `json:"layout"`
	HideDisabled bool        `json:"hideDisabled"`
	Techniques   []Technique `json:"techniques"`
}

// Gradient bounds the Navigator color scale.
type Gradient struct {
	MinValue int `json:"minValue"`
	MaxValue int `json:"maxValue"`
}

// Layout selects the Navigator matrix layout.
type Layout struct {
	Layout string `json:"layout"`
}

// Technique is one scored entry in the layer.
type Technique struct {
	TechniqueID string     `json:"techniqueID"`
	Score       int        `json:"score"`
	Comment     string     `json:"comment"`
	Metadata    []Metadata `json:"metadata"`
}

// Metadata is a name/value annotation shown in the Navigator side panel.
type Metadata struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Build transforms finalized technique summaries into a layer. Entries are
// emitted ascending by technique ID so identical input trees yield
// byte-identical artifacts.
func Build(name string, summaries map[string]*types.TechniqueSummary) Layer {
	ids := make([]string, 0, len(summaries))
	for tid := range summaries {
		ids = append(ids, tid)
	}
	sort.Strings(ids)

	techniques := make([]Technique, 0, len(ids))
	for _, tid := range ids {
		sum := summaries[tid]
		comment := fmt.Sprintf("detections=%d; max_sev=%s; examples=%s",
			sum.Count, sum.BestSeverity, strings.Join(sum.Examples, ", "))
		techniques = append(techniques, Technique{
			TechniqueID: tid,
			Score:       sum.BestScore,
			Comment:     comment,
			Metadata: []Metadata{
				{Name: "detections_count", Value: fmt.Sprintf("%d", sum.Count)},
				{Name: "max_severity", Value: sum.BestSeverity.String()},
			},
		})
	}

	return Layer{
		Name:         name,
		Domain:       domain,
		Description:  description,
		Gradient:     Gradient{MinValue: 0, MaxValue: 100},
		Layout:       Layout{Layout: "side"},
		HideDisabled: false,
		Techniques:   techniques,
	}
}
