package engine

import "strings"

// defaultExcludeDirs are directory names never descended into. Covers VCS
// and tooling dirs, dependency/build caches, and repo subtrees that hold
// helpers, schemas or fixtures rather than detection rules.
var defaultExcludeDirs = map[string]bool{
	".git":           true,
	".github":        true,
	".codebuild":     true,
	".cursor":        true,
	".hooks":         true,
	".hooks_scripts": true,

	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,

	"docs":      true,
	"infra":     true,
	"templates": true,
	"tests":     true,

	"global_helpers": true,
	"procedures":     true,
	"schemas":        true,
	"signals":        true,
	"watchdogs":      true,
}

// NetworkPlatforms is the built-in allow-list for the network-only layer:
// source platforms whose logs describe network-edge activity.
var NetworkPlatforms = []string{"Cloudflare", "Netcraft", "Datadog"}

// ruleFileSuffixes are the recognized rule file extensions (lowercase).
var ruleFileSuffixes = []string{".yml", ".yaml"}

func isExcludedDir(name string, extra map[string]bool) bool {
	return defaultExcludeDirs[name] || extra[name]
}

func isRuleFile(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range ruleFileSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// normalizePlatform folds a platform folder name for allow-list comparison:
// lowercased, spaces and underscores stripped. "Palo_Alto" and "palo alto"
// both become "paloalto".
func normalizePlatform(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "")
	return strings.ReplaceAll(name, " ", "")
}

// platformSet builds the normalized allow-list lookup. Nil means no
// restriction (the all-detections variant).
func platformSet(platforms []string) map[string]bool {
	if len(platforms) == 0 {
		return nil
	}
	set := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		if n := normalizePlatform(p); n != "" {
			set[n] = true
		}
	}
	return set
}
